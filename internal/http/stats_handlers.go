package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"smoketaper/internal/service"

	"go.uber.org/zap"
)

// StatsHandler serves the rolling-window statistics endpoints.
type StatsHandler struct {
	stats       service.StatsService
	defaultDays int
	logger      *zap.Logger
}

func NewStatsHandler(stats service.StatsService, defaultDays int, logger *zap.Logger) *StatsHandler {
	if defaultDays < 1 {
		defaultDays = 7
	}
	return &StatsHandler{stats: stats, defaultDays: defaultDays, logger: logger}
}

// GET /api/stats/week?end=YYYY-MM-DD&days=N
// Defaults: end = today, days = configured window (7).
func (h *StatsHandler) GetWindow(w http.ResponseWriter, r *http.Request) {
	end, windowDays, err := h.windowParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	stats, err := h.stats.Window(r.Context(), end, windowDays)
	if err != nil {
		h.logger.Error("failed to aggregate stats window", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GET /api/stats/export?end=YYYY-MM-DD&days=N
func (h *StatsHandler) Export(w http.ResponseWriter, r *http.Request) {
	end, windowDays, err := h.windowParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	raw, err := h.stats.ExportXLSX(r.Context(), end, windowDays)
	if err != nil {
		h.logger.Error("failed to export stats workbook", zap.Error(err))
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("smoketaper-stats-%s.xlsx", end.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (h *StatsHandler) windowParams(r *http.Request) (time.Time, int, error) {
	end := time.Now()
	if s := r.URL.Query().Get("end"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("invalid end date %q: want YYYY-MM-DD", s)
		}
		end = parsed
	}
	windowDays := parseInt(r.URL.Query().Get("days"), h.defaultDays)
	if windowDays < 1 || windowDays > 366 {
		return time.Time{}, 0, fmt.Errorf("days must be between 1 and 366")
	}
	return end, windowDays, nil
}
