package httpapi

import (
	"net/http"

	"smoketaper/internal/service"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 16

// DayHandler serves the /api/days endpoints. Bodies are the plain JSON
// shapes the mobile client consumes; errors come back as {"error": msg}.
type DayHandler struct {
	days   service.DayService
	logger *zap.Logger
}

func NewDayHandler(days service.DayService, logger *zap.Logger) *DayHandler {
	return &DayHandler{days: days, logger: logger}
}

// GET /api/days
func (h *DayHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.days.ListDays(r.Context())
	if err != nil {
		h.logger.Error("failed to list days", zap.Error(err))
		writeError(w, err)
		return
	}
	h.logger.Info("retrieved days", zap.Int("count", len(days)))
	writeJSON(w, http.StatusOK, days)
}

// GET /api/days/{date}
func (h *DayHandler) GetDayByDate(w http.ResponseWriter, r *http.Request, date string) {
	day, err := h.days.GetDayByDate(r.Context(), date)
	if err != nil {
		// day-not-found is the normal "set up this date" outcome, not an error
		h.logger.Info("day lookup missed", zap.String("date", date), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// POST /api/days
func (h *DayHandler) CreateDay(w http.ResponseWriter, r *http.Request) {
	var req service.CreateDayRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	day, err := h.days.CreateDay(r.Context(), req)
	if err != nil {
		h.logger.Warn("failed to create day", zap.String("date", req.Date), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// PUT /api/days/{id}
func (h *DayHandler) UpdateDay(w http.ResponseWriter, r *http.Request, dayID string) {
	var req service.UpdateDayRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	day, err := h.days.UpdateDay(r.Context(), dayID, req)
	if err != nil {
		h.logger.Warn("failed to update day", zap.String("day_id", dayID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}
