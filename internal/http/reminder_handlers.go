package httpapi

import (
	"net/http"

	"smoketaper/internal/service"

	"go.uber.org/zap"
)

// ReminderHandler serves the /api/reminders endpoints.
type ReminderHandler struct {
	reminders service.ReminderService
	logger    *zap.Logger
}

func NewReminderHandler(reminders service.ReminderService, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{reminders: reminders, logger: logger}
}

// GET /api/reminders/day/{dayId}
// An unknown dayId yields an empty list: the client treats "no reminders"
// and "no such day" the same way on this screen.
func (h *ReminderHandler) ListForDay(w http.ResponseWriter, r *http.Request, dayID string) {
	list, err := h.reminders.ListForDay(r.Context(), dayID)
	if err != nil {
		h.logger.Error("failed to list reminders", zap.String("day_id", dayID), zap.Error(err))
		writeError(w, err)
		return
	}
	h.logger.Info("retrieved reminders", zap.String("day_id", dayID), zap.Int("count", len(list)))
	writeJSON(w, http.StatusOK, list)
}

// PUT /api/reminders/{id}/complete
func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request, reminderID string) {
	rem, err := h.reminders.Complete(r.Context(), reminderID)
	if err != nil {
		h.logger.Warn("failed to complete reminder", zap.String("reminder_id", reminderID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

// DELETE /api/reminders/{id}
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request, reminderID string) {
	if err := h.reminders.Delete(r.Context(), reminderID); err != nil {
		h.logger.Warn("failed to delete reminder", zap.String("reminder_id", reminderID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
