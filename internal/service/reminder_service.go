package service

import (
	"context"
	"time"

	"smoketaper/internal/domain"
	"smoketaper/internal/repository"

	"go.uber.org/zap"
)

// ReminderService covers the per-reminder operations outside regeneration:
// listing a day's set, completing, and direct deletion.
type ReminderService interface {
	ListForDay(ctx context.Context, dayID string) ([]*domain.Reminder, error)
	Complete(ctx context.Context, reminderID string) (*domain.Reminder, error)
	Delete(ctx context.Context, reminderID string) error
}

type reminderService struct {
	reminders repository.RemindersRepository
	logger    *zap.Logger
}

func NewReminderService(reminders repository.RemindersRepository, logger *zap.Logger) ReminderService {
	return &reminderService{reminders: reminders, logger: logger}
}

func (s *reminderService) ListForDay(ctx context.Context, dayID string) ([]*domain.Reminder, error) {
	return s.reminders.ListByDay(ctx, dayID)
}

// Complete marks the reminder done, stamping completed_at with the current
// time. Repeat calls re-stamp: the operation stays a single idempotent
// write.
func (s *reminderService) Complete(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	rem, err := s.reminders.Complete(ctx, reminderID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.logger.Info("reminder completed",
		zap.String("reminder_id", rem.ID),
		zap.String("day_id", rem.DayID),
		zap.String("time", rem.Time))
	return rem, nil
}

func (s *reminderService) Delete(ctx context.Context, reminderID string) error {
	if err := s.reminders.Delete(ctx, reminderID); err != nil {
		return err
	}
	s.logger.Info("reminder deleted", zap.String("reminder_id", reminderID))
	return nil
}
