package repository

import (
	"context"
	"time"

	"smoketaper/internal/domain"
)

// RemindersRepository covers the per-reminder operations that run outside
// the regeneration flow. Regeneration itself (bulk delete+insert) lives on
// DaysRepository so it shares the Day's transactional boundary.
type RemindersRepository interface {
	// ListByDay returns the reminders for a Day ordered by clock time
	// ascending. An unknown dayID yields an empty list, not an error.
	ListByDay(ctx context.Context, dayID string) ([]*domain.Reminder, error)

	// Complete marks the reminder completed and stamps completedAt.
	// Completing an already completed reminder re-stamps it. Returns a
	// NotFoundError for an unknown id.
	Complete(ctx context.Context, reminderID string, at time.Time) (*domain.Reminder, error)

	// Delete removes a single reminder (client-invoked, distinct from
	// regeneration's bulk delete). Returns a NotFoundError for an unknown
	// id.
	Delete(ctx context.Context, reminderID string) error
}
