package repository

import (
	"context"

	"smoketaper/internal/domain"
)

// DaysRepository owns the Day rows and the regeneration invariant: a Day's
// reminder set always matches its current wake/sleep/target parameters.
// Create and Replace take the precomputed reminder times so the repository
// stays free of scheduling logic; both must apply the day write and the
// reminder delete+insert as one atomic unit per Day.
type DaysRepository interface {
	// CreateDay inserts the day and its initial reminder set. Returns a
	// ValidationError when a Day already exists for day.Date.
	CreateDay(ctx context.Context, day *domain.Day, times []string) (*domain.Day, error)

	// UpdateDay persists the merged parameters for an existing Day and
	// replaces its whole reminder set with freshly generated times. Any
	// previous completion state is discarded. Returns a NotFoundError for
	// an unknown id.
	UpdateDay(ctx context.Context, dayID string, wakeTime, sleepTime string, target int, times []string) (*domain.Day, error)

	// GetDay returns the Day by id, NotFoundError if absent.
	GetDay(ctx context.Context, dayID string) (*domain.Day, error)

	// GetDayByDate returns the Day for a "YYYY-MM-DD" date, NotFoundError
	// if absent.
	GetDayByDate(ctx context.Context, date string) (*domain.Day, error)

	// ListDays returns all Days ordered by date ascending.
	ListDays(ctx context.Context) ([]*domain.Day, error)
}
