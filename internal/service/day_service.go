package service

import (
	"context"
	"time"

	"smoketaper/internal/domain"
	"smoketaper/internal/repository"
	"smoketaper/internal/schedule"

	"go.uber.org/zap"
)

// Practical target range. Zero and negatives are meaningless; above 60 the
// generated schedule stops being a reduction plan.
const (
	minTarget = 1
	maxTarget = 60
)

// DayService owns day lifecycle: validation, persistence, and reminder
// regeneration. Regeneration replaces the whole reminder set whenever any
// parameter changes, so all completion progress is discarded on update.
type DayService interface {
	CreateDay(ctx context.Context, req CreateDayRequest) (*domain.Day, error)
	UpdateDay(ctx context.Context, dayID string, req UpdateDayRequest) (*domain.Day, error)
	GetDayByDate(ctx context.Context, date string) (*domain.Day, error)
	ListDays(ctx context.Context) ([]*domain.Day, error)
}

type CreateDayRequest struct {
	Date             string `json:"date"`
	WakeTime         string `json:"wakeTime"`
	SleepTime        string `json:"sleepTime"`
	TargetCigarettes int    `json:"targetCigarettes"`
}

// UpdateDayRequest carries a partial update; nil fields keep the day's
// current value.
type UpdateDayRequest struct {
	WakeTime         *string `json:"wakeTime"`
	SleepTime        *string `json:"sleepTime"`
	TargetCigarettes *int    `json:"targetCigarettes"`
}

type dayService struct {
	days   repository.DaysRepository
	logger *zap.Logger
}

func NewDayService(days repository.DaysRepository, logger *zap.Logger) DayService {
	return &dayService{days: days, logger: logger}
}

func (s *dayService) CreateDay(ctx context.Context, req CreateDayRequest) (*domain.Day, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, domain.Validationf("invalid date %q: want YYYY-MM-DD", req.Date)
	}
	wakeMin, sleepMin, err := validateWindow(req.WakeTime, req.SleepTime, req.TargetCigarettes)
	if err != nil {
		return nil, err
	}

	times := schedule.Times(wakeMin, sleepMin, req.TargetCigarettes)
	day, err := s.days.CreateDay(ctx, &domain.Day{
		Date:             req.Date,
		WakeTime:         req.WakeTime,
		SleepTime:        req.SleepTime,
		TargetCigarettes: req.TargetCigarettes,
	}, times)
	if err != nil {
		return nil, err
	}
	s.logger.Info("day created with reminders",
		zap.String("day_id", day.ID),
		zap.String("date", day.Date),
		zap.Int("target_cigarettes", day.TargetCigarettes))
	return day, nil
}

// UpdateDay merges the provided fields over the day's current values,
// re-validates the combination, and performs a full regeneration. Even a
// single-field change discards all completion state; that is the product's
// observed behavior, kept as is.
func (s *dayService) UpdateDay(ctx context.Context, dayID string, req UpdateDayRequest) (*domain.Day, error) {
	current, err := s.days.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}

	wake := current.WakeTime
	if req.WakeTime != nil {
		wake = *req.WakeTime
	}
	sleep := current.SleepTime
	if req.SleepTime != nil {
		sleep = *req.SleepTime
	}
	target := current.TargetCigarettes
	if req.TargetCigarettes != nil {
		target = *req.TargetCigarettes
	}

	wakeMin, sleepMin, err := validateWindow(wake, sleep, target)
	if err != nil {
		return nil, err
	}

	times := schedule.Times(wakeMin, sleepMin, target)
	day, err := s.days.UpdateDay(ctx, dayID, wake, sleep, target, times)
	if err != nil {
		return nil, err
	}
	s.logger.Info("day updated with regenerated reminders",
		zap.String("day_id", day.ID),
		zap.Int("target_cigarettes", day.TargetCigarettes))
	return day, nil
}

func (s *dayService) GetDayByDate(ctx context.Context, date string) (*domain.Day, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.Validationf("invalid date %q: want YYYY-MM-DD", date)
	}
	return s.days.GetDayByDate(ctx, date)
}

func (s *dayService) ListDays(ctx context.Context) ([]*domain.Day, error) {
	return s.days.ListDays(ctx)
}

// validateWindow checks the wake/sleep/target combination and returns the
// window bounds in minutes since midnight. Overnight windows (sleep at or
// before wake) are rejected rather than wrapped.
func validateWindow(wakeTime, sleepTime string, target int) (int, int, error) {
	wakeMin, err := schedule.ParseClock(wakeTime)
	if err != nil {
		return 0, 0, domain.Validationf("invalid wake time: %v", err)
	}
	sleepMin, err := schedule.ParseClock(sleepTime)
	if err != nil {
		return 0, 0, domain.Validationf("invalid sleep time: %v", err)
	}
	if sleepMin <= wakeMin {
		return 0, 0, domain.Validationf("sleep time %s must be after wake time %s", sleepTime, wakeTime)
	}
	if target < minTarget || target > maxTarget {
		return 0, 0, domain.Validationf("target cigarettes must be between %d and %d, got %d", minTarget, maxTarget, target)
	}
	return wakeMin, sleepMin, nil
}
