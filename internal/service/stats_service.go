package service

import (
	"context"
	"time"

	"smoketaper/internal/domain"
	"smoketaper/internal/repository"

	"go.uber.org/zap"
)

// DayStats is one date's completed-vs-target aggregation. Dates with no Day
// row report zeros with HasData false, so a window is always dense.
type DayStats struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Target    int    `json:"target"`
	HasData   bool   `json:"hasData"`
}

// WindowStats aggregates a rolling window of recent calendar dates.
type WindowStats struct {
	Days           []DayStats `json:"days"`
	TotalCompleted int        `json:"totalCompleted"`
	TotalSaved     int        `json:"totalSaved"`
	BestDay        *DayStats  `json:"bestDay"`
}

// StatsService reduces core outputs (days + reminders) into per-date
// completion statistics. It performs no writes.
type StatsService interface {
	// Window aggregates windowDays dates ending at end (inclusive),
	// oldest first.
	Window(ctx context.Context, end time.Time, windowDays int) (*WindowStats, error)

	// ExportXLSX renders the same window as an XLSX workbook.
	ExportXLSX(ctx context.Context, end time.Time, windowDays int) ([]byte, error)
}

type statsService struct {
	days      repository.DaysRepository
	reminders repository.RemindersRepository
	logger    *zap.Logger
}

func NewStatsService(days repository.DaysRepository, reminders repository.RemindersRepository, logger *zap.Logger) StatsService {
	return &statsService{days: days, reminders: reminders, logger: logger}
}

func (s *statsService) Window(ctx context.Context, end time.Time, windowDays int) (*WindowStats, error) {
	if windowDays < 1 {
		windowDays = 1
	}

	out := &WindowStats{Days: make([]DayStats, 0, windowDays)}
	for i := windowDays - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format("2006-01-02")
		stat := DayStats{Date: date}

		day, err := s.days.GetDayByDate(ctx, date)
		if err == nil {
			completed, cErr := s.completedCount(ctx, day.ID)
			if cErr != nil {
				return nil, cErr
			}
			stat.Completed = completed
			stat.Target = day.TargetCigarettes
			stat.HasData = true

			out.TotalCompleted += completed
			if saved := day.TargetCigarettes - completed; saved > 0 {
				out.TotalSaved += saved
			}
			if out.BestDay == nil || stat.Completed < out.BestDay.Completed {
				best := stat
				out.BestDay = &best
			}
		} else if !domain.IsNotFound(err) {
			return nil, err
		}

		out.Days = append(out.Days, stat)
	}

	s.logger.Debug("stats window aggregated",
		zap.String("end", end.Format("2006-01-02")),
		zap.Int("window_days", windowDays),
		zap.Int("total_completed", out.TotalCompleted))
	return out, nil
}

func (s *statsService) completedCount(ctx context.Context, dayID string) (int, error) {
	rems, err := s.reminders.ListByDay(ctx, dayID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range rems {
		if r.Completed {
			n++
		}
	}
	return n, nil
}
