package repository

import (
	"context"
	"database/sql"
	"errors"

	"smoketaper/internal/domain"

	"github.com/lib/pq"
)

type PostgresDaysRepo struct {
	db *sql.DB
}

func NewPostgresDaysRepo(db *sql.DB) *PostgresDaysRepo {
	return &PostgresDaysRepo{db: db}
}

const uniqueViolation = "23505"

// CreateDay inserts the day row plus its generated reminders in one
// transaction, so a failed reminder insert never leaves an orphaned Day.
func (r *PostgresDaysRepo) CreateDay(ctx context.Context, day *domain.Day, times []string) (*domain.Day, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.Persistence("create day: begin", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := &domain.Day{
		Date:             day.Date,
		WakeTime:         day.WakeTime,
		SleepTime:        day.SleepTime,
		TargetCigarettes: day.TargetCigarettes,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO days (date, wake_time, sleep_time, target_cigarettes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id::text, created_at`,
		day.Date, day.WakeTime, day.SleepTime, day.TargetCigarettes,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.Validationf("day already exists for date %s", day.Date)
		}
		return nil, domain.Persistence("create day: insert", err)
	}

	if err := insertReminders(ctx, tx, out.ID, times); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, domain.Persistence("create day: commit", err)
	}
	return out, nil
}

// UpdateDay persists the merged parameters, then regenerates: delete all
// reminders for the day and insert the new set: one transaction, so a reader
// never observes a Day with a partial reminder set.
func (r *PostgresDaysRepo) UpdateDay(ctx context.Context, dayID string, wakeTime, sleepTime string, target int, times []string) (*domain.Day, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.Persistence("update day: begin", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := &domain.Day{
		WakeTime:         wakeTime,
		SleepTime:        sleepTime,
		TargetCigarettes: target,
	}
	err = tx.QueryRowContext(ctx,
		`UPDATE days
		 SET wake_time = $2, sleep_time = $3, target_cigarettes = $4
		 WHERE id = $1
		 RETURNING id::text, date::text, created_at`,
		dayID, wakeTime, sleepTime, target,
	).Scan(&out.ID, &out.Date, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("day", dayID)
		}
		return nil, domain.Persistence("update day: update", err)
	}
	out.Date = normalizeDate(out.Date)

	if _, err := tx.ExecContext(ctx, `DELETE FROM reminders WHERE day_id = $1`, dayID); err != nil {
		return nil, domain.Persistence("update day: delete reminders", err)
	}
	if err := insertReminders(ctx, tx, dayID, times); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, domain.Persistence("update day: commit", err)
	}
	return out, nil
}

func (r *PostgresDaysRepo) GetDay(ctx context.Context, dayID string) (*domain.Day, error) {
	return r.getDayWhere(ctx, `id = $1`, dayID, "day", dayID)
}

func (r *PostgresDaysRepo) GetDayByDate(ctx context.Context, date string) (*domain.Day, error) {
	return r.getDayWhere(ctx, `date = $1`, date, "day", date)
}

func (r *PostgresDaysRepo) getDayWhere(ctx context.Context, where string, arg any, kind, ref string) (*domain.Day, error) {
	var d domain.Day
	err := r.db.QueryRowContext(ctx,
		`SELECT id::text, date::text, wake_time, sleep_time, target_cigarettes, created_at
		 FROM days
		 WHERE `+where,
		arg,
	).Scan(&d.ID, &d.Date, &d.WakeTime, &d.SleepTime, &d.TargetCigarettes, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(kind, ref)
		}
		return nil, domain.Persistence("get day", err)
	}
	d.Date = normalizeDate(d.Date)
	return &d, nil
}

func (r *PostgresDaysRepo) ListDays(ctx context.Context) ([]*domain.Day, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, date::text, wake_time, sleep_time, target_cigarettes, created_at
		 FROM days
		 ORDER BY date`,
	)
	if err != nil {
		return nil, domain.Persistence("list days", err)
	}
	defer rows.Close()

	out := []*domain.Day{}
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.ID, &d.Date, &d.WakeTime, &d.SleepTime, &d.TargetCigarettes, &d.CreatedAt); err != nil {
			return nil, domain.Persistence("list days: scan", err)
		}
		d.Date = normalizeDate(d.Date)
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list days: rows", err)
	}
	return out, nil
}

func insertReminders(ctx context.Context, tx *sql.Tx, dayID string, times []string) error {
	for _, t := range times {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reminders (day_id, time) VALUES ($1, $2)`,
			dayID, t,
		); err != nil {
			return domain.Persistence("insert reminders", err)
		}
	}
	return nil
}

// normalizeDate strips the time component Postgres appends when a DATE
// column is cast to text through some drivers ("2024-01-01T00:00:00Z").
func normalizeDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
