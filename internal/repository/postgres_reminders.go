package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smoketaper/internal/domain"
)

type PostgresRemindersRepo struct {
	db *sql.DB
}

func NewPostgresRemindersRepo(db *sql.DB) *PostgresRemindersRepo {
	return &PostgresRemindersRepo{db: db}
}

func (r *PostgresRemindersRepo) ListByDay(ctx context.Context, dayID string) ([]*domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, day_id::text, time, completed, completed_at, created_at
		 FROM reminders
		 WHERE day_id = $1
		 ORDER BY time, created_at`,
		dayID,
	)
	if err != nil {
		return nil, domain.Persistence("list reminders", err)
	}
	defer rows.Close()

	out := []*domain.Reminder{}
	for rows.Next() {
		var rem domain.Reminder
		var completedAt sql.NullTime
		if err := rows.Scan(&rem.ID, &rem.DayID, &rem.Time, &rem.Completed, &completedAt, &rem.CreatedAt); err != nil {
			return nil, domain.Persistence("list reminders: scan", err)
		}
		if completedAt.Valid {
			t := completedAt.Time
			rem.CompletedAt = &t
		}
		out = append(out, &rem)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list reminders: rows", err)
	}
	return out, nil
}

// Complete is an unconditional update: completing an already completed
// reminder simply re-stamps completed_at.
func (r *PostgresRemindersRepo) Complete(ctx context.Context, reminderID string, at time.Time) (*domain.Reminder, error) {
	var rem domain.Reminder
	var completedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`UPDATE reminders
		 SET completed = true, completed_at = $2
		 WHERE id = $1
		 RETURNING id::text, day_id::text, time, completed, completed_at, created_at`,
		reminderID, at,
	).Scan(&rem.ID, &rem.DayID, &rem.Time, &rem.Completed, &completedAt, &rem.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("reminder", reminderID)
		}
		return nil, domain.Persistence("complete reminder", err)
	}
	if completedAt.Valid {
		t := completedAt.Time
		rem.CompletedAt = &t
	}
	return &rem, nil
}

func (r *PostgresRemindersRepo) Delete(ctx context.Context, reminderID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, reminderID)
	if err != nil {
		return domain.Persistence("delete reminder", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Persistence("delete reminder: rows affected", err)
	}
	if n == 0 {
		return domain.NotFound("reminder", reminderID)
	}
	return nil
}
