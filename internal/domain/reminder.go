package domain

import "time"

// Reminder is one scheduled prompt belonging to a Day (reminders table).
// The whole set for a Day is destroyed and recreated whenever the Day's
// wake/sleep/target changes; individual rows are only mutated to complete.
type Reminder struct {
	ID          string     `json:"id" db:"id"`                   // UUID, PRIMARY KEY
	DayID       string     `json:"dayId" db:"day_id"`            // UUID, NOT NULL, FK to days ON DELETE CASCADE
	Time        string     `json:"time" db:"time"`               // VARCHAR(5), NOT NULL, "HH:MM"
	Completed   bool       `json:"completed" db:"completed"`     // BOOLEAN, NOT NULL, DEFAULT false
	CompletedAt *time.Time `json:"completedAt" db:"completed_at"` // TIMESTAMPTZ, nullable
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`    // TIMESTAMPTZ, NOT NULL, DEFAULT now()
}
