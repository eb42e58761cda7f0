package domain

import "time"

// Day is the schedule configuration for one calendar date (days table).
// There is at most one row per distinct date (UNIQUE on date).
type Day struct {
	ID               string    `json:"id" db:"id"`                             // UUID, PRIMARY KEY
	Date             string    `json:"date" db:"date"`                         // DATE, NOT NULL, UNIQUE, "YYYY-MM-DD"
	WakeTime         string    `json:"wakeTime" db:"wake_time"`                // VARCHAR(5), NOT NULL, "HH:MM"
	SleepTime        string    `json:"sleepTime" db:"sleep_time"`              // VARCHAR(5), NOT NULL, "HH:MM"
	TargetCigarettes int       `json:"targetCigarettes" db:"target_cigarettes"` // INTEGER, NOT NULL, >= 1
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`              // TIMESTAMPTZ, NOT NULL, DEFAULT now()
}
