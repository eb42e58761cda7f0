// Package schedule computes evenly spaced reminder times for a waking
// window. It is pure arithmetic: no I/O, no clock reads, deterministic for
// identical inputs. Callers validate inputs (positive target, wake < sleep)
// before calling in.
package schedule

import (
	"fmt"
	"math"
)

// Times returns target clock times distributed over [wake, sleep), both in
// minutes since midnight. The window is cut into target equal slots and each
// reminder sits at its slot's midpoint, so the first and last reminders are
// pulled inward from the literal wake/sleep edges. Times are rounded to the
// nearest whole minute and formatted as zero-padded "HH:MM".
//
// A target of 0 yields an empty slice. Ties between adjacent entries are
// possible when target is large relative to a short window; they are kept.
func Times(wakeMinutes, sleepMinutes, target int) []string {
	out := make([]string, 0, target)
	if target <= 0 {
		return out
	}
	slot := float64(sleepMinutes-wakeMinutes) / float64(target)
	for i := 0; i < target; i++ {
		center := float64(wakeMinutes) + slot*float64(i) + slot/2
		out = append(out, FormatClock(int(math.Round(center))))
	}
	return out
}

// ParseClock parses a strict zero-padded "HH:MM" clock time into minutes
// since midnight (0-1439).
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
