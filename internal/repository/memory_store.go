package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"smoketaper/internal/domain"

	"github.com/google/uuid"
)

// MemoryStore keeps days and reminders in process memory. It backs the
// service when the DB is disabled (dev posture) and the unit tests. It
// implements both DaysRepository and RemindersRepository so the day/reminder
// cascade stays in one place; all mutations run under the same mutex, which
// makes each regeneration externally atomic.
type MemoryStore struct {
	mu        sync.RWMutex
	days      map[string]*domain.Day        // day id -> day
	dayByDate map[string]string             // date -> day id
	reminders map[string][]*domain.Reminder // day id -> reminders sorted by time
	byID      map[string]*domain.Reminder   // reminder id -> reminder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		days:      map[string]*domain.Day{},
		dayByDate: map[string]string{},
		reminders: map[string][]*domain.Reminder{},
		byID:      map[string]*domain.Reminder{},
	}
}

func (s *MemoryStore) CreateDay(_ context.Context, day *domain.Day, times []string) (*domain.Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dayByDate[day.Date]; ok {
		return nil, domain.Validationf("day already exists for date %s", day.Date)
	}

	d := &domain.Day{
		ID:               uuid.NewString(),
		Date:             day.Date,
		WakeTime:         day.WakeTime,
		SleepTime:        day.SleepTime,
		TargetCigarettes: day.TargetCigarettes,
		CreatedAt:        time.Now().UTC(),
	}
	s.days[d.ID] = d
	s.dayByDate[d.Date] = d.ID
	s.setReminders(d.ID, times)
	return cloneDay(d), nil
}

func (s *MemoryStore) UpdateDay(_ context.Context, dayID string, wakeTime, sleepTime string, target int, times []string) (*domain.Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.days[dayID]
	if !ok {
		return nil, domain.NotFound("day", dayID)
	}
	d.WakeTime = wakeTime
	d.SleepTime = sleepTime
	d.TargetCigarettes = target
	s.setReminders(dayID, times)
	return cloneDay(d), nil
}

func (s *MemoryStore) GetDay(_ context.Context, dayID string) (*domain.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.days[dayID]
	if !ok {
		return nil, domain.NotFound("day", dayID)
	}
	return cloneDay(d), nil
}

func (s *MemoryStore) GetDayByDate(_ context.Context, date string) (*domain.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.dayByDate[date]
	if !ok {
		return nil, domain.NotFound("day", date)
	}
	return cloneDay(s.days[id]), nil
}

func (s *MemoryStore) ListDays(_ context.Context) ([]*domain.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Day, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, cloneDay(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *MemoryStore) ListByDay(_ context.Context, dayID string) ([]*domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rems := s.reminders[dayID]
	out := make([]*domain.Reminder, 0, len(rems))
	for _, r := range rems {
		out = append(out, cloneReminder(r))
	}
	return out, nil
}

func (s *MemoryStore) Complete(_ context.Context, reminderID string, at time.Time) (*domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[reminderID]
	if !ok {
		return nil, domain.NotFound("reminder", reminderID)
	}
	r.Completed = true
	stamped := at
	r.CompletedAt = &stamped
	return cloneReminder(r), nil
}

func (s *MemoryStore) Delete(_ context.Context, reminderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[reminderID]
	if !ok {
		return domain.NotFound("reminder", reminderID)
	}
	delete(s.byID, reminderID)
	rems := s.reminders[r.DayID]
	for i, cur := range rems {
		if cur.ID == reminderID {
			s.reminders[r.DayID] = append(rems[:i], rems[i+1:]...)
			break
		}
	}
	return nil
}

// setReminders replaces the whole reminder set for a day. Caller holds the
// write lock.
func (s *MemoryStore) setReminders(dayID string, times []string) {
	for _, old := range s.reminders[dayID] {
		delete(s.byID, old.ID)
	}
	now := time.Now().UTC()
	rems := make([]*domain.Reminder, 0, len(times))
	for _, t := range times {
		r := &domain.Reminder{
			ID:        uuid.NewString(),
			DayID:     dayID,
			Time:      t,
			CreatedAt: now,
		}
		rems = append(rems, r)
		s.byID[r.ID] = r
	}
	sort.SliceStable(rems, func(i, j int) bool { return rems[i].Time < rems[j].Time })
	s.reminders[dayID] = rems
}

func cloneDay(d *domain.Day) *domain.Day {
	c := *d
	return &c
}

func cloneReminder(r *domain.Reminder) *domain.Reminder {
	c := *r
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
