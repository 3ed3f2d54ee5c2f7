// Package store holds the in-memory caches and the operations that keep them
// synchronized with persisted records, one store per entity type. Each store
// is the sole writer to its table and serializes its own read-modify-write
// sequences with a mutex. Mutations reach the cache only after the database
// write succeeds, so a failed operation leaves prior state intact.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/logger"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/storage"
	"github.com/julianstephens/ritmo/internal/utils"
	"github.com/julianstephens/ritmo/internal/validation"
)

// HabitStore caches habit records and owns the streak bookkeeping.
type HabitStore struct {
	mu      sync.Mutex
	db      storage.Provider
	habits  []models.Habit
	lastErr error
}

func NewHabitStore(db storage.Provider) *HabitStore {
	return &HabitStore{db: db}
}

// Habits returns a snapshot of the cached collection.
func (s *HabitStore) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// LastError returns the error recorded by the most recent failed operation,
// or nil if the last operation succeeded.
func (s *HabitStore) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *HabitStore) fail(err error) error {
	s.lastErr = err
	logger.Error("Habit store operation failed", "error", err)
	return err
}

// FetchAll replaces the cache with all habit rows, most recently updated
// first. On failure the prior cache is left untouched.
func (s *HabitStore) FetchAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.db.ListHabits()
	if err != nil {
		return s.fail(err)
	}

	s.habits = habits
	s.lastErr = nil
	return nil
}

// Add validates the draft, assigns a fresh id and timestamps, persists the
// record, and prepends it to the cache.
func (s *HabitStore) Add(draft models.HabitDraft) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.ValidateHabitDraft(draft); err != nil {
		return models.Habit{}, s.fail(err)
	}

	now := utils.Now()
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      draft.Name,
		Target:    draft.Target,
		Current:   draft.Current,
		Unit:      draft.Unit,
		Frequency: draft.Frequency,
		Weekdays:  draft.Weekdays,
		Color:     draft.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.InsertHabit(habit); err != nil {
		return models.Habit{}, s.fail(err)
	}

	s.habits = append([]models.Habit{habit}, s.habits...)
	s.lastErr = nil
	return habit, nil
}

// Update stamps a new updatedAt, persists the changed columns, and merges the
// change into the cached record. A zero-row update reports NotFoundError.
func (s *HabitStore) Update(id string, upd models.HabitUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, upd)
}

// update is the lock-held body of Update, shared by the derived operations.
func (s *HabitStore) update(id string, upd models.HabitUpdate) error {
	updatedAt := utils.Now()
	if err := s.db.UpdateHabit(id, upd, updatedAt); err != nil {
		return s.fail(err)
	}

	for i := range s.habits {
		if s.habits[i].ID == id {
			applyHabitUpdate(&s.habits[i], upd, updatedAt)
			break
		}
	}
	s.lastErr = nil
	return nil
}

// Delete removes the row and the cached entry.
func (s *HabitStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DeleteHabit(id); err != nil {
		return s.fail(err)
	}

	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			break
		}
	}
	s.lastErr = nil
	return nil
}

// ToggleCompletion flips the completion flag and adjusts the streak: +1 when
// becoming complete, -1 floored at zero when becoming incomplete. Toggling
// twice restores the original flag and streak.
func (s *HabitStore) ToggleCompletion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.cached(id)
	if err != nil {
		return s.fail(err)
	}

	wasCompleted := habit.CompletedToday
	newStreak := habit.Streak + 1
	if wasCompleted {
		newStreak = habit.Streak - 1
	}
	if newStreak < 0 {
		newStreak = 0
	}

	completed := !wasCompleted
	return s.update(id, models.HabitUpdate{
		CompletedToday: &completed,
		Streak:         &newStreak,
	})
}

// IncrementProgress adds amount to the habit's current value. Meeting or
// exceeding the target marks the habit complete; the streak increments only
// on the incomplete-to-complete transition, never on repeat increments past
// the threshold.
func (s *HabitStore) IncrementProgress(id string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.cached(id)
	if err != nil {
		return s.fail(err)
	}
	if !habit.HasTarget() {
		return s.fail(errors.NewValidation("target", "habit has no target/current pair"))
	}

	newCurrent := *habit.Current + amount
	completed := newCurrent >= *habit.Target

	newStreak := habit.Streak
	if completed && !habit.CompletedToday {
		newStreak++
	}

	return s.update(id, models.HabitUpdate{
		Current:        &newCurrent,
		CompletedToday: &completed,
		Streak:         &newStreak,
	})
}

// ResetProgress sets current to zero and the completion flag to false without
// touching the streak; a same-day reset does not erase streak history.
func (s *HabitStore) ResetProgress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.cached(id); err != nil {
		return s.fail(err)
	}

	zero := 0.0
	completed := false
	return s.update(id, models.HabitUpdate{
		Current:        &zero,
		CompletedToday: &completed,
	})
}

// StaleCompletions returns habits still flagged complete whose last mutation
// predates today. There is no automatic midnight rollover; the flag persists
// until the user acts, and this surfaces those records.
func (s *HabitStore) StaleCompletions() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := utils.Today()
	var stale []models.Habit
	for _, h := range s.habits {
		if !h.CompletedToday {
			continue
		}
		t, err := time.Parse(time.RFC3339, h.UpdatedAt)
		if err != nil || utils.DateOf(t.Local()) < today {
			stale = append(stale, h)
		}
	}
	return stale
}

// ResetDay clears the completion flag (and numeric progress, where tracked)
// for every habit, leaving streaks untouched. Invoked explicitly by the user
// at the start of a new day.
func (s *HabitStore) ResetDay() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.habits {
		upd := models.HabitUpdate{}
		completed := false
		upd.CompletedToday = &completed
		if h.HasTarget() {
			zero := 0.0
			upd.Current = &zero
		}
		if err := s.update(h.ID, upd); err != nil {
			return err
		}
	}
	return nil
}

// cached looks up a habit in the in-memory collection.
func (s *HabitStore) cached(id string) (models.Habit, error) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, errors.NewNotFound("habit", id)
}

func applyHabitUpdate(h *models.Habit, upd models.HabitUpdate, updatedAt string) {
	if upd.Name != nil {
		h.Name = *upd.Name
	}
	if upd.Streak != nil {
		h.Streak = *upd.Streak
	}
	if upd.CompletedToday != nil {
		h.CompletedToday = *upd.CompletedToday
	}
	if upd.Target != nil {
		h.Target = upd.Target
	}
	if upd.Current != nil {
		h.Current = upd.Current
	}
	if upd.Unit != nil {
		h.Unit = *upd.Unit
	}
	if upd.Frequency != nil {
		h.Frequency = *upd.Frequency
	}
	if upd.Weekdays != nil {
		h.Weekdays = upd.Weekdays
	}
	if upd.Color != nil {
		h.Color = *upd.Color
	}
	h.UpdatedAt = updatedAt
}
