package store

import (
	"testing"
	"time"

	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/models"
)

func newTestHabitStore(t *testing.T) *HabitStore {
	t.Helper()
	return NewHabitStore(newTestProvider(t))
}

func addHabit(t *testing.T, s *HabitStore, draft models.HabitDraft) models.Habit {
	t.Helper()
	habit, err := s.Add(draft)
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return habit
}

func targeted(name string, target, current float64) models.HabitDraft {
	return models.HabitDraft{
		Name:      name,
		Target:    &target,
		Current:   &current,
		Unit:      "glasses",
		Frequency: "daily",
	}
}

func TestHabitAdd(t *testing.T) {
	t.Run("adds and persists", func(t *testing.T) {
		s := newTestHabitStore(t)

		habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})
		if habit.ID == "" {
			t.Error("Add() did not assign an id")
		}
		if habit.CreatedAt == "" || habit.UpdatedAt == "" {
			t.Error("Add() did not assign timestamps")
		}

		if err := s.FetchAll(); err != nil {
			t.Fatalf("FetchAll() failed: %v", err)
		}
		habits := s.Habits()
		if len(habits) != 1 {
			t.Fatalf("got %d habits, want 1", len(habits))
		}
		if habits[0].Name != "Read" {
			t.Errorf("got name %q, want %q", habits[0].Name, "Read")
		}
	})

	t.Run("prepends new habits", func(t *testing.T) {
		s := newTestHabitStore(t)

		addHabit(t, s, models.HabitDraft{Name: "First", Frequency: "daily"})
		addHabit(t, s, models.HabitDraft{Name: "Second", Frequency: "daily"})

		habits := s.Habits()
		if habits[0].Name != "Second" {
			t.Errorf("newest habit not first, got %q", habits[0].Name)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		s := newTestHabitStore(t)

		_, err := s.Add(models.HabitDraft{Name: "  ", Frequency: "daily"})
		if !errors.IsValidation(err) {
			t.Errorf("got %v, want validation error", err)
		}
		if s.LastError() == nil {
			t.Error("LastError() not recorded after failed add")
		}
		if len(s.Habits()) != 0 {
			t.Error("failed add mutated the cache")
		}
	})

	t.Run("rejects target without current", func(t *testing.T) {
		s := newTestHabitStore(t)

		target := 8.0
		_, err := s.Add(models.HabitDraft{Name: "Water", Frequency: "daily", Target: &target})
		if !errors.IsValidation(err) {
			t.Errorf("got %v, want validation error", err)
		}
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		s := newTestHabitStore(t)

		_, err := s.Add(models.HabitDraft{Name: "Read", Frequency: "fortnightly"})
		if !errors.IsValidation(err) {
			t.Errorf("got %v, want validation error", err)
		}
	})

	t.Run("clears LastError on success", func(t *testing.T) {
		s := newTestHabitStore(t)

		_, _ = s.Add(models.HabitDraft{Name: ""})
		if s.LastError() == nil {
			t.Fatal("expected recorded error")
		}

		addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})
		if s.LastError() != nil {
			t.Errorf("LastError() = %v after success, want nil", s.LastError())
		}
	})
}

func TestHabitToggleCompletion(t *testing.T) {
	t.Run("toggle on increments streak", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})

		if err := s.ToggleCompletion(habit.ID); err != nil {
			t.Fatalf("ToggleCompletion() failed: %v", err)
		}

		got := s.Habits()[0]
		if !got.CompletedToday {
			t.Error("habit not marked complete")
		}
		if got.Streak != 1 {
			t.Errorf("streak = %d, want 1", got.Streak)
		}
	})

	t.Run("double toggle restores flag and streak", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})

		// Build up prior history first
		streak := 5
		if err := s.Update(habit.ID, models.HabitUpdate{Streak: &streak}); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}

		if err := s.ToggleCompletion(habit.ID); err != nil {
			t.Fatalf("first toggle failed: %v", err)
		}
		if err := s.ToggleCompletion(habit.ID); err != nil {
			t.Fatalf("second toggle failed: %v", err)
		}

		got := s.Habits()[0]
		if got.CompletedToday {
			t.Error("habit still marked complete after double toggle")
		}
		if got.Streak != 5 {
			t.Errorf("streak = %d after double toggle, want 5", got.Streak)
		}
	})

	t.Run("toggle off floors streak at zero", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})

		// Force the record into a completed, zero-streak state
		completed := true
		zero := 0
		if err := s.Update(habit.ID, models.HabitUpdate{CompletedToday: &completed, Streak: &zero}); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}

		if err := s.ToggleCompletion(habit.ID); err != nil {
			t.Fatalf("ToggleCompletion() failed: %v", err)
		}

		got := s.Habits()[0]
		if got.Streak != 0 {
			t.Errorf("streak = %d, want 0", got.Streak)
		}
		if got.CompletedToday {
			t.Error("habit still marked complete")
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		s := newTestHabitStore(t)

		err := s.ToggleCompletion("nope")
		if !errors.IsNotFound(err) {
			t.Errorf("got %v, want not-found error", err)
		}
	})

	t.Run("persists across refetch", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})

		if err := s.ToggleCompletion(habit.ID); err != nil {
			t.Fatalf("ToggleCompletion() failed: %v", err)
		}
		if err := s.FetchAll(); err != nil {
			t.Fatalf("FetchAll() failed: %v", err)
		}

		got := s.Habits()[0]
		if !got.CompletedToday || got.Streak != 1 {
			t.Errorf("persisted state = (%v, %d), want (true, 1)", got.CompletedToday, got.Streak)
		}
	})
}

func TestHabitIncrementProgress(t *testing.T) {
	t.Run("crossing the target completes once", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, targeted("Water", 8, 0))

		if err := s.IncrementProgress(habit.ID, 3); err != nil {
			t.Fatalf("IncrementProgress() failed: %v", err)
		}
		got := s.Habits()[0]
		if *got.Current != 3 || got.CompletedToday || got.Streak != 0 {
			t.Errorf("after +3: current=%g completed=%v streak=%d, want 3 false 0",
				*got.Current, got.CompletedToday, got.Streak)
		}

		if err := s.IncrementProgress(habit.ID, 5); err != nil {
			t.Fatalf("IncrementProgress() failed: %v", err)
		}
		got = s.Habits()[0]
		if *got.Current != 8 || !got.CompletedToday || got.Streak != 1 {
			t.Errorf("after +5: current=%g completed=%v streak=%d, want 8 true 1",
				*got.Current, got.CompletedToday, got.Streak)
		}

		// Further progress past the threshold must not increment again
		if err := s.IncrementProgress(habit.ID, 1); err != nil {
			t.Fatalf("IncrementProgress() failed: %v", err)
		}
		got = s.Habits()[0]
		if *got.Current != 9 || !got.CompletedToday || got.Streak != 1 {
			t.Errorf("after +1: current=%g completed=%v streak=%d, want 9 true 1",
				*got.Current, got.CompletedToday, got.Streak)
		}
	})

	t.Run("rejects habit without target", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})

		err := s.IncrementProgress(habit.ID, 1)
		if !errors.IsValidation(err) {
			t.Errorf("got %v, want validation error", err)
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		s := newTestHabitStore(t)

		err := s.IncrementProgress("nope", 1)
		if !errors.IsNotFound(err) {
			t.Errorf("got %v, want not-found error", err)
		}
	})
}

func TestHabitResetProgress(t *testing.T) {
	s := newTestHabitStore(t)
	habit := addHabit(t, s, targeted("Water", 8, 0))

	if err := s.IncrementProgress(habit.ID, 8); err != nil {
		t.Fatalf("IncrementProgress() failed: %v", err)
	}
	if err := s.ResetProgress(habit.ID); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}

	got := s.Habits()[0]
	if *got.Current != 0 {
		t.Errorf("current = %g, want 0", *got.Current)
	}
	if got.CompletedToday {
		t.Error("habit still marked complete after reset")
	}
	if got.Streak != 1 {
		t.Errorf("streak = %d after reset, want 1 (reset must not touch the streak)", got.Streak)
	}
}

func TestHabitUpdate(t *testing.T) {
	t.Run("partial update preserves other fields", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, targeted("Water", 8, 0))

		name := "Hydrate"
		if err := s.Update(habit.ID, models.HabitUpdate{Name: &name}); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}

		if err := s.FetchAll(); err != nil {
			t.Fatalf("FetchAll() failed: %v", err)
		}
		got := s.Habits()[0]
		if got.Name != "Hydrate" {
			t.Errorf("name = %q, want %q", got.Name, "Hydrate")
		}
		if got.Target == nil || *got.Target != 8 {
			t.Error("partial update clobbered target")
		}
		if got.Unit != "glasses" {
			t.Errorf("partial update clobbered unit, got %q", got.Unit)
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		s := newTestHabitStore(t)

		name := "x"
		err := s.Update("nope", models.HabitUpdate{Name: &name})
		if !errors.IsNotFound(err) {
			t.Errorf("got %v, want not-found error", err)
		}
	})
}

func TestHabitDelete(t *testing.T) {
	t.Run("removes from cache and database", func(t *testing.T) {
		s := newTestHabitStore(t)
		habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})
		addHabit(t, s, models.HabitDraft{Name: "Run", Frequency: "daily"})

		if err := s.Delete(habit.ID); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}

		if len(s.Habits()) != 1 {
			t.Fatalf("cache has %d habits, want 1", len(s.Habits()))
		}

		if err := s.FetchAll(); err != nil {
			t.Fatalf("FetchAll() failed: %v", err)
		}
		if len(s.Habits()) != 1 {
			t.Fatalf("database has %d habits, want 1", len(s.Habits()))
		}
		if s.Habits()[0].Name != "Run" {
			t.Errorf("remaining habit = %q, want %q", s.Habits()[0].Name, "Run")
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		s := newTestHabitStore(t)

		err := s.Delete("nope")
		if !errors.IsNotFound(err) {
			t.Errorf("got %v, want not-found error", err)
		}
	})
}

func TestHabitResetDay(t *testing.T) {
	s := newTestHabitStore(t)
	plain := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})
	water := addHabit(t, s, targeted("Water", 8, 0))

	if err := s.ToggleCompletion(plain.ID); err != nil {
		t.Fatalf("ToggleCompletion() failed: %v", err)
	}
	if err := s.IncrementProgress(water.ID, 8); err != nil {
		t.Fatalf("IncrementProgress() failed: %v", err)
	}

	if err := s.ResetDay(); err != nil {
		t.Fatalf("ResetDay() failed: %v", err)
	}

	for _, h := range s.Habits() {
		if h.CompletedToday {
			t.Errorf("habit %q still marked complete", h.Name)
		}
		if h.Streak != 1 {
			t.Errorf("habit %q streak = %d, want 1 (reset-day must not touch streaks)", h.Name, h.Streak)
		}
		if h.HasTarget() && *h.Current != 0 {
			t.Errorf("habit %q current = %g, want 0", h.Name, *h.Current)
		}
	}
}

func TestHabitStaleCompletions(t *testing.T) {
	s := newTestHabitStore(t)
	provider := s.db

	habit := addHabit(t, s, models.HabitDraft{Name: "Read", Frequency: "daily"})

	// A completion stamped today is not stale
	if err := s.ToggleCompletion(habit.ID); err != nil {
		t.Fatalf("ToggleCompletion() failed: %v", err)
	}
	if stale := s.StaleCompletions(); len(stale) != 0 {
		t.Errorf("got %d stale habits, want 0", len(stale))
	}

	// Backdate the record's updatedAt to yesterday at the storage layer
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)
	if err := provider.UpdateHabit(habit.ID, models.HabitUpdate{}, yesterday); err != nil {
		t.Fatalf("failed to backdate habit: %v", err)
	}
	if err := s.FetchAll(); err != nil {
		t.Fatalf("FetchAll() failed: %v", err)
	}

	stale := s.StaleCompletions()
	if len(stale) != 1 {
		t.Fatalf("got %d stale habits, want 1", len(stale))
	}
	if stale[0].ID != habit.ID {
		t.Errorf("stale habit id = %q, want %q", stale[0].ID, habit.ID)
	}
}
