package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ritmo/internal/backup"
	"github.com/julianstephens/ritmo/internal/logger"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/storage"
	"github.com/julianstephens/ritmo/internal/store"
)

// Context carries the storage provider and the three entity stores to every
// command. Stores are constructed once at startup and shared; they do not
// call each other — commands compose data read from more than one store.
type Context struct {
	Store  storage.Provider
	Habits *store.HabitStore
	Tasks  *store.TaskStore
	Stats  *store.StatsStore
}

// NewContext builds the store set over a loaded provider.
func NewContext(provider storage.Provider) *Context {
	return &Context{
		Store:  provider,
		Habits: store.NewHabitStore(provider),
		Tasks:  store.NewTaskStore(provider),
		Stats:  store.NewStatsStore(provider),
	}
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseWeekdays parses a comma-separated list of weekday names into a
// weekday selection.
func ParseWeekdays(s string) (*models.Weekdays, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	var w models.Weekdays
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		day, ok := dayMap[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		switch day {
		case time.Monday:
			w.Monday = true
		case time.Tuesday:
			w.Tuesday = true
		case time.Wednesday:
			w.Wednesday = true
		case time.Thursday:
			w.Thursday = true
		case time.Friday:
			w.Friday = true
		case time.Saturday:
			w.Saturday = true
		case time.Sunday:
			w.Sunday = true
		}
	}
	return &w, nil
}

// FormatProgress renders a habit's numeric progress as "current/target unit".
func FormatProgress(h models.Habit) string {
	if !h.HasTarget() {
		return ""
	}
	s := fmt.Sprintf("%g/%g", *h.Current, *h.Target)
	if h.Unit != "" {
		s += " " + h.Unit
	}
	return s
}
