package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/ritmo/internal/constants"
)

// Weekdays marks which days of the week a habit applies to.
// It is only meaningful when the habit's frequency is weekly.
type Weekdays struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// Contains reports whether the given weekday is selected.
func (w Weekdays) Contains(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	}
	return false
}

// EncodeWeekdays serializes a weekday selection to its stored textual form.
// A nil selection encodes to the empty string (stored as NULL-equivalent).
func EncodeWeekdays(w *Weekdays) (string, error) {
	if w == nil {
		return "", nil
	}
	data, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("failed to encode weekdays: %w", err)
	}
	return string(data), nil
}

// DecodeWeekdays parses the stored textual form back into a weekday selection.
// The empty string decodes to nil.
func DecodeWeekdays(s string) (*Weekdays, error) {
	if s == "" {
		return nil, nil
	}
	var w Weekdays
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return nil, fmt.Errorf("failed to decode weekdays: %w", err)
	}
	return &w, nil
}

// Habit is a recurring goal tracked with a completion flag and/or numeric
// progress and a streak counter.
type Habit struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Streak         int                 `json:"streak"`
	CompletedToday bool                `json:"completed_today"`
	Target         *float64            `json:"target,omitempty"`
	Current        *float64            `json:"current,omitempty"`
	Unit           string              `json:"unit,omitempty"`
	Frequency      constants.Frequency `json:"frequency"`
	Weekdays       *Weekdays           `json:"weekdays,omitempty"`
	Color          string              `json:"color"`
	CreatedAt      string              `json:"created_at"` // RFC3339 timestamp
	UpdatedAt      string              `json:"updated_at"` // RFC3339 timestamp
}

// HasTarget reports whether the habit tracks numeric progress toward a goal.
func (h Habit) HasTarget() bool {
	return h.Target != nil && h.Current != nil
}

// HabitDraft is the caller-supplied portion of a new habit. The store assigns
// the id and timestamps.
type HabitDraft struct {
	Name      string
	Target    *float64
	Current   *float64
	Unit      string
	Frequency constants.Frequency
	Weekdays  *Weekdays
	Color     string
}

// HabitUpdate is a partial habit mutation. Nil fields are left unchanged.
type HabitUpdate struct {
	Name           *string
	Streak         *int
	CompletedToday *bool
	Target         *float64
	Current        *float64
	Unit           *string
	Frequency      *constants.Frequency
	Weekdays       *Weekdays
	Color          *string
}
