package models

import "github.com/julianstephens/ritmo/internal/constants"

// Task is a one-off, dated to-do item with optional time, priority, and category.
type Task struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Completed bool               `json:"completed"`
	Date      string             `json:"date"`               // YYYY-MM-DD, the task's scheduled day
	Time      string             `json:"time,omitempty"`     // HH:MM
	Priority  constants.Priority `json:"priority,omitempty"`
	Category  string             `json:"category,omitempty"`
	Note      string             `json:"note,omitempty"`
	CreatedAt string             `json:"created_at"` // RFC3339 timestamp
	UpdatedAt string             `json:"updated_at"` // RFC3339 timestamp
}

// TaskDraft is the caller-supplied portion of a new task. Tasks start
// incomplete; the store assigns the id and timestamps.
type TaskDraft struct {
	Name     string
	Date     string
	Time     string
	Priority constants.Priority
	Category string
	Note     string
}

// TaskUpdate is a partial task mutation. Nil fields are left unchanged.
type TaskUpdate struct {
	Name      *string
	Completed *bool
	Date      *string
	Time      *string
	Priority  *constants.Priority
	Category  *string
	Note      *string
}

// TaskFilter selects which tasks a fetch returns. Zero-valued fields do not
// filter. The fields are mutually exclusive views in the current design, not
// composable predicates.
type TaskFilter struct {
	Date     string
	Category string
	Priority constants.Priority
}
