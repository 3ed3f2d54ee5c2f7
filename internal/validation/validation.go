package validation

import (
	"strings"

	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/utils"

	"github.com/julianstephens/ritmo/internal/constants"
)

// ValidateHabitDraft checks a habit draft before the store persists it.
// Returns a ValidationError describing the first problem found.
func ValidateHabitDraft(draft models.HabitDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return errors.NewValidation("name", "must not be empty")
	}
	if !constants.ValidFrequency(draft.Frequency) {
		return errors.NewValidation("frequency", "must be daily, weekly, or custom")
	}
	// target and current come as a pair or not at all
	if (draft.Target == nil) != (draft.Current == nil) {
		return errors.NewValidation("target", "target and current must be set together")
	}
	if draft.Target != nil && *draft.Target <= 0 {
		return errors.NewValidation("target", "must be greater than zero")
	}
	if draft.Current != nil && *draft.Current < 0 {
		return errors.NewValidation("current", "must not be negative")
	}
	return nil
}

// ValidateTaskDraft checks a task draft before the store persists it.
func ValidateTaskDraft(draft models.TaskDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return errors.NewValidation("name", "must not be empty")
	}
	if draft.Date == "" {
		return errors.NewValidation("date", "must not be empty")
	}
	if !utils.ValidateDateFormat(draft.Date) {
		return errors.NewValidation("date", "expected YYYY-MM-DD format")
	}
	if draft.Time != "" && !utils.ValidateTimeFormat(draft.Time) {
		return errors.NewValidation("time", "expected HH:MM format")
	}
	if !constants.ValidPriority(draft.Priority) {
		return errors.NewValidation("priority", "must be low, medium, or high")
	}
	return nil
}
