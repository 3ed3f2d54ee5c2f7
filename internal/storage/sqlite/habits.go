package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/models"
)

const habitsTable = "habits"

const habitColumns = "id, name, streak, completedToday, target, current, unit, frequency, weekdays, color, createdAt, updatedAt"

func (s *Store) InsertHabit(habit models.Habit) error {
	weekdays, err := models.EncodeWeekdays(habit.Weekdays)
	if err != nil {
		return err
	}

	var target, current any
	if habit.Target != nil {
		target = *habit.Target
	}
	if habit.Current != nil {
		current = *habit.Current
	}

	return s.insertRow(habitsTable, []colVal{
		{"id", habit.ID},
		{"name", habit.Name},
		{"streak", habit.Streak},
		{"completedToday", boolToInt(habit.CompletedToday)},
		{"target", target},
		{"current", current},
		{"unit", nullable(habit.Unit)},
		{"frequency", string(habit.Frequency)},
		{"weekdays", nullable(weekdays)},
		{"color", habit.Color},
		{"createdAt", habit.CreatedAt},
		{"updatedAt", habit.UpdatedAt},
	})
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(
		"SELECT "+habitColumns+" FROM habits WHERE id = ?", id)

	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, errors.NewNotFound("habit", id)
		}
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) ListHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(
		"SELECT " + habitColumns + " FROM habits ORDER BY updatedAt DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(id string, upd models.HabitUpdate, updatedAt string) error {
	cols, err := habitUpdateColumns(upd)
	if err != nil {
		return err
	}
	cols = append(cols, colVal{"updatedAt", updatedAt})

	affected, err := s.updateByID(habitsTable, id, cols)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFound("habit", id)
	}
	return nil
}

func (s *Store) DeleteHabit(id string) error {
	affected, err := s.deleteByID(habitsTable, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFound("habit", id)
	}
	return nil
}

// habitUpdateColumns converts a partial habit mutation into an ordered
// column/value list, re-serializing the weekdays blob and boolean flag.
func habitUpdateColumns(upd models.HabitUpdate) ([]colVal, error) {
	var cols []colVal
	if upd.Name != nil {
		cols = append(cols, colVal{"name", *upd.Name})
	}
	if upd.Streak != nil {
		cols = append(cols, colVal{"streak", *upd.Streak})
	}
	if upd.CompletedToday != nil {
		cols = append(cols, colVal{"completedToday", boolToInt(*upd.CompletedToday)})
	}
	if upd.Target != nil {
		cols = append(cols, colVal{"target", *upd.Target})
	}
	if upd.Current != nil {
		cols = append(cols, colVal{"current", *upd.Current})
	}
	if upd.Unit != nil {
		cols = append(cols, colVal{"unit", nullable(*upd.Unit)})
	}
	if upd.Frequency != nil {
		cols = append(cols, colVal{"frequency", string(*upd.Frequency)})
	}
	if upd.Weekdays != nil {
		weekdays, err := models.EncodeWeekdays(upd.Weekdays)
		if err != nil {
			return nil, err
		}
		cols = append(cols, colVal{"weekdays", nullable(weekdays)})
	}
	if upd.Color != nil {
		cols = append(cols, colVal{"color", *upd.Color})
	}
	return cols, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var completedToday int
	var target, current sql.NullFloat64
	var unit, weekdays sql.NullString
	var frequency string

	err := row.Scan(
		&h.ID, &h.Name, &h.Streak, &completedToday, &target, &current,
		&unit, &frequency, &weekdays, &h.Color, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return models.Habit{}, err
	}

	h.CompletedToday = completedToday != 0
	h.Frequency = constants.Frequency(frequency)
	if target.Valid {
		v := target.Float64
		h.Target = &v
	}
	if current.Valid {
		v := current.Float64
		h.Current = &v
	}
	if unit.Valid {
		h.Unit = unit.String
	}
	if weekdays.Valid {
		h.Weekdays, err = models.DecodeWeekdays(weekdays.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
		}
	}

	return h, nil
}
