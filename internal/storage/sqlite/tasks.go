package sqlite

import (
	"database/sql"

	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/models"
)

const tasksTable = "tasks"

const taskColumns = "id, name, completed, date, time, priority, category, note, createdAt, updatedAt"

// priorityOrder ranks the priority enum for sorting; high sorts first,
// unset last. Lexicographic DESC on the raw text would misorder the enum.
const priorityOrder = `CASE priority
	WHEN 'high' THEN 3
	WHEN 'medium' THEN 2
	WHEN 'low' THEN 1
	ELSE 0 END DESC`

func (s *Store) InsertTask(task models.Task) error {
	return s.insertRow(tasksTable, []colVal{
		{"id", task.ID},
		{"name", task.Name},
		{"completed", boolToInt(task.Completed)},
		{"date", task.Date},
		{"time", nullable(task.Time)},
		{"priority", nullable(string(task.Priority))},
		{"category", nullable(task.Category)},
		{"note", nullable(task.Note)},
		{"createdAt", task.CreatedAt},
		{"updatedAt", task.UpdatedAt},
	})
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)

	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, errors.NewNotFound("task", id)
		}
		return models.Task{}, err
	}
	return t, nil
}

// ListTasks returns tasks matching the filter, ordered by date then time
// ascending then priority descending. An empty filter returns everything.
func (s *Store) ListTasks(filter models.TaskFilter) ([]models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks"
	var args []any

	switch {
	case filter.Date != "":
		query += " WHERE date = ?"
		args = append(args, filter.Date)
	case filter.Category != "":
		query += " WHERE category = ?"
		args = append(args, filter.Category)
	case filter.Priority != "":
		query += " WHERE priority = ?"
		args = append(args, string(filter.Priority))
	}

	query += " ORDER BY date ASC, time ASC, " + priorityOrder

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *Store) UpdateTask(id string, upd models.TaskUpdate, updatedAt string) error {
	var cols []colVal
	if upd.Name != nil {
		cols = append(cols, colVal{"name", *upd.Name})
	}
	if upd.Completed != nil {
		cols = append(cols, colVal{"completed", boolToInt(*upd.Completed)})
	}
	if upd.Date != nil {
		cols = append(cols, colVal{"date", *upd.Date})
	}
	if upd.Time != nil {
		cols = append(cols, colVal{"time", nullable(*upd.Time)})
	}
	if upd.Priority != nil {
		cols = append(cols, colVal{"priority", nullable(string(*upd.Priority))})
	}
	if upd.Category != nil {
		cols = append(cols, colVal{"category", nullable(*upd.Category)})
	}
	if upd.Note != nil {
		cols = append(cols, colVal{"note", nullable(*upd.Note)})
	}
	cols = append(cols, colVal{"updatedAt", updatedAt})

	affected, err := s.updateByID(tasksTable, id, cols)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFound("task", id)
	}
	return nil
}

func (s *Store) DeleteTask(id string) error {
	affected, err := s.deleteByID(tasksTable, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFound("task", id)
	}
	return nil
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var completed int
	var taskTime, priority, category, note sql.NullString

	err := row.Scan(
		&t.ID, &t.Name, &completed, &t.Date, &taskTime,
		&priority, &category, &note, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	t.Completed = completed != 0
	if taskTime.Valid {
		t.Time = taskTime.String
	}
	if priority.Valid {
		t.Priority = constants.Priority(priority.String)
	}
	if category.Valid {
		t.Category = category.String
	}
	if note.Valid {
		t.Note = note.String
	}

	return t, nil
}
