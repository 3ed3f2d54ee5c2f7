package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/logger"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/storage"
	"github.com/julianstephens/ritmo/internal/utils"
	"github.com/julianstephens/ritmo/internal/validation"
)

// TaskStore caches task records. The filtered fetches are mutually exclusive
// views: each one replaces the whole cached collection.
type TaskStore struct {
	mu      sync.Mutex
	db      storage.Provider
	tasks   []models.Task
	lastErr error
}

func NewTaskStore(db storage.Provider) *TaskStore {
	return &TaskStore{db: db}
}

// Tasks returns a snapshot of the cached collection.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// LastError returns the error recorded by the most recent failed operation,
// or nil if the last operation succeeded.
func (s *TaskStore) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *TaskStore) fail(err error) error {
	s.lastErr = err
	logger.Error("Task store operation failed", "error", err)
	return err
}

// FetchAll replaces the cache with every task row.
func (s *TaskStore) FetchAll() error {
	return s.fetch(models.TaskFilter{})
}

// FetchByDate replaces the cache with the tasks scheduled for the given day.
func (s *TaskStore) FetchByDate(date string) error {
	return s.fetch(models.TaskFilter{Date: date})
}

// FetchByCategory replaces the cache with the tasks in the given category.
func (s *TaskStore) FetchByCategory(category string) error {
	return s.fetch(models.TaskFilter{Category: category})
}

// FetchByPriority replaces the cache with the tasks at the given priority.
func (s *TaskStore) FetchByPriority(priority constants.Priority) error {
	return s.fetch(models.TaskFilter{Priority: priority})
}

func (s *TaskStore) fetch(filter models.TaskFilter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.db.ListTasks(filter)
	if err != nil {
		return s.fail(err)
	}

	s.tasks = tasks
	s.lastErr = nil
	return nil
}

// Add validates the draft, assigns a fresh id and timestamps, persists the
// record (incomplete), and prepends it to the cache.
func (s *TaskStore) Add(draft models.TaskDraft) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.ValidateTaskDraft(draft); err != nil {
		return models.Task{}, s.fail(err)
	}

	now := utils.Now()
	task := models.Task{
		ID:        uuid.New().String(),
		Name:      draft.Name,
		Date:      draft.Date,
		Time:      draft.Time,
		Priority:  draft.Priority,
		Category:  draft.Category,
		Note:      draft.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.InsertTask(task); err != nil {
		return models.Task{}, s.fail(err)
	}

	s.tasks = append([]models.Task{task}, s.tasks...)
	s.lastErr = nil
	return task, nil
}

// Update stamps a new updatedAt, persists the changed columns, and merges the
// change into the cached record. A zero-row update reports NotFoundError.
func (s *TaskStore) Update(id string, upd models.TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, upd)
}

func (s *TaskStore) update(id string, upd models.TaskUpdate) error {
	updatedAt := utils.Now()
	if err := s.db.UpdateTask(id, upd, updatedAt); err != nil {
		return s.fail(err)
	}

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			applyTaskUpdate(&s.tasks[i], upd, updatedAt)
			break
		}
	}
	s.lastErr = nil
	return nil
}

// Delete removes the row and the cached entry.
func (s *TaskStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DeleteTask(id); err != nil {
		return s.fail(err)
	}

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.lastErr = nil
	return nil
}

// ToggleCompletion flips the task's completed flag. No derived counters.
func (s *TaskStore) ToggleCompletion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var task *models.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task = &s.tasks[i]
			break
		}
	}
	if task == nil {
		return s.fail(errors.NewNotFound("task", id))
	}

	completed := !task.Completed
	return s.update(id, models.TaskUpdate{Completed: &completed})
}

func applyTaskUpdate(t *models.Task, upd models.TaskUpdate, updatedAt string) {
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	if upd.Date != nil {
		t.Date = *upd.Date
	}
	if upd.Time != nil {
		t.Time = *upd.Time
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Category != nil {
		t.Category = *upd.Category
	}
	if upd.Note != nil {
		t.Note = *upd.Note
	}
	t.UpdatedAt = updatedAt
}
