package storage

import "github.com/julianstephens/ritmo/internal/models"

// Provider is the persistence surface the stores operate against. Each store
// is the sole writer to its tables; the provider itself performs no derived
// arithmetic.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Habits
	InsertHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	ListHabits() ([]models.Habit, error)
	UpdateHabit(id string, upd models.HabitUpdate, updatedAt string) error
	DeleteHabit(id string) error

	// Tasks
	InsertTask(models.Task) error
	GetTask(id string) (models.Task, error)
	ListTasks(filter models.TaskFilter) ([]models.Task, error)
	UpdateTask(id string, upd models.TaskUpdate, updatedAt string) error
	DeleteTask(id string) error

	// Daily stats
	InsertStats(models.DailyStats) error
	GetStatsByDate(date string) (models.DailyStats, error)
	ListStatsFrom(startDate string) ([]models.DailyStats, error)
	UpdateStats(id string, upd models.StatsUpdate, updatedAt string) error
}
