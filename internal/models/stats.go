package models

// DailyStats is the single aggregate record for one calendar date.
type DailyStats struct {
	ID              string `json:"id"`
	Date            string `json:"date"` // YYYY-MM-DD, unique per record
	CompletedHabits int    `json:"completed_habits"`
	CompletedTasks  int    `json:"completed_tasks"`
	StreakDays      int    `json:"streak_days"`
	UpdatedAt       string `json:"updated_at"` // RFC3339 timestamp
}

// StatsUpdate is a partial counter mutation. Nil fields are left unchanged.
type StatsUpdate struct {
	CompletedHabits *int
	CompletedTasks  *int
	StreakDays      *int
}

// SumStats totals the counters across a range of daily records.
func SumStats(records []DailyStats) (habits, tasks int) {
	for _, r := range records {
		habits += r.CompletedHabits
		tasks += r.CompletedTasks
	}
	return habits, tasks
}
