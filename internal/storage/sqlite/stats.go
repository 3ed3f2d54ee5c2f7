package sqlite

import (
	"database/sql"

	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/models"
)

const statsTable = "user_stats"

const statsColumns = "id, date, completedHabits, completedTasks, streakDays, updatedAt"

func (s *Store) InsertStats(stats models.DailyStats) error {
	return s.insertRow(statsTable, []colVal{
		{"id", stats.ID},
		{"date", stats.Date},
		{"completedHabits", stats.CompletedHabits},
		{"completedTasks", stats.CompletedTasks},
		{"streakDays", stats.StreakDays},
		{"updatedAt", stats.UpdatedAt},
	})
}

// GetStatsByDate returns the single aggregate record for a calendar date.
// A missing date reports NotFoundError; the caller owns get-or-create.
func (s *Store) GetStatsByDate(date string) (models.DailyStats, error) {
	row := s.db.QueryRow(
		"SELECT "+statsColumns+" FROM user_stats WHERE date = ?", date)

	var st models.DailyStats
	err := row.Scan(&st.ID, &st.Date, &st.CompletedHabits, &st.CompletedTasks, &st.StreakDays, &st.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.DailyStats{}, errors.NewNotFound("stats", date)
		}
		return models.DailyStats{}, err
	}
	return st, nil
}

// ListStatsFrom returns all daily records on or after startDate, date ascending.
func (s *Store) ListStatsFrom(startDate string) ([]models.DailyStats, error) {
	rows, err := s.db.Query(
		"SELECT "+statsColumns+" FROM user_stats WHERE date >= ? ORDER BY date ASC", startDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DailyStats
	for rows.Next() {
		var st models.DailyStats
		err := rows.Scan(&st.ID, &st.Date, &st.CompletedHabits, &st.CompletedTasks, &st.StreakDays, &st.UpdatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, st)
	}

	return records, rows.Err()
}

func (s *Store) UpdateStats(id string, upd models.StatsUpdate, updatedAt string) error {
	var cols []colVal
	if upd.CompletedHabits != nil {
		cols = append(cols, colVal{"completedHabits", *upd.CompletedHabits})
	}
	if upd.CompletedTasks != nil {
		cols = append(cols, colVal{"completedTasks", *upd.CompletedTasks})
	}
	if upd.StreakDays != nil {
		cols = append(cols, colVal{"streakDays", *upd.StreakDays})
	}
	cols = append(cols, colVal{"updatedAt", updatedAt})

	affected, err := s.updateByID(statsTable, id, cols)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFound("stats", id)
	}
	return nil
}
