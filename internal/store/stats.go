package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/errors"
	"github.com/julianstephens/ritmo/internal/logger"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/storage"
	"github.com/julianstephens/ritmo/internal/utils"
)

// StatsStore maintains one aggregate record per calendar day with
// get-or-create semantics. Records are never deleted.
type StatsStore struct {
	mu      sync.Mutex
	db      storage.Provider
	today   *models.DailyStats
	lastErr error

	// nowFn supplies the current time; tests substitute a fixed clock.
	nowFn func() time.Time
}

func NewStatsStore(db storage.Provider) *StatsStore {
	return &StatsStore{db: db, nowFn: time.Now}
}

// Today returns the cached record for the current day, or nil if none has
// been fetched yet.
func (s *StatsStore) Today() *models.DailyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.today == nil {
		return nil
	}
	copy := *s.today
	return &copy
}

// LastError returns the error recorded by the most recent failed operation,
// or nil if the last operation succeeded.
func (s *StatsStore) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *StatsStore) fail(err error) error {
	s.lastErr = err
	logger.Error("Stats store operation failed", "error", err)
	return err
}

// FetchToday returns the aggregate record for the current date, creating it
// with zero counters if none exists yet. Calling it twice within the same
// day yields the same record.
func (s *StatsStore) FetchToday() (models.DailyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchToday()
}

func (s *StatsStore) fetchToday() (models.DailyStats, error) {
	today := s.nowFn().Format(constants.DateFormat)

	stats, err := s.db.GetStatsByDate(today)
	if err == nil {
		s.today = &stats
		s.lastErr = nil
		return stats, nil
	}
	if !errors.IsNotFound(err) {
		return models.DailyStats{}, s.fail(err)
	}

	stats = models.DailyStats{
		ID:        uuid.New().String(),
		Date:      today,
		UpdatedAt: s.nowFn().Format(time.RFC3339),
	}
	if err := s.db.InsertStats(stats); err != nil {
		return models.DailyStats{}, s.fail(err)
	}

	s.today = &stats
	s.lastErr = nil
	return stats, nil
}

// FetchWeekly returns the daily records from the start of the current week
// (Sunday) through now, date ascending.
func (s *StatsStore) FetchWeekly() ([]models.DailyStats, error) {
	return s.fetchFrom(utils.StartOfWeek(s.nowFn()))
}

// FetchMonthly returns the daily records from the first day of the current
// month through now, date ascending.
func (s *StatsStore) FetchMonthly() ([]models.DailyStats, error) {
	return s.fetchFrom(utils.StartOfMonth(s.nowFn()))
}

func (s *StatsStore) fetchFrom(startDate string) ([]models.DailyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.db.ListStatsFrom(startDate)
	if err != nil {
		return nil, s.fail(err)
	}
	s.lastErr = nil
	return records, nil
}

// Update merges partial counter changes into today's record, re-stamping
// updatedAt. If no record is cached yet it is fetched or created first.
func (s *StatsStore) Update(upd models.StatsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateToday(upd)
}

func (s *StatsStore) updateToday(upd models.StatsUpdate) error {
	if s.today == nil || s.today.Date != s.nowFn().Format(constants.DateFormat) {
		if _, err := s.fetchToday(); err != nil {
			return err
		}
	}

	updatedAt := s.nowFn().Format(time.RFC3339)
	if err := s.db.UpdateStats(s.today.ID, upd, updatedAt); err != nil {
		return s.fail(err)
	}

	if upd.CompletedHabits != nil {
		s.today.CompletedHabits = *upd.CompletedHabits
	}
	if upd.CompletedTasks != nil {
		s.today.CompletedTasks = *upd.CompletedTasks
	}
	if upd.StreakDays != nil {
		s.today.StreakDays = *upd.StreakDays
	}
	s.today.UpdatedAt = updatedAt
	s.lastErr = nil
	return nil
}

// IncrementCompletedHabits adds one to today's completed-habit counter.
func (s *StatsStore) IncrementCompletedHabits() error {
	return s.increment(func(st models.DailyStats) models.StatsUpdate {
		n := st.CompletedHabits + 1
		return models.StatsUpdate{CompletedHabits: &n}
	})
}

// IncrementCompletedTasks adds one to today's completed-task counter.
func (s *StatsStore) IncrementCompletedTasks() error {
	return s.increment(func(st models.DailyStats) models.StatsUpdate {
		n := st.CompletedTasks + 1
		return models.StatsUpdate{CompletedTasks: &n}
	})
}

// IncrementStreakDays adds one to today's streak-day counter.
func (s *StatsStore) IncrementStreakDays() error {
	return s.increment(func(st models.DailyStats) models.StatsUpdate {
		n := st.StreakDays + 1
		return models.StatsUpdate{StreakDays: &n}
	})
}

func (s *StatsStore) increment(build func(models.DailyStats) models.StatsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.today == nil || s.today.Date != s.nowFn().Format(constants.DateFormat) {
		if _, err := s.fetchToday(); err != nil {
			return err
		}
	}
	return s.updateToday(build(*s.today))
}
