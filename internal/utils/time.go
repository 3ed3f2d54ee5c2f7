package utils

import (
	"time"

	"github.com/julianstephens/ritmo/internal/constants"
)

// Today returns the current calendar date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// Now returns the current timestamp in the stored RFC3339 form.
func Now() string {
	return time.Now().Format(time.RFC3339)
}

// DateOf returns the calendar date string for the given time.
func DateOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// StartOfWeek returns the date string of the Sunday starting the week
// containing t.
func StartOfWeek(t time.Time) string {
	start := t.AddDate(0, 0, -int(t.Weekday()))
	return start.Format(constants.DateFormat)
}

// StartOfMonth returns the date string of the first day of the month
// containing t.
func StartOfMonth(t time.Time) string {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start.Format(constants.DateFormat)
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// SameDay reports whether two RFC3339 timestamps fall on the same local
// calendar date. Unparseable inputs never compare equal.
func SameDay(ts1, ts2 string) bool {
	t1, err := time.Parse(time.RFC3339, ts1)
	if err != nil {
		return false
	}
	t2, err := time.Parse(time.RFC3339, ts2)
	if err != nil {
		return false
	}
	y1, m1, d1 := t1.Local().Date()
	y2, m2, d2 := t2.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
