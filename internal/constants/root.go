package constants

import "time"

// Frequency represents how often a habit is expected to be performed
type Frequency string

// Priority represents the importance of a task
type Priority string

const (
	AppName           = "ritmo"
	DefaultConfigPath = "~/.config/ritmo/ritmo.db"
	Version           = "v0.2.0"

	// DateFormat is the standard calendar date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Frequency constants
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"

	// Priority constants
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	// Database open retry bounds for transient I/O failures at startup
	DBOpenMaxRetries = 3
	DBOpenRetryDelay = 250 * time.Millisecond

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "ritmo-"
	BackupFileSuffix = ".db"
)

// PriorityRank maps a priority to its sort weight (higher sorts first).
// An unset priority ranks below low.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ValidFrequency reports whether f is one of the known frequency values.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known priority values.
// The empty priority is valid (tasks may omit it).
func ValidPriority(p Priority) bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
