package activity

import "time"

// Streak and window parameters
const (
	// StreakThreshold is the minimum number of sessions on a day for it
	// to count toward a streak
	StreakThreshold = 3
	// StreakWindowDays bounds how far back the streak scan loads rows
	StreakWindowDays = 90
)

// DayKeyFormat keys the by-day grouping map
const DayKeyFormat = time.DateOnly

// Error messages
const (
	ErrMsgPatientIDRequired  = "patient ID is required"
	ErrMsgInvalidGame        = "unknown game"
	ErrMsgInvalidDuration    = "duration must be positive"
	ErrMsgRecordRowFailed    = "failed to record activity row: %w"
	ErrMsgLoadRowsFailed     = "failed to load activity rows: %w"
	ErrMsgUpdateMetricFailed = "failed to update patient metric"
)

// Log messages
const (
	LogMsgActivityRecorded    = "Activity session recorded"
	LogMsgMetricUpdateError   = "Failed to update engagement metric after session"
	LogMsgStreakUpdateError   = "Failed to store recomputed streak"
	LogMsgSessionPublishError = "Failed to publish session complete event"
)
