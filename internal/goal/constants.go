package goal

// Error messages
const (
	ErrMsgPatientIDRequired   = "patient ID is required"
	ErrMsgGetRecentGoalFailed = "failed to get most recent goal: %w"
	ErrMsgGetEligibleFailed   = "failed to get eligible badges: %w"
	ErrMsgGetOpenGoalsFailed  = "failed to get open goals: %w"
	ErrMsgSweepFailed         = "failed to sweep expired goals: %w"
)

// Log messages
const (
	LogMsgGoalsGenerated        = "Goals generated"
	LogMsgNoEligibleBadges      = "No eligible badges, no goals generated"
	LogMsgDuplicateGeneration   = "Goal generation rejected, already generated today"
	LogMsgGoalsPersistFailed    = "Failed to persist goal batch"
	LogMsgExpiredGoalsSwept     = "Expired goals swept"
	LogMsgGoalEventPublishError = "Failed to publish goals generated event"
)
