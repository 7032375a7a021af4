package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Patient Operations
const (
	ErrMsgFailedToInsertPatient  = "failed to insert patient"
	ErrMsgFailedToGetPatient     = "failed to get patient"
	ErrMsgFailedToGetMetrics     = "failed to get patient metrics"
	ErrMsgFailedToScanMetric     = "failed to scan patient metric"
	ErrMsgFailedToSetMetric      = "failed to set patient metric"
	ErrMsgFailedToBumpMetric     = "failed to increment patient metric"
	ErrMsgPatientAlreadyExists   = "patient already exists"
)

// Error Messages - Badge Operations
const (
	ErrMsgFailedToGetBadges       = "failed to get active badges"
	ErrMsgFailedToScanBadge       = "failed to scan badge"
	ErrMsgFailedToGetEarned       = "failed to get earned badges"
	ErrMsgFailedToScanEarned      = "failed to scan earned badge"
	ErrMsgFailedToRecordUnlock    = "failed to record badge unlock"
)

// Error Messages - Goal Operations
const (
	ErrMsgFailedToGetRecentGoal   = "failed to get most recent goal"
	ErrMsgFailedToInsertGoal      = "failed to insert goal"
	ErrMsgFailedToGetOpenGoals    = "failed to get open goals"
	ErrMsgFailedToScanGoal        = "failed to scan goal"
	ErrMsgFailedToDeleteExpired   = "failed to delete expired goals"
	ErrMsgFailedToMarshalRewards  = "failed to marshal goal rewards"
	ErrMsgFailedToDecodeRewards   = "failed to decode goal rewards"
)

// Error Messages - Activity Operations
const (
	ErrMsgFailedToInsertActivity = "failed to insert activity row"
	ErrMsgFailedToGetActivity    = "failed to get activity rows"
	ErrMsgFailedToScanActivity   = "failed to scan activity row"
)
