package bootstrap

import "time"

// DirPermission is the standard permission for creating directories
const DirPermission = 0755

// Event system defaults applied when the config leaves them unset
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log and error messages for application wiring
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	LogMsgMetricsCollectorRegistered = "Event metrics collector registered"
	LogMsgNotifierRegistered         = "Notification subscriber registered"
	LogMsgNotifierDisabled           = "Notification provider not configured, notifications disabled"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)
