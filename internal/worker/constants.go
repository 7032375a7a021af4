package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the goal expiry sweep
const (
	LogMsgGoalSweepStarting  = "Goal expiry sweep starting"
	LogMsgGoalSweepCompleted = "Goal expiry sweep completed"
	LogMsgGoalSweepFailed    = "Goal expiry sweep failed"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
