package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameGoalsGenerated     = "goals_generated_total"
	MetricNameGoalsExpired       = "goals_expired_total"
	MetricNameSessionsRecorded   = "activity_sessions_recorded_total"
	MetricNameActivityMinutes    = "activity_minutes_recorded_total"
	MetricNameBadgesUnlocked     = "badges_unlocked_total"
	MetricNamePatientsRegistered = "patients_registered_total"
	MetricNameNotificationsSent  = "notifications_sent_total"
	MetricNameNotificationErrors = "notification_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextGoalsGenerated     = "Total number of goals generated"
	HelpTextGoalsExpired       = "Total number of goals removed by the expiry sweep"
	HelpTextSessionsRecorded   = "Total number of activity sessions recorded"
	HelpTextActivityMinutes    = "Total minutes of recorded activity"
	HelpTextBadgesUnlocked     = "Total number of badges unlocked"
	HelpTextPatientsRegistered = "Total number of patients registered"
	HelpTextNotificationsSent  = "Total number of notifications sent"
	HelpTextNotificationErrors = "Total number of notification delivery failures"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelGame   = "game"
	LabelTier   = "tier"
	LabelKind   = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines latency buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnknown = "Event payload has unexpected shape, skipping business metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
