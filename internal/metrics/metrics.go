package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	GoalsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoalsGenerated,
			Help: HelpTextGoalsGenerated,
		},
	)

	GoalsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoalsExpired,
			Help: HelpTextGoalsExpired,
		},
	)

	SessionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsRecorded,
			Help: HelpTextSessionsRecorded,
		},
		[]string{LabelGame},
	)

	ActivityMinutes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameActivityMinutes,
			Help: HelpTextActivityMinutes,
		},
	)

	BadgesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgesUnlocked,
			Help: HelpTextBadgesUnlocked,
		},
		[]string{LabelTier},
	)

	PatientsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePatientsRegistered,
			Help: HelpTextPatientsRegistered,
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelKind},
	)

	NotificationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationErrors,
			Help: HelpTextNotificationErrors,
		},
		[]string{LabelKind},
	)
)
