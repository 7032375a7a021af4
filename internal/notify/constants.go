package notify

import "time"

// HTTP client settings
const (
	RequestTimeout = 10 * time.Second
	TriggerPath    = "/v1/events/trigger"
)

// Workflow keys understood by the notification provider
const (
	WorkflowGoalsReady    = "new-goals-available"
	WorkflowBadgeUnlocked = "badge-unlocked"
	WorkflowWelcome       = "patient-welcome"
)

// Error messages
const (
	ErrMsgMarshalPayload = "failed to marshal notification payload"
	ErrMsgCreateRequest  = "failed to create notification request"
	ErrMsgSendRequest    = "failed to send notification request"
	ErrMsgBadStatus      = "notification provider returned status %d"
)

// Log messages
const (
	LogMsgNotificationSent    = "Notification sent"
	LogMsgNotificationError   = "Failed to send notification"
	LogMsgPayloadDecodeError  = "Failed to decode event payload for notification"
	LogMsgNotifierNotEnabled  = "Notifier disabled, no base URL configured"
)
