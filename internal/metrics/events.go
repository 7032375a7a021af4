package metrics

import (
	"context"

	"github.com/pointmotion/engage-backend/internal/event"
	"github.com/pointmotion/engage-backend/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PatientRegistered,
		event.SessionComplete,
		event.GoalsGenerated,
		event.GoalsExpired,
		event.BadgeUnlocked,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	// Record business metrics based on event type. The generation path
	// already counts goals directly, so only the session and badge
	// payloads are unpacked here.
	switch evt.Type {
	case event.PatientRegistered:
		PatientsRegistered.Inc()

	case event.SessionComplete:
		payload, err := event.DecodePayload[event.SessionCompletePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		SessionsRecorded.WithLabelValues(payload.Game).Inc()
		ActivityMinutes.Add(float64(payload.DurationSec) / 60)

	case event.BadgeUnlocked:
		payload, err := event.DecodePayload[event.BadgeUnlockedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		BadgesUnlocked.WithLabelValues(payload.Tier).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
