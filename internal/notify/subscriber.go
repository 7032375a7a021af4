package notify

import (
	"context"

	"github.com/pointmotion/engage-backend/internal/event"
	"github.com/pointmotion/engage-backend/internal/logger"
)

// Subscriber bridges engine events to patient notifications
type Subscriber struct {
	notifier Notifier
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(notifier Notifier) *Subscriber {
	return &Subscriber{notifier: notifier}
}

// Subscribe registers the subscriber on the event bus
func (s *Subscriber) Subscribe(bus event.Bus) {
	bus.Subscribe(event.PatientRegistered, s.handlePatientRegistered)
	bus.Subscribe(event.GoalsGenerated, s.handleGoalsGenerated)
	bus.Subscribe(event.BadgeUnlocked, s.handleBadgeUnlocked)
}

// handlePatientRegistered registers the patient with the provider and
// sends the welcome workflow
func (s *Subscriber) handlePatientRegistered(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.PatientRegisteredPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeError, "type", evt.Type, "error", err)
		return nil
	}

	if err := s.notifier.Trigger(ctx, WorkflowWelcome, payload.PatientID, map[string]interface{}{
		"email":    payload.Email,
		"nickname": payload.Nickname,
	}); err != nil {
		log.Error(LogMsgNotificationError, "workflow", WorkflowWelcome, "error", err)
	}
	return nil
}

// handleGoalsGenerated tells the patient their daily goals are ready
func (s *Subscriber) handleGoalsGenerated(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.GoalsGeneratedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeError, "type", evt.Type, "error", err)
		return nil
	}
	if payload.GoalCount == 0 {
		return nil
	}

	if err := s.notifier.Trigger(ctx, WorkflowGoalsReady, payload.PatientID, map[string]interface{}{
		"goal_count": payload.GoalCount,
		"expires_at": payload.ExpiresAt,
	}); err != nil {
		// notification failure never propagates into the generation path
		log.Error(LogMsgNotificationError, "workflow", WorkflowGoalsReady, "error", err)
	}
	return nil
}

// handleBadgeUnlocked congratulates the patient on a new badge
func (s *Subscriber) handleBadgeUnlocked(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.BadgeUnlockedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeError, "type", evt.Type, "error", err)
		return nil
	}

	if err := s.notifier.Trigger(ctx, WorkflowBadgeUnlocked, payload.PatientID, map[string]interface{}{
		"badge_name": payload.Name,
		"tier":       payload.Tier,
	}); err != nil {
		log.Error(LogMsgNotificationError, "workflow", WorkflowBadgeUnlocked, "error", err)
	}
	return nil
}
