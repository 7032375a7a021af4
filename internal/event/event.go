package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Common event types
const (
	PatientRegistered Type = "patient.registered"
	SessionComplete   Type = "session.complete"
	GoalsGenerated    Type = "goal.generated"
	GoalsExpired      Type = "goal.expired"
	BadgeUnlocked     Type = "badge.unlocked"
)

// Typed event payloads for type safety

// PatientRegisteredPayloadV1 is the typed payload for patient registration events
type PatientRegisteredPayloadV1 struct {
	PatientID string `json:"patient_id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	Timestamp int64  `json:"timestamp"`
}

// SessionCompletePayloadV1 is the typed payload for completed activity sessions
type SessionCompletePayloadV1 struct {
	PatientID   string `json:"patient_id"`
	Game        string `json:"game"`
	DurationSec int    `json:"duration_sec"`
	Timestamp   int64  `json:"timestamp"`
}

// GoalsGeneratedPayloadV1 is the typed payload for goal generation events
type GoalsGeneratedPayloadV1 struct {
	PatientID string   `json:"patient_id"`
	GoalCount int      `json:"goal_count"`
	Metrics   []string `json:"metrics"`
	ExpiresAt int64    `json:"expires_at"`
}

// GoalsExpiredPayloadV1 is the typed payload for the goal expiry sweep
type GoalsExpiredPayloadV1 struct {
	RecordsAffected int64     `json:"records_affected"`
	SweptAt         time.Time `json:"swept_at"`
}

// BadgeUnlockedPayloadV1 is the typed payload for badge unlock events
type BadgeUnlockedPayloadV1 struct {
	PatientID string `json:"patient_id"`
	BadgeID   string `json:"badge_id"`
	Name      string `json:"name"`
	Tier      string `json:"tier"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewPatientRegisteredEvent creates a new patient registration event
func NewPatientRegisteredEvent(patient domain.Patient) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PatientRegistered,
		Payload: PatientRegisteredPayloadV1{
			PatientID: patient.ID,
			Email:     patient.Email,
			Nickname:  patient.Nickname,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSessionCompleteEvent creates a new session complete event
func NewSessionCompleteEvent(patientID string, game domain.Game, durationSec int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionComplete,
		Payload: SessionCompletePayloadV1{
			PatientID:   patientID,
			Game:        string(game),
			DurationSec: durationSec,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewGoalsGeneratedEvent creates a new goals generated event
func NewGoalsGeneratedEvent(patientID string, goals []domain.Goal) Event {
	metrics := make([]string, 0, len(goals))
	var expiresAt int64
	for _, g := range goals {
		metrics = append(metrics, string(g.Metric()))
		expiresAt = g.ExpiresAt.Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    GoalsGenerated,
		Payload: GoalsGeneratedPayloadV1{
			PatientID: patientID,
			GoalCount: len(goals),
			Metrics:   metrics,
			ExpiresAt: expiresAt,
		},
		Metadata: nil,
	}
}

// NewGoalsExpiredEvent creates a new goal expiry sweep event
func NewGoalsExpiredEvent(sweptAt time.Time, recordsAffected int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GoalsExpired,
		Payload: GoalsExpiredPayloadV1{
			RecordsAffected: recordsAffected,
			SweptAt:         sweptAt,
		},
		Metadata: nil,
	}
}

// NewBadgeUnlockedEvent creates a new badge unlock event
func NewBadgeUnlockedEvent(patientID string, badge domain.Badge) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeUnlocked,
		Payload: BadgeUnlockedPayloadV1{
			PatientID: patientID,
			BadgeID:   badge.ID,
			Name:      badge.Name,
			Tier:      badge.Tier,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously; a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
