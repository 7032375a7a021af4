package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pointmotion/engage-backend/internal/badge"
	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/event"
	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/metrics"
	"github.com/pointmotion/engage-backend/internal/repository"
)

// Service defines the interface for goal operations
type Service interface {
	// GenerateGoals runs one generation pass for a patient: guard
	// against a second batch on the same local calendar day, evaluate
	// eligibility, synthesize one goal per metric, persist the batch
	// atomically. Callers must serialize invocations per patient; the
	// engine holds no lock (the store enforces single-writer-per-patient).
	GenerateGoals(ctx context.Context, patientID string, loc *time.Location) ([]domain.Goal, error)
	OpenGoals(ctx context.Context, patientID string) ([]domain.Goal, error)
	// SweepExpired deletes goals past their expiry and returns how many
	// were removed. Run periodically by the scheduler.
	SweepExpired(ctx context.Context) (int64, error)
}

// service implements the Service interface
type service struct {
	goals    repository.Goal
	badges   badge.Service
	eventBus event.Bus
	now      func() time.Time
}

// NewService creates a new goal service
func NewService(goals repository.Goal, badges badge.Service, eventBus event.Bus) Service {
	return &service{
		goals:    goals,
		badges:   badges,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// GenerateGoals synthesizes and persists today's goal batch for a patient
func (s *service) GenerateGoals(ctx context.Context, patientID string, loc *time.Location) ([]domain.Goal, error) {
	log := logger.FromContext(ctx)

	if patientID == "" {
		return nil, errors.New(ErrMsgPatientIDRequired)
	}
	if loc == nil {
		loc = time.UTC
	}

	now := s.now().In(loc)

	recent, err := s.goals.MostRecentGoal(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRecentGoalFailed, err)
	}
	if GeneratedToday(recent, now) {
		log.Info(LogMsgDuplicateGeneration, "patient_id", patientID)
		return nil, domain.ErrGoalsAlreadyGenerated
	}

	eligible, err := s.badges.EligibleBadges(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEligibleFailed, err)
	}

	goals, err := Synthesize(eligible, patientID, now)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		log.Info(LogMsgNoEligibleBadges, "patient_id", patientID)
		return goals, nil
	}

	if err := s.goals.InsertGoals(ctx, patientID, goals); err != nil {
		log.Error(LogMsgGoalsPersistFailed, "error", err, "patient_id", patientID, "goals", len(goals))
		// callers must not treat the goals as granted when the write failed
		return goals, fmt.Errorf("%w: %v", domain.ErrGoalPersistence, err)
	}

	metrics.GoalsGenerated.Add(float64(len(goals)))
	if err := s.eventBus.Publish(ctx, event.NewGoalsGeneratedEvent(patientID, goals)); err != nil {
		log.Warn(LogMsgGoalEventPublishError, "error", err, "patient_id", patientID)
	}

	log.Info(LogMsgGoalsGenerated, "patient_id", patientID, "goals", len(goals))
	return goals, nil
}

// OpenGoals returns the patient's non-expired goals
func (s *service) OpenGoals(ctx context.Context, patientID string) ([]domain.Goal, error) {
	if patientID == "" {
		return nil, errors.New(ErrMsgPatientIDRequired)
	}

	goals, err := s.goals.OpenGoals(ctx, patientID, s.now())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetOpenGoalsFailed, err)
	}
	return goals, nil
}

// SweepExpired removes expired goals and publishes a sweep event
func (s *service) SweepExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	affected, err := s.goals.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSweepFailed, err)
	}

	if affected > 0 {
		metrics.GoalsExpired.Add(float64(affected))
		if err := s.eventBus.Publish(ctx, event.NewGoalsExpiredEvent(now, affected)); err != nil {
			log.Warn(LogMsgGoalEventPublishError, "error", err)
		}
	}

	log.Debug(LogMsgExpiredGoalsSwept, "records_affected", affected)
	return affected, nil
}
