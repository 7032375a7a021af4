package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/event"
	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/repository"
)

// Service defines the interface for activity operations
type Service interface {
	// RecordActivity stores one played-game session and folds it into the
	// patient's engagement metrics (total count, total minutes, streak)
	RecordActivity(ctx context.Context, patientID string, game domain.Game, startedAt time.Time, durationSec int) error
	// DailySummary aggregates one calendar day in the patient's timezone
	DailySummary(ctx context.Context, patientID string, day time.Time, loc *time.Location) (domain.ActivitySummary, error)
	// MonthlySummary aggregates one calendar month in the patient's timezone
	MonthlySummary(ctx context.Context, patientID string, year int, month time.Month, loc *time.Location) (domain.ActivitySummary, error)
	// Streak returns the current consecutive-day streak as of now in the
	// patient's timezone
	Streak(ctx context.Context, patientID string, loc *time.Location) (int, error)
}

// service implements the Service interface
type service struct {
	activity repository.Activity
	patients repository.Patient
	eventBus event.Bus
	games    []domain.Game
	now      func() time.Time
}

// NewService creates a new activity service
func NewService(activity repository.Activity, patients repository.Patient, eventBus event.Bus) Service {
	return &service{
		activity: activity,
		patients: patients,
		eventBus: eventBus,
		games:    domain.AllGames,
		now:      time.Now,
	}
}

// RecordActivity stores a session row and updates engagement metrics
func (s *service) RecordActivity(ctx context.Context, patientID string, game domain.Game, startedAt time.Time, durationSec int) error {
	log := logger.FromContext(ctx)

	if patientID == "" {
		return errors.New(ErrMsgPatientIDRequired)
	}
	if !validGame(game, s.games) {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgInvalidGame, game)
	}
	if durationSec <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidDuration)
	}
	if startedAt.IsZero() {
		startedAt = s.now()
	}

	row := &domain.ActivityRow{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		Game:        game,
		StartedAt:   startedAt,
		DurationSec: durationSec,
	}
	if err := s.activity.InsertRow(ctx, row); err != nil {
		return fmt.Errorf(ErrMsgRecordRowFailed, err)
	}

	// Metric updates are best-effort: the session row is the source of
	// truth and metrics can be rebuilt from it, so a failed bump logs a
	// warning instead of failing the request.
	if err := s.patients.IncrementMetric(ctx, patientID, domain.MetricPatientTotalActivityCount, 1); err != nil {
		log.Warn(LogMsgMetricUpdateError, "error", err, "metric", domain.MetricPatientTotalActivityCount)
	}
	if err := s.patients.IncrementMetric(ctx, patientID, domain.MetricPatientTotalActivityDuration, float64(durationSec)/60); err != nil {
		log.Warn(LogMsgMetricUpdateError, "error", err, "metric", domain.MetricPatientTotalActivityDuration)
	}
	s.refreshStreakMetric(ctx, patientID, startedAt.Location())

	if err := s.eventBus.Publish(ctx, event.NewSessionCompleteEvent(patientID, game, durationSec)); err != nil {
		log.Warn(LogMsgSessionPublishError, "error", err, "patient_id", patientID)
	}

	log.Info(LogMsgActivityRecorded, "patient_id", patientID, "game", game, "duration_sec", durationSec)
	return nil
}

// DailySummary aggregates a single calendar day
func (s *service) DailySummary(ctx context.Context, patientID string, day time.Time, loc *time.Location) (domain.ActivitySummary, error) {
	if patientID == "" {
		return domain.ActivitySummary{}, errors.New(ErrMsgPatientIDRequired)
	}
	if loc == nil {
		loc = time.UTC
	}

	from := dayStart(day, loc)
	to := from.AddDate(0, 0, 1)
	return s.aggregateWindow(ctx, patientID, from, to, loc)
}

// MonthlySummary aggregates a single calendar month
func (s *service) MonthlySummary(ctx context.Context, patientID string, year int, month time.Month, loc *time.Location) (domain.ActivitySummary, error) {
	if patientID == "" {
		return domain.ActivitySummary{}, errors.New(ErrMsgPatientIDRequired)
	}
	if loc == nil {
		loc = time.UTC
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)
	return s.aggregateWindow(ctx, patientID, from, to, loc)
}

// Streak computes the current consecutive-day streak
func (s *service) Streak(ctx context.Context, patientID string, loc *time.Location) (int, error) {
	if patientID == "" {
		return 0, errors.New(ErrMsgPatientIDRequired)
	}
	if loc == nil {
		loc = time.UTC
	}

	now := s.now().In(loc)
	to := dayStart(now, loc).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -StreakWindowDays)

	summary, err := s.aggregateWindow(ctx, patientID, from, to, loc)
	if err != nil {
		return 0, err
	}

	return ComputeStreak(summary.Days, StreakThreshold, now), nil
}

func (s *service) aggregateWindow(ctx context.Context, patientID string, from, to time.Time, loc *time.Location) (domain.ActivitySummary, error) {
	rows, err := s.activity.RowsInWindow(ctx, patientID, from, to)
	if err != nil {
		return domain.ActivitySummary{}, fmt.Errorf(ErrMsgLoadRowsFailed, err)
	}
	return Aggregate(rows, s.games, loc), nil
}

// refreshStreakMetric recomputes the streak and stores it as a metric so
// eligibility evaluation sees the current value
func (s *service) refreshStreakMetric(ctx context.Context, patientID string, loc *time.Location) {
	log := logger.FromContext(ctx)

	streak, err := s.Streak(ctx, patientID, loc)
	if err != nil {
		log.Warn(LogMsgStreakUpdateError, "error", err, "patient_id", patientID)
		return
	}
	if err := s.patients.SetMetric(ctx, patientID, domain.MetricPatientStreak, float64(streak)); err != nil {
		log.Warn(LogMsgStreakUpdateError, "error", err, "patient_id", patientID)
	}
}

func validGame(game domain.Game, games []domain.Game) bool {
	for _, g := range games {
		if g == game {
			return true
		}
	}
	return false
}
