package handler

import (
	"context"
	"time"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Hand-written service mocks shared by the handler tests

type mockPatientService struct {
	patients map[string]*domain.Patient
	regErr   error
}

func (m *mockPatientService) Register(_ context.Context, p *domain.Patient) error {
	if m.regErr != nil {
		return m.regErr
	}
	p.ID = "patient-1"
	return nil
}

func (m *mockPatientService) Get(_ context.Context, patientID string) (*domain.Patient, error) {
	p, ok := m.patients[patientID]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	return p, nil
}

func (m *mockPatientService) Location(ctx context.Context, patientID string) (*time.Location, error) {
	p, err := m.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC, nil
	}
	return loc, nil
}

func (m *mockPatientService) MetricContext(_ context.Context, _ string) (domain.MetricContext, error) {
	return nil, nil
}

type mockGoalService struct {
	goals       []domain.Goal
	generateErr error
	gotLoc      *time.Location
}

func (m *mockGoalService) GenerateGoals(_ context.Context, _ string, loc *time.Location) ([]domain.Goal, error) {
	m.gotLoc = loc
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return m.goals, nil
}

func (m *mockGoalService) OpenGoals(_ context.Context, _ string) ([]domain.Goal, error) {
	return m.goals, nil
}

func (m *mockGoalService) SweepExpired(_ context.Context) (int64, error) { return 0, nil }

type mockActivityService struct {
	recorded  []domain.ActivityRow
	recordErr error
	summary   domain.ActivitySummary
	streak    int
}

func (m *mockActivityService) RecordActivity(_ context.Context, patientID string, game domain.Game, startedAt time.Time, durationSec int) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.recorded = append(m.recorded, domain.ActivityRow{
		PatientID:   patientID,
		Game:        game,
		StartedAt:   startedAt,
		DurationSec: durationSec,
	})
	return nil
}

func (m *mockActivityService) DailySummary(_ context.Context, _ string, _ time.Time, _ *time.Location) (domain.ActivitySummary, error) {
	return m.summary, nil
}

func (m *mockActivityService) MonthlySummary(_ context.Context, _ string, _ int, _ time.Month, _ *time.Location) (domain.ActivitySummary, error) {
	return m.summary, nil
}

func (m *mockActivityService) Streak(_ context.Context, _ string, _ *time.Location) (int, error) {
	return m.streak, nil
}

type mockBadgeService struct {
	catalog   []domain.Badge
	earned    []domain.PatientBadge
	eligible  []domain.Badge
	unlockErr error
	unlocks   []string
}

func (m *mockBadgeService) ActiveCatalog(_ context.Context) ([]domain.Badge, error) {
	return m.catalog, nil
}

func (m *mockBadgeService) EarnedBadges(_ context.Context, _ string) ([]domain.PatientBadge, error) {
	return m.earned, nil
}

func (m *mockBadgeService) EligibleBadges(_ context.Context, _ string) ([]domain.Badge, error) {
	return m.eligible, nil
}

func (m *mockBadgeService) RecordUnlock(_ context.Context, patientID, badgeID string) error {
	if m.unlockErr != nil {
		return m.unlockErr
	}
	m.unlocks = append(m.unlocks, patientID+":"+badgeID)
	return nil
}

func (m *mockBadgeService) InvalidateCatalog() {}
