package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/event"
)

type mockGoalRepository struct {
	recent     *domain.Goal
	recentErr  error
	inserted   [][]domain.Goal
	insertErr  error
	open       []domain.Goal
	deleted    int64
	deleteErr  error
	deleteCuts []time.Time
}

func (m *mockGoalRepository) MostRecentGoal(_ context.Context, _ string) (*domain.Goal, error) {
	return m.recent, m.recentErr
}

func (m *mockGoalRepository) InsertGoals(_ context.Context, _ string, goals []domain.Goal) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, goals)
	return nil
}

func (m *mockGoalRepository) OpenGoals(_ context.Context, _ string, _ time.Time) ([]domain.Goal, error) {
	return m.open, nil
}

func (m *mockGoalRepository) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	m.deleteCuts = append(m.deleteCuts, cutoff)
	return m.deleted, m.deleteErr
}

type mockBadgeService struct {
	eligible    []domain.Badge
	eligibleErr error
}

func (m *mockBadgeService) ActiveCatalog(_ context.Context) ([]domain.Badge, error) {
	return nil, nil
}

func (m *mockBadgeService) EarnedBadges(_ context.Context, _ string) ([]domain.PatientBadge, error) {
	return nil, nil
}

func (m *mockBadgeService) EligibleBadges(_ context.Context, _ string) ([]domain.Badge, error) {
	return m.eligible, m.eligibleErr
}

func (m *mockBadgeService) RecordUnlock(_ context.Context, _, _ string) error { return nil }

func (m *mockBadgeService) InvalidateCatalog() {}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateGoals(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	repo := &mockGoalRepository{}
	badges := &mockBadgeService{
		eligible: []domain.Badge{
			{ID: "b1", Name: "streak starter", Metric: domain.MetricPatientStreak, MinVal: 5, Tier: "bronze"},
			{ID: "b2", Name: "activity ace", Metric: domain.MetricPatientTotalActivityCount, MinVal: 20, Tier: "silver"},
		},
	}

	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.GoalsGenerated, func(_ context.Context, evt event.Event) error {
		published = append(published, evt)
		return nil
	})

	svc := &service{goals: repo, badges: badges, eventBus: bus, now: fixedClock(now)}

	goals, err := svc.GenerateGoals(ctx, "patient-1", time.UTC)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, goals, repo.inserted[0])

	require.Len(t, published, 1)
	payload, err := event.DecodePayload[event.GoalsGeneratedPayloadV1](published[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "patient-1", payload.PatientID)
	assert.Equal(t, 2, payload.GoalCount)
	assert.Equal(t, now.Add(24*time.Hour).Unix(), payload.ExpiresAt)
}

func TestGenerateGoalsRejectsSecondBatchSameDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	repo := &mockGoalRepository{
		recent: &domain.Goal{CreatedAt: time.Date(2026, 3, 10, 0, 10, 0, 0, time.UTC)},
	}
	svc := &service{goals: repo, badges: &mockBadgeService{}, eventBus: event.NewMemoryBus(), now: fixedClock(now)}

	_, err := svc.GenerateGoals(ctx, "patient-1", time.UTC)
	assert.ErrorIs(t, err, domain.ErrGoalsAlreadyGenerated)
	assert.Empty(t, repo.inserted)
}

func TestGenerateGoalsPatientTimezoneGuard(t *testing.T) {
	ctx := context.Background()
	losAngeles, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 2026-03-10 02:00 UTC is still 2026-03-09 18:00 in Los Angeles, so a
	// batch created the previous UTC evening counts as today there.
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	repo := &mockGoalRepository{
		recent: &domain.Goal{CreatedAt: time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)},
	}
	svc := &service{goals: repo, badges: &mockBadgeService{}, eventBus: event.NewMemoryBus(), now: fixedClock(now)}

	_, err = svc.GenerateGoals(ctx, "patient-1", losAngeles)
	assert.ErrorIs(t, err, domain.ErrGoalsAlreadyGenerated)

	// in UTC the same history is a fresh day
	goals, err := svc.GenerateGoals(ctx, "patient-1", time.UTC)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGenerateGoalsNoEligibleBadges(t *testing.T) {
	ctx := context.Background()

	repo := &mockGoalRepository{}
	svc := &service{goals: repo, badges: &mockBadgeService{}, eventBus: event.NewMemoryBus(), now: time.Now}

	goals, err := svc.GenerateGoals(ctx, "patient-1", time.UTC)
	require.NoError(t, err)
	assert.Empty(t, goals)
	assert.Empty(t, repo.inserted)
}

func TestGenerateGoalsPersistenceFailure(t *testing.T) {
	ctx := context.Background()

	repo := &mockGoalRepository{insertErr: errors.New("connection reset")}
	badges := &mockBadgeService{
		eligible: []domain.Badge{
			{ID: "b1", Name: "streak starter", Metric: domain.MetricPatientStreak, MinVal: 5},
		},
	}
	svc := &service{goals: repo, badges: badges, eventBus: event.NewMemoryBus(), now: time.Now}

	goals, err := svc.GenerateGoals(ctx, "patient-1", time.UTC)
	assert.ErrorIs(t, err, domain.ErrGoalPersistence)
	// synthesized batch still comes back for diagnostics
	assert.Len(t, goals, 1)
}

func TestGenerateGoalsRequiresPatientID(t *testing.T) {
	svc := NewService(&mockGoalRepository{}, &mockBadgeService{}, event.NewMemoryBus())
	_, err := svc.GenerateGoals(context.Background(), "", time.UTC)
	assert.Error(t, err)
}

func TestOpenGoals(t *testing.T) {
	repo := &mockGoalRepository{
		open: []domain.Goal{{ID: "g1", PatientID: "patient-1"}},
	}
	svc := NewService(repo, &mockBadgeService{}, event.NewMemoryBus())

	goals, err := svc.OpenGoals(context.Background(), "patient-1")
	require.NoError(t, err)
	assert.Len(t, goals, 1)

	_, err = svc.OpenGoals(context.Background(), "")
	assert.Error(t, err)
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)

	repo := &mockGoalRepository{deleted: 4}
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.GoalsExpired, func(_ context.Context, evt event.Event) error {
		published = append(published, evt)
		return nil
	})

	svc := &service{goals: repo, badges: &mockBadgeService{}, eventBus: bus, now: fixedClock(now)}

	affected, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), affected)
	require.Len(t, repo.deleteCuts, 1)
	assert.Equal(t, now, repo.deleteCuts[0])

	require.Len(t, published, 1)
	payload, err := event.DecodePayload[event.GoalsExpiredPayloadV1](published[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(4), payload.RecordsAffected)
}

func TestSweepExpiredNothingToDelete(t *testing.T) {
	repo := &mockGoalRepository{deleted: 0}
	bus := event.NewMemoryBus()
	var published int
	bus.Subscribe(event.GoalsExpired, func(_ context.Context, _ event.Event) error {
		published++
		return nil
	})

	svc := NewService(repo, &mockBadgeService{}, bus)

	affected, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.Zero(t, published)
}

func TestSweepExpiredRepositoryError(t *testing.T) {
	repo := &mockGoalRepository{deleteErr: errors.New("deadlock detected")}
	svc := NewService(repo, &mockBadgeService{}, event.NewMemoryBus())

	_, err := svc.SweepExpired(context.Background())
	assert.Error(t, err)
}
