package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pointmotion/engage-backend/internal/database"
	"github.com/pointmotion/engage-backend/internal/domain"
)

// setupTestDB starts a throwaway Postgres container and applies migrations
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *pgcontainer.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = pgcontainer.Run(ctx,
			"postgres:15-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()
	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		t.SkipNow()
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(ctx, t, pool, "../../../migrations"))
	return pool
}

func createTestPatient(t *testing.T, pool *pgxpool.Pool) *domain.Patient {
	t.Helper()

	patient := &domain.Patient{
		Email:    uuid.NewString() + "@example.com",
		Nickname: "testpatient",
		Timezone: "UTC",
	}
	require.NoError(t, NewPatientRepository(pool).Create(context.Background(), patient))
	require.NotEmpty(t, patient.ID)
	return patient
}

func seedBadge(t *testing.T, pool *pgxpool.Pool, name string, metric domain.Metric, minVal float64, badgeType domain.BadgeType) string {
	t.Helper()

	var badgeID string
	err := pool.QueryRow(context.Background(), `
		INSERT INTO badges (name, metric, min_val, tier, badge_type, status)
		VALUES ($1, $2, $3, 'bronze', $4, 'active')
		RETURNING badge_id
	`, name, string(metric), minVal, string(badgeType)).Scan(&badgeID)
	require.NoError(t, err)
	return badgeID
}

func TestPatientRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewPatientRepository(pool)

	patient := createTestPatient(t, pool)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, patient.ID)
		require.NoError(t, err)
		assert.Equal(t, patient.Email, got.Email)
		assert.Equal(t, "UTC", got.Timezone)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrPatientNotFound)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &domain.Patient{Email: patient.Email, Nickname: "other", Timezone: "UTC"}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("metrics roundtrip", func(t *testing.T) {
		require.NoError(t, repo.SetMetric(ctx, patient.ID, domain.MetricPatientStreak, 4))
		require.NoError(t, repo.IncrementMetric(ctx, patient.ID, domain.MetricPatientTotalActivityCount, 1))
		require.NoError(t, repo.IncrementMetric(ctx, patient.ID, domain.MetricPatientTotalActivityCount, 2))

		metrics, err := repo.MetricContext(ctx, patient.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.0, metrics[domain.MetricPatientStreak])
		assert.Equal(t, 3.0, metrics[domain.MetricPatientTotalActivityCount])
	})
}

func TestBadgeRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewBadgeRepository(pool)

	patient := createTestPatient(t, pool)

	// Start from an empty catalog; migrations seed a starter set
	_, err := pool.Exec(ctx, "TRUNCATE patient_badges, badges CASCADE")
	require.NoError(t, err)

	b1 := seedBadge(t, pool, "streak starter", domain.MetricPatientStreak, 3, domain.BadgeTypeSingleUnlock)
	b2 := seedBadge(t, pool, "daily grinder", domain.MetricPatientTotalActivityCount, 10, domain.BadgeTypeRepeatable)

	t.Run("ActiveBadges", func(t *testing.T) {
		badges, err := repo.ActiveBadges(ctx)
		require.NoError(t, err)
		require.Len(t, badges, 2)

		byID := make(map[string]domain.Badge, len(badges))
		for _, b := range badges {
			byID[b.ID] = b
		}
		assert.Equal(t, domain.MetricPatientStreak, byID[b1].Metric)
		assert.Equal(t, domain.BadgeTypeRepeatable, byID[b2].BadgeType)
	})

	t.Run("RecordUnlock and repeat", func(t *testing.T) {
		require.NoError(t, repo.RecordUnlock(ctx, patient.ID, b2))
		require.NoError(t, repo.RecordUnlock(ctx, patient.ID, b2))

		earned, err := repo.EarnedBadges(ctx, patient.ID)
		require.NoError(t, err)
		require.Len(t, earned, 1)
		assert.Equal(t, b2, earned[0].BadgeID)
		assert.Equal(t, 2, earned[0].Count)
		assert.Equal(t, domain.BadgeTypeRepeatable, earned[0].BadgeType)
	})
}

func TestGoalRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewGoalRepository(pool)

	patient := createTestPatient(t, pool)

	t.Run("MostRecentGoal empty", func(t *testing.T) {
		recent, err := repo.MostRecentGoal(ctx, patient.ID)
		require.NoError(t, err)
		assert.Nil(t, recent)
	})

	now := time.Now().UTC().Truncate(time.Microsecond)
	goals := []domain.Goal{
		{
			ID:        uuid.NewString(),
			PatientID: patient.ID,
			Name:      "Login for 3 days in a row",
			Rewards: []domain.GoalReward{
				{BadgeID: uuid.NewString(), Metric: domain.MetricPatientStreak, Name: "Streak Starter", Tier: "bronze"},
			},
			CreatedAt: now,
			ExpiresAt: now.Add(24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			PatientID: patient.ID,
			Name:      "Complete 10 activities",
			Rewards: []domain.GoalReward{
				{BadgeID: uuid.NewString(), Metric: domain.MetricPatientTotalActivityCount, Name: "Daily Grinder", Tier: "silver"},
			},
			CreatedAt: now,
			ExpiresAt: now.Add(24 * time.Hour),
		},
	}

	t.Run("InsertGoals and read back", func(t *testing.T) {
		require.NoError(t, repo.InsertGoals(ctx, patient.ID, goals))

		open, err := repo.OpenGoals(ctx, patient.ID, now)
		require.NoError(t, err)
		require.Len(t, open, 2)
		for _, g := range open {
			require.Len(t, g.Rewards, 1)
			assert.NotEmpty(t, g.Rewards[0].Metric)
		}

		recent, err := repo.MostRecentGoal(ctx, patient.ID)
		require.NoError(t, err)
		require.NotNil(t, recent)
		assert.True(t, recent.CreatedAt.Equal(now))
	})

	t.Run("DeleteExpired", func(t *testing.T) {
		affected, err := repo.DeleteExpired(ctx, now.Add(25*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		open, err := repo.OpenGoals(ctx, patient.ID, now)
		require.NoError(t, err)
		assert.Empty(t, open)
	})
}

func TestActivityRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(pool)

	patient := createTestPatient(t, pool)
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		row := &domain.ActivityRow{
			ID:          uuid.NewString(),
			PatientID:   patient.ID,
			Game:        domain.GameBeatBoxer,
			StartedAt:   base.Add(time.Duration(i) * 24 * time.Hour),
			DurationSec: 300,
		}
		require.NoError(t, repo.InsertRow(ctx, row))
	}

	t.Run("RowsInWindow end exclusive", func(t *testing.T) {
		rows, err := repo.RowsInWindow(ctx, patient.ID, base, base.Add(48*time.Hour))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, domain.GameBeatBoxer, rows[0].Game)
		assert.True(t, rows[0].StartedAt.Before(rows[1].StartedAt))
	})

	t.Run("RowsInWindow empty", func(t *testing.T) {
		rows, err := repo.RowsInWindow(ctx, patient.ID, base.AddDate(0, 0, -10), base.AddDate(0, 0, -5))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
