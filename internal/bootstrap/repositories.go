package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pointmotion/engage-backend/internal/database/postgres"
	"github.com/pointmotion/engage-backend/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Patient  repository.Patient
	Badge    repository.Badge
	Goal     repository.Goal
	Activity repository.Activity
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Patient:  postgres.NewPatientRepository(dbPool),
		Badge:    postgres.NewBadgeRepository(dbPool),
		Goal:     postgres.NewGoalRepository(dbPool),
		Activity: postgres.NewActivityRepository(dbPool),
	}
}
