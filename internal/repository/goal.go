package repository

import (
	"context"
	"time"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Goal defines the interface for goal persistence
type Goal interface {
	// MostRecentGoal returns the latest goal by creation time, or nil
	// when the patient has none
	MostRecentGoal(ctx context.Context, patientID string) (*domain.Goal, error)
	// InsertGoals writes one generation batch atomically: either every
	// goal in the batch is stored or none are
	InsertGoals(ctx context.Context, patientID string, goals []domain.Goal) error
	OpenGoals(ctx context.Context, patientID string, now time.Time) ([]domain.Goal, error)
	// DeleteExpired removes goals whose expiry is before the cutoff and
	// reports how many rows were removed
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
