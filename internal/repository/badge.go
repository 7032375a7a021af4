package repository

import (
	"context"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Badge defines the interface for badge catalog and unlock persistence
type Badge interface {
	// ActiveBadges returns the full active catalog, no pagination
	ActiveBadges(ctx context.Context) ([]domain.Badge, error)
	EarnedBadges(ctx context.Context, patientID string) ([]domain.PatientBadge, error)
	// RecordUnlock inserts a patient_badge row on first unlock and
	// increments count on repeat unlocks
	RecordUnlock(ctx context.Context, patientID, badgeID string) error
}
