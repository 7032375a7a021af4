package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/repository"
)

type badgeRepository struct {
	db *pgxpool.Pool
}

// NewBadgeRepository creates a new PostgreSQL badge repository
func NewBadgeRepository(db *pgxpool.Pool) repository.Badge {
	return &badgeRepository{db: db}
}

// ActiveBadges returns the full active catalog in creation order
func (r *badgeRepository) ActiveBadges(ctx context.Context) ([]domain.Badge, error) {
	query := `
		SELECT badge_id, name, metric, min_val, max_val, tier, badge_type, status, created_at
		FROM badges
		WHERE status = $1
		ORDER BY created_at, badge_id
	`

	rows, err := r.db.Query(ctx, query, string(domain.BadgeStatusActive))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBadges, err)
	}
	defer rows.Close()

	var badges []domain.Badge
	for rows.Next() {
		var b domain.Badge
		if err := rows.Scan(&b.ID, &b.Name, &b.Metric, &b.MinVal, &b.MaxVal, &b.Tier, &b.BadgeType, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanBadge, err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

// EarnedBadges returns the patient's unlocked badges with catalog type info
func (r *badgeRepository) EarnedBadges(ctx context.Context, patientID string) ([]domain.PatientBadge, error) {
	query := `
		SELECT pb.patient_badge_id, pb.patient_id, pb.badge_id, b.badge_type, pb.count,
		       pb.created_at, pb.updated_at
		FROM patient_badges pb
		JOIN badges b ON pb.badge_id = b.badge_id
		WHERE pb.patient_id = $1
	`

	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEarned, err)
	}
	defer rows.Close()

	var earned []domain.PatientBadge
	for rows.Next() {
		var pb domain.PatientBadge
		if err := rows.Scan(&pb.ID, &pb.PatientID, &pb.BadgeID, &pb.BadgeType, &pb.Count, &pb.CreatedAt, &pb.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEarned, err)
		}
		earned = append(earned, pb)
	}
	return earned, rows.Err()
}

// RecordUnlock inserts a first unlock or increments the repeat count
func (r *badgeRepository) RecordUnlock(ctx context.Context, patientID, badgeID string) error {
	query := `
		INSERT INTO patient_badges (patient_id, badge_id, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (patient_id, badge_id) DO UPDATE
		SET count = patient_badges.count + 1, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, patientID, badgeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordUnlock, err)
	}
	return nil
}
