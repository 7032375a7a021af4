package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/repository"
)

type activityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new PostgreSQL activity repository
func NewActivityRepository(db *pgxpool.Pool) repository.Activity {
	return &activityRepository{db: db}
}

// InsertRow stores one played-game session
func (r *activityRepository) InsertRow(ctx context.Context, row *domain.ActivityRow) error {
	query := `
		INSERT INTO activity_rows (activity_id, patient_id, game, started_at, duration_sec)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.Exec(ctx, query, row.ID, row.PatientID, string(row.Game), row.StartedAt, row.DurationSec); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertActivity, err)
	}
	return nil
}

// RowsInWindow returns rows with start >= from and start < to, oldest first
func (r *activityRepository) RowsInWindow(ctx context.Context, patientID string, from, to time.Time) ([]domain.ActivityRow, error) {
	query := `
		SELECT activity_id, patient_id, game, started_at, duration_sec
		FROM activity_rows
		WHERE patient_id = $1 AND started_at >= $2 AND started_at < $3
		ORDER BY started_at
	`

	rows, err := r.db.Query(ctx, query, patientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetActivity, err)
	}
	defer rows.Close()

	var out []domain.ActivityRow
	for rows.Next() {
		var row domain.ActivityRow
		if err := rows.Scan(&row.ID, &row.PatientID, &row.Game, &row.StartedAt, &row.DurationSec); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanActivity, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
