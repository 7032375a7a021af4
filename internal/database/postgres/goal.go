package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/repository"
)

type goalRepository struct {
	db *pgxpool.Pool
}

// NewGoalRepository creates a new PostgreSQL goal repository
func NewGoalRepository(db *pgxpool.Pool) repository.Goal {
	return &goalRepository{db: db}
}

// MostRecentGoal returns the latest goal by creation time, or nil when none exists
func (r *goalRepository) MostRecentGoal(ctx context.Context, patientID string) (*domain.Goal, error) {
	query := `
		SELECT goal_id, patient_id, name, rewards, created_at, expires_at
		FROM goals
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	g, err := scanGoal(r.db.QueryRow(ctx, query, patientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecentGoal, err)
	}
	return g, nil
}

// InsertGoals writes one generation batch in a single transaction
func (r *goalRepository) InsertGoals(ctx context.Context, patientID string, goals []domain.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO goals (goal_id, patient_id, name, rewards, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, g := range goals {
		rewardsJSON, err := json.Marshal(g.Rewards)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalRewards, err)
		}
		if _, err := tx.Exec(ctx, query, g.ID, patientID, g.Name, rewardsJSON, g.CreatedAt, g.ExpiresAt); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertGoal, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// OpenGoals returns goals that have not yet expired, newest first
func (r *goalRepository) OpenGoals(ctx context.Context, patientID string, now time.Time) ([]domain.Goal, error) {
	query := `
		SELECT goal_id, patient_id, name, rewards, created_at, expires_at
		FROM goals
		WHERE patient_id = $1 AND expires_at > $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, patientID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOpenGoals, err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanGoal, err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

// DeleteExpired removes goals whose expiry is before the cutoff
func (r *goalRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE expires_at <= $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteExpired, err)
	}
	return tag.RowsAffected(), nil
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var g domain.Goal
	var rewardsJSON []byte
	if err := row.Scan(&g.ID, &g.PatientID, &g.Name, &rewardsJSON, &g.CreatedAt, &g.ExpiresAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rewardsJSON, &g.Rewards); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeRewards, err)
	}
	return &g, nil
}
