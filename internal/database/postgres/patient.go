package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/repository"
)

type patientRepository struct {
	db *pgxpool.Pool
}

// NewPatientRepository creates a new PostgreSQL patient repository
func NewPatientRepository(db *pgxpool.Pool) repository.Patient {
	return &patientRepository{db: db}
}

// Create inserts a new patient profile
func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	query := `
		INSERT INTO patients (email, nickname, first_name, last_name, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING patient_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		patient.Email, patient.Nickname, patient.FirstName, patient.LastName, patient.Timezone,
	).Scan(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%s: %w", ErrMsgPatientAlreadyExists, domain.ErrInvalidInput)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPatient, err)
	}
	return nil
}

// GetByID fetches a patient profile by ID
func (r *patientRepository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	query := `
		SELECT patient_id, email, nickname, COALESCE(first_name, ''), COALESCE(last_name, ''),
		       timezone, created_at, updated_at
		FROM patients
		WHERE patient_id = $1
	`

	var p domain.Patient
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Email, &p.Nickname, &p.FirstName, &p.LastName,
		&p.Timezone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPatient, err)
	}
	return &p, nil
}

// MetricContext loads the patient's full metric snapshot
func (r *patientRepository) MetricContext(ctx context.Context, patientID string) (domain.MetricContext, error) {
	query := `
		SELECT metric, value
		FROM patient_metrics
		WHERE patient_id = $1
	`

	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMetrics, err)
	}
	defer rows.Close()

	metrics := make(domain.MetricContext)
	for rows.Next() {
		var metric string
		var value float64
		if err := rows.Scan(&metric, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanMetric, err)
		}
		metrics[domain.Metric(metric)] = value
	}
	return metrics, rows.Err()
}

// SetMetric stores an absolute metric value
func (r *patientRepository) SetMetric(ctx context.Context, patientID string, metric domain.Metric, value float64) error {
	query := `
		INSERT INTO patient_metrics (patient_id, metric, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (patient_id, metric) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, patientID, string(metric), value); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetMetric, err)
	}
	return nil
}

// IncrementMetric adds delta to the stored value, treating absent as zero
func (r *patientRepository) IncrementMetric(ctx context.Context, patientID string, metric domain.Metric, delta float64) error {
	query := `
		INSERT INTO patient_metrics (patient_id, metric, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (patient_id, metric) DO UPDATE
		SET value = patient_metrics.value + EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, patientID, string(metric), delta); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBumpMetric, err)
	}
	return nil
}
