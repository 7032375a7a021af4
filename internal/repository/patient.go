package repository

import (
	"context"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Patient defines the interface for patient profile and metric context persistence
type Patient interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	// MetricContext returns the patient's current metric snapshot.
	// Metrics the patient has never produced are absent from the map.
	MetricContext(ctx context.Context, patientID string) (domain.MetricContext, error)
	SetMetric(ctx context.Context, patientID string, metric domain.Metric, value float64) error
	// IncrementMetric adds delta to the stored value, treating an absent
	// metric as zero
	IncrementMetric(ctx context.Context, patientID string, metric domain.Metric, delta float64) error
}
