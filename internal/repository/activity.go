package repository

import (
	"context"
	"time"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Activity defines the interface for per-game activity row persistence
type Activity interface {
	InsertRow(ctx context.Context, row *domain.ActivityRow) error
	// RowsInWindow returns rows with start >= from and start < to.
	// The end boundary is always exclusive. Calendar-day grouping in the
	// patient's timezone happens in the aggregation layer, not here.
	RowsInWindow(ctx context.Context, patientID string, from, to time.Time) ([]domain.ActivityRow, error)
}
