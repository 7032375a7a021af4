package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointmotion/engage-backend/internal/domain"
)

func day(today time.Time, daysAgo, activityCount int) domain.DaySummary {
	return domain.DaySummary{
		Day:           today.AddDate(0, 0, -daysAgo),
		ActivityCount: activityCount,
	}
}

func TestComputeStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []domain.DaySummary
		want int
	}{
		{
			"three consecutive days",
			[]domain.DaySummary{day(today, 0, 3), day(today, 1, 4), day(today, 2, 3)},
			3,
		},
		{
			"gap after today stops the scan",
			[]domain.DaySummary{day(today, 0, 3), day(today, 2, 3)},
			1,
		},
		{
			"streak ending yesterday still counts",
			[]domain.DaySummary{day(today, 1, 3), day(today, 2, 3)},
			2,
		},
		{
			"most recent qualifying day too old",
			[]domain.DaySummary{day(today, 2, 3), day(today, 3, 3)},
			0,
		},
		{
			"below threshold days are skipped, breaking the run",
			[]domain.DaySummary{day(today, 0, 3), day(today, 1, 2), day(today, 2, 3)},
			1,
		},
		{
			"no qualifying days",
			[]domain.DaySummary{day(today, 0, 1), day(today, 1, 2)},
			0,
		},
		{
			"empty input",
			nil,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(tt.days, StreakThreshold, today))
		})
	}
}

func TestComputeStreakNeverResumesAfterGap(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// a five day run exists further back, but only the tail run ending
	// today counts
	days := []domain.DaySummary{
		day(today, 0, 3),
		day(today, 1, 3),
		day(today, 3, 5),
		day(today, 4, 5),
		day(today, 5, 5),
		day(today, 6, 5),
		day(today, 7, 5),
	}

	assert.Equal(t, 2, ComputeStreak(days, StreakThreshold, today))
}

func TestComputeStreakAcrossDSTTransition(t *testing.T) {
	losAngeles, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 2026-03-08 is the spring-forward date, a 23 hour day
	today := time.Date(2026, 3, 9, 12, 0, 0, 0, losAngeles)
	days := []domain.DaySummary{
		{Day: time.Date(2026, 3, 9, 0, 0, 0, 0, losAngeles), ActivityCount: 3},
		{Day: time.Date(2026, 3, 8, 0, 0, 0, 0, losAngeles), ActivityCount: 3},
		{Day: time.Date(2026, 3, 7, 0, 0, 0, 0, losAngeles), ActivityCount: 3},
	}

	assert.Equal(t, 3, ComputeStreak(days, StreakThreshold, today))
}
