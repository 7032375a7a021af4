package engine_bench

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pointmotion/engage-backend/internal/activity"
	"github.com/pointmotion/engage-backend/internal/badge"
	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/goal"
)

func benchCatalog(n int) []domain.Badge {
	catalog := make([]domain.Badge, 0, n)
	for i := 0; i < n; i++ {
		metric := domain.AllMetrics[i%len(domain.AllMetrics)]
		catalog = append(catalog, domain.Badge{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("badge %d", i),
			Metric:    metric,
			MinVal:    float64(10 * (i + 1)),
			Tier:      "bronze",
			BadgeType: domain.BadgeTypeRepeatable,
			Status:    domain.BadgeStatusActive,
		})
	}
	return catalog
}

func benchMetrics() domain.MetricContext {
	metrics := make(domain.MetricContext, len(domain.AllMetrics))
	for _, m := range domain.AllMetrics {
		metrics[m] = 5
	}
	return metrics
}

func BenchmarkEligible(b *testing.B) {
	catalog := benchCatalog(200)
	earned := []domain.PatientBadge{
		{ID: "pb-1", PatientID: "patient-1", BadgeID: catalog[0].ID, Count: 1},
	}
	metrics := benchMetrics()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		badge.Eligible(catalog, earned, metrics)
	}
}

func BenchmarkSynthesize(b *testing.B) {
	eligible := benchCatalog(len(domain.AllMetrics))
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := goal.Synthesize(eligible, "patient-1", now); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAggregate(b *testing.B) {
	loc := time.UTC
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, loc)

	// 90 days, every catalog game played twice a day
	rows := make([]domain.ActivityRow, 0, 90*len(domain.AllGames)*2)
	for day := 0; day < 90; day++ {
		for _, g := range domain.AllGames {
			for rep := 0; rep < 2; rep++ {
				rows = append(rows, domain.ActivityRow{
					ID:          uuid.NewString(),
					PatientID:   "patient-1",
					Game:        g,
					StartedAt:   base.AddDate(0, 0, day).Add(time.Duration(rep) * time.Hour),
					DurationSec: 300,
				})
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		activity.Aggregate(rows, domain.AllGames, loc)
	}
}

func BenchmarkComputeStreak(b *testing.B) {
	loc := time.UTC
	today := time.Date(2026, 3, 31, 12, 0, 0, 0, loc)

	days := make([]domain.DaySummary, 0, 90)
	for i := 0; i < 90; i++ {
		days = append(days, domain.DaySummary{
			Day:           time.Date(2026, 3, 31, 0, 0, 0, 0, loc).AddDate(0, 0, -i),
			ActivityCount: activity.StreakThreshold,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		activity.ComputeStreak(days, activity.StreakThreshold, today)
	}
}
