package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Synthesize converts achievable badges into goals, at most one per
// metric. Badges are visited in catalog order; the first badge seen for
// a metric seeds its goal and later badges on the same metric are
// skipped. Every goal expires exactly 24 hours after creation.
//
// Synthesize is pure: it builds the batch but does not persist it.
func Synthesize(eligible []domain.Badge, patientID string, now time.Time) ([]domain.Goal, error) {
	seen := make(map[domain.Metric]struct{}, len(eligible))
	var goals []domain.Goal

	for _, b := range eligible {
		if _, dup := seen[b.Metric]; dup {
			continue
		}

		name, err := GoalName(b)
		if err != nil {
			return nil, err
		}

		goals = append(goals, domain.Goal{
			ID:        uuid.NewString(),
			PatientID: patientID,
			Name:      name,
			Rewards: []domain.GoalReward{
				{
					BadgeID: b.ID,
					Metric:  b.Metric,
					Name:    rewardName(b.Name),
					Tier:    b.Tier,
				},
			},
			CreatedAt: now,
			ExpiresAt: now.Add(domain.GoalExpiry),
		})
		seen[b.Metric] = struct{}{}
	}

	return goals, nil
}

// GeneratedToday reports whether the most recent goal was created on the
// same calendar date as now. The comparison happens in now's location;
// callers pass "now" in the patient's timezone so a patient ahead of or
// behind the server still gets exactly one batch per local day.
func GeneratedToday(recent *domain.Goal, now time.Time) bool {
	if recent == nil {
		return false
	}
	y1, m1, d1 := recent.CreatedAt.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
