package badge

import "github.com/pointmotion/engage-backend/internal/domain"

// Eligible returns the subset of the catalog the patient can still earn,
// preserving catalog order. A badge is achievable when:
//   - it is not a singleUnlock badge the patient already holds,
//   - it names a metric present in the patient's context, and
//   - the context value is still below the badge threshold.
//
// Badges without a metric are never achievable. The function is pure and
// total: malformed catalog entries are skipped, never an error.
func Eligible(catalog []domain.Badge, earned []domain.PatientBadge, metrics domain.MetricContext) []domain.Badge {
	earnedByBadge := make(map[string]domain.PatientBadge, len(earned))
	for _, pb := range earned {
		earnedByBadge[pb.BadgeID] = pb
	}

	var eligible []domain.Badge
	for _, b := range catalog {
		if pb, ok := earnedByBadge[b.ID]; ok && pb.BadgeType == domain.BadgeTypeSingleUnlock {
			// singleUnlock badges are never offered again once earned
			continue
		}
		if b.Metric == "" {
			continue
		}
		value, known := metrics.Value(b.Metric)
		if !known {
			// unknown metric value means eligibility is undefined, not achievable
			continue
		}
		if value < b.MinVal {
			eligible = append(eligible, b)
		}
	}
	return eligible
}
