package activity

import (
	"math"
	"time"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// ComputeStreak counts the unbroken run of qualifying days ending today
// or yesterday. Days must be sorted most recent first; a day qualifies
// when its activity count meets the threshold. The scan walks backward
// from today and stops at the first gap, so a run broken earlier in the
// window never resumes counting.
func ComputeStreak(days []domain.DaySummary, threshold int, today time.Time) int {
	mostRecent := dayStart(today, today.Location())
	streak := 0

	for _, d := range days {
		if d.ActivityCount < threshold {
			continue
		}

		day := dayStart(d.Day, today.Location())
		diff := wholeDays(mostRecent.Sub(day))
		switch {
		case diff == 0:
			// today itself, counts without moving the cursor back
			streak++
			mostRecent = day
		case diff == 1:
			streak++
			mostRecent = day
		default:
			return streak
		}
	}

	return streak
}

// wholeDays converts a duration to whole days, rounding to absorb DST
// transitions that make a calendar day 23 or 25 hours long.
func wholeDays(d time.Duration) int {
	return int(math.Round(d.Hours() / 24))
}
