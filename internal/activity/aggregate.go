package activity

import (
	"sort"
	"time"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// Aggregate groups raw activity rows into per-day summaries. Grouping
// uses the calendar day in loc (nil falls back to UTC); the patient and
// the server are often in different zones, so the caller supplies the
// patient's. A day is complete when every game in the catalog was played
// at least once. An empty catalog never marks a day complete.
//
// Aggregate is pure and total: malformed or empty input yields an empty
// summary, never an error.
func Aggregate(rows []domain.ActivityRow, games []domain.Game, loc *time.Location) domain.ActivitySummary {
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[string][]domain.ActivityRow)
	dayStarts := make(map[string]time.Time)
	for _, row := range rows {
		day := dayStart(row.StartedAt, loc)
		key := day.Format(DayKeyFormat)
		byDay[key] = append(byDay[key], row)
		dayStarts[key] = day
	}

	catalog := make(map[domain.Game]struct{}, len(games))
	for _, g := range games {
		catalog[g] = struct{}{}
	}

	summary := domain.ActivitySummary{ByDay: byDay}
	for key, dayRows := range byDay {
		played := make(map[domain.Game]struct{})
		day := domain.DaySummary{Day: dayStarts[key]}
		for _, row := range dayRows {
			if _, seen := played[row.Game]; !seen {
				played[row.Game] = struct{}{}
				day.GamesPlayed = append(day.GamesPlayed, row.Game)
			}
			day.ActivityCount++
			day.DurationSec += row.DurationSec
		}

		day.IsComplete = len(catalog) > 0 && coversCatalog(played, catalog)
		if day.IsComplete {
			summary.CompletedDayCount++
		}
		summary.Days = append(summary.Days, day)
	}

	// most recent day first, matching how streaks consume the summary
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Day.After(summary.Days[j].Day)
	})

	return summary
}

// coversCatalog reports whether every catalog game appears in played
func coversCatalog(played, catalog map[domain.Game]struct{}) bool {
	for g := range catalog {
		if _, ok := played[g]; !ok {
			return false
		}
	}
	return true
}

// dayStart truncates t to midnight in loc
func dayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
