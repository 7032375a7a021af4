package goal

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// nameFunc renders a goal name from a badge threshold
type nameFunc func(minVal float64) string

// goalNameTemplates maps every supported metric to its goal name. The
// table is total over domain.AllMetrics; a metric without an entry is a
// catalog/engine version mismatch, surfaced as domain.ErrUnmappedMetric
// rather than silently dropped.
var goalNameTemplates = map[domain.Metric]nameFunc{
	domain.MetricPatientStreak: func(v float64) string {
		return "Login for " + formatVal(v) + " days in a row"
	},
	domain.MetricPatientTotalActivityDuration: func(v float64) string {
		return "Complete " + formatVal(v) + " minutes of activity"
	},
	domain.MetricPatientTotalActivityCount: func(v float64) string {
		return "Complete " + formatVal(v) + " activities"
	},
	domain.MetricWeeklyTimeSpent: func(v float64) string {
		return "Complete " + formatVal(v) + " minutes of activities this week"
	},
	domain.MetricMonthlyTimeSpent: func(v float64) string {
		return "Complete " + formatVal(v) + " minutes of activities this month"
	},
	domain.MetricLeaderboardPosition: func(v float64) string {
		return "Reach " + formatVal(v) + " position on the leaderboard"
	},
	domain.MetricGameXP: func(v float64) string {
		return "Earn " + formatVal(v) + " XP"
	},
	domain.MetricHighscore: func(v float64) string {
		return "Beat your previous highscore " + formatVal(v)
	},
	domain.MetricSitStandAchievePrompts: func(v float64) string {
		return "Complete " + formatVal(v) + " prompts in Sit Stand Achieve"
	},
	domain.MetricBeatBoxerPrompts: func(v float64) string {
		return "Complete " + formatVal(v) + " prompts in Beat Boxer"
	},
	domain.MetricSoundExplorerOrbs: func(v float64) string {
		return "Collect " + formatVal(v) + " orbs in Sound Explorer"
	},
	domain.MetricSoundExplorerRedOrbs: func(v float64) string {
		return "Collect " + formatVal(v) + " red orbs in Sound Explorer"
	},
	domain.MetricMovingTonesPrompts: func(v float64) string {
		return "Complete " + formatVal(v) + " prompts in Moving Tones"
	},
	domain.MetricSitStandAchieveCombo: func(v float64) string {
		return "Reach " + formatVal(v) + "x combo in Sit Stand Achieve"
	},
	domain.MetricBeatBoxerCombo: func(v float64) string {
		return "Reach " + formatVal(v) + "x combo in Beat Boxer"
	},
	domain.MetricSoundExplorerCombo: func(v float64) string {
		return "Reach " + formatVal(v) + "x combo in Sound Explorer"
	},
	domain.MetricMovingTonesCombo: func(v float64) string {
		return "Reach " + formatVal(v) + "x combo in Moving Tones"
	},
	domain.MetricSitStandAchieveLeaderboardPosition: func(v float64) string {
		return "Reach " + formatVal(v) + " position on the Sit Stand Achieve leaderboard"
	},
	domain.MetricBeatBoxerLeaderboardPosition: func(v float64) string {
		return "Reach " + formatVal(v) + " position on the Beat Boxer leaderboard"
	},
	domain.MetricSoundExplorerLeaderboardPosition: func(v float64) string {
		return "Reach " + formatVal(v) + " position on the Sound Explorer leaderboard"
	},
	domain.MetricMovingTonesLeaderboardPosition: func(v float64) string {
		return "Reach " + formatVal(v) + " position on the Moving Tones leaderboard"
	},
}

// GoalName renders the goal name for a badge
func GoalName(b domain.Badge) (string, error) {
	render, ok := goalNameTemplates[b.Metric]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnmappedMetric, b.Metric)
	}
	return render(b.MinVal), nil
}

// formatVal renders thresholds without a trailing ".0" for whole numbers
func formatVal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var titleCaser = cases.Title(language.English)

// rewardName title-cases a badge name for display in the goal's reward list
func rewardName(name string) string {
	return titleCaser.String(name)
}
