package domain

// Metric identifies a behavioral metric tracked per patient
type Metric string

const (
	MetricPatientStreak                Metric = "PATIENT_STREAK"
	MetricPatientTotalActivityDuration Metric = "PATIENT_TOTAL_ACTIVITY_DURATION"
	MetricPatientTotalActivityCount    Metric = "PATIENT_TOTAL_ACTIVITY_COUNT"
	MetricWeeklyTimeSpent              Metric = "WEEKLY_TIME_SPENT"
	MetricMonthlyTimeSpent             Metric = "MONTHLY_TIME_SPENT"
	MetricLeaderboardPosition          Metric = "LEADERBOARD_POSITION"
	MetricGameXP                       Metric = "GAME_XP"
	MetricHighscore                    Metric = "HIGHSCORE"

	MetricSitStandAchievePrompts Metric = "SIT_STAND_ACHIEVE_PROMPTS"
	MetricBeatBoxerPrompts       Metric = "BEAT_BOXER_PROMPTS"
	MetricSoundExplorerOrbs      Metric = "SOUND_EXPLORER_ORBS"
	MetricSoundExplorerRedOrbs   Metric = "SOUND_EXPLORER_RED_ORBS"
	MetricMovingTonesPrompts     Metric = "MOVING_TONES_PROMPTS"

	MetricSitStandAchieveCombo Metric = "SIT_STAND_ACHIEVE_COMBO"
	MetricBeatBoxerCombo       Metric = "BEAT_BOXER_COMBO"
	MetricSoundExplorerCombo   Metric = "SOUND_EXPLORER_COMBO"
	MetricMovingTonesCombo     Metric = "MOVING_TONES_COMBO"

	MetricSitStandAchieveLeaderboardPosition Metric = "SIT_STAND_ACHIEVE_LEADERBOARD_POSITION"
	MetricBeatBoxerLeaderboardPosition       Metric = "BEAT_BOXER_LEADERBOARD_POSITION"
	MetricSoundExplorerLeaderboardPosition   Metric = "SOUND_EXPLORER_LEADERBOARD_POSITION"
	MetricMovingTonesLeaderboardPosition     Metric = "MOVING_TONES_LEADERBOARD_POSITION"
)

// AllMetrics lists every metric the engine knows about.
// Goal-name synthesis must cover this list in full.
var AllMetrics = []Metric{
	MetricPatientStreak,
	MetricPatientTotalActivityDuration,
	MetricPatientTotalActivityCount,
	MetricWeeklyTimeSpent,
	MetricMonthlyTimeSpent,
	MetricLeaderboardPosition,
	MetricGameXP,
	MetricHighscore,
	MetricSitStandAchievePrompts,
	MetricBeatBoxerPrompts,
	MetricSoundExplorerOrbs,
	MetricSoundExplorerRedOrbs,
	MetricMovingTonesPrompts,
	MetricSitStandAchieveCombo,
	MetricBeatBoxerCombo,
	MetricSoundExplorerCombo,
	MetricMovingTonesCombo,
	MetricSitStandAchieveLeaderboardPosition,
	MetricBeatBoxerLeaderboardPosition,
	MetricSoundExplorerLeaderboardPosition,
	MetricMovingTonesLeaderboardPosition,
}

// MetricContext is a point-in-time snapshot of a patient's metric values.
// An absent key means the value is unknown, not zero.
type MetricContext map[Metric]float64

// Value returns the metric value and whether it is known
func (c MetricContext) Value(m Metric) (float64, bool) {
	v, ok := c[m]
	return v, ok
}
