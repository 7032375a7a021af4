package domain

import "time"

// Game identifies one of the catalog games
type Game string

const (
	GameSitStandAchieve Game = "sit_stand_achieve"
	GameBeatBoxer       Game = "beat_boxer"
	GameSoundExplorer   Game = "sound_explorer"
	GameMovingTones     Game = "moving_tones"
)

// AllGames is the current game catalog. Day completion requires every
// catalog game to have been played at least once that day.
var AllGames = []Game{
	GameSitStandAchieve,
	GameBeatBoxer,
	GameSoundExplorer,
	GameMovingTones,
}

// ActivityRow is one played-game record, the raw input to aggregation.
// StartedAt carries the session timestamp; calendar-day grouping happens
// in the patient's timezone, never the server's.
type ActivityRow struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Game        Game      `json:"game"`
	StartedAt   time.Time `json:"started_at"`
	DurationSec int       `json:"duration_sec"`
}

// DaySummary is the per-day rollup derived from activity rows. It is
// recomputed per request and never persisted.
type DaySummary struct {
	Day           time.Time `json:"day"` // midnight in the patient's timezone
	GamesPlayed   []Game    `json:"games_played"`
	ActivityCount int       `json:"activity_count"`
	DurationSec   int       `json:"duration_sec"`
	IsComplete    bool      `json:"is_complete"`
}

// ActivitySummary is the aggregate over a window of days
type ActivitySummary struct {
	CompletedDayCount int                      `json:"completed_day_count"`
	Days              []DaySummary             `json:"days"`
	ByDay             map[string][]ActivityRow `json:"-"`
}
