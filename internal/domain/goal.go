package domain

import "time"

// GoalExpiry is how long a synthesized goal stays open
const GoalExpiry = 24 * time.Hour

// GoalReward describes the badge a goal pays out
type GoalReward struct {
	BadgeID string `json:"badge_id"`
	Metric  Metric `json:"metric"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`
}

// Goal is a time-boxed target synthesized from an achievable badge.
// A patient holds at most one open goal per metric; GoalSynthesizer
// enforces this by deduplicating on metric within a generation pass and
// by refusing a second generation on the same calendar day.
type Goal struct {
	ID        string       `json:"id"`
	PatientID string       `json:"patient_id"`
	Name      string       `json:"name"`
	Rewards   []GoalReward `json:"rewards"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Metric returns the metric the goal targets. Goals carry exactly one
// reward today; the slice form mirrors the stored shape.
func (g Goal) Metric() Metric {
	if len(g.Rewards) == 0 {
		return ""
	}
	return g.Rewards[0].Metric
}
