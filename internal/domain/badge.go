package domain

import "time"

// BadgeType controls whether a badge can be earned more than once
type BadgeType string

const (
	BadgeTypeSingleUnlock BadgeType = "singleUnlock"
	BadgeTypeRepeatable   BadgeType = "repeatable"
)

// BadgeStatus marks whether a badge is currently offered
type BadgeStatus string

const (
	BadgeStatusActive   BadgeStatus = "active"
	BadgeStatusInactive BadgeStatus = "inactive"
)

// Badge is an immutable catalog entry describing a reward and the metric
// threshold that earns it. Badges are created and retired by
// administrators; the engine never mutates them.
type Badge struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Metric    Metric      `json:"metric"`
	MinVal    float64     `json:"min_val"`
	MaxVal    float64     `json:"max_val"`
	Tier      string      `json:"tier"`
	BadgeType BadgeType   `json:"badge_type"`
	Status    BadgeStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// PatientBadge records that a patient has unlocked a badge. Count tracks
// repeat unlocks for repeatable badges. Rows are never deleted.
type PatientBadge struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	BadgeID   string    `json:"badge_id"`
	BadgeType BadgeType `json:"badge_type"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
