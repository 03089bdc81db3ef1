// ABOUTME: Derived time-series types for trend displays
// ABOUTME: Recomputed on demand from the entry log, never persisted as source of truth
package models

import "time"

// MomentumPoint is one time-stamped percent-complete sample for an intention
type MomentumPoint struct {
	IntentionID string    `json:"intention_id"`
	Timestamp   time.Time `json:"timestamp"`
	Percent     float64   `json:"percent"`
	// Bucket identifies the dedup group: the check-in id when the sample is
	// linked to a recording, else the minute key
	Bucket string `json:"bucket"`
	// Slot is the symmetric layout offset assigned when several points share
	// a bucket; 0 when the point stands alone
	Slot int `json:"slot"`
}

// DayMomentum is the chart-ready series for one day
type DayMomentum struct {
	DateKey string          `json:"date_key"`
	Points  []MomentumPoint `json:"points"`
	Overall float64         `json:"overall"`
}

// WeekDayMomentum is one day's rollup within a week view
type WeekDayMomentum struct {
	DateKey string   `json:"date_key"`
	Tier    WeekTier `json:"tier"`
	Ratio   float64  `json:"ratio"`
}

// WeekMomentum is the 7-day rollup ending at the selected week's last day
type WeekMomentum struct {
	Days []WeekDayMomentum `json:"days"`
}
