// ABOUTME: Tests for ledger math: totals, percent-complete, overall average
// ABOUTME: Verifies TOTAL-overrides-INCREMENT and weekly target scaling

package progress

import (
	"testing"
	"time"

	"github.com/harper/murmur/internal/models"
)

func entry(id, date, intention string, typ models.UpdateType, amount float64, createdAt time.Time) models.ProgressEntry {
	return models.ProgressEntry{
		EntryID:     id,
		DateKey:     date,
		IntentionID: intention,
		SetID:       "set_1",
		Type:        typ,
		Amount:      amount,
		CreatedAt:   createdAt,
	}
}

func TestTotalForIntention_SumsIncrements(t *testing.T) {
	now := time.Now()
	entries := []models.ProgressEntry{
		entry("e1", "2026-03-07", "int_1", models.UpdateIncrement, 10, now),
		entry("e2", "2026-03-07", "int_1", models.UpdateIncrement, 5, now.Add(time.Minute)),
		entry("e3", "2026-03-07", "int_2", models.UpdateIncrement, 99, now),
		entry("e4", "2026-03-06", "int_1", models.UpdateIncrement, 99, now),
	}

	got := TotalForIntention(entries, "2026-03-07", "int_1", "set_1", nil)
	if got != 15 {
		t.Errorf("TotalForIntention() = %v, want 15", got)
	}
}

func TestTotalForIntention_TotalOverridesIncrements(t *testing.T) {
	now := time.Now()
	entries := []models.ProgressEntry{
		entry("e1", "2026-03-07", "int_1", models.UpdateIncrement, 10, now),
		entry("e2", "2026-03-07", "int_1", models.UpdateTotal, 30, now.Add(time.Minute)),
		entry("e3", "2026-03-07", "int_1", models.UpdateIncrement, 50, now.Add(2*time.Minute)),
	}

	// Increments before AND after the TOTAL are ignored for the total
	got := TotalForIntention(entries, "2026-03-07", "int_1", "set_1", nil)
	if got != 30 {
		t.Errorf("TotalForIntention() = %v, want 30 (TOTAL overrides increments)", got)
	}
}

func TestTotalForIntention_MostRecentTotalWins(t *testing.T) {
	now := time.Now()
	entries := []models.ProgressEntry{
		entry("e1", "2026-03-07", "int_1", models.UpdateTotal, 20, now),
		entry("e2", "2026-03-07", "int_1", models.UpdateTotal, 45, now.Add(time.Hour)),
		entry("e3", "2026-03-07", "int_1", models.UpdateTotal, 40, now.Add(time.Minute)),
	}

	got := TotalForIntention(entries, "2026-03-07", "int_1", "set_1", nil)
	if got != 45 {
		t.Errorf("TotalForIntention() = %v, want 45 (latest TOTAL by creation time)", got)
	}
}

func TestTotalForIntention_OverrideWinsOutright(t *testing.T) {
	now := time.Now()
	entries := []models.ProgressEntry{
		entry("e1", "2026-03-07", "int_1", models.UpdateTotal, 30, now),
	}

	override := 7.0
	got := TotalForIntention(entries, "2026-03-07", "int_1", "set_1", &override)
	if got != 7 {
		t.Errorf("TotalForIntention() = %v, want override 7", got)
	}
}

func TestTotalForIntention_UnknownTypeIgnored(t *testing.T) {
	now := time.Now()
	entries := []models.ProgressEntry{
		entry("e1", "2026-03-07", "int_1", models.UpdateUnknown, 100, now),
		entry("e2", "2026-03-07", "int_1", models.UpdateIncrement, 5, now),
	}

	got := TotalForIntention(entries, "2026-03-07", "int_1", "set_1", nil)
	if got != 5 {
		t.Errorf("TotalForIntention() = %v, want 5 (unknown types inert)", got)
	}
}

func TestTotalForIntention_Empty(t *testing.T) {
	if got := TotalForIntention(nil, "2026-03-07", "int_1", "set_1", nil); got != 0 {
		t.Errorf("TotalForIntention() = %v, want 0", got)
	}
}

func TestPercentComplete(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		target float64
		tf     models.Timeframe
		want   float64
	}{
		{"daily half", 5, 10, models.TimeframeDaily, 0.5},
		{"weekly effective daily target", 5, 70, models.TimeframeWeekly, 0.5},
		{"clamped high", 30, 10, models.TimeframeDaily, 1},
		{"clamped low", -3, 10, models.TimeframeDaily, 0},
		{"zero target", 5, 0, models.TimeframeDaily, 0},
		{"negative target", 5, -10, models.TimeframeDaily, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentComplete(tt.total, tt.target, tt.tf); got != tt.want {
				t.Errorf("PercentComplete(%v, %v, %v) = %v, want %v", tt.total, tt.target, tt.tf, got, tt.want)
			}
		})
	}
}

func TestOverallPercentComplete(t *testing.T) {
	intentions := []models.Intention{
		{IntentionID: "int_1", Target: 10, Timeframe: models.TimeframeDaily, Active: true},
		{IntentionID: "int_2", Target: 20, Timeframe: models.TimeframeDaily, Active: true},
		{IntentionID: "int_3", Target: 0, Timeframe: models.TimeframeDaily, Active: true},  // excluded: no target
		{IntentionID: "int_4", Target: 10, Timeframe: models.TimeframeDaily, Active: false}, // excluded: inactive
	}
	totals := map[string]float64{
		"int_1": 10, // 1.0
		"int_2": 10, // 0.5
		"int_4": 10,
	}

	got := OverallPercentComplete(intentions, totals)
	if got != 0.75 {
		t.Errorf("OverallPercentComplete() = %v, want 0.75 (zero-target intentions excluded, not zeroed)", got)
	}
}

func TestOverallPercentComplete_NoEligible(t *testing.T) {
	intentions := []models.Intention{
		{IntentionID: "int_1", Target: 0, Active: true},
	}
	if got := OverallPercentComplete(intentions, nil); got != 0 {
		t.Errorf("OverallPercentComplete() = %v, want 0", got)
	}
}
