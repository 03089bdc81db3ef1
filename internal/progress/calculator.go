// ABOUTME: Pure progress math over the append-only entry ledger
// ABOUTME: A TOTAL entry overrides all INCREMENTs within one (date, intention) pair
package progress

import (
	"github.com/harper/murmur/internal/models"
)

// TotalForIntention computes the day total for one intention.
//
// Precedence: an explicit manual override wins outright; else the most
// recently created TOTAL entry for the day; else the sum of INCREMENT
// entries. INCREMENTs before or after a TOTAL are ignored for the total
// but remain in the ledger.
func TotalForIntention(entries []models.ProgressEntry, dateKey, intentionID, setID string, override *float64) float64 {
	if override != nil {
		return *override
	}

	var latestTotal *models.ProgressEntry
	sum := 0.0
	haveIncrement := false

	for i := range entries {
		e := &entries[i]
		if e.DateKey != dateKey || e.IntentionID != intentionID {
			continue
		}
		if setID != "" && e.SetID != setID {
			continue
		}
		switch e.Type {
		case models.UpdateTotal:
			if latestTotal == nil || e.CreatedAt.After(latestTotal.CreatedAt) {
				latestTotal = e
			}
		case models.UpdateIncrement:
			sum += e.Amount
			haveIncrement = true
		}
	}

	if latestTotal != nil {
		return latestTotal.Amount
	}
	if haveIncrement {
		return sum
	}
	return 0
}

// PercentComplete computes the completion ratio clamped into [0, 1].
// Weekly targets are divided by 7 to get an effective daily target.
// Non-positive targets degrade to 0 rather than dividing by zero.
func PercentComplete(total, target float64, tf models.Timeframe) float64 {
	if target <= 0 {
		return 0
	}
	effective := target
	if tf == models.TimeframeWeekly {
		effective = target / 7
	}
	ratio := total / effective
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// OverallPercentComplete averages per-intention completion across active
// intentions with a positive target. Intentions with target <= 0 are
// excluded entirely, not treated as zero.
func OverallPercentComplete(intentions []models.Intention, totalsByIntention map[string]float64) float64 {
	sum := 0.0
	count := 0
	for _, intent := range intentions {
		if !intent.Active || intent.Target <= 0 {
			continue
		}
		sum += PercentComplete(totalsByIntention[intent.IntentionID], intent.Target, intent.Timeframe)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
