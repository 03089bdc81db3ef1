// ABOUTME: Ambiguity gate deciding whether an update needs user confirmation
// ABOUTME: Late hour, mid-band confidence, and material size must all hold
package progress

import (
	"math"
	"time"

	"github.com/harper/murmur/internal/models"
)

const (
	// lateHour is the local hour from which check-ins count as late-day
	lateHour = 18

	// confidence band: below it the update is too weak to bother the user
	// about, above it the extractor is trusted
	ambiguousConfidenceLow  = 0.45
	ambiguousConfidenceHigh = 0.80

	// materialityThreshold is the minimum change relative to target that
	// makes a wrong update worth a confirmation dialog
	materialityThreshold = 0.20
)

// IsAmbiguous reports whether an update should be held for user
// disambiguation before being committed to the ledger. Returns true only
// when all of the following hold: the check-in happened at or after the
// late-day hour (local time), the confidence sits inside the ambiguous
// band (inclusive), and the implied change is material relative to a
// positive target. Unrecognized update types are never ambiguous.
func IsAmbiguous(update models.RawUpdate, currentTotal, target float64, createdAt time.Time) bool {
	var newTotal float64
	switch update.Type {
	case models.UpdateTotal:
		newTotal = update.Amount
	case models.UpdateIncrement:
		newTotal = currentTotal + update.Amount
	default:
		return false
	}

	if createdAt.Hour() < lateHour {
		return false
	}
	if update.Confidence < ambiguousConfidenceLow || update.Confidence > ambiguousConfidenceHigh {
		return false
	}
	if target <= 0 {
		return false
	}
	return math.Abs(newTotal-currentTotal)/target >= materialityThreshold
}

// SplitUpdates partitions raw updates into clear and ambiguous groups.
// Clear updates can be committed immediately; ambiguous ones wait on a
// user decision.
func SplitUpdates(updates []models.RawUpdate, totals map[string]float64, targets map[string]float64, createdAt time.Time) (clear, ambiguous []models.RawUpdate) {
	for _, u := range updates {
		if IsAmbiguous(u, totals[u.IntentionID], targets[u.IntentionID], createdAt) {
			ambiguous = append(ambiguous, u)
		} else {
			clear = append(clear, u)
		}
	}
	return clear, ambiguous
}
