// ABOUTME: Week momentum: 5-tier per-day rollup for the trend display
// ABOUTME: Future days are marked no-data, never zero
package momentum

import (
	"time"

	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/progress"
)

// Per-intention day scores: no progress, partial, complete
const (
	scoreNone     = 0.0
	scorePartial  = 0.5
	scoreComplete = 1.0
)

// Week builds the 7-day momentum rollup starting at weekStart (a local
// midnight). Each past-or-current day gets a 0-1 completion ratio: the
// average, across active intentions with a positive target, of a 3-level
// per-intention score. Days after today are TierNoData.
func Week(entries []models.ProgressEntry, intentions []models.Intention, weekStart, now time.Time) models.WeekMomentum {
	todayKey := models.DateKey(now)

	week := models.WeekMomentum{Days: make([]models.WeekDayMomentum, 0, 7)}
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		dateKey := models.DateKey(day)

		if dateKey > todayKey {
			week.Days = append(week.Days, models.WeekDayMomentum{
				DateKey: dateKey,
				Tier:    models.TierNoData,
			})
			continue
		}

		ratio := dayRatio(entries, intentions, dateKey)
		week.Days = append(week.Days, models.WeekDayMomentum{
			DateKey: dateKey,
			Tier:    tierFor(ratio),
			Ratio:   ratio,
		})
	}
	return week
}

// dayRatio averages the 3-level per-intention scores for one day
func dayRatio(entries []models.ProgressEntry, intentions []models.Intention, dateKey string) float64 {
	sum := 0.0
	count := 0
	for _, intent := range intentions {
		if !intent.Active || intent.Target <= 0 {
			continue
		}
		total := progress.TotalForIntention(entries, dateKey, intent.IntentionID, intent.SetID, nil)
		pct := progress.PercentComplete(total, intent.Target, intent.Timeframe)
		switch {
		case pct >= 1:
			sum += scoreComplete
		case pct > 0:
			sum += scorePartial
		default:
			sum += scoreNone
		}
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// tierFor maps a 0-1 completion ratio onto the 5-tier scale
func tierFor(ratio float64) models.WeekTier {
	switch {
	case ratio >= 0.85:
		return models.TierGreat
	case ratio >= 0.60:
		return models.TierGood
	case ratio >= 0.40:
		return models.TierNeutral
	case ratio >= 0.15:
		return models.TierLow
	default:
		return models.TierVeryLow
	}
}
