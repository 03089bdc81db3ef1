// ABOUTME: Day momentum point builder: time-stamped percent-complete samples
// ABOUTME: Walks the ledger by effective occurrence time with running per-intention totals
package momentum

import (
	"sort"
	"time"

	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/progress"
)

// minuteBucketFormat keys entries with no recording linkage by minute
const minuteBucketFormat = "2006-01-02T15:04"

// DayPoints builds one percent-complete point per (bucket, intention) for
// the given day. Entries are walked in chronological order of effective
// occurrence time while a running per-intention total is maintained: a
// TOTAL entry resets the running total, an INCREMENT adds to it. Points
// sharing a bucket (same check-in, or same minute when no check-in is
// linked) are deduplicated keeping the maximum percent, so charts never
// stack duplicate markers.
func DayPoints(entries []models.ProgressEntry, intentions []models.Intention, dateKey string) []models.MomentumPoint {
	byIntention := make(map[string]models.Intention, len(intentions))
	for _, in := range intentions {
		byIntention[in.IntentionID] = in
	}

	var dayEntries []models.ProgressEntry
	for _, e := range entries {
		if e.DateKey != dateKey {
			continue
		}
		if _, ok := byIntention[e.IntentionID]; !ok {
			continue
		}
		dayEntries = append(dayEntries, e)
	}
	sort.SliceStable(dayEntries, func(i, j int) bool {
		return dayEntries[i].OccurredAt.Before(dayEntries[j].OccurredAt)
	})

	running := make(map[string]float64)
	// bucket+intention -> index into points
	seen := make(map[string]int)
	var points []models.MomentumPoint

	for _, e := range dayEntries {
		switch e.Type {
		case models.UpdateTotal:
			running[e.IntentionID] = e.Amount
		case models.UpdateIncrement:
			running[e.IntentionID] += e.Amount
		default:
			continue
		}

		intent := byIntention[e.IntentionID]
		percent := progress.PercentComplete(running[e.IntentionID], intent.Target, intent.Timeframe)

		bucket := e.CheckInID
		if bucket == "" {
			bucket = e.OccurredAt.Format(minuteBucketFormat)
		}

		point := models.MomentumPoint{
			IntentionID: e.IntentionID,
			Timestamp:   e.OccurredAt,
			Percent:     percent,
			Bucket:      bucket,
		}

		key := bucket + "|" + e.IntentionID
		if idx, ok := seen[key]; ok {
			if percent > points[idx].Percent {
				points[idx] = point
			}
			continue
		}
		seen[key] = len(points)
		points = append(points, point)
	}

	assignSlots(points)
	return points
}

// EffectiveTime resolves an update's occurrence time: the explicit
// user-stated time when one was given, else the check-in's creation time
func EffectiveTime(update models.RawUpdate, checkInCreated time.Time) time.Time {
	if update.StatedTime != nil {
		return *update.StatedTime
	}
	return checkInCreated
}

// assignSlots gives symmetric layout offsets to points sharing a bucket
func assignSlots(points []models.MomentumPoint) {
	byBucket := make(map[string][]int)
	for i, p := range points {
		byBucket[p.Bucket] = append(byBucket[p.Bucket], i)
	}
	for _, idxs := range byBucket {
		if len(idxs) < 2 {
			continue
		}
		sort.SliceStable(idxs, func(a, b int) bool {
			return points[idxs[a]].Percent > points[idxs[b]].Percent
		})
		offsets := LayoutSlots(len(idxs))
		for rank, i := range idxs {
			points[i].Slot = offsets[rank]
		}
	}
}
