// ABOUTME: Streak calculator: consecutive qualifying days ending today
// ABOUTME: A day qualifies when at least one check-in exists for it (local calendar day)
package momentum

import (
	"time"

	"github.com/harper/murmur/internal/models"
)

// maxStreakWindow bounds the backward walk
const maxStreakWindow = 30

// Streak counts consecutive days with at least one check-in, walking
// backward from today in loc for at most 30 days. The walk stops at the
// first non-qualifying day; if today has no check-in the streak is 0
// regardless of any earlier run.
func Streak(checkIns []models.CheckIn, today time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}

	days := make(map[string]bool, len(checkIns))
	for _, c := range checkIns {
		days[c.CreatedAt.In(loc).Format(models.DateKeyFormat)] = true
	}

	streak := 0
	day := today.In(loc)
	for i := 0; i < maxStreakWindow; i++ {
		if !days[day.Format(models.DateKeyFormat)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
