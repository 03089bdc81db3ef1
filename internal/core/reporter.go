// ABOUTME: Reporter builds read-side views over the ledger and check-in log
// ABOUTME: Day summaries, momentum series, and streaks, all recomputed on demand
package core

import (
	"fmt"
	"time"

	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/momentum"
	"github.com/harper/murmur/internal/progress"
	"github.com/harper/murmur/internal/storage/sqlite"
)

// IntentionProgress is one intention's standing for a day
type IntentionProgress struct {
	Intention models.Intention `json:"intention"`
	Total     float64          `json:"total"`
	Percent   float64          `json:"percent"`
}

// DaySummary is the full read-side view for one day
type DaySummary struct {
	DateKey    string              `json:"date_key"`
	Intentions []IntentionProgress `json:"intentions"`
	Overall    float64             `json:"overall"`
	Moods      []models.MoodEntry  `json:"moods"`
}

// Reporter answers read queries; it never mutates the store
type Reporter struct {
	storage *sqlite.Storage
	loc     *time.Location
}

// NewReporter creates a Reporter reporting in the given location.
// A nil location means local time.
func NewReporter(store *sqlite.Storage, loc *time.Location) *Reporter {
	if loc == nil {
		loc = time.Local
	}
	return &Reporter{storage: store, loc: loc}
}

// Day builds the summary for the day containing t
func (r *Reporter) Day(t time.Time) (*DaySummary, error) {
	dateKey := models.DateKey(t.In(r.loc))

	intentions, err := r.storage.Intentions().ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list intentions: %w", err)
	}
	entries, err := r.storage.Entries().ListByDate(dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for %s: %w", dateKey, err)
	}
	moods, err := r.storage.Moods().ListByDate(dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load moods for %s: %w", dateKey, err)
	}

	summary := &DaySummary{DateKey: dateKey, Moods: moods}
	totals := make(map[string]float64, len(intentions))
	for _, intent := range intentions {
		total := progress.TotalForIntention(entries, dateKey, intent.IntentionID, intent.SetID, nil)
		totals[intent.IntentionID] = total
		summary.Intentions = append(summary.Intentions, IntentionProgress{
			Intention: intent,
			Total:     total,
			Percent:   progress.PercentComplete(total, intent.Target, intent.Timeframe),
		})
	}
	summary.Overall = progress.OverallPercentComplete(intentions, totals)
	return summary, nil
}

// DayMomentum builds the chart-ready momentum series for the day
// containing t
func (r *Reporter) DayMomentum(t time.Time) (*models.DayMomentum, error) {
	dateKey := models.DateKey(t.In(r.loc))

	intentions, err := r.storage.Intentions().ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list intentions: %w", err)
	}
	entries, err := r.storage.Entries().ListByDate(dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for %s: %w", dateKey, err)
	}

	points := momentum.DayPoints(entries, intentions, dateKey)

	totals := make(map[string]float64, len(intentions))
	for _, intent := range intentions {
		totals[intent.IntentionID] = progress.TotalForIntention(entries, dateKey, intent.IntentionID, intent.SetID, nil)
	}

	return &models.DayMomentum{
		DateKey: dateKey,
		Points:  points,
		Overall: progress.OverallPercentComplete(intentions, totals),
	}, nil
}

// Week builds the 7-day momentum rollup for the week containing t,
// weeks starting Monday
func (r *Reporter) Week(t time.Time) (*models.WeekMomentum, error) {
	now := t.In(r.loc)
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 6)

	intentions, err := r.storage.Intentions().ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list intentions: %w", err)
	}
	entries, err := r.storage.Entries().ListRange(models.DateKey(weekStart), models.DateKey(weekEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for week of %s: %w", models.DateKey(weekStart), err)
	}

	week := momentum.Week(entries, intentions, weekStart, now)
	return &week, nil
}

// Streak counts consecutive check-in days ending at t's day
func (r *Reporter) Streak(t time.Time) (int, error) {
	// The walk is bounded to 30 days, so a 31-day fetch window covers it
	since := t.In(r.loc).AddDate(0, 0, -31)
	checkIns, err := r.storage.CheckIns().ListSince(since)
	if err != nil {
		return 0, fmt.Errorf("failed to load check-ins: %w", err)
	}
	return momentum.Streak(checkIns, t, r.loc), nil
}

// startOfWeek returns local midnight of the Monday of t's week
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
