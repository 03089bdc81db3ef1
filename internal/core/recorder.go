// ABOUTME: Recorder runs the check-in pipeline from transcript to ledger
// ABOUTME: Applies clear updates immediately and holds ambiguous ones for the user
package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/harper/murmur/internal/extraction"
	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/momentum"
	"github.com/harper/murmur/internal/progress"
	"github.com/harper/murmur/internal/storage/sqlite"
)

// CheckInResult is the outcome of recording one check-in. Ambiguous
// updates have not been committed; the caller resolves them with
// ResolveAmbiguous (or drops them, which counts as skipping).
type CheckInResult struct {
	CheckIn   *models.CheckIn
	Applied   []models.ProgressEntry
	Ambiguous []models.RawUpdate
	Items     []models.ExtractedItem
	Topics    []models.TopicAggregate
}

// Recorder coordinates the understanding pipeline for incoming check-ins
type Recorder struct {
	storage   *sqlite.Storage
	progressX extraction.CheckInExtractor
	fallback  *extraction.FallbackParser
	queue     *extraction.Queue
}

// NewRecorder creates a Recorder wired to the given collaborators
func NewRecorder(store *sqlite.Storage, progressX extraction.CheckInExtractor, itemX extraction.Extractor) *Recorder {
	return &Recorder{
		storage:   store,
		progressX: progressX,
		fallback:  extraction.NewFallbackParser(),
		queue:     extraction.NewQueue(itemX),
	}
}

// RecordCheckIn saves a check-in, extracts progress updates and semantic
// items from its transcript, commits the clear updates to the ledger, and
// returns the ambiguous ones for user confirmation.
//
// Failed ledger and topic writes are logged with the failing key and
// swallowed: the result still reflects the attempted change, and retries
// are idempotent per id.
func (r *Recorder) RecordCheckIn(ctx context.Context, setID, transcript, audioRef string) (*CheckInResult, error) {
	chk, err := models.NewCheckIn(setID, transcript, audioRef)
	if err != nil {
		return nil, err
	}
	if err := r.storage.CheckIns().Save(chk); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	result := &CheckInResult{CheckIn: chk}

	intentions, err := r.storage.Intentions().ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list intentions: %w", err)
	}

	totals, targets := r.currentTotals(intentions, chk.CreatedAt)

	updates, err := r.progressX.ExtractProgress(ctx, transcript, intentions, totals)
	if err != nil {
		log.Printf("[Recorder] progress extraction failed for %s: %v", chk.CheckInID, err)
		updates = nil
	}

	if len(updates) == 0 {
		// Fallback updates carry a fixed low confidence and bypass
		// ambiguity checking entirely.
		updates = r.fallback.Parse(transcript, intentions)
		result.Applied = r.applyUpdates(updates, chk)
	} else {
		clear, ambiguous := progress.SplitUpdates(updates, totals, targets, chk.CreatedAt)
		result.Applied = r.applyUpdates(clear, chk)
		result.Ambiguous = ambiguous
	}

	items, topics := r.extractItems(ctx, chk)
	result.Items = items
	result.Topics = topics

	return result, nil
}

// ResolveAmbiguous commits the updates the user confirmed. Updates the
// user declined, or a canceled decision, are simply not passed in; an
// empty accepted list is a valid resolution meaning skip everything.
func (r *Recorder) ResolveAmbiguous(chk *models.CheckIn, accepted []models.RawUpdate) []models.ProgressEntry {
	return r.applyUpdates(accepted, chk)
}

// RecordMood attaches a mood sample to a check-in. Write failures are
// logged and swallowed like other non-essential stores.
func (r *Recorder) RecordMood(chk *models.CheckIn, valence float64, label string) *models.MoodEntry {
	mood := models.NewMoodEntry(chk.CheckInID, valence, label, chk.CreatedAt)
	if err := r.storage.Moods().Save(mood); err != nil {
		log.Printf("[Recorder] failed to save mood %s for check-in %s: %v", mood.MoodID, chk.CheckInID, err)
	}
	return mood
}

// applyUpdates appends ledger entries for the given updates. Invalid
// updates and failed writes are logged and skipped; everything that was
// attempted successfully is returned.
func (r *Recorder) applyUpdates(updates []models.RawUpdate, chk *models.CheckIn) []models.ProgressEntry {
	var applied []models.ProgressEntry
	for _, u := range updates {
		occurredAt := momentum.EffectiveTime(u, chk.CreatedAt)
		entry, err := models.NewProgressEntry(u, chk.SetID, chk.CheckInID, occurredAt)
		if err != nil {
			log.Printf("[Recorder] dropping invalid update for intention %q: %v", u.IntentionID, err)
			continue
		}
		if err := r.storage.Entries().Append(entry); err != nil {
			log.Printf("[Recorder] failed to append entry %s (intention %s, date %s): %v",
				entry.EntryID, entry.IntentionID, entry.DateKey, err)
		}
		applied = append(applied, *entry)
	}
	return applied
}

// extractItems runs the transcript through the single-flight extraction
// queue and persists whatever comes back. Extraction failure degrades to
// no items, never an error.
func (r *Recorder) extractItems(ctx context.Context, chk *models.CheckIn) ([]models.ExtractedItem, []models.TopicAggregate) {
	key := extraction.WorkKey{SessionID: chk.CheckInID, SegmentID: "transcript"}
	flight := r.queue.Enqueue(key, chk.Transcript, "")

	items, err := flight.Wait(ctx)
	if err != nil {
		log.Printf("[Recorder] item extraction failed for %s: %v", chk.CheckInID, err)
		return nil, nil
	}

	var topics []models.TopicAggregate
	for i := range items {
		topic, err := r.storage.StoreItem(&items[i])
		if err != nil {
			log.Printf("[Recorder] failed to store item %s (fingerprint %s): %v",
				items[i].ItemID, items[i].Fingerprint, err)
			continue
		}
		topics = append(topics, *topic)
	}
	return items, topics
}

// currentTotals computes today's running total and the target for each
// active intention, keyed by intention id
func (r *Recorder) currentTotals(intentions []models.Intention, now time.Time) (totals, targets map[string]float64) {
	totals = make(map[string]float64, len(intentions))
	targets = make(map[string]float64, len(intentions))

	dateKey := models.DateKey(now)
	entries, err := r.storage.Entries().ListByDate(dateKey)
	if err != nil {
		log.Printf("[Recorder] failed to load entries for %s: %v", dateKey, err)
		entries = nil
	}

	for _, intent := range intentions {
		totals[intent.IntentionID] = progress.TotalForIntention(entries, dateKey, intent.IntentionID, intent.SetID, nil)
		targets[intent.IntentionID] = intent.Target
	}
	return totals, targets
}
