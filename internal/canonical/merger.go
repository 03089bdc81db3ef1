// ABOUTME: Merger folds canonical items into topic aggregates
// ABOUTME: Fingerprint collisions under one topic key are logged and merged conservatively
package canonical

import (
	"log"

	"github.com/harper/murmur/internal/models"
)

// Merger applies canonical items to topic aggregates. It holds no state of
// its own; callers own loading and saving the aggregates.
type Merger struct{}

// NewMerger creates a Merger
func NewMerger() *Merger {
	return &Merger{}
}

// Apply folds item into existing (the aggregate currently stored under the
// item's topic key, or nil on first occurrence) and returns the aggregate
// to save. The caller must serialize Apply calls for the same topic key.
func (m *Merger) Apply(existing *models.TopicAggregate, item models.ExtractedItem) *models.TopicAggregate {
	key := TopicKey(item.Title)
	primary := PrimaryCategory(item.Categories)

	if existing == nil {
		agg := &models.TopicAggregate{
			TopicKey:        key,
			DisplayTitle:    item.Title,
			PrimaryCategory: primary,
			Occurrences:     1,
			ItemIDs:         []string{item.ItemID},
			Fingerprints:    []string{item.Fingerprint},
			FirstSeen:       item.ExtractedAt,
			LastSeen:        item.ExtractedAt,
		}
		for _, c := range item.Categories {
			agg.AddCategory(c)
		}
		return agg
	}

	// A new fingerprint landing on an existing topic key may be a genuine
	// rephrasing or a collision between distinct concepts. We can't tell
	// without semantics, so merge conservatively, log it, and leave
	// resolution to manual review.
	if item.Fingerprint != "" && !existing.HasFingerprint(item.Fingerprint) {
		log.Printf("[Merger] topic key %q collision: fingerprint %q joins aggregate with %v", key, item.Fingerprint, existing.Fingerprints)
		existing.Fingerprints = append(existing.Fingerprints, item.Fingerprint)
	}

	if !existing.HasItem(item.ItemID) {
		existing.ItemIDs = append(existing.ItemIDs, item.ItemID)
		existing.Occurrences++
	}
	for _, c := range item.Categories {
		existing.AddCategory(c)
	}
	if item.ExtractedAt.After(existing.LastSeen) {
		existing.LastSeen = item.ExtractedAt
	}
	if !item.ExtractedAt.IsZero() && (existing.FirstSeen.IsZero() || item.ExtractedAt.Before(existing.FirstSeen)) {
		existing.FirstSeen = item.ExtractedAt
	}
	return existing
}
