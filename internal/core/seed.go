// ABOUTME: First-run seeding of the default intention set
// ABOUTME: The seeded titles line up with the fallback parser's fixed vocabulary
package core

import (
	"fmt"
	"log"

	"github.com/harper/murmur/internal/extraction"
	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/storage/sqlite"
)

// defaultTargets maps fallback units to the seeded daily target
var defaultTargets = map[string]float64{
	"minutes": 30,
	"pages":   20,
}

// SeedDefaultIntentions ensures the named set exists and contains the
// default intentions the fallback parser resolves against. Existing
// intentions are left untouched; seeding is idempotent.
func SeedDefaultIntentions(store *sqlite.Storage, setName string) (*models.IntentionSet, error) {
	set, err := store.EnsureDefaultSet(setName)
	if err != nil {
		return nil, err
	}

	existing, err := store.Intentions().ListBySet(set.SetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list intentions for set %s: %w", set.SetID, err)
	}
	byTitle := make(map[string]bool, len(existing))
	for _, intent := range existing {
		byTitle[intent.Title] = true
	}

	for unit, title := range extraction.DefaultIntentionTitles {
		if byTitle[title] {
			continue
		}
		intent, err := models.NewIntention(set.SetID, title, defaultTargets[unit], unit, models.TimeframeDaily)
		if err != nil {
			return nil, err
		}
		if err := store.Intentions().Save(intent); err != nil {
			return nil, fmt.Errorf("failed to seed intention %q: %w", title, err)
		}
		log.Printf("[Seed] created default intention %q (%s %s)", title, intent.IntentionID, unit)
	}
	return set, nil
}
