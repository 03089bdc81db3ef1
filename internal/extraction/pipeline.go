// ABOUTME: Canonicalization pipeline turning raw candidates into stable items
// ABOUTME: Normalizer, type classifier, strength scorer, and fingerprint in one pass
package extraction

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harper/murmur/internal/canonical"
	"github.com/harper/murmur/internal/classify"
	"github.com/harper/murmur/internal/models"
)

// Pipeline canonicalizes raw extraction output. It is stateless; every
// method is safe for concurrent use.
type Pipeline struct{}

// NewPipeline creates a Pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Canonicalize converts raw candidates into canonical items: the LLM's
// type suggestion is overridden by the deterministic classifier, strength
// is rescored, and the advisory fingerprint is replaced by the canonical
// one. Candidates with empty titles are dropped.
func (p *Pipeline) Canonicalize(raw []models.RawCandidateItem, checkInID string) []models.ExtractedItem {
	now := time.Now()
	items := make([]models.ExtractedItem, 0, len(raw))
	for _, r := range raw {
		if r.Title == "" {
			continue
		}
		item := models.ExtractedItem{
			ItemID:        generateItemID(),
			CheckInID:     checkInID,
			Type:          classify.ItemType(models.ParseItemType(r.Type), r.Title, r.Quote),
			Title:         r.Title,
			Summary:       r.Summary,
			Categories:    r.Categories,
			Confidence:    clamp01(r.Confidence),
			Strength:      classify.Strength(r.Title, r.Quote),
			Quote:         r.Quote,
			ContextBefore: r.ContextBefore,
			ContextAfter:  r.ContextAfter,
			Calendar:      r.Calendar,
			ReviewState:   models.ReviewPending,
			ExtractedAt:   now,
			CreatedAt:     now,
		}
		items = append(items, canonical.Canonicalize(item))
	}
	return items
}

func generateItemID() string {
	return fmt.Sprintf("item_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
