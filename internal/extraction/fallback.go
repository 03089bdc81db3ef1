// ABOUTME: Deterministic fallback parser for check-in progress updates
// ABOUTME: Activates only when the LLM extractor returns zero updates
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/harper/murmur/internal/models"
)

// FallbackConfidence is the fixed confidence for fallback updates. They
// are always treated as clear: never routed through ambiguity checking.
const FallbackConfidence = 0.35

// DefaultIntentionTitles maps the fallback vocabulary units to the default
// intention titles they resolve against
var DefaultIntentionTitles = map[string]string{
	"minutes": "Move",
	"pages":   "Read",
}

// fallbackPatterns is ordered so parse output is deterministic
var fallbackPatterns = []struct {
	unit    string
	pattern *regexp.Regexp
}{
	{"minutes", regexp.MustCompile(`(\d+)\s*(?:minutes|mins|min)\b`)},
	{"pages", regexp.MustCompile(`(\d+)\s*(?:pages|page)\b`)},
}

// FallbackParser pattern-matches a fixed vocabulary against the transcript
// when the LLM check-in extractor found nothing
type FallbackParser struct{}

// NewFallbackParser creates a FallbackParser
func NewFallbackParser() *FallbackParser {
	return &FallbackParser{}
}

// Parse extracts best-effort INCREMENT updates from the transcript. Each
// recognized unit resolves to the matching default intention: by default
// title first, then by unit alone. Units with no matching intention are
// skipped.
func (p *FallbackParser) Parse(transcript string, intentions []models.Intention) []models.RawUpdate {
	text := strings.ToLower(transcript)

	var updates []models.RawUpdate
	for _, fp := range fallbackPatterns {
		unit := fp.unit
		match := fp.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		amount, err := strconv.ParseFloat(match[1], 64)
		if err != nil || amount <= 0 {
			continue
		}

		intent := resolveIntention(intentions, unit)
		if intent == nil {
			continue
		}

		updates = append(updates, models.RawUpdate{
			IntentionID: intent.IntentionID,
			Type:        models.UpdateIncrement,
			Amount:      amount,
			Unit:        unit,
			Confidence:  FallbackConfidence,
			Evidence:    match[0],
		})
	}
	return updates
}

// resolveIntention finds the active intention for a fallback unit,
// preferring the default title
func resolveIntention(intentions []models.Intention, unit string) *models.Intention {
	defaultTitle := DefaultIntentionTitles[unit]

	var byUnit *models.Intention
	for i := range intentions {
		intent := &intentions[i]
		if !intent.Active {
			continue
		}
		if strings.EqualFold(intent.Title, defaultTitle) {
			return intent
		}
		if byUnit == nil && strings.EqualFold(intent.Unit, unit) {
			byUnit = intent
		}
	}
	return byUnit
}
