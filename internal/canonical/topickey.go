// ABOUTME: Topic key builder for cross-session concept grouping
// ABOUTME: The key is the concept slug alone; category is metadata, never part of the key
package canonical

import (
	"sort"

	"github.com/harper/murmur/internal/textnorm"
)

// UncategorizedCategory is the primary-category fallback for items the
// extractor left uncategorized
const UncategorizedCategory = "uncategorized"

// categoryPriority is the explicit precedence list for picking a topic's
// primary category when an item carries several
var categoryPriority = []string{
	"health",
	"fitness",
	"mindfulness",
	"sleep",
	"work",
	"career",
	"finance",
	"learning",
	"relationships",
	"family",
	"home",
	"creative",
}

// PrimaryCategory selects one category for topic metadata: first match in
// the priority list, else the alphabetically first candidate, else
// "uncategorized"
func PrimaryCategory(categories []string) string {
	if len(categories) == 0 {
		return UncategorizedCategory
	}
	for _, known := range categoryPriority {
		for _, c := range categories {
			if c == known {
				return known
			}
		}
	}
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)
	return sorted[0]
}

// TopicKey builds the grouping key for a title. Category is excluded so
// the same concept merges into one topic even when the extractor assigns
// it inconsistent categories across sessions. The slug keeps repeated
// tokens, unlike the fingerprint stem which deduplicates them.
func TopicKey(title string) string {
	slug := textnorm.Slug(textnorm.Normalize(title), stemTokens)
	if slug == "" {
		return fallbackStem
	}
	return slug
}
