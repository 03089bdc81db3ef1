// ABOUTME: TopicAggregate groups recurring concepts across check-in sessions
// ABOUTME: Keyed by concept slug only so inconsistent categorization still merges
package models

import "time"

// TopicAggregate is the cross-session rollup for one topic key.
// Aggregates are never deleted, only merged into.
type TopicAggregate struct {
	TopicKey        string    `json:"topic_key"`
	DisplayTitle    string    `json:"display_title"`
	PrimaryCategory string    `json:"primary_category"`
	Categories      []string  `json:"categories"`
	Occurrences     int       `json:"occurrences"`
	ItemIDs         []string  `json:"item_ids"`
	Fingerprints    []string  `json:"fingerprints"`
	FirstSeen       time.Time `json:"first_seen"`
	LastSeen        time.Time `json:"last_seen"`
}

// HasItem reports whether the aggregate already records the given item
func (t *TopicAggregate) HasItem(itemID string) bool {
	for _, id := range t.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// HasFingerprint reports whether the aggregate already saw this fingerprint
func (t *TopicAggregate) HasFingerprint(fp string) bool {
	for _, f := range t.Fingerprints {
		if f == fp {
			return true
		}
	}
	return false
}

// AddCategory records a category if not already present, preserving order
func (t *TopicAggregate) AddCategory(category string) {
	if category == "" {
		return
	}
	for _, c := range t.Categories {
		if c == category {
			return
		}
	}
	t.Categories = append(t.Categories, category)
}
