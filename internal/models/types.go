// ABOUTME: Closed enum types shared across the understanding pipeline
// ABOUTME: String-typed fields from the LLM are validated into these at the store boundary
package models

import "strings"

// ItemType classifies an extracted semantic item
type ItemType string

const (
	ItemTypeEvent      ItemType = "event"
	ItemTypeIntention  ItemType = "intention"
	ItemTypeCommitment ItemType = "commitment"
	ItemTypeState      ItemType = "state"

	// ItemTypeUnknown is the forward-compatibility variant for values
	// this build does not recognize
	ItemTypeUnknown ItemType = "unknown"
)

// ParseItemType validates a raw string into an ItemType
// Unrecognized values map to ItemTypeUnknown rather than erroring
func ParseItemType(raw string) ItemType {
	switch ItemType(strings.ToLower(strings.TrimSpace(raw))) {
	case ItemTypeEvent:
		return ItemTypeEvent
	case ItemTypeIntention:
		return ItemTypeIntention
	case ItemTypeCommitment:
		return ItemTypeCommitment
	case ItemTypeState:
		return ItemTypeState
	default:
		return ItemTypeUnknown
	}
}

// UpdateType distinguishes absolute-value from additive-delta progress updates
type UpdateType string

const (
	UpdateTotal     UpdateType = "TOTAL"
	UpdateIncrement UpdateType = "INCREMENT"

	// UpdateUnknown covers unrecognized update types; downstream math
	// treats these as inert
	UpdateUnknown UpdateType = "unknown"
)

// ParseUpdateType validates a raw string into an UpdateType
func ParseUpdateType(raw string) UpdateType {
	switch UpdateType(strings.ToUpper(strings.TrimSpace(raw))) {
	case UpdateTotal:
		return UpdateTotal
	case UpdateIncrement:
		return UpdateIncrement
	default:
		return UpdateUnknown
	}
}

// Timeframe is the cadence of an intention's target
type Timeframe string

const (
	TimeframeDaily  Timeframe = "daily"
	TimeframeWeekly Timeframe = "weekly"
)

// ParseTimeframe validates a raw string into a Timeframe, defaulting to daily
func ParseTimeframe(raw string) Timeframe {
	if Timeframe(strings.ToLower(strings.TrimSpace(raw))) == TimeframeWeekly {
		return TimeframeWeekly
	}
	return TimeframeDaily
}

// ReviewState tracks the user's review decision on an extracted item
type ReviewState string

const (
	ReviewPending   ReviewState = "pending"
	ReviewKept      ReviewState = "kept"
	ReviewDismissed ReviewState = "dismissed"
)

// WeekTier is the 5-tier scale for a day's momentum in the week view
type WeekTier string

const (
	TierVeryLow WeekTier = "very-low"
	TierLow     WeekTier = "low"
	TierNeutral WeekTier = "neutral"
	TierGood    WeekTier = "good"
	TierGreat   WeekTier = "great"

	// TierNoData marks future days, distinct from a zero-progress day
	TierNoData WeekTier = "no-data"
)
