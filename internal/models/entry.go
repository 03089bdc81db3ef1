// ABOUTME: ProgressEntry is one append-only ledger record of progress toward an intention
// ABOUTME: RawUpdate is the pre-validation shape produced by the check-in extractor
package models

import (
	"errors"
	"time"
)

// DateKeyFormat is the layout for day ledger keys (local time)
const DateKeyFormat = "2006-01-02"

// DateKey returns the ledger key for t in t's location
func DateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// RawUpdate is one progress update proposed by the check-in extractor,
// not yet validated or committed to the ledger.
type RawUpdate struct {
	IntentionID  string     `json:"intention_id"`
	Type         UpdateType `json:"type"`
	Amount       float64    `json:"amount"`
	Unit         string     `json:"unit"`
	Confidence   float64    `json:"confidence"`
	Evidence     string     `json:"evidence,omitempty"`
	StatedTime   *time.Time `json:"stated_time,omitempty"`
	TimeInferred bool       `json:"time_inferred,omitempty"`
}

// ProgressEntry is one committed ledger record. Entries are never mutated
// or deleted after creation.
type ProgressEntry struct {
	EntryID     string     `json:"entry_id"`
	DateKey     string     `json:"date_key"`
	IntentionID string     `json:"intention_id"`
	SetID       string     `json:"set_id"`
	Type        UpdateType `json:"type"`
	Amount      float64    `json:"amount"`
	Unit        string     `json:"unit"`
	Confidence  float64    `json:"confidence"`
	Evidence    string     `json:"evidence,omitempty"`
	CheckInID   string     `json:"check_in_id,omitempty"`
	// OccurredAt is the effective occurrence time: the user-stated time when
	// one was given, else the check-in's creation time
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewProgressEntry creates a ledger entry from a validated update
func NewProgressEntry(update RawUpdate, setID, checkInID string, occurredAt time.Time) (*ProgressEntry, error) {
	if update.IntentionID == "" {
		return nil, errors.New("progress entry requires an intention id")
	}
	if update.Type != UpdateTotal && update.Type != UpdateIncrement {
		return nil, errors.New("progress entry requires a TOTAL or INCREMENT update type")
	}
	return &ProgressEntry{
		EntryID:     generateID("ent"),
		DateKey:     DateKey(occurredAt),
		IntentionID: update.IntentionID,
		SetID:       setID,
		Type:        update.Type,
		Amount:      update.Amount,
		Unit:        update.Unit,
		Confidence:  update.Confidence,
		Evidence:    update.Evidence,
		CheckInID:   checkInID,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now(),
	}, nil
}
