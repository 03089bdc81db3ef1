// ABOUTME: ExtractedItem is a canonicalized semantic record derived from a transcript
// ABOUTME: RawCandidateItem is the pre-canonical shape produced by the LLM extractor
package models

import "time"

// RawCandidateItem is one best-effort extraction result from the LLM.
// Its fingerprint field is advisory only; the canonical fingerprint is
// always recomputed by the pipeline.
type RawCandidateItem struct {
	Type          string             `json:"type"`
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	Categories    []string           `json:"categories"`
	Confidence    float64            `json:"confidence"`
	Strength      float64            `json:"strength"`
	Quote         string             `json:"quote"`
	ContextBefore string             `json:"context_before,omitempty"`
	ContextAfter  string             `json:"context_after,omitempty"`
	Fingerprint   string             `json:"fingerprint,omitempty"`
	Calendar      *CalendarCandidate `json:"calendar,omitempty"`
}

// CalendarCandidate is an optional calendar-event suggestion attached to a
// raw item by the extractor
type CalendarCandidate struct {
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end,omitempty"`
	AllDay bool      `json:"all_day"`
	Notes  string    `json:"notes,omitempty"`
}

// ExtractedItem is an immutable canonical record. Only ReviewState may
// change after canonicalization.
type ExtractedItem struct {
	ItemID        string             `json:"item_id"`
	CheckInID     string             `json:"check_in_id"`
	Type          ItemType           `json:"type"`
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	Categories    []string           `json:"categories"`
	Confidence    float64            `json:"confidence"`
	Strength      float64            `json:"strength"`
	Quote         string             `json:"quote"`
	ContextBefore string             `json:"context_before,omitempty"`
	ContextAfter  string             `json:"context_after,omitempty"`
	Fingerprint   string             `json:"fingerprint"`
	Calendar      *CalendarCandidate `json:"calendar,omitempty"`
	ReviewState   ReviewState        `json:"review_state"`
	ExtractedAt   time.Time          `json:"extracted_at"`
	CreatedAt     time.Time          `json:"created_at"`
}
