// ABOUTME: Tests for raw candidate canonicalization
// ABOUTME: Verifies classifier/scorer overrides and field pass-through

package extraction

import (
	"testing"

	"github.com/harper/murmur/internal/models"
)

func TestPipeline_Canonicalize(t *testing.T) {
	p := NewPipeline()
	raw := []models.RawCandidateItem{
		{
			Type:        "state",
			Title:       "read more",
			Summary:     "wants to read more",
			Categories:  []string{"learning"},
			Confidence:  0.9,
			Strength:    0.99, // advisory, must be rescored
			Quote:       "I want to read more",
			Fingerprint: "bogus-advisory-key",
		},
	}

	items := p.Canonicalize(raw, "chk_1")
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	item := items[0]

	if item.Type != models.ItemTypeIntention {
		t.Errorf("Type = %v, want intention (deterministic override of %q)", item.Type, raw[0].Type)
	}
	if item.Strength != 0.50 {
		t.Errorf("Strength = %v, want rescored 0.50 for \"want to\"", item.Strength)
	}
	if item.Fingerprint == "bogus-advisory-key" || item.Fingerprint == "" {
		t.Errorf("Fingerprint = %q, advisory fingerprint must be replaced", item.Fingerprint)
	}
	if item.ReviewState != models.ReviewPending {
		t.Errorf("ReviewState = %v, want pending", item.ReviewState)
	}
	if item.CheckInID != "chk_1" {
		t.Errorf("CheckInID = %q, want chk_1", item.CheckInID)
	}
	if item.Summary != raw[0].Summary || item.Quote != raw[0].Quote {
		t.Error("summary and quote should pass through unchanged")
	}
}

func TestPipeline_DropsEmptyTitles(t *testing.T) {
	p := NewPipeline()
	raw := []models.RawCandidateItem{
		{Title: "", Quote: "mumbling"},
		{Title: "morning run", Type: "intention"},
	}

	items := p.Canonicalize(raw, "chk_1")
	if len(items) != 1 {
		t.Errorf("len(items) = %d, want 1 (empty titles dropped)", len(items))
	}
}

func TestPipeline_ConfidenceClamped(t *testing.T) {
	p := NewPipeline()
	raw := []models.RawCandidateItem{
		{Title: "a thing happened", Confidence: 1.7},
		{Title: "another thing", Confidence: -0.3},
	}

	items := p.Canonicalize(raw, "chk_1")
	if items[0].Confidence != 1 {
		t.Errorf("Confidence = %v, want clamp to 1", items[0].Confidence)
	}
	if items[1].Confidence != 0 {
		t.Errorf("Confidence = %v, want clamp to 0", items[1].Confidence)
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	p := NewPipeline()
	if items := p.Canonicalize(nil, "chk_1"); len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}
