// ABOUTME: Tests for fingerprint stability and collision behavior
// ABOUTME: Verifies title-only derivation and the empty-stem fallback

package canonical

import (
	"strings"
	"testing"

	"github.com/harper/murmur/internal/models"
)

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint("Start working out in the mornings")
	b := Fingerprint("Start working out in the mornings")
	if a != b {
		t.Errorf("Fingerprint not stable: %q vs %q", a, b)
	}
}

func TestFingerprint_Format(t *testing.T) {
	fp := Fingerprint("Read more books")
	parts := strings.Split(fp, "__")
	if len(parts) != 2 {
		t.Fatalf("Fingerprint %q should have stem__hash6 form", fp)
	}
	if len(parts[1]) != 6 {
		t.Errorf("hash suffix %q should be 6 hex chars", parts[1])
	}
	for _, r := range parts[1] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("hash suffix %q contains non-hex rune %q", parts[1], r)
		}
	}
}

func TestFingerprint_TimeWordVariantsCollide(t *testing.T) {
	a := Fingerprint("work out today")
	b := Fingerprint("work out")
	if a != b {
		t.Errorf("time-word variants should collide: %q vs %q", a, b)
	}
}

func TestFingerprint_SynonymVariantsCollide(t *testing.T) {
	a := Fingerprint("go to the gym")
	b := Fingerprint("workout")
	if a != b {
		t.Errorf("synonym variants should collide: %q vs %q", a, b)
	}
}

func TestFingerprint_EmptyStemFallback(t *testing.T) {
	fp := Fingerprint("to be")
	if !strings.HasPrefix(fp, "item__") {
		t.Errorf("empty stem should fall back to item__, got %q", fp)
	}
	if fp != Fingerprint("") {
		t.Error("all empty-stem titles should share the fallback fingerprint")
	}
}

func TestFingerprint_DistinctTitlesDiffer(t *testing.T) {
	a := Fingerprint("read more books")
	b := Fingerprint("run every morning")
	if a == b {
		t.Errorf("distinct concepts should not collide: %q", a)
	}
}

func TestCanonicalize_OnlyFingerprintChanges(t *testing.T) {
	item := models.ExtractedItem{
		ItemID:     "item_1",
		Title:      "Start meditating",
		Summary:    "wants a meditation habit",
		Categories: []string{"mindfulness"},
		Quote:      "I want to start meditating every day",
		Confidence: 0.8,
	}

	got := Canonicalize(item)

	if got.Fingerprint == "" {
		t.Fatal("Canonicalize should set the fingerprint")
	}
	if got.Title != item.Title || got.Summary != item.Summary || got.Quote != item.Quote {
		t.Error("Canonicalize must not change other fields")
	}

	// The fingerprint must not depend on quote or categories
	altered := item
	altered.Quote = "completely different surrounding context"
	altered.Categories = []string{"health", "sleep"}
	if Canonicalize(altered).Fingerprint != got.Fingerprint {
		t.Error("fingerprint must be independent of quote and categories")
	}
}
