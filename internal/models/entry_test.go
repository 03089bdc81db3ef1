// ABOUTME: Tests for progress entry construction and date keys
// ABOUTME: Verifies validation and effective occurrence time handling

package models

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	at := time.Date(2026, 3, 7, 23, 45, 0, 0, time.Local)
	if got := DateKey(at); got != "2026-03-07" {
		t.Errorf("DateKey() = %q, want %q", got, "2026-03-07")
	}
}

func TestNewProgressEntry(t *testing.T) {
	occurred := time.Date(2026, 3, 7, 19, 30, 0, 0, time.Local)
	update := RawUpdate{
		IntentionID: "int_abc",
		Type:        UpdateIncrement,
		Amount:      15,
		Unit:        "minutes",
		Confidence:  0.9,
		Evidence:    "did fifteen minutes of reading",
	}

	entry, err := NewProgressEntry(update, "set_1", "chk_1", occurred)
	if err != nil {
		t.Fatalf("NewProgressEntry() error = %v", err)
	}

	if entry.EntryID == "" {
		t.Error("EntryID should be generated")
	}
	if entry.DateKey != "2026-03-07" {
		t.Errorf("DateKey = %q, want %q", entry.DateKey, "2026-03-07")
	}
	if entry.Type != UpdateIncrement {
		t.Errorf("Type = %v, want INCREMENT", entry.Type)
	}
	if !entry.OccurredAt.Equal(occurred) {
		t.Errorf("OccurredAt = %v, want %v", entry.OccurredAt, occurred)
	}
}

func TestNewProgressEntry_Validation(t *testing.T) {
	occurred := time.Now()

	if _, err := NewProgressEntry(RawUpdate{Type: UpdateTotal}, "set_1", "chk_1", occurred); err == nil {
		t.Error("expected error for missing intention id")
	}

	if _, err := NewProgressEntry(RawUpdate{IntentionID: "int_1", Type: UpdateUnknown}, "set_1", "chk_1", occurred); err == nil {
		t.Error("expected error for unknown update type")
	}
}

func TestNewIntention_Validation(t *testing.T) {
	if _, err := NewIntention("set_1", "", 10, "minutes", TimeframeDaily); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := NewIntention("set_1", "Read", -1, "pages", TimeframeDaily); err == nil {
		t.Error("expected error for negative target")
	}

	intent, err := NewIntention("set_1", "Read", 20, "pages", TimeframeWeekly)
	if err != nil {
		t.Fatalf("NewIntention() error = %v", err)
	}
	if !intent.Active {
		t.Error("new intentions should start active")
	}
	if intent.Timeframe != TimeframeWeekly {
		t.Errorf("Timeframe = %v, want weekly", intent.Timeframe)
	}
}

func TestNewCheckIn_Validation(t *testing.T) {
	if _, err := NewCheckIn("set_1", "   ", ""); err == nil {
		t.Error("expected error for empty transcript")
	}

	chk, err := NewCheckIn("set_1", "read for twenty minutes", "audio/rec1.m4a")
	if err != nil {
		t.Fatalf("NewCheckIn() error = %v", err)
	}
	if chk.CheckInID == "" {
		t.Error("CheckInID should be generated")
	}
}

func TestNewMoodEntry_Clamps(t *testing.T) {
	at := time.Now()
	if got := NewMoodEntry("chk_1", 3.0, "great", at); got.Valence != 1 {
		t.Errorf("Valence = %v, want clamp to 1", got.Valence)
	}
	if got := NewMoodEntry("chk_1", -2.5, "rough", at); got.Valence != -1 {
		t.Errorf("Valence = %v, want clamp to -1", got.Valence)
	}
}
