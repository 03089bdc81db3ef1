// ABOUTME: Tests for enum parsing at the store boundary
// ABOUTME: Verifies unknown variants are produced instead of silent fall-through

package models

import "testing"

func TestParseItemType(t *testing.T) {
	tests := []struct {
		raw  string
		want ItemType
	}{
		{"event", ItemTypeEvent},
		{"intention", ItemTypeIntention},
		{"commitment", ItemTypeCommitment},
		{"state", ItemTypeState},
		{"EVENT", ItemTypeEvent},
		{"  state ", ItemTypeState},
		{"goal", ItemTypeUnknown},
		{"", ItemTypeUnknown},
	}

	for _, tt := range tests {
		if got := ParseItemType(tt.raw); got != tt.want {
			t.Errorf("ParseItemType(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseUpdateType(t *testing.T) {
	tests := []struct {
		raw  string
		want UpdateType
	}{
		{"TOTAL", UpdateTotal},
		{"total", UpdateTotal},
		{"INCREMENT", UpdateIncrement},
		{"increment ", UpdateIncrement},
		{"delta", UpdateUnknown},
		{"", UpdateUnknown},
	}

	for _, tt := range tests {
		if got := ParseUpdateType(tt.raw); got != tt.want {
			t.Errorf("ParseUpdateType(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseTimeframe(t *testing.T) {
	if got := ParseTimeframe("weekly"); got != TimeframeWeekly {
		t.Errorf("ParseTimeframe(weekly) = %v, want weekly", got)
	}
	if got := ParseTimeframe("daily"); got != TimeframeDaily {
		t.Errorf("ParseTimeframe(daily) = %v, want daily", got)
	}
	// Anything unrecognized defaults to daily
	if got := ParseTimeframe("monthly"); got != TimeframeDaily {
		t.Errorf("ParseTimeframe(monthly) = %v, want daily", got)
	}
}
