// ABOUTME: Tests for the text normalizer's fixed step ordering
// ABOUTME: Verifies phrase rules, synonyms, time-word and stopword filtering

package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize_PhraseReplacement(t *testing.T) {
	got := Normalize("Going to work out at the gym")
	// "going to" -> "will" (stopword), "work out" -> "workout", "gym" -> "workout"
	want := []string{"workout", "workout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_PhraseNeedsWordBoundaries(t *testing.T) {
	// "work out" must not match inside "network outage"
	got := Normalize("the network outage lasted hours")
	want := []string{"network", "outage", "lasted", "hours"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_AdjacentPhrases(t *testing.T) {
	got := Normalize("work out, work out")
	want := []string{"workout", "workout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_TimeWordsDroppedBeforeLengthFilter(t *testing.T) {
	// "am" is shorter than the length filter but must be dropped as a time
	// word, not kept by accident of ordering
	got := Normalize("meditate at 7 am daily")
	want := []string{"meditate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_TimeVariantsCollapse(t *testing.T) {
	a := Normalize("work out today")
	b := Normalize("work out")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("time-word variants should normalize identically: %v vs %v", a, b)
	}
}

func TestNormalize_PunctuationAndCase(t *testing.T) {
	got := Normalize("Read, READ... read!!")
	want := []string{"read", "read", "read"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_Synonyms(t *testing.T) {
	got := Normalize("sorted out my finances")
	want := []string{"sorted", "out", "finance"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize("the a an to"); len(got) != 0 {
		t.Errorf("Normalize() = %v, want empty", got)
	}
	if got := Normalize(""); len(got) != 0 {
		t.Errorf("Normalize(\"\") = %v, want empty", got)
	}
}

func TestSlug_KeepsDuplicates(t *testing.T) {
	got := Slug([]string{"run", "club", "fast", "run", "pace"}, 4)
	if got != "run-club-fast-run" {
		t.Errorf("Slug() = %q, want %q", got, "run-club-fast-run")
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		max    int
		want   string
	}{
		{"dedup preserves encounter order", []string{"read", "pages", "read", "night"}, 4, "read-pages-night"},
		{"caps at max unique tokens", []string{"a", "b", "c", "d", "e"}, 4, "a-b-c-d"},
		{"empty tokens", nil, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stem(tt.tokens, tt.max); got != tt.want {
				t.Errorf("Stem(%v) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}
