// ABOUTME: Discrete strength scorer for extracted items
// ABOUTME: Importance only; occurrence counting lives in topic aggregates, never here
package classify

import "strings"

const (
	// StrengthMin and StrengthMax bound every score this package produces
	StrengthMin = 0.20
	StrengthMax = 0.65

	strengthStrong   = 0.60
	strengthModerate = 0.50
	strengthWeak     = 0.25
	strengthMood     = 0.35
	strengthDefault  = 0.40
)

var strongPhrases = []string{"must", "need to", "have to", "will"}

var moderatePhrases = []string{"want to", "plan to", "planning to", "going to"}

var weakPhrases = []string{"maybe", "might", "consider", "someday", "at some point"}

var moodWords = []string{
	"feeling", "felt", "mood", "anxious", "stressed", "tired", "happy",
	"sad", "overwhelmed", "calm", "excited", "grateful", "frustrated",
}

// Strength scores an item's importance from its quote+title. Tiers are
// checked in priority order with the first match winning; anything else
// gets the default. The result always lies in [0.20, 0.65].
func Strength(title, quote string) float64 {
	text := strings.ToLower(quote + " " + title)

	score := strengthDefault
	switch {
	case matchesAny(text, strongPhrases):
		score = strengthStrong
	case matchesAny(text, moderatePhrases):
		score = strengthModerate
	case matchesAny(text, weakPhrases):
		score = strengthWeak
	case matchesAny(text, moodWords):
		score = strengthMood
	}

	if score < StrengthMin {
		score = StrengthMin
	}
	if score > StrengthMax {
		score = StrengthMax
	}
	return score
}
