// ABOUTME: Deterministic type classifier overriding the LLM-suggested item type
// ABOUTME: Four pattern families checked in strict priority order, first match wins
package classify

import (
	"strings"

	"github.com/harper/murmur/internal/models"
)

// eventMarkers indicate a scheduled occurrence
var eventMarkers = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"meeting", "appointment", "deadline", "interview", "flight",
	"tomorrow", "next week", "at 1", "at 2", "at 3", "at 4", "at 5",
	"at 6", "at 7", "at 8", "at 9", "at 0",
}

// commitmentMarkers are deliberately conservative: only explicit promises
// count, never bare "I need to" / "I have to"
var commitmentMarkers = []string{
	"i promised", "i swore", "agreed to", "committed to", "due by",
	"i owe", "gave my word",
}

// stateMarkers indicate present-tense factual observations
var stateMarkers = []string{
	"started", "got a", "got the", "is now", "currently", "feeling",
	"been feeling", "i am now", "these days", "lately",
}

// intentionMarkers indicate desires and plans
var intentionMarkers = []string{
	"want to", "wanting to", "planning to", "plan to", "i need to",
	"i have to", "maybe", "i'll", "i will", "hope to", "thinking about",
	"would like to", "trying to",
}

// ItemType overrides the LLM-suggested type when a pattern family matches
// the item's quote+title. Families are evaluated in strict priority order
// (event > commitment > state > intention); if none match, the suggestion
// survives.
func ItemType(suggested models.ItemType, title, quote string) models.ItemType {
	text := strings.ToLower(quote + " " + title)

	if matchesAny(text, eventMarkers) {
		return models.ItemTypeEvent
	}
	if matchesAny(text, commitmentMarkers) {
		return models.ItemTypeCommitment
	}
	if matchesAny(text, stateMarkers) {
		return models.ItemTypeState
	}
	if matchesAny(text, intentionMarkers) {
		return models.ItemTypeIntention
	}
	return suggested
}

func matchesAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
