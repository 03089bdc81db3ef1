// ABOUTME: Fixed vocabulary tables for the text normalizer
// ABOUTME: Phrase replacements are ordered; all lookups assume lowercased input
package textnorm

// phraseReplacement rewrites a multi-word phrase before tokenization.
// Order matters: earlier rules see the raw text, later rules see the
// output of earlier ones.
type phraseReplacement struct {
	from string
	to   string
}

var phraseReplacements = []phraseReplacement{
	{"work out", "workout"},
	{"working out", "workout"},
	{"worked out", "workout"},
	{"going to", "will"},
	{"gonna", "will"},
	{"check in", "checkin"},
	{"checked in", "checkin"},
	{"wake up", "wakeup"},
	{"waking up", "wakeup"},
	{"screen time", "screentime"},
	{"to do", "todo"},
	{"follow up", "followup"},
}

// synonyms maps single tokens onto their canonical form
var synonyms = map[string]string{
	"gym":        "workout",
	"exercise":   "workout",
	"exercising": "workout",
	"training":   "workout",
	"jog":        "run",
	"jogging":    "run",
	"running":    "run",
	"finances":   "finance",
	"financial":  "finance",
	"money":      "finance",
	"meditating": "meditate",
	"meditation": "meditate",
	"reading":    "read",
	"books":      "read",
	"book":       "read",
	"writing":    "write",
	"journal":    "write",
	"journaling": "write",
	"sleeping":   "sleep",
	"slept":      "sleep",
	"eating":     "eat",
	"ate":        "eat",
	"walking":    "walk",
	"walked":     "walk",
}

// timeWords are time/frequency tokens dropped regardless of length.
// Checked before the length filter so short ones never slip through.
var timeWords = map[string]bool{
	"today":     true,
	"tonight":   true,
	"tomorrow":  true,
	"yesterday": true,
	"daily":     true,
	"weekly":    true,
	"monthly":   true,
	"morning":   true,
	"afternoon": true,
	"evening":   true,
	"night":     true,
	"this":      true,
	"next":      true,
	"last":      true,
	"week":      true,
	"month":     true,
	"year":      true,
	"am":        true,
	"pm":        true,
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

var stopwords = map[string]bool{
	"the":    true,
	"a":      true,
	"an":     true,
	"and":    true,
	"or":     true,
	"but":    true,
	"of":     true,
	"to":     true,
	"in":     true,
	"on":     true,
	"at":     true,
	"for":    true,
	"with":   true,
	"about":  true,
	"into":   true,
	"my":     true,
	"me":     true,
	"i":      true,
	"im":     true,
	"ive":    true,
	"ill":    true,
	"its":    true,
	"it":     true,
	"is":     true,
	"are":    true,
	"was":    true,
	"were":   true,
	"be":     true,
	"been":   true,
	"being":  true,
	"have":   true,
	"has":    true,
	"had":    true,
	"do":     true,
	"does":   true,
	"did":    true,
	"will":   true,
	"would":  true,
	"should": true,
	"could":  true,
	"want":   true,
	"need":   true,
	"really": true,
	"very":   true,
	"just":   true,
	"some":   true,
	"more":   true,
	"that":   true,
	"than":   true,
	"then":   true,
	"so":     true,
	"not":    true,
	"get":    true,
	"got":    true,
	"go":     true,
	"going":  true,
}
