// ABOUTME: Deterministic text normalization feeding fingerprints and topic keys
// ABOUTME: Step order is fixed; reordering changes which tokens survive
package textnorm

import (
	"strings"
	"unicode"
)

const minTokenLen = 3

// Normalize reduces free text to its ordered significant tokens.
//
// Steps, in fixed order: lowercase; strip punctuation and collapse
// whitespace; ordered phrase replacements; tokenize; single-token synonyms;
// drop time/frequency words (before the length filter, so short time words
// like "am" never survive); drop stopwords; drop tokens shorter than 3
// characters.
func Normalize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := stripPunctuation(lowered)

	// Pad and collapse whitespace so phrase matches anchor on whole
	// words; "work out" must not fire inside "network outage".
	padded := " " + strings.Join(strings.Fields(cleaned), " ") + " "
	for _, r := range phraseReplacements {
		padded = replacePhrase(padded, r.from, r.to)
	}

	var tokens []string
	for _, tok := range strings.Fields(padded) {
		if canonical, ok := synonyms[tok]; ok {
			tok = canonical
		}
		if timeWords[tok] {
			continue
		}
		if stopwords[tok] {
			continue
		}
		if len(tok) < minTokenLen {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// replacePhrase rewrites space-anchored occurrences of from. The input
// must carry leading and trailing spaces with interior whitespace
// collapsed. Re-scans because a replacement consumes the space an
// adjacent occurrence needs as its anchor.
func replacePhrase(s, from, to string) string {
	from = " " + from + " "
	to = " " + to + " "
	for strings.Contains(s, from) {
		s = strings.ReplaceAll(s, from, to)
	}
	return s
}

// Stem joins the first max unique tokens (encounter order) with hyphens
func Stem(tokens []string, max int) string {
	seen := make(map[string]bool, max)
	var kept []string
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		kept = append(kept, tok)
		if len(kept) == max {
			break
		}
	}
	return strings.Join(kept, "-")
}

// Slug joins the first max tokens with hyphens without deduplicating.
// Unlike Stem, repeated tokens occupy slots.
func Slug(tokens []string, max int) string {
	if len(tokens) > max {
		tokens = tokens[:max]
	}
	return strings.Join(tokens, "-")
}

// stripPunctuation replaces non-alphanumeric runes with spaces, which also
// collapses whitespace once the result is re-tokenized
func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}
