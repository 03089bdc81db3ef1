// ABOUTME: Canonical fingerprint builder for extracted item dedup
// ABOUTME: Derived from the normalized title only so quote context never shifts the key
package canonical

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/harper/murmur/internal/models"
	"github.com/harper/murmur/internal/textnorm"
)

const (
	stemTokens   = 4
	hashSuffix   = 6
	fallbackStem = "item"
)

// Fingerprint builds the stable dedup key for a title.
// The stem is the first 4 unique significant tokens of the normalized
// title; the suffix is the first 6 hex characters of the SHA-256 of the
// stem string. Categories and quotes are deliberately excluded: either
// varies run-to-run and would make the key drift.
func Fingerprint(title string) string {
	stem := textnorm.Stem(textnorm.Normalize(title), stemTokens)
	if stem == "" {
		stem = fallbackStem
	}
	sum := sha256.Sum256([]byte(stem))
	return stem + "__" + hex.EncodeToString(sum[:])[:hashSuffix]
}

// Canonicalize returns a copy of item with its canonical fingerprint set.
// All other fields pass through unchanged.
func Canonicalize(item models.ExtractedItem) models.ExtractedItem {
	item.Fingerprint = Fingerprint(item.Title)
	return item
}
