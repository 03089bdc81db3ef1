// ABOUTME: Shared scan/encode helpers for the SQLite stores
// ABOUTME: JSON-encodes string slices into TEXT columns
package sqlite

import (
	"database/sql"
	"encoding/json"
)

// nullString converts an empty string to NULL for storage
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// stringOrEmpty unwraps a NullString
func stringOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// encodeStrings JSON-encodes a string slice, returning "" for empty input
func encodeStrings(values []string) string {
	if len(values) == 0 {
		return ""
	}
	data, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(data)
}

// decodeStrings decodes a JSON-encoded string slice, tolerating empty input
func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
