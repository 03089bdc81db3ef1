// ABOUTME: Intention is a user-defined trackable goal with a numeric target
// ABOUTME: IntentionSet groups the intentions a check-in reports against
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intention is a trackable goal. Its ID is stable across edits that only
// change field values.
type Intention struct {
	IntentionID string    `json:"intention_id"`
	SetID       string    `json:"set_id"`
	Title       string    `json:"title"`
	Target      float64   `json:"target"`
	Unit        string    `json:"unit"`
	Timeframe   Timeframe `json:"timeframe"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IntentionSet is a named group of intentions
type IntentionSet struct {
	SetID     string    `json:"set_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewIntentionSet creates a named intention set
func NewIntentionSet(name string) *IntentionSet {
	return &IntentionSet{
		SetID:     generateID("set"),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// NewIntention creates an Intention with validation
func NewIntention(setID, title string, target float64, unit string, tf Timeframe) (*Intention, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("intention title cannot be empty")
	}
	if target < 0 {
		return nil, fmt.Errorf("intention target cannot be negative, got %v", target)
	}
	now := time.Now()
	return &Intention{
		IntentionID: generateID("int"),
		SetID:       setID,
		Title:       title,
		Target:      target,
		Unit:        unit,
		Timeframe:   tf,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// generateID builds a prefixed unique identifier in the form
// <prefix>_<yyyymmdd_hhmmss>_<uuid8>
func generateID(prefix string) string {
	return fmt.Sprintf("%s_%s_%s", prefix, time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
