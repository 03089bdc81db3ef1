// ABOUTME: CheckIn is one voice recording session with its transcript
// ABOUTME: MoodEntry is the optional mood sample attached to a check-in
package models

import (
	"errors"
	"strings"
	"time"
)

// CheckIn is one recording session. The transcript is produced by the
// speech-to-text collaborator; the audio itself stays outside this system.
type CheckIn struct {
	CheckInID  string    `json:"check_in_id"`
	SetID      string    `json:"set_id"`
	Transcript string    `json:"transcript"`
	AudioRef   string    `json:"audio_ref,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCheckIn creates a CheckIn with validation
func NewCheckIn(setID, transcript, audioRef string) (*CheckIn, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, errors.New("check-in transcript cannot be empty")
	}
	return &CheckIn{
		CheckInID:  generateID("chk"),
		SetID:      setID,
		Transcript: transcript,
		AudioRef:   audioRef,
		CreatedAt:  time.Now(),
	}, nil
}

// MoodEntry is one mood sample, at most one per check-in.
// Valence runs from -1 (low) to +1 (high).
type MoodEntry struct {
	MoodID    string    `json:"mood_id"`
	CheckInID string    `json:"check_in_id"`
	DateKey   string    `json:"date_key"`
	Valence   float64   `json:"valence"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMoodEntry creates a mood sample clamped into [-1, 1]
func NewMoodEntry(checkInID string, valence float64, label string, at time.Time) *MoodEntry {
	if valence > 1 {
		valence = 1
	}
	if valence < -1 {
		valence = -1
	}
	return &MoodEntry{
		MoodID:    generateID("mood"),
		CheckInID: checkInID,
		DateKey:   DateKey(at),
		Valence:   valence,
		Label:     label,
		CreatedAt: at,
	}
}
