// ABOUTME: Check-in persistence
// ABOUTME: One row per recording session, queried by day and recency
package sqlite

import (
	"database/sql"
	"time"

	"github.com/harper/murmur/internal/models"
)

// CheckInStore handles check-in persistence
type CheckInStore struct {
	db *DB
}

// NewCheckInStore creates a new CheckInStore
func NewCheckInStore(db *DB) *CheckInStore {
	return &CheckInStore{db: db}
}

// Save inserts a check-in. Saves are idempotent per id.
func (s *CheckInStore) Save(chk *models.CheckIn) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO check_ins (id, set_id, transcript, audio_ref, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, chk.CheckInID, nullString(chk.SetID), chk.Transcript, nullString(chk.AudioRef), chk.CreatedAt)
	return err
}

// GetByID retrieves a check-in, or nil when not found
func (s *CheckInStore) GetByID(checkInID string) (*models.CheckIn, error) {
	var (
		chk      models.CheckIn
		setID    sql.NullString
		audioRef sql.NullString
	)
	err := s.db.QueryRow(`
		SELECT id, set_id, transcript, audio_ref, created_at
		FROM check_ins WHERE id = ?
	`, checkInID).Scan(&chk.CheckInID, &setID, &chk.Transcript, &audioRef, &chk.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	chk.SetID = stringOrEmpty(setID)
	chk.AudioRef = stringOrEmpty(audioRef)
	return &chk, nil
}

// ListSince retrieves check-ins created at or after the given time,
// newest first
func (s *CheckInStore) ListSince(since time.Time) ([]models.CheckIn, error) {
	rows, err := s.db.Query(`
		SELECT id, set_id, transcript, audio_ref, created_at
		FROM check_ins WHERE created_at >= ?
		ORDER BY created_at DESC
	`, since)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var checkIns []models.CheckIn
	for rows.Next() {
		var (
			chk      models.CheckIn
			setID    sql.NullString
			audioRef sql.NullString
		)
		if err := rows.Scan(&chk.CheckInID, &setID, &chk.Transcript, &audioRef, &chk.CreatedAt); err != nil {
			return nil, err
		}
		chk.SetID = stringOrEmpty(setID)
		chk.AudioRef = stringOrEmpty(audioRef)
		checkIns = append(checkIns, chk)
	}
	return checkIns, rows.Err()
}
