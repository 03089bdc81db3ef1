// ABOUTME: Mood-sample persistence
// ABOUTME: At most one sample per check-in, queried by day ranges
package sqlite

import (
	"database/sql"

	"github.com/harper/murmur/internal/models"
)

// MoodStore handles mood-sample persistence
type MoodStore struct {
	db *DB
}

// NewMoodStore creates a new MoodStore
func NewMoodStore(db *DB) *MoodStore {
	return &MoodStore{db: db}
}

// Save inserts a mood sample. A second sample for the same check-in
// is rejected silently; the first one wins.
func (s *MoodStore) Save(mood *models.MoodEntry) error {
	if mood.CheckInID != "" {
		var existing int
		err := s.db.QueryRow(`
			SELECT COUNT(*) FROM moods WHERE check_in_id = ?
		`, mood.CheckInID).Scan(&existing)
		if err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}
	}

	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO moods (id, check_in_id, date_key, valence, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, mood.MoodID, nullString(mood.CheckInID), mood.DateKey, mood.Valence,
		nullString(mood.Label), mood.CreatedAt)
	return err
}

// ListByDate retrieves the mood samples for one day, oldest first
func (s *MoodStore) ListByDate(dateKey string) ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, check_in_id, date_key, valence, label, created_at
		FROM moods WHERE date_key = ?
		ORDER BY created_at
	`, dateKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectMoods(rows)
}

// ListRange retrieves mood samples between two date keys inclusive
func (s *MoodStore) ListRange(fromKey, toKey string) ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, check_in_id, date_key, valence, label, created_at
		FROM moods WHERE date_key >= ? AND date_key <= ?
		ORDER BY date_key, created_at
	`, fromKey, toKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectMoods(rows)
}

func collectMoods(rows *sql.Rows) ([]models.MoodEntry, error) {
	var moods []models.MoodEntry
	for rows.Next() {
		var (
			mood      models.MoodEntry
			checkInID sql.NullString
			label     sql.NullString
		)
		if err := rows.Scan(&mood.MoodID, &checkInID, &mood.DateKey, &mood.Valence,
			&label, &mood.CreatedAt); err != nil {
			return nil, err
		}
		mood.CheckInID = stringOrEmpty(checkInID)
		mood.Label = stringOrEmpty(label)
		moods = append(moods, mood)
	}
	return moods, rows.Err()
}
