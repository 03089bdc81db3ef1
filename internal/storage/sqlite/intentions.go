// ABOUTME: Intention and intention-set persistence
// ABOUTME: Intention ids stay stable across field edits
package sqlite

import (
	"database/sql"
	"time"

	"github.com/harper/murmur/internal/models"
)

// IntentionStore handles intention persistence
type IntentionStore struct {
	db *DB
}

// NewIntentionStore creates a new IntentionStore
func NewIntentionStore(db *DB) *IntentionStore {
	return &IntentionStore{db: db}
}

// Save inserts or updates an intention. The id never changes on update.
func (s *IntentionStore) Save(intent *models.Intention) error {
	updatedAt := intent.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO intentions (id, set_id, title, target, unit, timeframe, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			target = excluded.target,
			unit = excluded.unit,
			timeframe = excluded.timeframe,
			active = excluded.active,
			updated_at = excluded.updated_at
	`, intent.IntentionID, intent.SetID, intent.Title, intent.Target, intent.Unit,
		string(intent.Timeframe), boolToInt(intent.Active), intent.CreatedAt, updatedAt)

	return err
}

// GetByID retrieves an intention, or nil when not found
func (s *IntentionStore) GetByID(intentionID string) (*models.Intention, error) {
	row := s.db.QueryRow(`
		SELECT id, set_id, title, target, unit, timeframe, active, created_at, updated_at
		FROM intentions WHERE id = ?
	`, intentionID)

	intent, err := scanIntention(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return intent, err
}

// ListBySet retrieves all intentions in a set, active first then by title
func (s *IntentionStore) ListBySet(setID string) ([]models.Intention, error) {
	rows, err := s.db.Query(`
		SELECT id, set_id, title, target, unit, timeframe, active, created_at, updated_at
		FROM intentions WHERE set_id = ?
		ORDER BY active DESC, title
	`, setID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectIntentions(rows)
}

// ListActive retrieves all active intentions across sets
func (s *IntentionStore) ListActive() ([]models.Intention, error) {
	rows, err := s.db.Query(`
		SELECT id, set_id, title, target, unit, timeframe, active, created_at, updated_at
		FROM intentions WHERE active = 1
		ORDER BY title
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectIntentions(rows)
}

// SaveSet inserts or updates an intention set
func (s *IntentionStore) SaveSet(set *models.IntentionSet) error {
	_, err := s.db.Exec(`
		INSERT INTO intention_sets (id, name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, set.SetID, set.Name, set.CreatedAt)
	return err
}

// GetSetByName retrieves a set by name, or nil when not found
func (s *IntentionStore) GetSetByName(name string) (*models.IntentionSet, error) {
	var set models.IntentionSet
	err := s.db.QueryRow(`
		SELECT id, name, created_at FROM intention_sets WHERE name = ?
	`, name).Scan(&set.SetID, &set.Name, &set.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanIntention(row rowScanner) (*models.Intention, error) {
	var (
		intent    models.Intention
		unit      sql.NullString
		timeframe string
		active    int
	)
	err := row.Scan(&intent.IntentionID, &intent.SetID, &intent.Title, &intent.Target,
		&unit, &timeframe, &active, &intent.CreatedAt, &intent.UpdatedAt)
	if err != nil {
		return nil, err
	}
	intent.Unit = stringOrEmpty(unit)
	intent.Timeframe = models.ParseTimeframe(timeframe)
	intent.Active = active != 0
	return &intent, nil
}

func collectIntentions(rows *sql.Rows) ([]models.Intention, error) {
	var intentions []models.Intention
	for rows.Next() {
		intent, err := scanIntention(rows)
		if err != nil {
			return nil, err
		}
		intentions = append(intentions, *intent)
	}
	return intentions, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
