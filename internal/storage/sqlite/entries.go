// ABOUTME: Progress entry persistence over the append-only ledger
// ABOUTME: Insert-only; re-appending the same entry id is a no-op, so retries are safe
package sqlite

import (
	"database/sql"

	"github.com/harper/murmur/internal/models"
)

// EntryStore handles progress entry persistence
type EntryStore struct {
	db *DB
}

// NewEntryStore creates a new EntryStore
func NewEntryStore(db *DB) *EntryStore {
	return &EntryStore{db: db}
}

// Append inserts a ledger entry. There is deliberately no update path:
// entries are never mutated after creation. INSERT OR IGNORE makes a
// retried append idempotent.
func (s *EntryStore) Append(entry *models.ProgressEntry) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO progress_entries
			(id, date_key, intention_id, set_id, type, amount, unit, confidence, evidence, check_in_id, occurred_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.EntryID, entry.DateKey, entry.IntentionID, nullString(entry.SetID),
		string(entry.Type), entry.Amount, nullString(entry.Unit), entry.Confidence,
		nullString(entry.Evidence), nullString(entry.CheckInID), entry.OccurredAt, entry.CreatedAt)
	return err
}

// ListByDate retrieves all entries for one day, ordered by occurrence time
func (s *EntryStore) ListByDate(dateKey string) ([]models.ProgressEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date_key, intention_id, set_id, type, amount, unit, confidence, evidence, check_in_id, occurred_at, created_at
		FROM progress_entries WHERE date_key = ?
		ORDER BY occurred_at, created_at
	`, dateKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

// ListRange retrieves entries for an inclusive date-key range, ordered by
// occurrence time
func (s *EntryStore) ListRange(fromKey, toKey string) ([]models.ProgressEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date_key, intention_id, set_id, type, amount, unit, confidence, evidence, check_in_id, occurred_at, created_at
		FROM progress_entries WHERE date_key >= ? AND date_key <= ?
		ORDER BY occurred_at, created_at
	`, fromKey, toKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	for rows.Next() {
		var (
			e         models.ProgressEntry
			setID     sql.NullString
			unit      sql.NullString
			evidence  sql.NullString
			checkInID sql.NullString
			typ       string
		)
		err := rows.Scan(&e.EntryID, &e.DateKey, &e.IntentionID, &setID, &typ, &e.Amount,
			&unit, &e.Confidence, &evidence, &checkInID, &e.OccurredAt, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		e.SetID = stringOrEmpty(setID)
		e.Unit = stringOrEmpty(unit)
		e.Evidence = stringOrEmpty(evidence)
		e.CheckInID = stringOrEmpty(checkInID)
		e.Type = models.ParseUpdateType(typ)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
