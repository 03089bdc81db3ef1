// ABOUTME: Extracted-item persistence
// ABOUTME: Items are immutable after insert except for review state
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/harper/murmur/internal/models"
)

// ItemStore handles extracted-item persistence
type ItemStore struct {
	db *DB
}

// NewItemStore creates a new ItemStore
func NewItemStore(db *DB) *ItemStore {
	return &ItemStore{db: db}
}

// Save inserts a canonical item. Re-saves of the same id are ignored;
// items never change after canonicalization.
func (s *ItemStore) Save(item *models.ExtractedItem) error {
	calendar := ""
	if item.Calendar != nil {
		data, err := json.Marshal(item.Calendar)
		if err != nil {
			return fmt.Errorf("failed to encode calendar candidate: %w", err)
		}
		calendar = string(data)
	}

	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO extracted_items
			(id, check_in_id, type, title, summary, categories, confidence, strength,
			 quote, context_before, context_after, fingerprint, calendar, review_state,
			 extracted_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ItemID, nullString(item.CheckInID), string(item.Type), item.Title,
		nullString(item.Summary), nullString(encodeStrings(item.Categories)),
		item.Confidence, item.Strength, nullString(item.Quote),
		nullString(item.ContextBefore), nullString(item.ContextAfter),
		item.Fingerprint, nullString(calendar), string(item.ReviewState),
		item.ExtractedAt, item.CreatedAt)
	return err
}

// GetByID retrieves an item, or nil when not found
func (s *ItemStore) GetByID(itemID string) (*models.ExtractedItem, error) {
	row := s.db.QueryRow(itemSelect+` WHERE id = ?`, itemID)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return item, err
}

// ListByFingerprint retrieves every occurrence of a fingerprint, oldest first
func (s *ItemStore) ListByFingerprint(fingerprint string) ([]models.ExtractedItem, error) {
	rows, err := s.db.Query(itemSelect+` WHERE fingerprint = ? ORDER BY extracted_at`, fingerprint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectItems(rows)
}

// ListByReviewState retrieves items in the given review state, oldest first
func (s *ItemStore) ListByReviewState(state models.ReviewState) ([]models.ExtractedItem, error) {
	rows, err := s.db.Query(itemSelect+` WHERE review_state = ? ORDER BY extracted_at`, string(state))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectItems(rows)
}

// ListByCheckIn retrieves the items extracted from one check-in
func (s *ItemStore) ListByCheckIn(checkInID string) ([]models.ExtractedItem, error) {
	rows, err := s.db.Query(itemSelect+` WHERE check_in_id = ? ORDER BY extracted_at`, checkInID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectItems(rows)
}

// UpdateReviewState is the only mutation permitted on a stored item
func (s *ItemStore) UpdateReviewState(itemID string, state models.ReviewState) error {
	result, err := s.db.Exec(`
		UPDATE extracted_items SET review_state = ? WHERE id = ?
	`, string(state), itemID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("item not found: %s", itemID)
	}
	return nil
}

const itemSelect = `
	SELECT id, check_in_id, type, title, summary, categories, confidence, strength,
	       quote, context_before, context_after, fingerprint, calendar, review_state,
	       extracted_at, created_at
	FROM extracted_items`

func scanItem(row rowScanner) (*models.ExtractedItem, error) {
	var (
		item          models.ExtractedItem
		checkInID     sql.NullString
		summary       sql.NullString
		categories    sql.NullString
		quote         sql.NullString
		contextBefore sql.NullString
		contextAfter  sql.NullString
		calendar      sql.NullString
		itemType      string
		reviewState   string
	)
	err := row.Scan(&item.ItemID, &checkInID, &itemType, &item.Title, &summary,
		&categories, &item.Confidence, &item.Strength, &quote, &contextBefore,
		&contextAfter, &item.Fingerprint, &calendar, &reviewState,
		&item.ExtractedAt, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	item.CheckInID = stringOrEmpty(checkInID)
	item.Type = models.ParseItemType(itemType)
	item.Summary = stringOrEmpty(summary)
	item.Categories = decodeStrings(stringOrEmpty(categories))
	item.Quote = stringOrEmpty(quote)
	item.ContextBefore = stringOrEmpty(contextBefore)
	item.ContextAfter = stringOrEmpty(contextAfter)
	item.ReviewState = models.ReviewState(reviewState)

	if calendar.Valid && calendar.String != "" {
		var cal models.CalendarCandidate
		if err := json.Unmarshal([]byte(calendar.String), &cal); err == nil {
			item.Calendar = &cal
		}
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]models.ExtractedItem, error) {
	var items []models.ExtractedItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
