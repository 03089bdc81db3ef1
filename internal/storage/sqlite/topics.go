// ABOUTME: Topic-aggregate persistence keyed by topic key
// ABOUTME: Aggregates are upserted whole after an in-memory merge
package sqlite

import (
	"database/sql"

	"github.com/harper/murmur/internal/models"
)

// TopicStore handles topic-aggregate persistence
type TopicStore struct {
	db *DB
}

// NewTopicStore creates a new TopicStore
func NewTopicStore(db *DB) *TopicStore {
	return &TopicStore{db: db}
}

// Get retrieves an aggregate by topic key, or nil when not found
func (s *TopicStore) Get(topicKey string) (*models.TopicAggregate, error) {
	var (
		topic           models.TopicAggregate
		primaryCategory sql.NullString
		categories      sql.NullString
		itemIDs         sql.NullString
		fingerprints    sql.NullString
	)
	err := s.db.QueryRow(`
		SELECT topic_key, display_title, primary_category, categories,
		       occurrences, item_ids, fingerprints, first_seen, last_seen
		FROM topics WHERE topic_key = ?
	`, topicKey).Scan(&topic.TopicKey, &topic.DisplayTitle, &primaryCategory,
		&categories, &topic.Occurrences, &itemIDs, &fingerprints,
		&topic.FirstSeen, &topic.LastSeen)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	topic.PrimaryCategory = stringOrEmpty(primaryCategory)
	topic.Categories = decodeStrings(stringOrEmpty(categories))
	topic.ItemIDs = decodeStrings(stringOrEmpty(itemIDs))
	topic.Fingerprints = decodeStrings(stringOrEmpty(fingerprints))
	return &topic, nil
}

// Save upserts an aggregate. Callers serialize the read-merge-save cycle
// per topic key; the store itself does not lock.
func (s *TopicStore) Save(topic *models.TopicAggregate) error {
	_, err := s.db.Exec(`
		INSERT INTO topics
			(topic_key, display_title, primary_category, categories,
			 occurrences, item_ids, fingerprints, first_seen, last_seen)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(topic_key) DO UPDATE SET
			display_title = excluded.display_title,
			primary_category = excluded.primary_category,
			categories = excluded.categories,
			occurrences = excluded.occurrences,
			item_ids = excluded.item_ids,
			fingerprints = excluded.fingerprints,
			last_seen = excluded.last_seen
	`, topic.TopicKey, topic.DisplayTitle, nullString(topic.PrimaryCategory),
		nullString(encodeStrings(topic.Categories)), topic.Occurrences,
		nullString(encodeStrings(topic.ItemIDs)),
		nullString(encodeStrings(topic.Fingerprints)),
		topic.FirstSeen, topic.LastSeen)
	return err
}

// List retrieves all aggregates, most recently seen first
func (s *TopicStore) List() ([]models.TopicAggregate, error) {
	rows, err := s.db.Query(`
		SELECT topic_key, display_title, primary_category, categories,
		       occurrences, item_ids, fingerprints, first_seen, last_seen
		FROM topics ORDER BY last_seen DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var topics []models.TopicAggregate
	for rows.Next() {
		var (
			topic           models.TopicAggregate
			primaryCategory sql.NullString
			categories      sql.NullString
			itemIDs         sql.NullString
			fingerprints    sql.NullString
		)
		if err := rows.Scan(&topic.TopicKey, &topic.DisplayTitle, &primaryCategory,
			&categories, &topic.Occurrences, &itemIDs, &fingerprints,
			&topic.FirstSeen, &topic.LastSeen); err != nil {
			return nil, err
		}
		topic.PrimaryCategory = stringOrEmpty(primaryCategory)
		topic.Categories = decodeStrings(stringOrEmpty(categories))
		topic.ItemIDs = decodeStrings(stringOrEmpty(itemIDs))
		topic.Fingerprints = decodeStrings(stringOrEmpty(fingerprints))
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}
