// ABOUTME: Unified Storage layer that wraps all SQLite stores
// ABOUTME: Serializes topic read-merge-save cycles so concurrent merges never drop occurrences
package sqlite

import (
	"fmt"
	"log"
	"sync"

	"github.com/harper/murmur/internal/canonical"
	"github.com/harper/murmur/internal/models"
)

// Storage manages all persistent data for the check-in engine using SQLite
type Storage struct {
	db         *DB
	intentions *IntentionStore
	entries    *EntryStore
	checkIns   *CheckInStore
	items      *ItemStore
	topics     *TopicStore
	moods      *MoodStore
	merger     *canonical.Merger

	// topicMu guards the read-merge-save cycle on topic aggregates.
	// TopicStore.Save is a whole-row upsert, so two interleaved merges
	// for the same key would silently lose one item.
	topicMu sync.Mutex
}

// NewStorage initializes storage at the default database path
func NewStorage() (*Storage, error) {
	return NewStorageWithPath(DefaultDBPath())
}

// NewStorageWithPath initializes storage with a custom database path
func NewStorageWithPath(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db), nil
}

// NewStorageInMemory creates an in-memory storage (for testing)
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db), nil
}

func newStorage(db *DB) *Storage {
	return &Storage{
		db:         db,
		intentions: NewIntentionStore(db),
		entries:    NewEntryStore(db),
		checkIns:   NewCheckInStore(db),
		items:      NewItemStore(db),
		topics:     NewTopicStore(db),
		moods:      NewMoodStore(db),
		merger:     canonical.NewMerger(),
	}
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Intentions returns the intention store
func (s *Storage) Intentions() *IntentionStore {
	return s.intentions
}

// Entries returns the progress-entry store
func (s *Storage) Entries() *EntryStore {
	return s.entries
}

// CheckIns returns the check-in store
func (s *Storage) CheckIns() *CheckInStore {
	return s.checkIns
}

// Items returns the extracted-item store
func (s *Storage) Items() *ItemStore {
	return s.items
}

// Topics returns the topic-aggregate store
func (s *Storage) Topics() *TopicStore {
	return s.topics
}

// Moods returns the mood store
func (s *Storage) Moods() *MoodStore {
	return s.moods
}

// StoreItem persists a canonical item and merges it into its topic
// aggregate. The item insert and the topic merge happen under one lock
// so concurrent extractions cannot interleave on the same topic key.
func (s *Storage) StoreItem(item *models.ExtractedItem) (*models.TopicAggregate, error) {
	s.topicMu.Lock()
	defer s.topicMu.Unlock()

	if err := s.items.Save(item); err != nil {
		return nil, fmt.Errorf("failed to save item %s: %w", item.ItemID, err)
	}

	topicKey := canonical.TopicKey(item.Title)
	existing, err := s.topics.Get(topicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic %s: %w", topicKey, err)
	}

	merged := s.merger.Apply(existing, *item)
	if err := s.topics.Save(merged); err != nil {
		return nil, fmt.Errorf("failed to save topic %s: %w", topicKey, err)
	}

	if existing == nil {
		log.Printf("[Storage] created topic %s for item %s", topicKey, item.ItemID)
	}
	return merged, nil
}

// EnsureDefaultSet returns the set with the given name, creating it
// when absent
func (s *Storage) EnsureDefaultSet(name string) (*models.IntentionSet, error) {
	set, err := s.intentions.GetSetByName(name)
	if err != nil {
		return nil, err
	}
	if set != nil {
		return set, nil
	}

	set = models.NewIntentionSet(name)
	if err := s.intentions.SaveSet(set); err != nil {
		return nil, fmt.Errorf("failed to create intention set %q: %w", name, err)
	}
	log.Printf("[Storage] created intention set %q (%s)", name, set.SetID)
	return set, nil
}
