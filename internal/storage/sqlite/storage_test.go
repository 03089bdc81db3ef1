// ABOUTME: Tests for the unified Storage facade
// ABOUTME: Verifies topic merging through StoreItem and default-set creation
package sqlite

import (
	"sync"
	"testing"
	"time"

	"github.com/harper/murmur/internal/canonical"
	"github.com/harper/murmur/internal/models"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	storage, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

func canonicalItem(t *testing.T, id, title, checkInID string, categories []string) *models.ExtractedItem {
	t.Helper()
	item := canonical.Canonicalize(models.ExtractedItem{
		ItemID:      id,
		CheckInID:   checkInID,
		Type:        models.ItemTypeIntention,
		Title:       title,
		Categories:  categories,
		Confidence:  0.8,
		Strength:    0.5,
		ReviewState: models.ReviewPending,
		ExtractedAt: time.Now(),
		CreatedAt:   time.Now(),
	})
	return &item
}

func TestStoreItemCreatesTopic(t *testing.T) {
	storage := testStorage(t)

	item := canonicalItem(t, "item_1", "morning run", "chk_1", []string{"fitness"})
	topic, err := storage.StoreItem(item)
	if err != nil {
		t.Fatalf("StoreItem() error = %v", err)
	}
	if topic.Occurrences != 1 {
		t.Errorf("Occurrences = %d, want 1", topic.Occurrences)
	}
	if topic.PrimaryCategory != "fitness" {
		t.Errorf("PrimaryCategory = %q, want fitness", topic.PrimaryCategory)
	}

	stored, err := storage.Items().GetByID("item_1")
	if err != nil {
		t.Fatalf("Items().GetByID() error = %v", err)
	}
	if stored == nil {
		t.Fatal("item not persisted")
	}

	persisted, err := storage.Topics().Get(topic.TopicKey)
	if err != nil {
		t.Fatalf("Topics().Get() error = %v", err)
	}
	if persisted == nil || persisted.Occurrences != 1 {
		t.Errorf("persisted topic = %+v, want 1 occurrence", persisted)
	}
}

func TestStoreItemMergesAcrossSessions(t *testing.T) {
	storage := testStorage(t)

	first := canonicalItem(t, "item_1", "morning run", "chk_1", []string{"fitness"})
	second := canonicalItem(t, "item_2", "run tonight", "chk_2", []string{"health"})

	if _, err := storage.StoreItem(first); err != nil {
		t.Fatalf("StoreItem() first error = %v", err)
	}
	topic, err := storage.StoreItem(second)
	if err != nil {
		t.Fatalf("StoreItem() second error = %v", err)
	}

	// "morning" and "tonight" are time words, so both titles share topic key "run"
	if topic.TopicKey != "run" {
		t.Fatalf("TopicKey = %q, want run", topic.TopicKey)
	}
	if topic.Occurrences != 2 {
		t.Errorf("Occurrences = %d, want 2", topic.Occurrences)
	}
	if len(topic.ItemIDs) != 2 {
		t.Errorf("ItemIDs = %v, want both items", topic.ItemIDs)
	}
	// Display title keeps the first occurrence's wording
	if topic.DisplayTitle != "morning run" {
		t.Errorf("DisplayTitle = %q, want first occurrence preserved", topic.DisplayTitle)
	}
}

func TestStoreItemConcurrentSameTopic(t *testing.T) {
	storage := testStorage(t)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := canonicalItem(t, "item_"+string(rune('a'+i)), "morning run", "chk_1", nil)
			if _, err := storage.StoreItem(item); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("StoreItem() concurrent error = %v", err)
	}

	topic, err := storage.Topics().Get("run")
	if err != nil {
		t.Fatalf("Topics().Get() error = %v", err)
	}
	if topic == nil {
		t.Fatal("topic not created")
	}
	if topic.Occurrences != n {
		t.Errorf("Occurrences = %d, want %d (no merge lost under concurrency)", topic.Occurrences, n)
	}
	if len(topic.ItemIDs) != n {
		t.Errorf("ItemIDs = %d, want %d", len(topic.ItemIDs), n)
	}
}

func TestEnsureDefaultSet(t *testing.T) {
	storage := testStorage(t)

	set, err := storage.EnsureDefaultSet("daily")
	if err != nil {
		t.Fatalf("EnsureDefaultSet() error = %v", err)
	}
	if set.Name != "daily" {
		t.Errorf("Name = %q, want daily", set.Name)
	}

	again, err := storage.EnsureDefaultSet("daily")
	if err != nil {
		t.Fatalf("EnsureDefaultSet() second error = %v", err)
	}
	if again.SetID != set.SetID {
		t.Errorf("SetID changed across calls: %s then %s", set.SetID, again.SetID)
	}
}
