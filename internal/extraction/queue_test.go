// ABOUTME: Tests for the single-flight FIFO extraction queue
// ABOUTME: Verifies serial processing, duplicate joining, and idle restart

package extraction

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/harper/murmur/internal/models"
)

// fakeExtractor counts calls and can block until released
type fakeExtractor struct {
	mu       sync.Mutex
	calls    int32
	inflight int32
	maxSeen  int32
	block    chan struct{}
	results  map[string][]models.RawCandidateItem
	err      error
}

func newFakeExtractor() *fakeExtractor {
	return &fakeExtractor{results: make(map[string][]models.RawCandidateItem)}
}

func (f *fakeExtractor) ExtractItems(ctx context.Context, transcript, prior string) ([]models.RawCandidateItem, error) {
	atomic.AddInt32(&f.calls, 1)
	cur := atomic.AddInt32(&f.inflight, 1)
	defer atomic.AddInt32(&f.inflight, -1)

	f.mu.Lock()
	if cur > f.maxSeen {
		f.maxSeen = cur
	}
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results[transcript], nil
}

func TestQueue_ProcessesAndCanonicalizes(t *testing.T) {
	ext := newFakeExtractor()
	ext.results["I want to read more"] = []models.RawCandidateItem{
		{Type: "state", Title: "read more", Quote: "I want to read more", Confidence: 0.9},
	}

	q := NewQueue(ext)
	flight := q.Enqueue(WorkKey{SessionID: "chk_1", SegmentID: "seg_1"}, "I want to read more", "")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	items, err := flight.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Type != models.ItemTypeIntention {
		t.Errorf("Type = %v, want intention (classifier override)", items[0].Type)
	}
	if items[0].Fingerprint == "" {
		t.Error("canonical fingerprint should be set")
	}
}

func TestQueue_DuplicateEnqueueJoinsFlight(t *testing.T) {
	ext := newFakeExtractor()
	ext.block = make(chan struct{})

	q := NewQueue(ext)
	key := WorkKey{SessionID: "chk_1", SegmentID: "seg_1"}

	first := q.Enqueue(key, "hello", "")
	second := q.Enqueue(key, "hello", "")

	if first != second {
		t.Error("duplicate enqueue should return the same flight")
	}

	close(ext.block)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := first.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if got := atomic.LoadInt32(&ext.calls); got != 1 {
		t.Errorf("extractor calls = %d, want exactly 1 for duplicate keys", got)
	}
}

func TestQueue_StrictlySerial(t *testing.T) {
	ext := newFakeExtractor()
	q := NewQueue(ext)

	var flights []*Flight
	for i := 0; i < 8; i++ {
		key := WorkKey{SessionID: "chk_1", SegmentID: string(rune('a' + i))}
		flights = append(flights, q.Enqueue(key, "text", ""))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, f := range flights {
		if _, err := f.Wait(ctx); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}

	ext.mu.Lock()
	maxSeen := ext.maxSeen
	ext.mu.Unlock()
	if maxSeen > 1 {
		t.Errorf("max concurrent extractor calls = %d, want 1", maxSeen)
	}
}

func TestQueue_IdleRestart(t *testing.T) {
	ext := newFakeExtractor()
	q := NewQueue(ext)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	f1 := q.Enqueue(WorkKey{SessionID: "chk_1", SegmentID: "a"}, "one", "")
	if _, err := f1.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	// Queue is idle now; a new enqueue must restart draining
	f2 := q.Enqueue(WorkKey{SessionID: "chk_1", SegmentID: "b"}, "two", "")
	if _, err := f2.Wait(ctx); err != nil {
		t.Fatalf("Wait() after idle error = %v", err)
	}

	if got := atomic.LoadInt32(&ext.calls); got != 2 {
		t.Errorf("extractor calls = %d, want 2", got)
	}
}

func TestQueue_KeyReusableAfterCompletion(t *testing.T) {
	ext := newFakeExtractor()
	q := NewQueue(ext)
	key := WorkKey{SessionID: "chk_1", SegmentID: "seg_1"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	f1 := q.Enqueue(key, "first pass", "")
	if _, err := f1.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	f2 := q.Enqueue(key, "second pass", "")
	if f1 == f2 {
		t.Error("a completed key should start a fresh flight, not join the old one")
	}
	if _, err := f2.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if got := atomic.LoadInt32(&ext.calls); got != 2 {
		t.Errorf("extractor calls = %d, want 2", got)
	}
}

func TestQueue_EmptyResultStillDelivered(t *testing.T) {
	ext := newFakeExtractor() // returns no items for any transcript
	q := NewQueue(ext)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	flight := q.Enqueue(WorkKey{SessionID: "chk_1", SegmentID: "a"}, "nothing here", "")
	items, err := flight.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if items == nil {
		// an empty list is a valid result; the flight still completes
		t.Log("empty result delivered as nil slice")
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestQueue_ErrorCompletesFlightAndFreesKey(t *testing.T) {
	ext := newFakeExtractor()
	ext.err = errors.New("upstream unavailable")
	q := NewQueue(ext)
	key := WorkKey{SessionID: "chk_1", SegmentID: "a"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	flight := q.Enqueue(key, "text", "")
	if _, err := flight.Wait(ctx); err == nil {
		t.Error("Wait() should surface the extractor error")
	}

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (key freed on failure too)", q.Len())
	}
}

func TestQueue_WaitRespectsContext(t *testing.T) {
	ext := newFakeExtractor()
	ext.block = make(chan struct{})
	defer close(ext.block)

	q := NewQueue(ext)
	flight := q.Enqueue(WorkKey{SessionID: "chk_1", SegmentID: "a"}, "text", "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := flight.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want deadline exceeded", err)
	}
}
