// ABOUTME: Single-flight FIFO work queue around the extraction collaborator
// ABOUTME: Strictly serial: one external call at a time, drains until idle
package extraction

import (
	"context"
	"log"
	"sync"

	"github.com/harper/murmur/internal/models"
)

// WorkKey identifies one unit of extraction work
type WorkKey struct {
	SessionID string
	SegmentID string
}

// Flight is the shared future for one unit of work. Duplicate enqueues of
// the same key receive the same Flight, so every caller observes the same
// result.
type Flight struct {
	Key WorkKey

	done  chan struct{}
	items []models.ExtractedItem
	err   error
}

// Wait blocks until the flight completes or ctx is done. The underlying
// extraction is not cancelable mid-flight: a caller that gives up simply
// stops waiting while the call runs to completion.
func (f *Flight) Wait(ctx context.Context) ([]models.ExtractedItem, error) {
	select {
	case <-f.done:
		return f.items, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done exposes the completion signal for select-based callers
func (f *Flight) Done() <-chan struct{} {
	return f.done
}

type workItem struct {
	flight     *Flight
	transcript string
	prior      string
}

// Queue serializes extraction work. Exactly one item is sent to the
// collaborator at a time; the queue drains until empty, then goes idle,
// and a new enqueue restarts draining.
type Queue struct {
	extractor Extractor
	pipeline  *Pipeline

	mu       sync.Mutex
	pending  map[WorkKey]*Flight // queued or in-flight
	fifo     []workItem
	draining bool
}

// NewQueue creates a Queue around the given extraction collaborator
func NewQueue(extractor Extractor) *Queue {
	return &Queue{
		extractor: extractor,
		pipeline:  NewPipeline(),
		pending:   make(map[WorkKey]*Flight),
	}
}

// Enqueue adds a unit of work and returns its Flight. Enqueueing a key
// that is already queued or in-flight is not an error: the existing
// Flight is returned so the duplicate caller awaits the same result.
func (q *Queue) Enqueue(key WorkKey, transcript, priorContext string) *Flight {
	q.mu.Lock()
	defer q.mu.Unlock()

	if existing, ok := q.pending[key]; ok {
		log.Printf("[Queue] duplicate enqueue for %s/%s, joining in-flight work", key.SessionID, key.SegmentID)
		return existing
	}

	flight := &Flight{Key: key, done: make(chan struct{})}
	q.pending[key] = flight
	q.fifo = append(q.fifo, workItem{flight: flight, transcript: transcript, prior: priorContext})

	if !q.draining {
		q.draining = true
		go q.drain()
	}
	return flight
}

// Len reports the number of queued or in-flight keys
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// drain processes work strictly serially until the queue is empty
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.fifo) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		item := q.fifo[0]
		q.fifo = q.fifo[1:]
		q.mu.Unlock()

		raw, err := q.extractor.ExtractItems(context.Background(), item.transcript, item.prior)

		var items []models.ExtractedItem
		if err == nil {
			// An empty raw list canonicalizes to an empty item list; it is
			// still delivered, never thrown away silently
			items = q.pipeline.Canonicalize(raw, item.flight.Key.SessionID)
		}

		// The key leaves the in-flight set whether or not the call succeeded
		q.mu.Lock()
		delete(q.pending, item.flight.Key)
		q.mu.Unlock()

		item.flight.items = items
		item.flight.err = err
		close(item.flight.done)
	}
}
