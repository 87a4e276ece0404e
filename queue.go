package uuidkit

import (
	"sync"

	"github.com/google/uuid"
)

// Queue is the minimal contract a queue-backed supplier needs. Callers may
// bring their own implementation; whatever concurrency contract it provides
// is the one the supplier inherits.
type Queue interface {
	// Poll removes and returns the head of the queue. ok is false when the
	// queue is empty.
	Poll() (id uuid.UUID, ok bool)
}

// SyncQueue is a mutex-guarded FIFO of UUIDs, safe for concurrent use from
// any number of goroutines.
type SyncQueue struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

// NewSyncQueue creates a SyncQueue pre-filled with the given UUIDs in order.
func NewSyncQueue(ids ...uuid.UUID) *SyncQueue {
	q := &SyncQueue{}
	q.Offer(ids...)
	return q
}

// Offer appends the given UUIDs to the tail of the queue.
func (q *SyncQueue) Offer(ids ...uuid.UUID) {
	q.mu.Lock()
	q.ids = append(q.ids, ids...)
	q.mu.Unlock()
}

// Poll removes and returns the head of the queue.
func (q *SyncQueue) Poll() (uuid.UUID, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.ids) == 0 {
		return uuid.Nil, false
	}
	id := q.ids[0]
	q.ids = q.ids[1:]
	return id, true
}

// Len reports the number of UUIDs currently queued.
func (q *SyncQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ids)
}
