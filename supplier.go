package uuidkit

import (
	"github.com/google/uuid"
)

// Supplier produces a UUID on demand. The set of implementations is closed:
// random, fixed, queue-backed, and the registry-internal non-caching wrapper.
type Supplier interface {
	UUID() uuid.UUID
}

type randomSupplier struct{}

// sharedRandom is the process-wide random supplier instance. Obtaining it
// never allocates; only invoking it produces a new value.
var sharedRandom Supplier = randomSupplier{}

// RandomSupplier returns the shared supplier producing a freshly generated
// random UUID on every call.
func RandomSupplier() Supplier {
	return sharedRandom
}

func (randomSupplier) UUID() uuid.UUID {
	return uuid.New()
}

func (randomSupplier) String() string {
	return "uuidkit.RandomSupplier()"
}

type fixedSupplier struct {
	id uuid.UUID
}

// FixedSupplier returns a supplier producing the given UUID on every call.
// The absent value uuid.Nil is rejected with ErrNilInput.
func FixedSupplier(id uuid.UUID) (Supplier, error) {
	if id == uuid.Nil {
		return nil, ErrNilInput
	}
	return fixedSupplier{id: id}, nil
}

func (s fixedSupplier) UUID() uuid.UUID {
	return s.id
}

func (s fixedSupplier) String() string {
	return "uuidkit.FixedSupplier(" + s.id.String() + ")"
}

type queueSupplier struct {
	queue    Queue
	fallback uuid.UUID
}

// QueueSupplier returns a supplier that removes and returns the head of q on
// every call, or fallback when q is empty. The fallback is a constant: it is
// never consumed from anywhere.
//
// The queue is shared by reference, not copied: the caller keeps pushing into
// the same queue after constructing the supplier, and the supplier observes
// those pushes. Concurrency guarantees are those of the queue implementation
// itself; SyncQueue is safe for multi-goroutine use.
func QueueSupplier(q Queue, fallback uuid.UUID) (Supplier, error) {
	if q == nil {
		return nil, ErrNilInput
	}
	if fallback == uuid.Nil {
		return nil, ErrNilInput
	}
	return queueSupplier{queue: q, fallback: fallback}, nil
}

func (s queueSupplier) UUID() uuid.UUID {
	if id, ok := s.queue.Poll(); ok {
		return id
	}
	return s.fallback
}

func (s queueSupplier) String() string {
	return "uuidkit.QueueSupplier(" + s.fallback.String() + ")"
}

// nonCachingSupplier re-runs discovery on every call, falling back to the
// shared random supplier whenever discovery yields nothing. Only reachable
// through a Registry configured for non-cached mode.
type nonCachingSupplier struct {
	r *Registry
}

func (s nonCachingSupplier) UUID() uuid.UUID {
	return s.r.resolve().UUID()
}

func (s nonCachingSupplier) String() string {
	return "uuidkit.nonCachingSupplier()"
}
