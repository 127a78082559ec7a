package audit

import (
	"context"
	"sync"
)

// MemoryStore keeps audit events in a slice, in append order. It backs the
// memory unit of work in tests; Clone/Restore give that unit of work its
// rollback semantics.
type MemoryStore struct {
	mu     sync.RWMutex
	seq    int64
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	event.ID = s.seq
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryStore) ListByAggregate(_ context.Context, aggregateID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.AggregateID == aggregateID {
			out = append(out, e)
		}
	}
	return out, nil
}

// All returns every stored event in append order.
func (s *MemoryStore) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *MemoryStore) Clone() *MemoryStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return &MemoryStore{seq: s.seq, events: events}
}

func (s *MemoryStore) Restore(from *MemoryStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = from.seq
	s.events = from.events
}
