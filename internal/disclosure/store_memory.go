package disclosure

import (
	"context"
	"sync"

	"caresignal/pkg/domain"
)

// InMemoryStore keeps disclosure entries in memory for tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[domain.CaseID][]*Entry
}

// NewInMemory constructs an empty in-memory disclosure store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{entries: make(map[domain.CaseID][]*Entry)}
}

func (s *InMemoryStore) Append(_ context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copyEntry := *entry
	s.entries[entry.CaseID] = append(s.entries[entry.CaseID], &copyEntry)
	return nil
}

func (s *InMemoryStore) ListByCase(_ context.Context, caseID domain.CaseID) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.entries[caseID]
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		copyEntry := *e
		out = append(out, &copyEntry)
	}
	return out, nil
}
