package assignment

import (
	"context"
	"sync"

	"caresignal/pkg/domain"
)

type caseRole struct {
	caseID domain.CaseID
	role   domain.Role
}

// InMemoryStore keeps assignments in memory for tests and local runs.
type InMemoryStore struct {
	mu          sync.RWMutex
	assignments map[caseRole]*Assignment
}

// NewInMemory constructs an empty in-memory assignment store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{assignments: make(map[caseRole]*Assignment)}
}

func (s *InMemoryStore) Save(_ context.Context, a *Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copyAssignment := *a
	s.assignments[caseRole{caseID: a.CaseID, role: a.Role}] = &copyAssignment
	return nil
}

func (s *InMemoryStore) FindByCaseAndRole(_ context.Context, caseID domain.CaseID, role domain.Role) (*Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[caseRole{caseID: caseID, role: role}]
	if !ok {
		return nil, ErrNotFound
	}
	copyAssignment := *a
	return &copyAssignment, nil
}
