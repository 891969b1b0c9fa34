package notify

import (
	"context"
	"sync"

	"caresignal/pkg/domain"
)

// InMemoryStore keeps messages in memory for tests and local runs.
type InMemoryStore struct {
	mu       sync.RWMutex
	messages map[domain.CaseID][]*Message
}

// NewInMemory constructs an empty in-memory message store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{messages: make(map[domain.CaseID][]*Message)}
}

func (s *InMemoryStore) Save(_ context.Context, msg *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copyMsg := *msg
	s.messages[msg.CaseID] = append(s.messages[msg.CaseID], &copyMsg)
	return nil
}

func (s *InMemoryStore) ListByCaseAndRole(_ context.Context, caseID domain.CaseID, role domain.Role) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Message
	for _, m := range s.messages[caseID] {
		if m.RecipientRole != role {
			continue
		}
		copyMsg := *m
		out = append(out, &copyMsg)
	}
	return out, nil
}
