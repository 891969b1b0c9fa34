package store

import (
	"context"
	"sync"

	"caresignal/internal/consent/models"
	"caresignal/pkg/domain"
)

// InMemoryStore stores consent records in memory for tests and local runs.
type InMemoryStore struct {
	mu       sync.RWMutex
	consents map[domain.ClientID]*models.Record
}

// New constructs an empty in-memory consent store.
func New() *InMemoryStore {
	return &InMemoryStore{consents: make(map[domain.ClientID]*models.Record)}
}

func (s *InMemoryStore) Save(_ context.Context, record *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.consents[record.ClientID]; ok {
		record.ID = existing.ID
	}
	copyRecord := *record
	s.consents[record.ClientID] = &copyRecord
	return nil
}

func (s *InMemoryStore) FindByClient(_ context.Context, clientID domain.ClientID) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.consents[clientID]
	if !ok {
		return nil, ErrNotFound
	}
	// Return a copy to prevent external modifications
	copyRecord := *record
	return &copyRecord, nil
}

func (s *InMemoryStore) Update(_ context.Context, record *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.consents[record.ClientID]; !ok {
		return ErrNotFound
	}
	copyRecord := *record
	s.consents[record.ClientID] = &copyRecord
	return nil
}
