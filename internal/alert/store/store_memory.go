package store

import (
	"context"
	"sync"

	"caresignal/internal/alert/models"
	"caresignal/pkg/domain"
)

// InMemoryStore keeps alerts in memory for tests and local runs.
type InMemoryStore struct {
	mu     sync.RWMutex
	byID   map[domain.AlertID]*models.Alert
	byCase map[domain.CaseID][]domain.AlertID
}

// NewInMemory constructs an empty in-memory alert store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		byID:   make(map[domain.AlertID]*models.Alert),
		byCase: make(map[domain.CaseID][]domain.AlertID),
	}
}

func (s *InMemoryStore) Save(_ context.Context, alert *models.Alert) error {
	if err := alert.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copyAlert := cloneAlert(alert)
	if _, exists := s.byID[alert.ID]; !exists {
		s.byCase[alert.CaseID] = append(s.byCase[alert.CaseID], alert.ID)
	}
	s.byID[alert.ID] = copyAlert
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.AlertID) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alert, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneAlert(alert), nil
}

func (s *InMemoryStore) ListByCase(_ context.Context, caseID domain.CaseID) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byCase[caseID]
	out := make([]*models.Alert, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneAlert(s.byID[id]))
	}
	return out, nil
}

func cloneAlert(a *models.Alert) *models.Alert {
	copyAlert := *a
	if a.Metadata != nil {
		copyAlert.Metadata = make(map[string]any, len(a.Metadata))
		for k, v := range a.Metadata {
			copyAlert.Metadata[k] = v
		}
	}
	return &copyAlert
}
