package store

import (
	"context"

	"caresignal/internal/consent/models"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific 404s consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "consent record not found")

// Store persists consent records.
// Error Contract:
// - FindByClient returns ErrNotFound when no record exists
// - Other methods return nil on success or wrapped errors on failure
//
// There is deliberately no Delete: consent records are superseded, never removed.
type Store interface {
	Save(ctx context.Context, record *models.Record) error
	FindByClient(ctx context.Context, clientID domain.ClientID) (*models.Record, error)
	Update(ctx context.Context, record *models.Record) error
}
