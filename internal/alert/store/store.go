package store

import (
	"context"

	"caresignal/internal/alert/models"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// ErrNotFound is returned when no alert matches the lookup.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "alert not found")

// Store persists crisis alerts.
// Error Contract:
// - FindByID returns ErrNotFound when no alert exists
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	Save(ctx context.Context, alert *models.Alert) error
	FindByID(ctx context.Context, id domain.AlertID) (*models.Alert, error)
	ListByCase(ctx context.Context, caseID domain.CaseID) ([]*models.Alert, error)
}
