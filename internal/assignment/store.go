package assignment

import (
	"context"

	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// ErrNotFound is returned when no assignment matches. For attorney lookups
// this is a normal outcome, not a failure: unassigned cases simply have
// nobody to notify.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "assignment not found")

// Store resolves case assignments.
type Store interface {
	FindByCaseAndRole(ctx context.Context, caseID domain.CaseID, role domain.Role) (*Assignment, error)
	Save(ctx context.Context, a *Assignment) error
}
