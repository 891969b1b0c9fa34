// Package disclosure maintains the compliance trail of every instance where
// protected information left the care team. Entries are append-only: the
// store interface exposes no update or delete, and any correction must be a
// new entry referencing the old one.
package disclosure

import (
	"time"

	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// Entry records a single outward disclosure: who disclosed, to whom, under
// what authorization, and why.
type Entry struct {
	ID              domain.DisclosureID
	CaseID          domain.CaseID
	AlertID         domain.AlertID
	AuthorizationID domain.ConsentID
	DisclosedTo     domain.UserID
	DisclosedToRole domain.Role
	Scope           domain.DisclosureScope
	Reason          string
	DisclosedBy     domain.UserID
	DisclosedAt     time.Time
	Metadata        map[string]any
	// Supersedes references a prior entry when this entry corrects it.
	Supersedes *domain.DisclosureID
}

// Validate enforces the invariants an entry must satisfy before it may be
// appended to the compliance trail.
func (e *Entry) Validate() error {
	if e.ID.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "disclosure ID required")
	}
	if e.CaseID.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "case ID required")
	}
	if e.AlertID.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "alert ID required")
	}
	if e.DisclosedTo.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "recipient required")
	}
	if !e.DisclosedToRole.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "invalid recipient role")
	}
	if !e.Scope.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "invalid disclosure scope")
	}
	if e.DisclosedBy.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "disclosing actor required")
	}
	if e.DisclosedAt.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "disclosure time required")
	}
	return nil
}
