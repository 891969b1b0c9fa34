package models

import (
	"time"

	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// Record captures a client's standing authorization for attorney notification
// of crisis events.
//
// # Lifecycle Invariant
//
// A record is never deleted, only superseded in place: grant, revoke, and
// reinstate rewrite the flags and timestamps of the client's single record.
// History is reconstructed from the audit trail, and the consent state that
// gated any given disclosure is frozen into that alert's consent snapshot at
// creation time.
type Record struct {
	ID        domain.ConsentID
	ClientID  domain.ClientID
	Granted   bool
	Revoked   bool
	SignedAt  *time.Time
	RevokedAt *time.Time
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// NewRecord creates a Record with domain invariant checks.
func NewRecord(consentID domain.ConsentID, clientID domain.ClientID, signedAt time.Time, expiresAt *time.Time) (*Record, error) {
	if consentID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "consent ID required")
	}
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "client ID required")
	}
	if signedAt.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "signature time required")
	}
	if expiresAt != nil && expiresAt.Before(signedAt) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "expiry must be after signature time")
	}
	return &Record{
		ID:        consentID,
		ClientID:  clientID,
		Granted:   true,
		SignedAt:  &signedAt,
		ExpiresAt: expiresAt,
		CreatedAt: signedAt,
	}, nil
}

// Effective reports whether the consent authorizes disclosure at the provided
// time. This is the single value the disclosure policy consults.
func (c Record) Effective(now time.Time) bool {
	if !c.Granted || c.Revoked {
		return false
	}
	if c.ExpiresAt != nil && !now.Before(*c.ExpiresAt) {
		return false
	}
	return true
}

// ComputeStatus reports the consent lifecycle state at the provided time.
func (c Record) ComputeStatus(now time.Time) Status {
	if c.Revoked {
		return StatusRevoked
	}
	if !c.Granted {
		return StatusNone
	}
	if c.ExpiresAt != nil && !now.Before(*c.ExpiresAt) {
		return StatusExpired
	}
	return StatusActive
}

// CanRevoke returns true if the consent can be revoked (not already revoked).
func (c Record) CanRevoke() bool {
	return !c.Revoked
}
