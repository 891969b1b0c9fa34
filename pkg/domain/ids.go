// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "caresignal/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a CaseID where a ClientID is expected.
type (
	UserID       uuid.UUID
	CaseID       uuid.UUID
	ClientID     uuid.UUID
	AlertID      uuid.UUID
	ConsentID    uuid.UUID
	DisclosureID uuid.UUID
	MessageID    uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseCaseID(s string) (CaseID, error) {
	id, err := parseUUID(s, "case ID")
	return CaseID(id), err
}

func ParseClientID(s string) (ClientID, error) {
	id, err := parseUUID(s, "client ID")
	return ClientID(id), err
}

func ParseAlertID(s string) (AlertID, error) {
	id, err := parseUUID(s, "alert ID")
	return AlertID(id), err
}

func ParseConsentID(s string) (ConsentID, error) {
	id, err := parseUUID(s, "consent ID")
	return ConsentID(id), err
}

// New functions - used when records are created.

func NewAlertID() AlertID           { return AlertID(uuid.New()) }
func NewConsentID() ConsentID       { return ConsentID(uuid.New()) }
func NewDisclosureID() DisclosureID { return DisclosureID(uuid.New()) }
func NewMessageID() MessageID       { return MessageID(uuid.New()) }

// String methods - for logging and debugging.

func (id UserID) String() string       { return uuid.UUID(id).String() }
func (id CaseID) String() string       { return uuid.UUID(id).String() }
func (id ClientID) String() string     { return uuid.UUID(id).String() }
func (id AlertID) String() string      { return uuid.UUID(id).String() }
func (id ConsentID) String() string    { return uuid.UUID(id).String() }
func (id DisclosureID) String() string { return uuid.UUID(id).String() }
func (id MessageID) String() string    { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id UserID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id CaseID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id ClientID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id AlertID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id ConsentID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id DisclosureID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here. Use IsNil() at the service layer for business
// validation, which allows store lookups to return proper "not found" errors.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
