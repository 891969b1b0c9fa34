package models

// Status represents the lifecycle state of a consent record.
type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
	StatusExpired Status = "expired"
	// StatusNone covers clients with no effective grant on file. Absence of a
	// record is treated identically to explicit non-consent (fail closed).
	StatusNone Status = "none"
)

// IsValid checks if the status is one of the supported enum values.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRevoked, StatusExpired, StatusNone:
		return true
	}
	return false
}
