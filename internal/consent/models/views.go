package models

import "time"

// StatusView is the consent state reported to callers. Effective is the
// computed boolean the disclosure policy consults; callers must not derive it
// from the raw flags themselves.
type StatusView struct {
	Status    Status
	Effective bool
	SignedAt  *time.Time
	RevokedAt *time.Time
	ExpiresAt *time.Time
}
