// Package assignment resolves who serves which role on a case. The crisis
// workflow uses it to find the case's client and, when disclosure is
// authorized, the assigned attorney.
package assignment

import (
	"time"

	"caresignal/pkg/domain"
)

// Assignment ties a user to a case in a specific role.
type Assignment struct {
	CaseID     domain.CaseID
	UserID     domain.UserID
	Role       domain.Role
	AssignedAt time.Time
}
