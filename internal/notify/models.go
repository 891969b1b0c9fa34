// Package notify delivers the in-app message that accompanies an
// attorney-facing alert. Messages carry only redacted text; the alert record
// itself is the source of truth for disclosure scope.
package notify

import (
	"time"

	"caresignal/pkg/domain"
)

// Message statuses as consumed by the portal inbox.
const (
	StatusPending = "pending"
	StatusRead    = "read"
)

// Message is an in-app notification addressed to a role on a case.
type Message struct {
	ID            domain.MessageID
	CaseID        domain.CaseID
	SenderID      domain.UserID
	RecipientRole domain.Role
	Subject       string
	Body          string
	Status        string
	CreatedAt     time.Time
}
