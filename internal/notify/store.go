package notify

import (
	"context"

	"caresignal/pkg/domain"
)

// Store persists attorney-facing messages.
type Store interface {
	Save(ctx context.Context, msg *Message) error
	ListByCaseAndRole(ctx context.Context, caseID domain.CaseID, role domain.Role) ([]*Message, error)
}
