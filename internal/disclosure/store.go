package disclosure

import (
	"context"

	"caresignal/pkg/domain"
)

// Store is the append-only sink for disclosure entries.
//
// The interface deliberately has no update or delete: immutability of the
// compliance trail is enforced by construction, not convention. ListByCase
// exists for compliance review; this subsystem never reads its own log to
// make decisions.
type Store interface {
	Append(ctx context.Context, entry *Entry) error
	ListByCase(ctx context.Context, caseID domain.CaseID) ([]*Entry, error)
}
