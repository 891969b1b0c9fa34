package disclosure

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"caresignal/pkg/domain"
)

// PostgresStore persists disclosure entries in PostgreSQL. The disclosure_log
// table carries no UPDATE or DELETE grants; this store only ever inserts.
type PostgresStore struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPostgres constructs a PostgreSQL-backed disclosure store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPostgresTx constructs a PostgreSQL-backed disclosure store bound to a
// transaction, so an entry commits atomically with the alert it describes.
func NewPostgresTx(tx *sql.Tx) *PostgresStore {
	return &PostgresStore{tx: tx}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) execer() dbExecutor {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *PostgresStore) Append(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("disclosure entry is required")
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("marshal disclosure metadata: %w", err)
	}

	var supersedes any
	if entry.Supersedes != nil {
		supersedes = uuid.UUID(*entry.Supersedes)
	}

	query := `
		INSERT INTO disclosure_log
			(id, case_id, alert_id, authorization_id, disclosed_to_user_id, disclosed_to_role,
			 disclosure_scope, disclosure_reason, disclosed_by, disclosed_at, metadata, supersedes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = s.execer().ExecContext(ctx, query,
		uuid.UUID(entry.ID),
		uuid.UUID(entry.CaseID),
		uuid.UUID(entry.AlertID),
		uuid.UUID(entry.AuthorizationID),
		uuid.UUID(entry.DisclosedTo),
		string(entry.DisclosedToRole),
		string(entry.Scope),
		entry.Reason,
		uuid.UUID(entry.DisclosedBy),
		entry.DisclosedAt,
		metadata,
		supersedes,
	)
	if err != nil {
		return fmt.Errorf("append disclosure entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCase(ctx context.Context, caseID domain.CaseID) ([]*Entry, error) {
	query := `
		SELECT id, case_id, alert_id, authorization_id, disclosed_to_user_id, disclosed_to_role,
		       disclosure_scope, disclosure_reason, disclosed_by, disclosed_at, metadata, supersedes
		FROM disclosure_log
		WHERE case_id = $1
		ORDER BY disclosed_at ASC
	`
	rows, err := s.execer().QueryContext(ctx, query, uuid.UUID(caseID))
	if err != nil {
		return nil, fmt.Errorf("list disclosures: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan disclosure entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate disclosures: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (*Entry, error) {
	var entry Entry
	var id, caseID, alertID, authID, toUser, byUser uuid.UUID
	var role, scope string
	var metadata []byte
	var supersedes uuid.NullUUID
	if err := rows.Scan(&id, &caseID, &alertID, &authID, &toUser, &role,
		&scope, &entry.Reason, &byUser, &entry.DisclosedAt, &metadata, &supersedes); err != nil {
		return nil, err
	}
	entry.ID = domain.DisclosureID(id)
	entry.CaseID = domain.CaseID(caseID)
	entry.AlertID = domain.AlertID(alertID)
	entry.AuthorizationID = domain.ConsentID(authID)
	entry.DisclosedTo = domain.UserID(toUser)
	entry.DisclosedToRole = domain.Role(role)
	entry.Scope = domain.DisclosureScope(scope)
	entry.DisclosedBy = domain.UserID(byUser)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal disclosure metadata: %w", err)
		}
	}
	if supersedes.Valid {
		prior := domain.DisclosureID(supersedes.UUID)
		entry.Supersedes = &prior
	}
	return &entry, nil
}
