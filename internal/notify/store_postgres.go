package notify

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"caresignal/pkg/domain"
)

// PostgresStore persists messages in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPostgres constructs a PostgreSQL-backed message store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPostgresTx constructs a PostgreSQL-backed message store bound to a transaction.
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

func (s *PostgresStore) Save(ctx context.Context, msg *Message) error {
	if msg == nil {
		return fmt.Errorf("message is required")
	}
	query := `
		INSERT INTO attorney_messages (id, case_id, sender_id, recipient_role, subject, body, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.execer().ExecContext(ctx, query,
		uuid.UUID(msg.ID),
		uuid.UUID(msg.CaseID),
		uuid.UUID(msg.SenderID),
		string(msg.RecipientRole),
		msg.Subject,
		msg.Body,
		msg.Status,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCaseAndRole(ctx context.Context, caseID domain.CaseID, role domain.Role) ([]*Message, error) {
	query := `
		SELECT id, case_id, sender_id, recipient_role, subject, body, status, created_at
		FROM attorney_messages
		WHERE case_id = $1 AND recipient_role = $2
		ORDER BY created_at ASC
	`
	rows, err := s.execer().QueryContext(ctx, query, uuid.UUID(caseID), string(role))
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []*Message
	for rows.Next() {
		var m Message
		var id, caseUUID, senderID uuid.UUID
		var roleStr string
		if err := rows.Scan(&id, &caseUUID, &senderID, &roleStr, &m.Subject, &m.Body, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.ID = domain.MessageID(id)
		m.CaseID = domain.CaseID(caseUUID)
		m.SenderID = domain.UserID(senderID)
		m.RecipientRole = domain.Role(roleStr)
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return out, nil
}
