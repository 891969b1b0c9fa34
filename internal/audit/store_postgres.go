package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists audit events in PostgreSQL so the operational trail
// survives restarts. Events are insert-only.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed audit store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	query := `
		INSERT INTO audit_events (occurred_at, actor_id, client_id, case_id, action, decision, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.Timestamp,
		event.ActorID,
		event.ClientID,
		event.CaseID,
		event.Action,
		event.Decision,
		event.Reason,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByClient(ctx context.Context, clientID string) ([]Event, error) {
	query := `
		SELECT occurred_at, actor_id, client_id, case_id, action, decision, reason
		FROM audit_events
		WHERE client_id = $1
		ORDER BY occurred_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Timestamp, &e.ActorID, &e.ClientID, &e.CaseID,
			&e.Action, &e.Decision, &e.Reason); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
