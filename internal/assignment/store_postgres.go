package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"caresignal/pkg/domain"
)

// PostgresStore resolves assignments from the case_assignments table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed assignment store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, a *Assignment) error {
	if a == nil {
		return fmt.Errorf("assignment is required")
	}
	query := `
		INSERT INTO case_assignments (case_id, user_id, role, assigned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (case_id, role) DO UPDATE SET user_id = EXCLUDED.user_id, assigned_at = EXCLUDED.assigned_at
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(a.CaseID),
		uuid.UUID(a.UserID),
		string(a.Role),
		a.AssignedAt,
	)
	if err != nil {
		return fmt.Errorf("save assignment: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByCaseAndRole(ctx context.Context, caseID domain.CaseID, role domain.Role) (*Assignment, error) {
	query := `
		SELECT case_id, user_id, role, assigned_at
		FROM case_assignments
		WHERE case_id = $1 AND role = $2
	`
	var a Assignment
	var cID, uID uuid.UUID
	var roleStr string
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(caseID), string(role)).
		Scan(&cID, &uID, &roleStr, &a.AssignedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	a.CaseID = domain.CaseID(cID)
	a.UserID = domain.UserID(uID)
	a.Role = domain.Role(roleStr)
	return &a, nil
}
