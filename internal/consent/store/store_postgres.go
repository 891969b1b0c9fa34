package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"caresignal/internal/consent/models"
	"caresignal/pkg/domain"
)

// PostgresStore persists consent records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPostgres constructs a PostgreSQL-backed consent store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPostgresTx constructs a PostgreSQL-backed consent store bound to a transaction.
func NewPostgresTx(tx *sql.Tx) *PostgresStore {
	return &PostgresStore{tx: tx}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer() dbExecutor {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *PostgresStore) Save(ctx context.Context, record *models.Record) error {
	if record == nil {
		return fmt.Errorf("consent record is required")
	}
	query := `
		INSERT INTO client_consents (id, client_id, granted, revoked, signed_at, revoked_at, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (client_id) DO UPDATE
		SET granted = EXCLUDED.granted,
		    revoked = EXCLUDED.revoked,
		    signed_at = EXCLUDED.signed_at,
		    revoked_at = EXCLUDED.revoked_at,
		    expires_at = EXCLUDED.expires_at
		RETURNING id
	`
	var storedID uuid.UUID
	err := s.execer().QueryRowContext(ctx, query,
		uuid.UUID(record.ID),
		uuid.UUID(record.ClientID),
		record.Granted,
		record.Revoked,
		record.SignedAt,
		record.RevokedAt,
		record.ExpiresAt,
		record.CreatedAt,
	).Scan(&storedID)
	if err != nil {
		return fmt.Errorf("save consent: %w", err)
	}
	record.ID = domain.ConsentID(storedID)
	return nil
}

func (s *PostgresStore) FindByClient(ctx context.Context, clientID domain.ClientID) (*models.Record, error) {
	query := `
		SELECT id, client_id, granted, revoked, signed_at, revoked_at, expires_at, created_at
		FROM client_consents
		WHERE client_id = $1
	`
	record, err := scanConsent(s.execer().QueryRowContext(ctx, query, uuid.UUID(clientID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find consent: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) Update(ctx context.Context, record *models.Record) error {
	if record == nil {
		return fmt.Errorf("consent record is required")
	}
	query := `
		UPDATE client_consents
		SET granted = $2, revoked = $3, signed_at = $4, revoked_at = $5, expires_at = $6
		WHERE id = $1 AND client_id = $7
	`
	res, err := s.execer().ExecContext(ctx, query,
		uuid.UUID(record.ID),
		record.Granted,
		record.Revoked,
		record.SignedAt,
		record.RevokedAt,
		record.ExpiresAt,
		uuid.UUID(record.ClientID),
	)
	if err != nil {
		return fmt.Errorf("update consent: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update consent rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

type consentRow interface {
	Scan(dest ...any) error
}

func scanConsent(row consentRow) (*models.Record, error) {
	var record models.Record
	var id, clientID uuid.UUID
	var signedAt, revokedAt, expiresAt sql.NullTime
	if err := row.Scan(&id, &clientID, &record.Granted, &record.Revoked, &signedAt, &revokedAt, &expiresAt, &record.CreatedAt); err != nil {
		return nil, err
	}
	record.ID = domain.ConsentID(id)
	record.ClientID = domain.ClientID(clientID)
	if signedAt.Valid {
		record.SignedAt = &signedAt.Time
	}
	if revokedAt.Valid {
		record.RevokedAt = &revokedAt.Time
	}
	if expiresAt.Valid {
		record.ExpiresAt = &expiresAt.Time
	}
	return &record, nil
}
