package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"caresignal/internal/alert/models"
	"caresignal/pkg/domain"
)

// PostgresStore persists alerts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPostgres constructs a PostgreSQL-backed alert store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPostgresTx constructs a PostgreSQL-backed alert store bound to a
// transaction.
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

func (s *PostgresStore) Save(ctx context.Context, alert *models.Alert) error {
	if alert == nil {
		return fmt.Errorf("alert is required")
	}
	if err := alert.Validate(); err != nil {
		return err
	}

	metadata, err := json.Marshal(alert.Metadata)
	if err != nil {
		return fmt.Errorf("marshal alert metadata: %w", err)
	}

	query := `
		INSERT INTO case_alerts (id, case_id, alert_type, severity, message, scope, created_by, created_at, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.execer().ExecContext(ctx, query,
		uuid.UUID(alert.ID),
		uuid.UUID(alert.CaseID),
		string(alert.Type),
		string(alert.Severity),
		alert.Message,
		string(alert.Scope),
		uuid.UUID(alert.CreatedBy),
		alert.CreatedAt,
		metadata,
	)
	if err != nil {
		return fmt.Errorf("save alert: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.AlertID) (*models.Alert, error) {
	query := `
		SELECT id, case_id, alert_type, severity, message, scope, created_by, created_at, metadata
		FROM case_alerts
		WHERE id = $1
	`
	row := s.execer().QueryRowContext(ctx, query, uuid.UUID(id))
	alert, err := scanAlert(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find alert: %w", err)
	}
	return alert, nil
}

func (s *PostgresStore) ListByCase(ctx context.Context, caseID domain.CaseID) ([]*models.Alert, error) {
	query := `
		SELECT id, case_id, alert_type, severity, message, scope, created_by, created_at, metadata
		FROM case_alerts
		WHERE case_id = $1
		ORDER BY created_at ASC
	`
	rows, err := s.execer().QueryContext(ctx, query, uuid.UUID(caseID))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*models.Alert
	for rows.Next() {
		alert, err := scanAlert(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return alerts, nil
}

func scanAlert(scan func(dest ...any) error) (*models.Alert, error) {
	var alert models.Alert
	var id, caseID, createdBy uuid.UUID
	var alertType, severity, scope string
	var metadata []byte
	if err := scan(&id, &caseID, &alertType, &severity, &alert.Message,
		&scope, &createdBy, &alert.CreatedAt, &metadata); err != nil {
		return nil, err
	}
	alert.ID = domain.AlertID(id)
	alert.CaseID = domain.CaseID(caseID)
	alert.Type = models.AlertType(alertType)
	alert.Severity = domain.Severity(severity)
	alert.Scope = domain.DisclosureScope(scope)
	alert.CreatedBy = domain.UserID(createdBy)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &alert.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal alert metadata: %w", err)
		}
	}
	return &alert, nil
}
