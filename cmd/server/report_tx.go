package main

import (
	"context"
	"database/sql"
	"time"

	alertservice "caresignal/internal/alert/service"
	alertstore "caresignal/internal/alert/store"
	"caresignal/internal/disclosure"
	"caresignal/internal/notify"
	dErrors "caresignal/pkg/domain-errors"
)

const defaultReportTxTimeout = 5 * time.Second

// reportPostgresTx commits the disclosure writes as one database transaction:
// the external alert, the attorney message, and the disclosure log entry land
// together or not at all.
type reportPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newReportPostgresTx(db *sql.DB) *reportPostgresTx {
	return &reportPostgresTx{db: db}
}

func (t *reportPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context, stores alertservice.TxStores) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultReportTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback after commit is no-op; error already captured
	}()

	stores := alertservice.TxStores{
		Alerts:      alertstore.NewPostgresTx(tx),
		Messages:    notify.NewPostgresTx(tx),
		Disclosures: disclosure.NewPostgresTx(tx),
	}
	if err := fn(ctx, stores); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}
