package audit

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgres(db)
	event := Event{
		Timestamp: time.Now(),
		ActorID:   "actor-1",
		ClientID:  "client-1",
		CaseID:    "case-1",
		Action:    ActionDisclosureMade,
		Decision:  DecisionApproved,
		Reason:    "crisis_notification",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_events")).
		WithArgs(event.Timestamp, "actor-1", "client-1", "case-1",
			ActionDisclosureMade, DecisionApproved, "crisis_notification").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Append(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListByClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgres(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"occurred_at", "actor_id", "client_id", "case_id", "action", "decision", "reason"}).
		AddRow(now.Add(-time.Hour), "actor-1", "client-1", "", ActionConsentGranted, DecisionGranted, "user_initiated").
		AddRow(now, "actor-2", "client-1", "case-1", ActionDisclosureMade, DecisionApproved, "crisis_notification")

	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_events")).
		WithArgs("client-1").
		WillReturnRows(rows)

	events, err := store.ListByClient(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ActionConsentGranted, events[0].Action)
	assert.Equal(t, ActionDisclosureMade, events[1].Action)
	assert.Equal(t, "case-1", events[1].CaseID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
