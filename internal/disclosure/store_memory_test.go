package disclosure

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

func validEntry(caseID domain.CaseID) *Entry {
	return &Entry{
		ID:              domain.NewDisclosureID(),
		CaseID:          caseID,
		AlertID:         domain.NewAlertID(),
		AuthorizationID: domain.NewConsentID(),
		DisclosedTo:     domain.UserID(uuid.New()),
		DisclosedToRole: domain.RoleAttorney,
		Scope:           domain.ScopeMinimal,
		Reason:          "crisis_notification",
		DisclosedBy:     domain.UserID(uuid.New()),
		DisclosedAt:     time.Now(),
	}
}

func TestInMemoryStore_AppendAndList(t *testing.T) {
	store := NewInMemory()
	caseID := domain.CaseID(uuid.New())
	ctx := context.Background()

	first := validEntry(caseID)
	second := validEntry(caseID)
	second.Supersedes = &first.ID

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	entries, err := store.ListByCase(ctx, caseID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	require.NotNil(t, entries[1].Supersedes)
	assert.Equal(t, first.ID, *entries[1].Supersedes)

	other, err := store.ListByCase(ctx, domain.CaseID(uuid.New()))
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestInMemoryStore_AppendCopiesEntry(t *testing.T) {
	store := NewInMemory()
	caseID := domain.CaseID(uuid.New())
	ctx := context.Background()

	entry := validEntry(caseID)
	require.NoError(t, store.Append(ctx, entry))

	// Mutating the caller's copy after append must not alter the trail.
	entry.Reason = "rewritten"

	entries, err := store.ListByCase(ctx, caseID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "crisis_notification", entries[0].Reason)
}

func TestEntry_Validate(t *testing.T) {
	caseID := domain.CaseID(uuid.New())

	t.Run("valid entry passes", func(t *testing.T) {
		require.NoError(t, validEntry(caseID).Validate())
	})

	t.Run("missing recipient rejected", func(t *testing.T) {
		entry := validEntry(caseID)
		entry.DisclosedTo = domain.UserID{}
		err := entry.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("invalid scope rejected", func(t *testing.T) {
		entry := validEntry(caseID)
		entry.Scope = "everything"
		require.Error(t, entry.Validate())
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		entry := validEntry(caseID)
		entry.DisclosedToRole = "PARALEGAL"
		require.Error(t, entry.Validate())
	})
}
