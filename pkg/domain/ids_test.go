package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "caresignal/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be well-formed UUIDs, rejected at trust boundaries".
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCaseID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseClientID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseUserID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, UserID(validUUID), id)
	})

	t.Run("nil UUID parses but reports IsNil", func(t *testing.T) {
		id, err := ParseAlertID(uuid.Nil.String())
		require.NoError(t, err)
		assert.True(t, id.IsNil())
	})
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range []Role{RoleClient, RoleAttorney, RoleCareManager} {
		assert.True(t, r.IsValid(), "expected %s to be valid", r)
	}
	assert.False(t, Role("PARALEGAL").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_CareTeam(t *testing.T) {
	assert.True(t, RoleCareManager.CareTeam())
	assert.False(t, RoleAttorney.CareTeam())
	assert.False(t, RoleClient.CareTeam())
}
