package models

import (
	"testing"

	"glowdesk-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Owner seeding must notice both a changed email and a rotated
// password, so neither drifts from the environment across restarts.
func TestCredentialsDrift(t *testing.T) {
	hash, err := utils.HashPassword("current-pass")
	require.NoError(t, err)

	owner := User{Email: "owner@glowdesk.in", Password: hash, Role: RoleOwner}

	emailChanged, passwordChanged := owner.CredentialsDrift("owner@glowdesk.in", "current-pass")
	assert.False(t, emailChanged)
	assert.False(t, passwordChanged)

	emailChanged, _ = owner.CredentialsDrift("new-owner@glowdesk.in", "current-pass")
	assert.True(t, emailChanged)

	_, passwordChanged = owner.CredentialsDrift("owner@glowdesk.in", "rotated-pass")
	assert.True(t, passwordChanged)
}
