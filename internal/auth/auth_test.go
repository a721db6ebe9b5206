package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-party-server/internal/auth"
	"prompt-party-server/internal/core"
)

func TestTokenRoundTrip(t *testing.T) {
	require.NoError(t, core.InitConfig())

	tabId := uuid.New()
	token, err := auth.GenerateToken(tabId)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := auth.CheckToken(token)
	require.NoError(t, err)
	assert.Equal(t, tabId, got)
}

func TestCheckTokenRejectsGarbage(t *testing.T) {
	require.NoError(t, core.InitConfig())

	_, err := auth.CheckToken("not-a-token")
	assert.Error(t, err)
}
