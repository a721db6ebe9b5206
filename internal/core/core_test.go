package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prompt-party-server/internal/core"
	"prompt-party-server/internal/store"
)

// Tests run against the in-memory store backend so they exercise the same
// Store contract the sqlite backend implements, without touching disk.

func setupStore(t *testing.T) *store.MemStore {
	t.Helper()
	s, err := store.NewMemStore()
	require.NoError(t, err)
	core.Init(s)
	return s
}

// seedRoom creates a room and joins + readies every listed tab in order,
// creator first. Tab ids double as display names for readability.
func seedRoom(t *testing.T, name string, totalRounds, totalPlayers int, tabs ...string) {
	t.Helper()
	require.NotEmpty(t, tabs)
	require.NoError(t, core.CreateRoom(tabs[0], tabs[0], name, totalRounds, totalPlayers))
	for _, tab := range tabs[1:] {
		require.NoError(t, core.JoinRoom(tab, tab, name))
	}
	for _, tab := range tabs {
		require.NoError(t, core.MarkReady(tab))
	}
}
