package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-party-server/internal/core"
	"prompt-party-server/internal/entities"
)

func TestResolveRoomForTabRoundTrip(t *testing.T) {
	setupStore(t)

	_, _, joined, err := core.ResolveRoomForTab("a")
	require.NoError(t, err)
	assert.False(t, joined)

	require.NoError(t, core.CreateRoom("a", "alice", "den", 2, 2))

	room, round, joined, err := core.ResolveRoomForTab("a")
	require.NoError(t, err)
	require.True(t, joined)
	assert.Equal(t, "den", room)
	assert.Equal(t, 0, round)
}

func TestListActiveRoomsFiltersByWindow(t *testing.T) {
	s := setupStore(t)

	stale := &entities.Room{Name: "stale", CreatedAt: time.Now().Add(-3 * time.Hour)}
	require.NoError(t, s.CreateRoom(stale))
	require.NoError(t, core.CreateRoom("a", "alice", "fresh", 2, 2))

	rooms, err := core.ListActiveRooms(2 * time.Hour)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "fresh", rooms[0].Name)
}

func TestListActiveRoomsDedupsByNameKeepingNewest(t *testing.T) {
	s := setupStore(t)

	older := &entities.Room{Name: "dup", Occupancy: 4, CreatedAt: time.Now().Add(-time.Minute)}
	require.NoError(t, s.CreateRoom(older))
	newer := &entities.Room{Name: "dup", Occupancy: 1}
	require.NoError(t, s.CreateRoom(newer))

	rooms, err := core.ListActiveRooms(time.Hour)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	// the newest row wins even when an older row held a larger counter
	assert.Equal(t, 1, rooms[0].Occupancy)
}

func TestListMembersFirstSeenOrderAndCumulative(t *testing.T) {
	setupStore(t)

	require.NoError(t, core.CreateRoom("a", "alice", "den", 2, 3))
	require.NoError(t, core.JoinRoom("b", "bob", "den"))
	require.NoError(t, core.JoinRoom("c", "carol", "den"))
	// later activity must not reorder anyone
	require.NoError(t, core.MarkReady("a"))
	require.NoError(t, core.MarkReady("c"))

	members, err := core.ListMembers("den")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, members)
}

func TestJoinRoomBumpsOccupancy(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, core.CreateRoom("a", "alice", "den", 2, 3))
	require.NoError(t, core.JoinRoom("b", "bob", "den"))
	require.NoError(t, core.JoinRoom("c", "carol", "den"))

	room, err := s.LatestRoomByName("den")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, 3, room.Occupancy)
}

func TestJoinUnknownRoomFails(t *testing.T) {
	setupStore(t)
	assert.Error(t, core.JoinRoom("b", "bob", "nowhere"))
}
