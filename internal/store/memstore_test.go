package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-party-server/internal/entities"
	"prompt-party-server/internal/store"
)

func newStore(t *testing.T) *store.MemStore {
	t.Helper()
	s, err := store.NewMemStore()
	require.NoError(t, err)
	return s
}

func TestLatestRowForTabPicksNewest(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.AppendLogRow(&entities.LogRow{TabID: "t", RoomName: "r", Round: 0}))
	require.NoError(t, s.AppendLogRow(&entities.LogRow{TabID: "t", RoomName: "r", Round: 1}))
	require.NoError(t, s.AppendLogRow(&entities.LogRow{TabID: "other", RoomName: "r", Round: 2}))

	row, err := s.LatestRowForTab("t")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 1, row.Round)

	row, err = s.LatestRowForTab("missing")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestRowsForRoomAscendingOrder(t *testing.T) {
	s := newStore(t)

	for round := 0; round < 3; round++ {
		require.NoError(t, s.AppendLogRow(&entities.LogRow{TabID: "t", RoomName: "r", Round: round}))
	}
	rows, err := s.RowsForRoom("r")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, row.Round)
	}
}

func TestResetNextFlagsIsStoreWide(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.AppendLogRow(&entities.LogRow{TabID: "a", RoomName: "one", Round: 1, Next: true}))
	require.NoError(t, s.AppendLogRow(&entities.LogRow{TabID: "b", RoomName: "two", Round: 1, Next: true}))

	require.NoError(t, s.ResetNextFlags())

	for _, room := range []string{"one", "two"} {
		n, err := s.CountNext(room)
		require.NoError(t, err)
		assert.Zero(t, n, "room %s", room)
	}
}

func TestLatestRoomByNameAndWindow(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.CreateRoom(&entities.Room{Name: "r", Occupancy: 2, CreatedAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, s.CreateRoom(&entities.Room{Name: "r", Occupancy: 5}))

	room, err := s.LatestRoomByName("r")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, 5, room.Occupancy)

	rooms, err := s.ListRoomsSince(time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 5, rooms[0].Occupancy)
}

func TestBumpOccupancyUnknownRoom(t *testing.T) {
	s := newStore(t)
	assert.Error(t, s.BumpOccupancy("nowhere", 1))
}
