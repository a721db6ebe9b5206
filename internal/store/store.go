package store

import (
	"time"

	"prompt-party-server/internal/entities"
)

// Store is the narrow slice of the persistence engine the game relies on:
// inserts, equality filters, ordering by creation time and exact counts.
// ResetNextFlags is the single sanctioned update; everything else is
// append-only.
type Store interface {
	AppendLogRow(row *entities.LogRow) error
	LatestRowForTab(tabID string) (*entities.LogRow, error)
	RowsForRoom(roomName string) ([]entities.LogRow, error)
	RowsForRoomRound(roomName string, round int) ([]entities.LogRow, error)
	CountReady(roomName string) (int, error)
	CountNext(roomName string) (int, error)
	ResetNextFlags() error

	CreateRoom(room *entities.Room) error
	LatestRoomByName(name string) (*entities.Room, error)
	ListRoomsSince(cutoff time.Time) ([]entities.Room, error)
	BumpOccupancy(name string, delta int) error
}
