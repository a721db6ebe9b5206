package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-memdb"

	"prompt-party-server/internal/entities"
)

const (
	tableLogRows = "log_rows"
	tableRooms   = "rooms"
)

// MemStore keeps the whole log in a go-memdb instance. It implements the same
// contract as GormStore and is what the tests run against.
type MemStore struct {
	db *memdb.MemDB

	mu     sync.Mutex
	lastID uint
}

func NewMemStore() (*MemStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableLogRows: {
				Name: tableLogRows,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					"tab_id": {
						Name:    "tab_id",
						Indexer: &memdb.StringFieldIndex{Field: "TabID"},
					},
					"room_name": {
						Name:    "room_name",
						Indexer: &memdb.StringFieldIndex{Field: "RoomName"},
					},
				},
			},
			tableRooms: {
				Name: tableRooms,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					"name": {
						Name:    "name",
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	return &MemStore{db: db}, nil
}

func (s *MemStore) nextID() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID
}

func (s *MemStore) AppendLogRow(row *entities.LogRow) error {
	row.ID = s.nextID()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	stored := *row

	txn := s.db.Txn(true)
	if err := txn.Insert(tableLogRows, &stored); err != nil {
		txn.Abort()
		return err
	}
	txn.Commit()
	return nil
}

func (s *MemStore) LatestRowForTab(tabID string) (*entities.LogRow, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableLogRows, "tab_id", tabID)
	if err != nil {
		return nil, err
	}
	var latest *entities.LogRow
	for obj := it.Next(); obj != nil; obj = it.Next() {
		row := obj.(*entities.LogRow)
		if latest == nil || rowAfter(row, latest) {
			latest = row
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func (s *MemStore) RowsForRoom(roomName string) ([]entities.LogRow, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableLogRows, "room_name", roomName)
	if err != nil {
		return nil, err
	}
	var rows []entities.LogRow
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rows = append(rows, *obj.(*entities.LogRow))
	}
	sortRowsAsc(rows)
	return rows, nil
}

func (s *MemStore) RowsForRoomRound(roomName string, round int) ([]entities.LogRow, error) {
	all, err := s.RowsForRoom(roomName)
	if err != nil {
		return nil, err
	}
	var rows []entities.LogRow
	for _, row := range all {
		if row.Round == round {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *MemStore) CountReady(roomName string) (int, error) {
	rows, err := s.RowsForRoom(roomName)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		if row.Ready {
			n++
		}
	}
	return n, nil
}

func (s *MemStore) CountNext(roomName string) (int, error) {
	rows, err := s.RowsForRoom(roomName)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		if row.Next {
			n++
		}
	}
	return n, nil
}

// ResetNextFlags mirrors the relational backend: every row in every room is
// cleared, not just the advancing room's.
func (s *MemStore) ResetNextFlags() error {
	txn := s.db.Txn(true)

	it, err := txn.Get(tableLogRows, "id")
	if err != nil {
		txn.Abort()
		return err
	}
	var flagged []*entities.LogRow
	for obj := it.Next(); obj != nil; obj = it.Next() {
		row := obj.(*entities.LogRow)
		if row.Next {
			flagged = append(flagged, row)
		}
	}
	for _, row := range flagged {
		cleared := *row
		cleared.Next = false
		if err := txn.Insert(tableLogRows, &cleared); err != nil {
			txn.Abort()
			return err
		}
	}
	txn.Commit()
	return nil
}

func (s *MemStore) CreateRoom(room *entities.Room) error {
	room.ID = s.nextID()
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}
	stored := *room

	txn := s.db.Txn(true)
	if err := txn.Insert(tableRooms, &stored); err != nil {
		txn.Abort()
		return err
	}
	txn.Commit()
	return nil
}

func (s *MemStore) LatestRoomByName(name string) (*entities.Room, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableRooms, "name", name)
	if err != nil {
		return nil, err
	}
	var latest *entities.Room
	for obj := it.Next(); obj != nil; obj = it.Next() {
		room := obj.(*entities.Room)
		if latest == nil || roomAfter(room, latest) {
			latest = room
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func (s *MemStore) ListRoomsSince(cutoff time.Time) ([]entities.Room, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableRooms, "id")
	if err != nil {
		return nil, err
	}
	var rooms []entities.Room
	for obj := it.Next(); obj != nil; obj = it.Next() {
		room := obj.(*entities.Room)
		if room.CreatedAt.After(cutoff) {
			rooms = append(rooms, *room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool {
		if !rooms[i].CreatedAt.Equal(rooms[j].CreatedAt) {
			return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
		}
		return rooms[i].ID > rooms[j].ID
	})
	return rooms, nil
}

func (s *MemStore) BumpOccupancy(name string, delta int) error {
	room, err := s.LatestRoomByName(name)
	if err != nil {
		return err
	}
	if room == nil {
		return fmt.Errorf("no room named %q", name)
	}
	room.Occupancy += delta

	txn := s.db.Txn(true)
	stored := *room
	if err := txn.Insert(tableRooms, &stored); err != nil {
		txn.Abort()
		return err
	}
	txn.Commit()
	return nil
}

func sortRowsAsc(rows []entities.LogRow) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		}
		return rows[i].ID < rows[j].ID
	})
}

func rowAfter(a, b *entities.LogRow) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func roomAfter(a, b *entities.Room) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
