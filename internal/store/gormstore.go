package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"prompt-party-server/internal/entities"
)

// GormStore backs the game with the relational database opened in internal/db.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AppendLogRow(row *entities.LogRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) LatestRowForTab(tabID string) (*entities.LogRow, error) {
	var rows []entities.LogRow
	tx := s.db.Where("tab_id = ?", tabID).
		Order("created_at desc, id desc").
		Limit(1).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *GormStore) RowsForRoom(roomName string) ([]entities.LogRow, error) {
	var rows []entities.LogRow
	tx := s.db.Where("room_name = ?", roomName).
		Order("created_at asc, id asc").
		Find(&rows)
	return rows, tx.Error
}

func (s *GormStore) RowsForRoomRound(roomName string, round int) ([]entities.LogRow, error) {
	var rows []entities.LogRow
	tx := s.db.Where("room_name = ? AND round = ?", roomName, round).
		Order("created_at asc, id asc").
		Find(&rows)
	return rows, tx.Error
}

func (s *GormStore) CountReady(roomName string) (int, error) {
	var n int64
	tx := s.db.Model(&entities.LogRow{}).
		Where("room_name = ? AND ready = ?", roomName, true).
		Count(&n)
	return int(n), tx.Error
}

func (s *GormStore) CountNext(roomName string) (int, error) {
	var n int64
	tx := s.db.Model(&entities.LogRow{}).
		Where("room_name = ? AND next = ?", roomName, true).
		Count(&n)
	return int(n), tx.Error
}

// ResetNextFlags clears the next flag on every log row in the store, not just
// the advancing room's. See the round-transition notes in internal/core.
func (s *GormStore) ResetNextFlags() error {
	return s.db.Model(&entities.LogRow{}).
		Where("next = ?", true).
		Update("next", false).Error
}

func (s *GormStore) CreateRoom(room *entities.Room) error {
	return s.db.Create(room).Error
}

func (s *GormStore) LatestRoomByName(name string) (*entities.Room, error) {
	var rooms []entities.Room
	tx := s.db.Where("name = ?", name).
		Order("created_at desc, id desc").
		Limit(1).
		Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(rooms) == 0 {
		return nil, nil
	}
	return &rooms[0], nil
}

func (s *GormStore) ListRoomsSince(cutoff time.Time) ([]entities.Room, error) {
	var rooms []entities.Room
	tx := s.db.Where("created_at > ?", cutoff).
		Order("created_at desc, id desc").
		Find(&rooms)
	return rooms, tx.Error
}

// BumpOccupancy is a plain read-then-write on the newest room row for the
// name. Concurrent bumps can lose increments; the counter is display-only.
func (s *GormStore) BumpOccupancy(name string, delta int) error {
	room, err := s.LatestRoomByName(name)
	if err != nil {
		return err
	}
	if room == nil {
		return fmt.Errorf("no room named %q", name)
	}
	room.Occupancy += delta
	return s.db.Save(room).Error
}
