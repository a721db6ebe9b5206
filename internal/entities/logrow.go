package entities

import (
	"time"
)

// VoteSelected marks a round's selection as decided.
const VoteSelected = "SELECTED"

// LogRow is one immutable snapshot of a player's state inside a room. Rows are
// only ever inserted; the row with the highest CreatedAt for a (room, tab)
// pair is that player's current state. The single exception to the append-only
// rule is the store-wide reset of the Next flag during a round transition.
type LogRow struct {
	ID        uint   `gorm:"primaryKey"`
	TabID     string `gorm:"index;size:36;not null"`
	Name      string
	RoomName  string `gorm:"index;not null"`
	Round     int    `gorm:"not null"`
	Ready     bool
	Next      bool
	NowHost   bool
	Input     string
	Vote      string
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}
