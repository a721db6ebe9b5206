package entities

import (
	"time"
)

// Room is created once by the player who opens a lobby. Rooms are matched by
// Name everywhere; duplicate names from concurrent creators are tolerated and
// listings keep only the newest row per name. Occupancy is a denormalized
// counter and not authoritative.
type Room struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"index;not null"`
	CreatedBy    string
	TotalRounds  *int
	TotalPlayers *int
	Occupancy    int
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}
