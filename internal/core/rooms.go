package core

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"prompt-party-server/internal/entities"
)

// CreateRoom writes the room's config row with occupancy preset to 1 and the
// creator's first log row at round 0, so the creator shows up in member lists
// right away.
func CreateRoom(tabID, creatorName, roomName string, totalRounds, totalPlayers int) error {
	room := entities.Room{
		Name:      roomName,
		CreatedBy: creatorName,
		Occupancy: 1,
	}
	if totalRounds > 0 {
		room.TotalRounds = &totalRounds
	}
	if totalPlayers > 0 {
		room.TotalPlayers = &totalPlayers
	}
	if err := Store.CreateRoom(&room); err != nil {
		return err
	}

	row := entities.LogRow{TabID: tabID, Name: creatorName, RoomName: roomName, Round: 0}
	if err := Store.AppendLogRow(&row); err != nil {
		return err
	}
	log.Info().Str("room", roomName).Str("creator", creatorName).Msg("room created")
	return nil
}

// JoinRoom appends the joiner's round-0 row and bumps the denormalized
// occupancy counter on the newest room row.
func JoinRoom(tabID, playerName, roomName string) error {
	room, err := Store.LatestRoomByName(roomName)
	if err != nil {
		return err
	}
	if room == nil {
		return fmt.Errorf("no room named %q", roomName)
	}

	row := entities.LogRow{TabID: tabID, Name: playerName, RoomName: roomName, Round: 0}
	if err := Store.AppendLogRow(&row); err != nil {
		return err
	}
	return Store.BumpOccupancy(roomName, 1)
}

// MarkReady signals lobby readiness.
func MarkReady(tabID string) error {
	return appendSnapshot(tabID, func(row *entities.LogRow) {
		row.Ready = true
	})
}

// SubmitInput records the caller's free-text submission for the current
// round: the prompt when the caller holds the host seat, an answer otherwise.
func SubmitInput(tabID, input string) error {
	return appendSnapshot(tabID, func(row *entities.LogRow) {
		row.Input = input
	})
}

// CastVote records a vote marker for the current round. Writing
// entities.VoteSelected is what flips SelectionDecided.
func CastVote(tabID, marker string) error {
	return appendSnapshot(tabID, func(row *entities.LogRow) {
		row.Vote = marker
	})
}

// MarkNext signals the caller is done with the current round.
func MarkNext(tabID string) error {
	return appendSnapshot(tabID, func(row *entities.LogRow) {
		row.Next = true
	})
}

// appendSnapshot copies the caller's current room, round, name and host seat
// into a fresh row and lets set stamp the change. State changes are inserts,
// never updates; the old row stays behind as history.
func appendSnapshot(tabID string, set func(*entities.LogRow)) error {
	latest, err := Store.LatestRowForTab(tabID)
	if err != nil {
		return err
	}
	if latest == nil {
		return fmt.Errorf("tab %s has not joined a room", tabID)
	}
	row := entities.LogRow{
		TabID:    tabID,
		Name:     latest.Name,
		RoomName: latest.RoomName,
		Round:    latest.Round,
		NowHost:  latest.NowHost,
	}
	set(&row)
	return Store.AppendLogRow(&row)
}
