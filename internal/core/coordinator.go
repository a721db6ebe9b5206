package core

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"prompt-party-server/internal/entities"
)

// Route hints handed back to the polling client.
const (
	RouteHost         = "host-screen"
	RouteWaiting      = "waiting-screen"
	RouteFinalResults = "final-results-screen"
)

// Decision is the coordinator's only output. Nothing here is ever an error
// return: a failed query lands in Reason with Matched false and the client's
// next poll simply retries.
type Decision struct {
	Matched  bool
	Finished bool
	NowHost  bool
	To       string
	Round    int
	Position int
	Players  int
	Have     int
	Want     int
	Reason   string
}

// DecideAndRoute re-derives the room's phase from the log and, when the phase
// is complete, appends the caller's row for the next round and says where the
// caller's UI should go. Concurrent callers race benignly: each one recomputes
// the same deterministic host assignment from whatever rows it observes, and
// the latest row wins.
func DecideAndRoute(tabID string) Decision {
	latest, err := Store.LatestRowForTab(tabID)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	if latest == nil {
		return Decision{Reason: "tab has not joined a room"}
	}
	if latest.Round == 0 {
		return advanceFromLobby(latest)
	}
	return advanceRound(latest)
}

func advanceFromLobby(latest *entities.LogRow) Decision {
	have, err := Store.CountReady(latest.RoomName)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	want, err := declaredPlayers(latest.RoomName)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	if want == 0 || have != want {
		return Decision{Have: have, Want: want, Reason: "lobby not complete"}
	}
	return appendAdvance(latest, latest.Round+1, want)
}

func advanceRound(latest *entities.LogRow) Decision {
	have, err := Store.CountNext(latest.RoomName)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	want, err := declaredPlayers(latest.RoomName)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	if want == 0 || have != want {
		return Decision{Have: have, Want: want, Reason: "round not complete"}
	}

	// Clears next flags across the whole store, not just this room. Scoping
	// it per room would change when other rooms' counts reach their totals;
	// keep the global reset unless the client contract moves with it.
	if err := Store.ResetNextFlags(); err != nil {
		return Decision{Reason: err.Error()}
	}

	current, err := Store.LatestRowForTab(latest.TabID)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	if current == nil {
		return Decision{Reason: "tab has not joined a room"}
	}

	totalRounds, err := declaredRounds(current.RoomName)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	if totalRounds > 0 && current.Round == totalRounds {
		log.Info().Str("room", current.RoomName).Int("round", current.Round).Msg("game finished")
		return Decision{Matched: true, Finished: true, To: RouteFinalResults, Round: current.Round}
	}
	return appendAdvance(current, current.Round+1, want)
}

// appendAdvance computes the caller's seat in the rotated room order, derives
// the host flag for newRound and appends the caller's row for it.
func appendAdvance(latest *entities.LogRow, newRound, players int) Decision {
	order, err := rotatedRoomOrder(latest.RoomName)
	if err != nil {
		return Decision{Reason: err.Error()}
	}
	pos := -1
	for i, row := range order {
		if row.TabID == latest.TabID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return Decision{Reason: "caller has no rows in room"}
	}

	host := newRound%players == pos
	row := entities.LogRow{
		TabID:    latest.TabID,
		Name:     latest.Name,
		RoomName: latest.RoomName,
		Round:    newRound,
		NowHost:  host,
	}
	if err := Store.AppendLogRow(&row); err != nil {
		return Decision{Reason: err.Error()}
	}

	to := RouteWaiting
	if host {
		to = RouteHost
	}
	log.Info().
		Str("room", latest.RoomName).
		Str("tab", latest.TabID).
		Int("round", newRound).
		Bool("now_host", host).
		Msg("advanced")
	return Decision{Matched: true, NowHost: host, To: to, Round: newRound, Position: pos, Players: players}
}

// rotatedRoomOrder sorts every raw row for the room ascending by creation
// time, then moves the single newest row to the front. A caller's seat is the
// index of its first row in this list. The order is recomputed on every call
// rather than stored, so the rotation follows whatever membership the query
// currently sees.
func rotatedRoomOrder(roomName string) ([]entities.LogRow, error) {
	rows, err := Store.RowsForRoom(roomName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no log rows for room %q", roomName)
	}
	rotated := make([]entities.LogRow, 0, len(rows))
	rotated = append(rotated, rows[len(rows)-1])
	rotated = append(rotated, rows[:len(rows)-1]...)
	return rotated, nil
}

func declaredPlayers(roomName string) (int, error) {
	room, err := Store.LatestRoomByName(roomName)
	if err != nil {
		return 0, err
	}
	if room == nil || room.TotalPlayers == nil {
		return 0, nil
	}
	return *room.TotalPlayers, nil
}

func declaredRounds(roomName string) (int, error) {
	room, err := Store.LatestRoomByName(roomName)
	if err != nil {
		return 0, err
	}
	if room == nil || room.TotalRounds == nil {
		return 0, nil
	}
	return *room.TotalRounds, nil
}
