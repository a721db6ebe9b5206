package core

import (
	"prompt-party-server/internal/entities"
)

// The readiness evaluators are pure reads over the caller's current
// (room, round) slice of the log. They never append and are safe to call
// arbitrarily often from any number of polling clients.

// TopicReady reports whether the round's prompt has been posted: any row for
// the round carrying a non-empty input counts.
func TopicReady(tabID string) (bool, error) {
	room, round, joined, err := ResolveRoomForTab(tabID)
	if err != nil || !joined {
		return false, err
	}
	rows, err := Store.RowsForRoomRound(room, round)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Input != "" {
			return true, nil
		}
	}
	return false, nil
}

// AllChildAnswersComplete reports whether every non-host player has submitted
// for the round: non-host rows with input are counted and compared against
// declared players minus one. Rows are counted raw; a duplicate submission
// overshoots the target and the predicate stays false. A one-player room
// needs zero submissions and is complete immediately.
func AllChildAnswersComplete(tabID string) (bool, error) {
	room, round, joined, err := ResolveRoomForTab(tabID)
	if err != nil || !joined {
		return false, err
	}
	roomRow, err := Store.LatestRoomByName(room)
	if err != nil {
		return false, err
	}
	if roomRow == nil || roomRow.TotalPlayers == nil {
		return false, nil
	}
	want := *roomRow.TotalPlayers - 1

	rows, err := Store.RowsForRoomRound(room, round)
	if err != nil {
		return false, err
	}
	got := 0
	for _, row := range rows {
		if !row.NowHost && row.Input != "" {
			got++
		}
	}
	return got == want, nil
}

// SelectionDecided reports whether the host has picked this round's winner.
func SelectionDecided(tabID string) (bool, error) {
	room, round, joined, err := ResolveRoomForTab(tabID)
	if err != nil || !joined {
		return false, err
	}
	rows, err := Store.RowsForRoomRound(room, round)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Vote == entities.VoteSelected {
			return true, nil
		}
	}
	return false, nil
}
