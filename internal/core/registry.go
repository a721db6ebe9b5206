package core

import (
	"time"

	"prompt-party-server/internal/entities"
)

// ListActiveRooms returns rooms created within window, newest first, one per
// name. The occupancy on each entry comes straight off the newest row for
// that name; when an older row carried the counter the value shown here is
// stale. That trade-off is part of the listing contract.
func ListActiveRooms(window time.Duration) ([]entities.Room, error) {
	rooms, err := Store.ListRoomsSince(time.Now().Add(-window))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(rooms))
	deduped := make([]entities.Room, 0, len(rooms))
	for _, room := range rooms {
		if seen[room.Name] {
			continue
		}
		seen[room.Name] = true
		deduped = append(deduped, room)
	}
	return deduped, nil
}

// ResolveRoomForTab is the entry point of every other operation: clients never
// send their own room or round, both are read off the tab's latest log row.
func ResolveRoomForTab(tabID string) (roomName string, round int, joined bool, err error) {
	row, err := Store.LatestRowForTab(tabID)
	if err != nil {
		return "", 0, false, err
	}
	if row == nil {
		return "", 0, false, nil
	}
	return row.RoomName, row.Round, true, nil
}

// ListMembers returns every display name ever seen in the room, ordered by
// first appearance. Membership is cumulative; leaving does not remove a name.
func ListMembers(roomName string) ([]string, error) {
	rows, err := Store.RowsForRoom(roomName)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		if seen[row.Name] {
			continue
		}
		seen[row.Name] = true
		names = append(names, row.Name)
	}
	return names, nil
}
