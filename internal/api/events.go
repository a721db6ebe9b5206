package api

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
)

// RoomEvent is a best-effort nudge pushed to connected tabs when something in
// their room moved. It carries no authority; every client still re-derives
// state from the log on its next poll.
type RoomEvent struct {
	Type   string
	Room   string
	Round  int    `json:",omitempty"`
	Player string `json:",omitempty"`
}

var (
	watchersMu sync.Mutex
	watchers   = make(map[string]map[*websocket.Conn]bool)
)

func watchRoom(room string, conn *websocket.Conn) {
	watchersMu.Lock()
	defer watchersMu.Unlock()
	if watchers[room] == nil {
		watchers[room] = make(map[*websocket.Conn]bool)
	}
	watchers[room][conn] = true
}

func unwatchRoom(room string, conn *websocket.Conn) {
	watchersMu.Lock()
	defer watchersMu.Unlock()
	delete(watchers[room], conn)
}

// broadcastEvent fans the event out to every connection watching the room.
// A connection that cannot take the write within a second is dropped; the
// watcher set is held locked for the whole fan-out so writes to one
// connection never interleave.
func broadcastEvent(room string, evt RoomEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		log.Err(err).Msg("event marshal failed")
		return
	}

	watchersMu.Lock()
	defer watchersMu.Unlock()

	conns := make([]*websocket.Conn, 0, len(watchers[room]))
	for conn := range watchers[room] {
		conns = append(conns, conn)
	}

	var failedMu sync.Mutex
	var failed []*websocket.Conn
	iter.ForEach(conns, func(connPtr **websocket.Conn) {
		conn := *connPtr
		_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			failedMu.Lock()
			failed = append(failed, conn)
			failedMu.Unlock()
		}
	})
	for _, conn := range failed {
		delete(watchers[room], conn)
		_ = conn.Close()
	}
}
