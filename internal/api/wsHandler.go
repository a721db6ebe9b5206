package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"prompt-party-server/internal/auth"
	"prompt-party-server/internal/core"
)

var ws = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler attaches a tab to its room's event stream. The stream is advisory
// only; a tab that never connects here still progresses through polling.
func WsHandler(w http.ResponseWriter, r *http.Request) {
	tabId, err := checkToken(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	room, _, joined, err := core.ResolveRoomForTab(tabId.String())
	if err != nil || !joined {
		room = r.URL.Query().Get("room")
	}
	if room == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	socket, err := ws.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer socket.Close()

	watchRoom(room, socket)
	defer unwatchRoom(room, socket)

	for {
		if _, _, err := socket.ReadMessage(); err != nil {
			break
		}
		// inbound frames are ignored; this side only pushes
	}

	log.Debug().Str("room", room).Str("tab", tabId.String()).Msg("Conn destroyed")
}

func checkToken(r *http.Request) (uuid.UUID, error) {
	token := r.URL.Query().Get("token")
	return auth.CheckToken(token)
}
