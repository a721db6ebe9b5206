package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"prompt-party-server/internal/core"
)

type CreateRoomRequest struct {
	Player       string
	Name         string
	TotalRounds  int
	TotalPlayers int
}

type JoinRoomRequest struct {
	Player string
}

type RoomListing struct {
	Name         string
	CreatedBy    string
	TotalRounds  *int
	TotalPlayers *int
	Occupancy    int
}

func CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w)
		return
	}
	if req.Name == "" || req.Player == "" {
		errorResponse(w)
		return
	}
	actionResult(w, core.CreateRoom(tabID, req.Player, req.Name, req.TotalRounds, req.TotalPlayers))
}

func ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := core.ListActiveRooms(core.Cfg.ActiveWindow)
	if err != nil {
		writeJSON(w, ActionResponse{Error: err.Error()})
		return
	}
	listings := make([]RoomListing, 0, len(rooms))
	for _, room := range rooms {
		listings = append(listings, RoomListing{
			Name:         room.Name,
			CreatedBy:    room.CreatedBy,
			TotalRounds:  room.TotalRounds,
			TotalPlayers: room.TotalPlayers,
			Occupancy:    room.Occupancy,
		})
	}
	writeJSON(w, listings)
}

func JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w)
		return
	}
	if req.Player == "" {
		errorResponse(w)
		return
	}
	roomName := mux.Vars(r)["name"]

	if err := core.JoinRoom(tabID, req.Player, roomName); err != nil {
		writeJSON(w, ActionResponse{Error: err.Error()})
		return
	}
	broadcastEvent(roomName, RoomEvent{Type: "joined", Room: roomName, Player: req.Player})
	writeJSON(w, ActionResponse{Ok: true})
}

func MembersHandler(w http.ResponseWriter, r *http.Request) {
	roomName := mux.Vars(r)["name"]
	members, err := core.ListMembers(roomName)
	if err != nil {
		writeJSON(w, ActionResponse{Error: err.Error()})
		return
	}
	if members == nil {
		members = []string{}
	}
	writeJSON(w, members)
}
