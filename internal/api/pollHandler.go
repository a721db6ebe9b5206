package api

import (
	"encoding/json"
	"net/http"

	"prompt-party-server/internal/core"
	"prompt-party-server/internal/entities"
)

type ResolveResponse struct {
	Joined bool
	Room   string `json:",omitempty"`
	Round  int
}

type InputRequest struct {
	Input string
}

type VoteRequest struct {
	Marker string
}

type ConfigResponse struct {
	PollForegroundMs int64
	PollBackgroundMs int64
}

// ConfigHandler tells pollers how fast to spin.
func ConfigHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ConfigResponse{
		PollForegroundMs: core.Cfg.PollForeground.Milliseconds(),
		PollBackgroundMs: core.Cfg.PollBackground.Milliseconds(),
	})
}

func ResolveHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	room, round, joined, err := core.ResolveRoomForTab(tabID)
	if err != nil {
		writeJSON(w, ActionResponse{Error: err.Error()})
		return
	}
	writeJSON(w, ResolveResponse{Joined: joined, Room: room, Round: round})
}

func ReadyHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	actionResult(w, core.MarkReady(tabID))
}

func InputHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	var req InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w)
		return
	}
	if req.Input == "" {
		errorResponse(w)
		return
	}
	actionResult(w, core.SubmitInput(tabID, req.Input))
}

func VoteHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w)
		return
	}
	if req.Marker == "" {
		req.Marker = entities.VoteSelected
	}
	actionResult(w, core.CastVote(tabID, req.Marker))
}

func NextHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	actionResult(w, core.MarkNext(tabID))
}

func TopicReadyHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	ready, err := core.TopicReady(tabID)
	probeResult(w, ready, err)
}

func AnswersCompleteHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	ready, err := core.AllChildAnswersComplete(tabID)
	probeResult(w, ready, err)
}

func SelectionDecidedHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	ready, err := core.SelectionDecided(tabID)
	probeResult(w, ready, err)
}

// DecideHandler is the coordinator's single entry point. Every outcome is a
// 200 with a Decision body; a non-match is a normal answer, not a failure.
func DecideHandler(w http.ResponseWriter, r *http.Request) {
	tabID, err := tabFromRequest(r)
	if err != nil {
		errorResponse(w)
		return
	}
	decision := core.DecideAndRoute(tabID)
	if decision.Matched {
		if room, _, joined, err := core.ResolveRoomForTab(tabID); err == nil && joined {
			broadcastEvent(room, RoomEvent{Type: "advanced", Room: room, Round: decision.Round})
		}
	}
	writeJSON(w, decision)
}
