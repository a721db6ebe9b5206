package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"prompt-party-server/internal/auth"
)

// ActionResponse reports an append-only write. Store failures come back with
// Ok false and the message attached; the poller's timer is the retry loop.
type ActionResponse struct {
	Ok    bool
	Error string `json:",omitempty"`
}

// ProbeResponse is the shape of the three readiness probes.
type ProbeResponse struct {
	Ready bool
	Error string `json:",omitempty"`
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		return
	}
}

func errorResponse(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
}

func actionResult(w http.ResponseWriter, err error) {
	if err != nil {
		writeJSON(w, ActionResponse{Error: err.Error()})
		return
	}
	writeJSON(w, ActionResponse{Ok: true})
}

func probeResult(w http.ResponseWriter, ready bool, err error) {
	if err != nil {
		writeJSON(w, ProbeResponse{Error: err.Error()})
		return
	}
	writeJSON(w, ProbeResponse{Ready: ready})
}

// tabFromRequest reads the tab identity off the token query parameter or the
// Authorization header.
func tabFromRequest(r *http.Request) (string, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	id, err := auth.CheckToken(token)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
