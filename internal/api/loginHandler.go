package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"prompt-party-server/internal/auth"
)

type LoginRequest struct {
	Token string
}

type LoginResponse struct {
	TabId string
	Token string
}

// LoginHandler hands a browser tab its identity: a fresh uuid plus a token on
// first contact, the same identity echoed back when a valid token is resent.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var loginRequest LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		errorResponse(w)
		return
	}

	if len(loginRequest.Token) == 0 {
		tabId, err := uuid.NewRandom()
		if err != nil {
			errorResponse(w)
			return
		}

		token, err := auth.GenerateToken(tabId)
		if err != nil {
			errorResponse(w)
			return
		}

		okLogin(w, tabId, token)
		return
	}

	id, err := auth.CheckToken(loginRequest.Token)
	if err != nil {
		errorResponse(w)
		return
	}

	okLogin(w, id, loginRequest.Token)
}

func okLogin(w http.ResponseWriter, tabId uuid.UUID, token string) {
	writeJSON(w, LoginResponse{tabId.String(), token})
}
