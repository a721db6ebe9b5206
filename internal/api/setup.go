package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/login", LoginHandler).Methods("POST")
	r.HandleFunc("/ws", WsHandler)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/config", ConfigHandler).Methods("GET")
	api.HandleFunc("/rooms", CreateRoomHandler).Methods("POST")
	api.HandleFunc("/rooms", ListRoomsHandler).Methods("GET")
	api.HandleFunc("/rooms/{name}/join", JoinRoomHandler).Methods("POST")
	api.HandleFunc("/rooms/{name}/members", MembersHandler).Methods("GET")
	api.HandleFunc("/tab/room", ResolveHandler).Methods("GET")
	api.HandleFunc("/tab/ready", ReadyHandler).Methods("POST")
	api.HandleFunc("/tab/input", InputHandler).Methods("POST")
	api.HandleFunc("/tab/vote", VoteHandler).Methods("POST")
	api.HandleFunc("/tab/next", NextHandler).Methods("POST")
	api.HandleFunc("/tab/readiness/topic", TopicReadyHandler).Methods("GET")
	api.HandleFunc("/tab/readiness/answers", AnswersCompleteHandler).Methods("GET")
	api.HandleFunc("/tab/readiness/selection", SelectionDecidedHandler).Methods("GET")
	api.HandleFunc("/tab/decide", DecideHandler).Methods("POST")

	return r
}

func Serve(addr string) {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Info().Str("addr", addr).Msg("Serving")
	log.Fatal().Err(http.ListenAndServe(addr, handlers.RecoveryHandler()(cors(NewRouter())))).Msg("Server stopped")
}
