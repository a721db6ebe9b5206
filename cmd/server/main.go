package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"prompt-party-server/internal/api"
	"prompt-party-server/internal/core"
	database "prompt-party-server/internal/db"
	"prompt-party-server/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	_ = godotenv.Load()

	if err := core.InitConfig(); err != nil {
		log.Fatal().Err(err).Msg("config init failed")
	}
	database.Init(core.Cfg.DBPath)
	core.Init(store.NewGormStore(&database.Db))
	api.Serve(core.Cfg.Addr)
}
