package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prompt-party-server/internal/entities"
)

var Db gorm.DB

func Init(path string) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// Migrate the schema
	err = db.AutoMigrate(&entities.Room{})
	if err != nil {
		log.Error().Msg("Impossible to migrate Room table")
	}
	err = db.AutoMigrate(&entities.LogRow{})
	if err != nil {
		log.Error().Msg("Impossible to migrate LogRow table")
	}

	Db = *db

	log.Info().Str("path", path).Msg("DB Init finished")
}
