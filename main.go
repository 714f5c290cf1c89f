package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"billkaro/m/internal/api"
	"billkaro/m/internal/config"
	"billkaro/m/internal/database"
	"billkaro/m/internal/kvstore"
	"billkaro/m/internal/logger"
	"billkaro/m/internal/migrations"
	"billkaro/m/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)

	st, err := store.Open(kvstore.New(db))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load app state")
	}

	handler := api.New(st, cfg.Secret)

	log.Info().Str("port", cfg.HTTPPort).Msg("BillKaro billing server starting")
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
