package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/config"
	"github.com/alimikegami/pettech-microservices/core-service/internal/app"
	"github.com/alimikegami/pettech-microservices/core-service/internal/infrastructure/database/postgres"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config, err := config.CreateNewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg := config.PostgreSQLConfig
	db, err := postgres.GetDBInstance(ctx, postgres.DSN(pg.DBUsername, pg.DBPassword, pg.DBHost, pg.DBPort, pg.DBName), pg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate the database")
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	if err := server.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up the server")
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to stop the server")
	}
}
