package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saeidalz13/battleship-core/api"
	"github.com/saeidalz13/battleship-core/db"
	"github.com/saeidalz13/battleship-core/db/sqlc"
)

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg("no .env file loaded")
		}
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = api.StageDev
	}
	setupLogger(stage, os.Getenv("LOG_LEVEL"))

	opts := []api.Option{api.WithStage(stage)}
	if port := os.Getenv("PORT"); port != "" {
		opts = append(opts, api.WithPort(port))
	}

	// analytics are off without a database
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		conn := db.MustConnectToDb(psqlUrl, db.DefaultMigrationUrl)
		defer conn.Close()
		opts = append(opts, api.WithQuerier(sqlc.New(conn)))
	} else {
		log.Info().Msg("DATABASE_URL not set, analytics disabled")
	}

	server := api.NewServer(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return
	}
	log.Info().Msg("server stopped")
}

func setupLogger(stage, level string) {
	lvl := zerolog.DebugLevel
	if stage == api.StageProd {
		lvl = zerolog.InfoLevel
	}
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			log.Warn().Err(err).Str("level", level).Msg("invalid LOG_LEVEL, keeping default")
		} else {
			lvl = parsed
		}
	}
	zerolog.SetGlobalLevel(lvl)

	if stage == api.StageProd {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
