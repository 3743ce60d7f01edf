package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendledger/backend/internal/config"
	v1 "github.com/spendledger/backend/internal/controllers/v1"
	"github.com/spendledger/backend/internal/importer"
	"github.com/spendledger/backend/internal/ledger"
	"github.com/spendledger/backend/internal/models"
	"github.com/spendledger/backend/internal/router"
)

func main() {
	// A .env file is optional, the environment wins either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the directory the database lives in
	err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := models.Connect(cfg.DBPath, log.Logger)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store := ledger.NewStore(db, cfg.Categories, log.Logger)
	defer store.Close()

	engine := ledger.NewEngine(store)
	pipeline := importer.NewPipeline(store, log.Logger)
	co := v1.NewController(store, engine, pipeline)

	r, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(co, r.Group("/"))

	log.Info().Msg("backend startup complete")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
