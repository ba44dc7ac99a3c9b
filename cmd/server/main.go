package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/handler"
	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/server"
	"github.com/ymatsuda/go-api-sample/internal/service"
	"github.com/ymatsuda/go-api-sample/internal/store"
)

// Build metadata, injected via -ldflags at release time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	log := logger.NewLogger("api-server")

	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("starting server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	// ldflags-injected version wins over the "dev" default but not over
	// an explicitly configured one
	if cfg.App.Version == "dev" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(cfg, handlers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
