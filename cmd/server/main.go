package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mkarpenko/credvault/internal/config"
	httphandler "github.com/mkarpenko/credvault/internal/handler/http"
	"github.com/mkarpenko/credvault/internal/logger"
	"github.com/mkarpenko/credvault/internal/server"
	"github.com/mkarpenko/credvault/internal/service"
	"github.com/mkarpenko/credvault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("credvault-server")

	// best-effort .env loading; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages := store.NewStorages(ctx, cfg.Storage, log)
	services := service.NewServices(storages, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
