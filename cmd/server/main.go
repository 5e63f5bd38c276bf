package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-role-registry/internal/config"
	myHTTP "github.com/MKhiriev/go-role-registry/internal/handler/http"
	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/server"
	"github.com/MKhiriev/go-role-registry/internal/service"
	"github.com/MKhiriev/go-role-registry/internal/session"
	"github.com/MKhiriev/go-role-registry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("role-registry-server")

	// a missing .env file is fine: variables may come from the environment
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading user registry")
	}

	if cfg.App.SessionSecret == "" {
		log.Warn().Msg("no session secret configured: using a transient key, sessions will not survive a restart")
	}
	sessions, err := session.NewManager(cfg.App.SessionSecret, cfg.App.CookieName, cfg.App.IsProduction())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session manager")
	}

	services := service.NewServices(storages, log)
	handler := myHTTP.NewHandler(services, sessions, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
