package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/movie-manager/internal/config"
	"github.com/MKhiriev/movie-manager/internal/handler"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/server"
	"github.com/MKhiriev/movie-manager/internal/store"
	"github.com/MKhiriev/movie-manager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// stubAccountID is the id of the seeded account.
const stubAccountID = 1

func main() {
	printBuildInfo()

	log := logger.NewLogger("tmdb-stub")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("username", cfg.Server.StubUsername).Msg("received configs")

	storage := store.NewStubStorage(store.StubAccount{
		ID:       stubAccountID,
		Name:     cfg.Server.StubUsername,
		Username: cfg.Server.StubUsername,
		Password: cfg.Server.StubPassword,
	}, log)

	handlers, err := handler.NewHandlers(storage, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)
	return info
}
