package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/movie-manager/internal/adapter"
	"github.com/MKhiriev/movie-manager/internal/client"
	"github.com/MKhiriev/movie-manager/internal/config"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/service"
	"github.com/MKhiriev/movie-manager/internal/store"
	"github.com/MKhiriev/movie-manager/internal/transport"
	"github.com/MKhiriev/movie-manager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("movie-manager", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	storages := store.NewClientStorages(log)

	api, err := adapter.NewHTTPMovieAPI(cfg.Adapter, cfg.App, storages.Session,
		transport.NewRestyTransport(cfg.Adapter.RequestTimeout, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create movie api")
	}

	services := service.NewClientServices(storages, api, log)

	asyncClient := client.NewAsyncClient(services, cfg.Workers, log)
	defer asyncClient.Close()

	app := client.NewApp(asyncClient, os.Stdin, os.Stdout, log)
	app.SetBuildInfo(buildInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if len(cfg.Args) > 0 {
		err = app.Exec(ctx, cfg.Args)
	} else {
		err = app.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		asyncClient.Close()
		os.Exit(1)
	}
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)
	return info
}
