package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-collab-client/internal/adapter"
	"github.com/MKhiriev/go-collab-client/internal/client"
	"github.com/MKhiriev/go-collab-client/internal/config"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/internal/store"
	"github.com/MKhiriev/go-collab-client/internal/tui"
	"github.com/MKhiriev/go-collab-client/models"
)

const clientRole = "go-collab-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewClientLogger(clientRole, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(clientRole, cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := localStorage.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Error().Err(err).Msg("error creating ui")
		return
	}

	app, err := client.NewApp(services, ui, cfg.App, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return
	}

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("client run error")
	}
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
