package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-till-keeper/internal/adapter"
	"github.com/MKhiriev/go-till-keeper/internal/config"
	"github.com/MKhiriev/go-till-keeper/internal/connectivity"
	handler "github.com/MKhiriev/go-till-keeper/internal/handler/http"
	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/internal/server"
	"github.com/MKhiriev/go-till-keeper/internal/service"
	"github.com/MKhiriev/go-till-keeper/internal/store"
	"github.com/MKhiriev/go-till-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTerminalLogger("tillkeeperd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Token:   cfg.Remote.Token,
		Timeout: cfg.Remote.RequestTimeout,
	})

	monitor := connectivity.NewMonitor(remote, cfg.Sync.ProbeInterval, log)
	services := service.NewServices(storages, remote, monitor, cfg.Sync, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(monitor, services.SyncJob)
	background.Start(context.Background())

	srv.RunServer()

	background.Stop()
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
