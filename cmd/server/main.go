package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shipment-tracker/internal/adapter"
	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/handler"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/server"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/internal/workers"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	bootLog := logger.NewLogger("shipment-tracker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLoggerWithConfig("shipment-tracker", cfg.Log)
	log.Debug().Str("environment", cfg.App.Environment).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	geocoder, err := adapter.NewOpenCageGeocoder(cfg.Adapter.Geocoder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoder")
	}
	geocoder = adapter.NewCachedGeocoder(geocoder, storages.GeocodeCache, cfg.Storage.Redis.GeocodeCacheTTL)

	services, err := service.NewServices(storages, geocoder, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.Ping, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
