package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewConsoleLogger("go-diary-admin", os.Stderr)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return exitFailure
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return exitFailure
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if buildVersion == "" {
		buildVersion = "N/A"
	}
	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return exitFailure
	}

	return newCommands(services.AdminService, os.Stdout, os.Stderr).run(ctx, cfg.Args)
}
