package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-emlak-keeper/internal/adapter"
	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/crypto"
	"github.com/MKhiriev/go-emlak-keeper/internal/handler"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/metrics"
	"github.com/MKhiriev/go-emlak-keeper/internal/server"
	"github.com/MKhiriev/go-emlak-keeper/internal/service"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/internal/workers"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("emlak-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("emlak-server",
		logger.WithLevel(cfg.Logging.Level),
		logger.WithFile(cfg.Logging.File, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups),
	)
	if cfg.App.Version == "" {
		cfg.App.Version = info.Version
	}

	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("address", cfg.Server.HTTPAddress).
		Bool("remote_extraction", cfg.Adapter.ExtractionURL != "").
		Msg("received configs")

	cipher, err := crypto.NewFieldCipher(cfg.App.EncryptionKey, cfg.App.TCHashSalt)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	extractor, err := adapter.NewDocumentExtractor(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating document extractor")
	}

	services, err := service.NewServices(storages, extractor, cipher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, metrics.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.New()
	if sweeper, ok := storages.WarningTracker.(workers.Sweeper); ok {
		background.Add(workers.NewSweepWorker("warning-tracker", sweeper, cfg.Storage.Redis.WarningTTL/4, log))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		background.Run(ctx)
	}()

	srv.RunServer()

	cancel()
	<-done
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)

	return info
}
