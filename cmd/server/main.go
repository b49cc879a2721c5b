// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-sync/internal/adapter"
	"github.com/MKhiriev/go-card-sync/internal/config"
	"github.com/MKhiriev/go-card-sync/internal/export"
	"github.com/MKhiriev/go-card-sync/internal/generation"
	"github.com/MKhiriev/go-card-sync/internal/handler"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/server"
	"github.com/MKhiriev/go-card-sync/internal/service"
	"github.com/MKhiriev/go-card-sync/internal/store"
	"github.com/MKhiriev/go-card-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build.String())

	log := logger.NewLogger("card-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Bool("generator", cfg.Generator.APIKey != "").
		Msg("received configs")

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

	services, err := service.NewServices(storages, newGenerator(cfg.Generator, log), newExporters(cfg.Export, log), *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

// newGenerator returns nil when no API key is configured, which disables
// the generation endpoints.
func newGenerator(cfg config.Generator, log *logger.Logger) generation.Generator {
	gen, err := generation.NewOpenRouterGenerator(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("flashcard generation is disabled")
		return nil
	}
	return gen
}

func newExporters(cfg config.Export, log *logger.Logger) []export.Exporter {
	var exporters []export.Exporter

	if cfg.AnkiConnectURL != "" {
		anki := adapter.NewAnkiConnect(cfg.AnkiConnectURL, cfg.Timeout)
		exporters = append(exporters, export.NewAnkiExporter(anki, log))
	}

	notion, err := export.NewNotionExporter(cfg, log)
	if err != nil {
		log.Info().Err(err).Msg("notion export is disabled")
	} else {
		exporters = append(exporters, notion)
	}

	return exporters
}
