// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-card-sync/internal/config"
	"github.com/MKhiriev/go-card-sync/internal/export"
	"github.com/MKhiriev/go-card-sync/internal/generation"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/store"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

type Services struct {
	LifecycleService  LifecycleService
	SyncService       SyncService
	StatsService      StatsService
	GenerationService GenerationService
	ExportService     ExportService
	AppInfoService    AppInfoService
}

// NewServices wires the server services over storages. generator may be nil
// and exporters empty; the dependent endpoints then report that they are not
// configured.
func NewServices(
	storages *store.Storages,
	generator generation.Generator,
	exporters []export.Exporter,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	lifecycle := NewLifecycleValidationService().Wrap(
		NewLifecycleService(storages.FlashcardRepository, storages.BatchRepository, utils.NewUUIDGenerator(), logger),
	)

	return &Services{
		LifecycleService:  lifecycle,
		SyncService:       NewSyncService(lifecycle, logger),
		StatsService:      NewStatsService(storages.FlashcardRepository, logger),
		GenerationService: NewGenerationService(generator, lifecycle, logger),
		ExportService:     NewExportService(generator, exporters, logger),
		AppInfoService:    appInfo,
	}, nil
}
