// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-card-sync/internal/export"
	"github.com/MKhiriev/go-card-sync/internal/generation"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/validators"
	"github.com/MKhiriev/go-card-sync/models"
	"golang.org/x/sync/errgroup"
)

type exportService struct {
	generator generation.Generator
	exporters []export.Exporter
	validator validators.Validator

	logger *logger.Logger
}

// NewExportService returns an ExportService over the configured sinks. A nil
// generator disables GenerateAndExport.
func NewExportService(generator generation.Generator, exporters []export.Exporter, logger *logger.Logger) ExportService {
	return &exportService{
		generator: generator,
		exporters: exporters,
		validator: validators.NewFlashcardValidator(),
		logger:    logger,
	}
}

func (s *exportService) GenerateAndExport(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	log := logger.FromContext(ctx)

	if s.generator == nil {
		return models.ExportResult{}, ErrGeneratorNotConfigured
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ExportResult{}, err
	}

	exporter := s.exporter(req.Destination)
	if exporter == nil {
		return models.ExportResult{}, fmt.Errorf("%w: %s", ErrUnknownDestination, req.Destination)
	}

	cards, err := s.generator.Generate(ctx, generation.ConversationPrompt(req.Conversation))
	if err != nil {
		log.Err(err).Str("func", "exportService.GenerateAndExport").Msg("generation failed")
		return models.ExportResult{}, err
	}
	if len(cards) == 0 {
		return models.ExportResult{}, ErrNoFlashcardsGenerated
	}

	return exporter.Export(ctx, models.ExportCardsFromGenerated(cards))
}

// ExportAll pushes cards to every configured sink concurrently. Results of
// the sinks that succeeded are returned alongside the joined failures.
func (s *exportService) ExportAll(ctx context.Context, cards []models.ExportCard) ([]models.ExportResult, error) {
	if len(s.exporters) == 0 {
		return nil, ErrNoExportersEnabled
	}

	results := make([]models.ExportResult, len(s.exporters))
	errs := make([]error, len(s.exporters))

	var g errgroup.Group
	for i, exporter := range s.exporters {
		g.Go(func() error {
			result, err := exporter.Export(ctx, cards)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", exporter.Name(), err)
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	succeeded := make([]models.ExportResult, 0, len(results))
	for i, result := range results {
		if errs[i] == nil {
			succeeded = append(succeeded, result)
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "exportService.ExportAll").
			Int("succeeded", len(succeeded)).
			Msg("some exports failed")
	}

	return succeeded, err
}

func (s *exportService) exporter(destination models.Destination) export.Exporter {
	for _, e := range s.exporters {
		if e.Name() == destination {
			return e
		}
	}
	return nil
}
