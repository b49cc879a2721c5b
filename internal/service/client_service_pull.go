// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-sync/internal/adapter"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/models"
)

type pullService struct {
	userID   string
	server   adapter.ServerAdapter
	importer adapter.DesktopImporter

	logger *logger.Logger
}

func NewPullService(userID string, server adapter.ServerAdapter, importer adapter.DesktopImporter, logger *logger.Logger) PullService {
	return &pullService{
		userID:   userID,
		server:   server,
		importer: importer,
		logger:   logger,
	}
}

// PullOnce imports every pending card independently and acknowledges only
// the ones that made it into the desktop application.
func (s *pullService) PullOnce(ctx context.Context) (models.PullReport, error) {
	if s.userID == "" {
		return models.PullReport{}, ErrNoUserID
	}

	cards, err := s.server.GetPending(ctx, s.userID)
	if err != nil {
		s.logger.Err(err).Str("func", "pullService.PullOnce").Msg("failed to fetch pending flashcards")
		return models.PullReport{}, fmt.Errorf("fetch pending: %w", err)
	}

	report := models.PullReport{Fetched: len(cards)}
	if len(cards) == 0 {
		return report, nil
	}

	imported := make([]int64, 0, len(cards))
	for _, card := range cards {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = s.importer.Import(ctx, card); err != nil {
			s.logger.Err(err).
				Str("func", "pullService.PullOnce").
				Int64("flashcard_id", card.ID).
				Msg("failed to import flashcard")
			report.Failed++
			continue
		}
		imported = append(imported, card.ID)
	}
	report.Imported = len(imported)

	if len(imported) == 0 {
		return report, nil
	}

	// the ack must go out even when ctx was cancelled mid-import
	resp, err := s.server.Sync(context.WithoutCancel(ctx), s.userID, imported)
	if err != nil {
		s.logger.Err(err).
			Str("func", "pullService.PullOnce").
			Int("imported", len(imported)).
			Msg("failed to acknowledge imported flashcards")
		return report, fmt.Errorf("sync: %w", err)
	}
	report.Synced = resp.SyncedCount

	if resp.SyncedCount != int64(len(imported)) {
		s.logger.Warn().
			Str("func", "pullService.PullOnce").
			Int("imported", len(imported)).
			Int64("synced", resp.SyncedCount).
			Msg("server synced fewer flashcards than were imported")
	}

	s.logger.Info().
		Int("fetched", report.Fetched).
		Int("imported", report.Imported).
		Int64("synced", report.Synced).
		Int("failed", report.Failed).
		Msg("pull finished")

	return report, nil
}

func (s *pullService) Status(ctx context.Context) (models.HealthResponse, models.FlashcardStats, error) {
	health, err := s.server.Health(ctx)
	if err != nil {
		return models.HealthResponse{}, models.FlashcardStats{}, fmt.Errorf("health: %w", err)
	}
	if s.userID == "" {
		return health, models.FlashcardStats{}, ErrNoUserID
	}

	stats, err := s.server.Stats(ctx, s.userID)
	if err != nil {
		return health, models.FlashcardStats{}, fmt.Errorf("stats: %w", err)
	}

	return health, stats, nil
}
