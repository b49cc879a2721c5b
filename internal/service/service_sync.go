// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/models"
)

type syncService struct {
	lifecycle LifecycleService

	logger *logger.Logger
}

func NewSyncService(lifecycle LifecycleService, logger *logger.Logger) SyncService {
	return &syncService{
		lifecycle: lifecycle,
		logger:    logger,
	}
}

func (s *syncService) Fetch(ctx context.Context, userID string) (models.PendingResponse, error) {
	cards, err := s.lifecycle.GetPendingFlashcards(ctx, userID)
	if err != nil {
		return models.PendingResponse{}, err
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}

	return models.PendingResponse{
		UserID:     userID,
		Flashcards: cards,
		Length:     len(cards),
	}, nil
}

func (s *syncService) Acknowledge(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	synced, err := s.lifecycle.SyncUserFlashcards(ctx, req.UserID, req.FlashcardIDs)
	if err != nil {
		return models.SyncResponse{}, err
	}

	if synced != int64(len(req.FlashcardIDs)) {
		logger.FromContext(ctx).Info().
			Str("func", "syncService.Acknowledge").
			Str("user_id", req.UserID).
			Int("requested", len(req.FlashcardIDs)).
			Int64("synced", synced).
			Msg("some flashcards were not pending anymore")
	}

	return models.SyncResponse{
		SyncedCount:    synced,
		RequestedCount: len(req.FlashcardIDs),
		UserID:         req.UserID,
	}, nil
}
