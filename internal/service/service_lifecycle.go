// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/store"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

type lifecycleService struct {
	flashcards store.FlashcardRepository
	batches    store.BatchRepository
	ids        utils.IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewLifecycleService(flashcards store.FlashcardRepository, batches store.BatchRepository, ids utils.IDGenerator, logger *logger.Logger) LifecycleService {
	return &lifecycleService{
		flashcards: flashcards,
		batches:    batches,
		ids:        ids,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *lifecycleService) CreateBatch(ctx context.Context, userID, sourceURL string) (models.FlashcardBatch, error) {
	return s.batches.CreateBatch(ctx, models.FlashcardBatch{
		UserID:    userID,
		BatchID:   s.ids.Generate(),
		SourceURL: optional(sourceURL),
		Status:    models.BatchProcessing,
		CreatedAt: s.now(),
	})
}

func (s *lifecycleService) AddFlashcard(ctx context.Context, spec models.FlashcardSpec) (models.Flashcard, error) {
	return s.flashcards.CreateFlashcard(ctx, s.flashcardFromSpec(spec))
}

func (s *lifecycleService) AddFlashcardBatch(ctx context.Context, req models.BatchRequest) (models.BatchResult, error) {
	log := logger.FromContext(ctx)

	batch, err := s.CreateBatch(ctx, req.UserID, req.SourceURL)
	if err != nil {
		return models.BatchResult{}, err
	}

	result := models.BatchResult{
		BatchID:    batch.BatchID,
		Flashcards: make([]models.Flashcard, 0, len(req.Flashcards)),
	}

	var insertErr error
	for i, spec := range req.Flashcards {
		spec.UserID = req.UserID
		spec.BatchID = batch.BatchID
		if spec.SourceURL == "" {
			spec.SourceURL = req.SourceURL
		}

		card, err := s.AddFlashcard(ctx, spec)
		if err != nil {
			log.Err(err).
				Str("func", "lifecycleService.AddFlashcardBatch").
				Str("batch_id", batch.BatchID).
				Int("item", i).
				Msg("failed to insert batch item")
			insertErr = fmt.Errorf("batch item %d: %w", i, err)
			break
		}
		result.Flashcards = append(result.Flashcards, card)
	}
	result.Length = len(result.Flashcards)

	status := models.BatchCompleted
	if insertErr != nil {
		status = models.BatchFailed
	}

	err = s.batches.CompleteBatch(ctx, batch.BatchID, len(req.Flashcards), result.Length, status, s.now())
	if err != nil {
		log.Err(err).
			Str("func", "lifecycleService.AddFlashcardBatch").
			Str("batch_id", batch.BatchID).
			Msg("failed to complete batch")
		if insertErr == nil {
			insertErr = err
		}
	}

	return result, insertErr
}

func (s *lifecycleService) GetPendingFlashcards(ctx context.Context, userID string) ([]models.Flashcard, error) {
	return s.flashcards.GetPendingFlashcards(ctx, userID)
}

func (s *lifecycleService) MarkFlashcardsSynced(ctx context.Context, ids []int64) (int64, error) {
	return s.flashcards.MarkFlashcardsSynced(ctx, "", ids, s.now())
}

func (s *lifecycleService) SyncUserFlashcards(ctx context.Context, userID string, ids []int64) (int64, error) {
	return s.flashcards.MarkFlashcardsSynced(ctx, userID, ids, s.now())
}

func (s *lifecycleService) MarkFlashcardFailed(ctx context.Context, id int64) (bool, error) {
	return s.flashcards.MarkFlashcardFailed(ctx, id)
}

func (s *lifecycleService) GetFlashcardStats(ctx context.Context, userID string) (models.FlashcardStats, error) {
	return s.flashcards.GetFlashcardStats(ctx, userID)
}

func (s *lifecycleService) GetBatch(ctx context.Context, batchID string) (models.FlashcardBatch, error) {
	return s.batches.GetBatch(ctx, batchID)
}

func (s *lifecycleService) flashcardFromSpec(spec models.FlashcardSpec) models.Flashcard {
	deck := spec.DeckName
	if deck == "" {
		deck = models.DefaultDeckName
	}

	return models.Flashcard{
		UserID:     spec.UserID,
		Front:      spec.Front,
		Back:       spec.Back,
		DeckName:   deck,
		SourceURL:  optional(spec.SourceURL),
		SourceText: optional(spec.SourceText),
		Tags:       optional(spec.Tags),
		Difficulty: optional(spec.Difficulty),
		BatchID:    optional(spec.BatchID),
		Status:     models.StatusPending,
		CreatedAt:  s.now(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
