// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-card-sync/internal/validators"
	"github.com/MKhiriev/go-card-sync/models"
)

// LifecycleValidationService rejects malformed input before it reaches the
// wrapped LifecycleService, so no write happens for an invalid request.
type LifecycleValidationService struct {
	inner     LifecycleService
	validator validators.Validator
}

func NewLifecycleValidationService() LifecycleServiceWrapper {
	return &LifecycleValidationService{
		validator: validators.NewFlashcardValidator(),
	}
}

func (v *LifecycleValidationService) Wrap(inner LifecycleService) LifecycleService {
	v.inner = inner
	return v
}

func (v *LifecycleValidationService) CreateBatch(ctx context.Context, userID, sourceURL string) (models.FlashcardBatch, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return models.FlashcardBatch{}, err
	}
	return v.inner.CreateBatch(ctx, userID, sourceURL)
}

func (v *LifecycleValidationService) AddFlashcard(ctx context.Context, spec models.FlashcardSpec) (models.Flashcard, error) {
	if err := v.validator.Validate(ctx, spec); err != nil {
		return models.Flashcard{}, fmt.Errorf("error during flashcard validation before saving: %w", err)
	}
	return v.inner.AddFlashcard(ctx, spec)
}

// AddFlashcardBatch validates every item up front. Items without their own
// user id inherit the batch owner.
func (v *LifecycleValidationService) AddFlashcardBatch(ctx context.Context, req models.BatchRequest) (models.BatchResult, error) {
	items := make([]models.FlashcardSpec, len(req.Flashcards))
	for i, spec := range req.Flashcards {
		if strings.TrimSpace(spec.UserID) == "" {
			spec.UserID = req.UserID
		}
		items[i] = spec
	}
	req.Flashcards = items

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.BatchResult{}, fmt.Errorf("error during batch validation before saving: %w", err)
	}
	return v.inner.AddFlashcardBatch(ctx, req)
}

func (v *LifecycleValidationService) GetPendingFlashcards(ctx context.Context, userID string) ([]models.Flashcard, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return nil, err
	}
	return v.inner.GetPendingFlashcards(ctx, userID)
}

func (v *LifecycleValidationService) MarkFlashcardsSynced(ctx context.Context, ids []int64) (int64, error) {
	return v.inner.MarkFlashcardsSynced(ctx, ids)
}

func (v *LifecycleValidationService) SyncUserFlashcards(ctx context.Context, userID string, ids []int64) (int64, error) {
	if err := v.validator.Validate(ctx, models.SyncRequest{UserID: userID, FlashcardIDs: ids}); err != nil {
		return 0, err
	}
	return v.inner.SyncUserFlashcards(ctx, userID, ids)
}

func (v *LifecycleValidationService) MarkFlashcardFailed(ctx context.Context, id int64) (bool, error) {
	// no flashcard is ever stored under a non-positive id
	if id <= 0 {
		return false, nil
	}
	return v.inner.MarkFlashcardFailed(ctx, id)
}

func (v *LifecycleValidationService) GetFlashcardStats(ctx context.Context, userID string) (models.FlashcardStats, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return models.FlashcardStats{}, err
	}
	return v.inner.GetFlashcardStats(ctx, userID)
}

func (v *LifecycleValidationService) GetBatch(ctx context.Context, batchID string) (models.FlashcardBatch, error) {
	return v.inner.GetBatch(ctx, batchID)
}

func (v *LifecycleValidationService) validateUserID(ctx context.Context, userID string) error {
	return v.validator.Validate(ctx, models.SyncRequest{UserID: userID}, validators.FieldUserID)
}
