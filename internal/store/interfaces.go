// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-card-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FlashcardRepository persists flashcards and performs every status
// transition as a single conditional UPDATE.
type FlashcardRepository interface {
	// CreateFlashcard inserts card with status pending and returns it with
	// the generated id.
	CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error)

	// GetPendingFlashcards returns the pending flashcards of userID, newest
	// first.
	GetPendingFlashcards(ctx context.Context, userID string) ([]models.Flashcard, error)

	// GetRecentPending is GetPendingFlashcards capped to limit rows.
	GetRecentPending(ctx context.Context, userID string, limit uint64) ([]models.Flashcard, error)

	// MarkFlashcardsSynced moves the pending rows among ids to synced and
	// returns how many rows changed. An empty userID disables the owner
	// filter.
	MarkFlashcardsSynced(ctx context.Context, userID string, ids []int64, at time.Time) (int64, error)

	// MarkFlashcardFailed moves a pending row to failed. It returns false when
	// the id does not exist, true when the row is failed afterwards and
	// ErrInvalidStatusTransition when the row is already synced.
	MarkFlashcardFailed(ctx context.Context, id int64) (bool, error)

	// GetFlashcardStats counts the flashcards of userID per status.
	GetFlashcardStats(ctx context.Context, userID string) (models.FlashcardStats, error)
}

// BatchRepository persists batch bookkeeping rows.
type BatchRepository interface {
	CreateBatch(ctx context.Context, batch models.FlashcardBatch) (models.FlashcardBatch, error)
	CompleteBatch(ctx context.Context, batchID string, total, processed int, status models.BatchStatus, at time.Time) error
	GetBatch(ctx context.Context, batchID string) (models.FlashcardBatch, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
