// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the flashcard sync server and
// of the desktop puller.
//
// The lifecycle service is the only writer of flashcard status. Every other
// service either reads through the store or routes mutations through it.
package service

import (
	"context"

	"github.com/MKhiriev/go-card-sync/models"
)

// LifecycleService creates flashcards and batches and moves flashcards
// through the pending → synced / pending → failed state machine.
type LifecycleService interface {
	// CreateBatch stores a new batch bookkeeping row for userID with a fresh
	// random batch_id.
	CreateBatch(ctx context.Context, userID, sourceURL string) (models.FlashcardBatch, error)

	// AddFlashcard stores spec as a pending flashcard and returns the
	// persisted record.
	AddFlashcard(ctx context.Context, spec models.FlashcardSpec) (models.Flashcard, error)

	// AddFlashcardBatch creates a batch and inserts every spec of req into
	// it, one by one. On a storage failure the records created so far are
	// returned together with the error.
	AddFlashcardBatch(ctx context.Context, req models.BatchRequest) (models.BatchResult, error)

	GetPendingFlashcards(ctx context.Context, userID string) ([]models.Flashcard, error)

	// MarkFlashcardsSynced moves the pending flashcards among ids to synced
	// regardless of owner and returns how many changed.
	MarkFlashcardsSynced(ctx context.Context, ids []int64) (int64, error)

	// SyncUserFlashcards is MarkFlashcardsSynced restricted to flashcards
	// owned by userID.
	SyncUserFlashcards(ctx context.Context, userID string, ids []int64) (int64, error)

	// MarkFlashcardFailed moves a pending flashcard to failed. It returns
	// false when the flashcard does not exist.
	MarkFlashcardFailed(ctx context.Context, id int64) (bool, error)

	GetFlashcardStats(ctx context.Context, userID string) (models.FlashcardStats, error)
	GetBatch(ctx context.Context, batchID string) (models.FlashcardBatch, error)
}

// LifecycleServiceWrapper defines middleware composition for
// LifecycleService. Implementations wrap an existing LifecycleService to add
// behavior such as validation.
type LifecycleServiceWrapper interface {
	Wrap(LifecycleService) LifecycleService
}

// SyncService is the pull protocol consumed by the desktop client.
type SyncService interface {
	// Fetch returns the pending flashcards of userID, newest first.
	Fetch(ctx context.Context, userID string) (models.PendingResponse, error)

	// Acknowledge marks the imported ids as synced and reports how many were
	// actually transitioned. A count lower than the request size is not an
	// error.
	Acknowledge(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

// StatsService is a read-only projection over the flashcard table.
type StatsService interface {
	GetStats(ctx context.Context, userID string) (models.FlashcardStats, error)
	GetDashboard(ctx context.Context, userID string) (models.DashboardResponse, error)
}

// GenerationService turns captured text into stored pending flashcards.
type GenerationService interface {
	GenerateFromText(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error)
}

// ExportService pushes generated cards to the non-authoritative sinks. It
// never touches the flashcard store.
type ExportService interface {
	GenerateAndExport(ctx context.Context, req models.ExportRequest) (models.ExportResult, error)
	ExportAll(ctx context.Context, cards []models.ExportCard) ([]models.ExportResult, error)
}

// AppInfoService exposes the running version of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
