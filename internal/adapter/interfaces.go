// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients of the desktop puller: the
// sync server API and the local AnkiConnect endpoint.
//
// HTTP status codes returned by the sync server are mapped to the sentinel
// errors in errors.go by mapHTTPError, so callers can use [errors.Is]
// regardless of transport (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-card-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the desktop puller's view of the sync server.
type ServerAdapter interface {
	// GetPending fetches the pending flashcards of userID, newest first.
	GetPending(ctx context.Context, userID string) ([]models.Flashcard, error)

	// Sync acknowledges the ids that were imported. The response reports how
	// many of them the server actually moved to synced.
	Sync(ctx context.Context, userID string, ids []int64) (models.SyncResponse, error)

	// Stats fetches per-status counts for userID.
	Stats(ctx context.Context, userID string) (models.FlashcardStats, error)

	// Health checks that the server is reachable and healthy.
	Health(ctx context.Context) (models.HealthResponse, error)
}

// DesktopImporter imports a single flashcard into the local desktop
// application.
type DesktopImporter interface {
	Import(ctx context.Context, card models.Flashcard) error
}
