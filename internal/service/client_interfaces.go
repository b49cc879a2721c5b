// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-card-sync/models"
)

// PullService runs the client half of the pull protocol: fetch the pending
// flashcards, import them into the desktop application and acknowledge the
// ones that were imported.
type PullService interface {
	// PullOnce performs one fetch-import-ack round. Cards that fail to import
	// stay pending on the server and are retried by the next round.
	PullOnce(ctx context.Context) (models.PullReport, error)

	// Status checks the server health and fetches the per-status counts of
	// the configured user.
	Status(ctx context.Context) (models.HealthResponse, models.FlashcardStats, error)
}

// PullJob runs PullOnce periodically in the background.
type PullJob interface {
	// Start launches the background loop, replacing a running one. A
	// non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit.
	Stop()
}
