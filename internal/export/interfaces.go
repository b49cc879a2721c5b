// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export pushes generated cards to destinations outside the sync
// store. Exports are fire-and-forget: nothing here changes flashcard state.
package export

import (
	"context"

	"github.com/MKhiriev/go-card-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/exporter_mock.go -package=mock

// Exporter delivers cards to one destination.
type Exporter interface {
	Name() models.Destination
	Export(ctx context.Context, cards []models.ExportCard) (models.ExportResult, error)
}
