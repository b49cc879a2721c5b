// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/mock"
	"github.com/MKhiriev/go-card-sync/models"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// fixedIDs hands out the same batch token every time.
type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

type lifecycleFixture struct {
	svc        LifecycleService
	flashcards *mock.MockFlashcardRepository
	batches    *mock.MockBatchRepository
}

// newLifecycle builds the production stack: validation wrapper around the
// lifecycle service over mocked repositories.
func newLifecycle(t *testing.T) lifecycleFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	flashcards := mock.NewMockFlashcardRepository(ctrl)
	batches := mock.NewMockBatchRepository(ctrl)

	inner := NewLifecycleService(flashcards, batches, fixedIDs("batch-1"), logger.Nop()).(*lifecycleService)
	inner.now = func() time.Time { return testNow }

	return lifecycleFixture{
		svc:        NewLifecycleValidationService().Wrap(inner),
		flashcards: flashcards,
		batches:    batches,
	}
}

func spec(front, back string) models.FlashcardSpec {
	return models.FlashcardSpec{UserID: "u1", Front: front, Back: back}
}
