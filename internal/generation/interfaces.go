// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generation turns free text or a chat conversation into question and
// answer pairs with a hosted language model.
package generation

import (
	"context"

	"github.com/MKhiriev/go-card-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator produces flashcards from a conversation. It may return an empty
// slice without an error when the model found nothing worth a card.
type Generator interface {
	Generate(ctx context.Context, conversation []models.ChatMessage) ([]models.GeneratedCard, error)
}
