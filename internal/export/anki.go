// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-card-sync/internal/adapter"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	ankiDeckPrefix   = "FlashcardGen_"
	ankiExportTag    = "FlashcardGen"
	deckSuffixLength = 8
	deckSuffixChars  = "0123456789abcdef"
)

// AnkiExporter exports every call into a freshly created deck named
// FlashcardGen_<8 hex chars>.
type AnkiExporter struct {
	anki   *adapter.AnkiConnect
	logger *logger.Logger
}

// NewAnkiExporter returns an [Exporter] backed by AnkiConnect.
func NewAnkiExporter(anki *adapter.AnkiConnect, logger *logger.Logger) *AnkiExporter {
	return &AnkiExporter{anki: anki, logger: logger}
}

func (e *AnkiExporter) Name() models.Destination {
	return models.DestinationAnki
}

// Export creates a new deck and adds one Basic note per card. A card that
// Anki rejects is logged and skipped; the result counts the notes added.
func (e *AnkiExporter) Export(ctx context.Context, cards []models.ExportCard) (models.ExportResult, error) {
	log := logger.FromContext(ctx)

	if len(cards) == 0 {
		return models.ExportResult{}, ErrNoCards
	}

	suffix, err := gonanoid.Generate(deckSuffixChars, deckSuffixLength)
	if err != nil {
		return models.ExportResult{}, fmt.Errorf("%w: deck name: %w", ErrExportFailed, err)
	}
	deck := ankiDeckPrefix + suffix

	if err = e.anki.CreateDeck(ctx, deck); err != nil {
		log.Err(err).Str("func", "AnkiExporter.Export").Str("deck", deck).Msg("failed to create deck")
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	added := 0
	for _, card := range cards {
		_, err = e.anki.AddNote(ctx, adapter.AnkiNote{
			DeckName:  deck,
			ModelName: adapter.AnkiBasicModel,
			Fields:    map[string]string{"Front": card.Question, "Back": card.Answer},
			Tags:      ankiTags(card.Topic),
		})
		if err != nil {
			log.Err(err).
				Str("func", "AnkiExporter.Export").
				Str("question", card.Question).
				Msg("failed to add card")
			continue
		}
		added++
	}

	log.Info().
		Str("func", "AnkiExporter.Export").
		Str("deck", deck).
		Int("added", added).
		Int("total", len(cards)).
		Msg("cards exported to Anki")

	return models.ExportResult{
		Destination: models.DestinationAnki,
		Count:       added,
		Location:    deck,
	}, nil
}

func ankiTags(topic string) []string {
	tags := make([]string, 0, 2)
	if topic = strings.TrimSpace(topic); topic != "" {
		tags = append(tags, strings.ReplaceAll(topic, " ", "_"))
	}
	return append(tags, ankiExportTag)
}
