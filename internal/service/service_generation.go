// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-card-sync/internal/generation"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/internal/validators"
	"github.com/MKhiriev/go-card-sync/models"
)

const (
	defaultCardCount = 5
	sourceTextLength = 500
	webLearningTag   = "web-learning"
)

type generationService struct {
	generator generation.Generator
	lifecycle LifecycleService
	validator validators.Validator

	logger *logger.Logger
}

// NewGenerationService returns a GenerationService that stores generated
// cards through lifecycle. A nil generator disables generation.
func NewGenerationService(generator generation.Generator, lifecycle LifecycleService, logger *logger.Logger) GenerationService {
	return &generationService{
		generator: generator,
		lifecycle: lifecycle,
		validator: validators.NewFlashcardValidator(),
		logger:    logger,
	}
}

func (s *generationService) GenerateFromText(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error) {
	log := logger.FromContext(ctx)

	if s.generator == nil {
		return models.GenerateResponse{}, ErrGeneratorNotConfigured
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.GenerateResponse{}, err
	}

	count := req.CardCount
	if count == 0 {
		count = defaultCardCount
	}

	cards, err := s.generator.Generate(ctx, generation.TextPrompt(req.Text, count, req.Topic, req.SourceTitle))
	if err != nil {
		log.Err(err).Str("func", "generationService.GenerateFromText").Str("user_id", req.UserID).Msg("generation failed")
		return models.GenerateResponse{}, err
	}
	if len(cards) == 0 {
		return models.GenerateResponse{}, ErrNoFlashcardsGenerated
	}

	deck := req.DeckName
	if deck == "" {
		deck = models.WebDeckName
	}
	sourceText := utils.Truncate(req.Text, sourceTextLength)
	tags := webTags(req.Topic)

	specs := make([]models.FlashcardSpec, 0, len(cards))
	for _, card := range cards {
		specs = append(specs, models.FlashcardSpec{
			UserID:     req.UserID,
			Front:      card.Front,
			Back:       card.Back,
			DeckName:   deck,
			SourceURL:  req.SourceURL,
			SourceText: sourceText,
			Tags:       tags,
		})
	}

	result, err := s.lifecycle.AddFlashcardBatch(ctx, models.BatchRequest{
		UserID:     req.UserID,
		SourceURL:  req.SourceURL,
		Flashcards: specs,
	})

	ids := make([]int64, 0, len(result.Flashcards))
	for _, card := range result.Flashcards {
		ids = append(ids, card.ID)
	}
	resp := models.GenerateResponse{
		Success:           err == nil,
		FlashcardsCreated: len(ids),
		FlashcardIDs:      ids,
		BatchID:           result.BatchID,
		Message:           fmt.Sprintf("Created %d flashcards", len(ids)),
	}
	if err != nil {
		return resp, err
	}

	log.Info().
		Str("func", "generationService.GenerateFromText").
		Str("user_id", req.UserID).
		Str("batch_id", result.BatchID).
		Int("created", len(ids)).
		Msg("flashcards generated")

	return resp, nil
}

// webTags returns "web-learning" followed by the topic slug when a topic is
// given.
func webTags(topic string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(topic)), "-")
	if slug == "" {
		return webLearningTag
	}
	return webLearningTag + "," + slug
}
