// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-card-sync/internal/config"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

const chatCompletionsPath = "/chat/completions"

type chatCompletionRequest struct {
	Model     string               `json:"model"`
	MaxTokens int                  `json:"max_tokens,omitempty"`
	Messages  []models.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OpenRouterGenerator implements [Generator] over the OpenAI compatible chat
// completion API of OpenRouter.
type OpenRouterGenerator struct {
	client    *utils.HTTPClient
	model     string
	maxTokens int
	logger    *logger.Logger
}

// NewOpenRouterGenerator returns a generator for cfg, or ErrMissingAPIKey
// when no key is configured.
func NewOpenRouterGenerator(cfg config.Generator, log *logger.Logger) (*OpenRouterGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.URL, "/"), cfg.Timeout)
	client.SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Title", "card-sync")

	return &OpenRouterGenerator{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    log,
	}, nil
}

func (g *OpenRouterGenerator) Generate(ctx context.Context, conversation []models.ChatMessage) ([]models.GeneratedCard, error) {
	log := logger.FromContext(ctx)

	var (
		result  chatCompletionResponse
		apiErr  apiErrorResponse
		payload = chatCompletionRequest{Model: g.model, MaxTokens: g.maxTokens, Messages: conversation}
	)

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		SetError(&apiErr).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "OpenRouterGenerator.Generate").Msg("chat completion request failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Str("func", "OpenRouterGenerator.Generate").
			Int("status", resp.StatusCode()).
			Str("error", apiErr.Error.Message).
			Msg("chat completion returned an error")
		return nil, fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, resp.StatusCode(), apiErr.Error.Message)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("%w: %w: no choices", ErrGenerationFailed, ErrMalformedCompletion)
	}

	cards, err := parseCards(result.Choices[0].Message.Content)
	if err != nil {
		log.Err(err).Str("func", "OpenRouterGenerator.Generate").Msg("failed to parse completion")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	log.Debug().
		Str("func", "OpenRouterGenerator.Generate").
		Int("cards", len(cards)).
		Msg("flashcards generated")

	return cards, nil
}
