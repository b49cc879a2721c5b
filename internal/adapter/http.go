// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-card-sync/internal/config"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

const (
	pendingPath = "/api/v1/flashcards/pending/{user_id}"
	syncPath    = "/api/v1/flashcards/sync"
	statsPath   = "/api/v1/flashcards/stats/{user_id}"
	healthPath  = "/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/JSON implementation of
// [ServerAdapter]. It returns an error if adapterCfg.HTTPAddress is empty or
// cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// GetPending implements [ServerAdapter] via GET /api/v1/flashcards/pending/{user_id}.
func (h *httpServerAdapter) GetPending(ctx context.Context, userID string) ([]models.Flashcard, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("user_id", userID).
		Get(pendingPath)
	if err != nil {
		return nil, fmt.Errorf("get pending request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pending models.PendingResponse
	if err = json.Unmarshal(resp.Body(), &pending); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return pending.Flashcards, nil
}

// Sync implements [ServerAdapter] via POST /api/v1/flashcards/sync.
func (h *httpServerAdapter) Sync(ctx context.Context, userID string, ids []int64) (models.SyncResponse, error) {
	if ids == nil {
		ids = []int64{}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SyncRequest{UserID: userID, FlashcardIDs: ids}).
		Post(syncPath)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var synced models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &synced); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return synced, nil
}

// Stats implements [ServerAdapter] via GET /api/v1/flashcards/stats/{user_id}.
func (h *httpServerAdapter) Stats(ctx context.Context, userID string) (models.FlashcardStats, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("user_id", userID).
		Get(statsPath)
	if err != nil {
		return models.FlashcardStats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FlashcardStats{}, err
	}

	var stats models.FlashcardStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.FlashcardStats{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return stats, nil
}

// Health implements [ServerAdapter] via GET /health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return health, nil
}
