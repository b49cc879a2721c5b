// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/store"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

const (
	dashboardRecentLimit = 5
	dashboardFrontLength = 100
)

type statsService struct {
	flashcards store.FlashcardRepository

	logger *logger.Logger
}

func NewStatsService(flashcards store.FlashcardRepository, logger *logger.Logger) StatsService {
	return &statsService{
		flashcards: flashcards,
		logger:     logger,
	}
}

func (s *statsService) GetStats(ctx context.Context, userID string) (models.FlashcardStats, error) {
	return s.flashcards.GetFlashcardStats(ctx, userID)
}

// GetDashboard combines the stats of userID with a preview of the newest
// pending flashcards.
func (s *statsService) GetDashboard(ctx context.Context, userID string) (models.DashboardResponse, error) {
	stats, err := s.flashcards.GetFlashcardStats(ctx, userID)
	if err != nil {
		return models.DashboardResponse{}, err
	}

	recent, err := s.flashcards.GetRecentPending(ctx, userID, dashboardRecentLimit)
	if err != nil {
		return models.DashboardResponse{}, err
	}

	previews := make([]models.PendingPreview, 0, len(recent))
	for _, card := range recent {
		previews = append(previews, models.PendingPreview{
			ID:        card.ID,
			Front:     utils.Truncate(card.Front, dashboardFrontLength),
			DeckName:  card.DeckName,
			CreatedAt: card.CreatedAt.Format(time.RFC3339),
		})
	}

	return models.DashboardResponse{
		UserID:        userID,
		Stats:         stats,
		PendingCount:  stats.Pending,
		RecentPending: previews,
	}, nil
}
