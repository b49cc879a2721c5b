// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/models"
)

// flashcardRepository is the SQL implementation of [FlashcardRepository]
// shared by the PostgreSQL and SQLite backends.
type flashcardRepository struct {
	*DB
	logger *logger.Logger
}

// NewFlashcardRepository constructs a [FlashcardRepository] on top of db.
func NewFlashcardRepository(db *DB, logger *logger.Logger) FlashcardRepository {
	return &flashcardRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *flashcardRepository) CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error) {
	log := logger.FromContext(ctx)

	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}
	if card.DeckName == "" {
		card.DeckName = models.DefaultDeckName
	}
	card.Status = models.StatusPending
	card.SyncedAt = nil

	query, args, err := r.buildInsertFlashcardQuery(card)
	if err != nil {
		log.Err(err).Str("func", "flashcardRepository.CreateFlashcard").Msg("failed to create query")
		return models.Flashcard{}, err
	}

	var id int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).
			Str("func", "flashcardRepository.CreateFlashcard").
			Str("user_id", card.UserID).
			Msg("failed to insert flashcard")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if id == 0 {
		return models.Flashcard{}, ErrFlashcardNotSaved
	}

	card.ID = id
	return card, nil
}

func (r *flashcardRepository) GetPendingFlashcards(ctx context.Context, userID string) ([]models.Flashcard, error) {
	return r.selectPending(ctx, "flashcardRepository.GetPendingFlashcards", userID, 0)
}

func (r *flashcardRepository) GetRecentPending(ctx context.Context, userID string, limit uint64) ([]models.Flashcard, error) {
	if limit == 0 {
		return []models.Flashcard{}, nil
	}
	return r.selectPending(ctx, "flashcardRepository.GetRecentPending", userID, limit)
}

func (r *flashcardRepository) selectPending(ctx context.Context, funcName, userID string, limit uint64) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectPendingQuery(userID, limit)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to create query")
		return nil, err
	}

	var cards []models.Flashcard
	err = r.withRetry(ctx, func(ctx context.Context) error {
		cards, err = r.queryFlashcards(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to get pending flashcards")
		return nil, err
	}

	return cards, nil
}

func (r *flashcardRepository) queryFlashcards(ctx context.Context, query string, args ...any) ([]models.Flashcard, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Flashcard, 0, 16)
	for rows.Next() {
		var card models.Flashcard
		if err = rows.Scan(
			&card.ID,
			&card.UserID,
			&card.Front,
			&card.Back,
			&card.DeckName,
			&card.SourceURL,
			&card.SourceText,
			&card.Tags,
			&card.Difficulty,
			&card.BatchID,
			&card.Status,
			&card.CreatedAt,
			&card.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}

func (r *flashcardRepository) MarkFlashcardsSynced(ctx context.Context, userID string, ids []int64, at time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}

	chunks := chunkIDs(ids, syncChunkSize)
	queries := make([]string, len(chunks))
	args := make([][]any, len(chunks))
	for i, chunk := range chunks {
		query, queryArgs, err := r.buildMarkSyncedQuery(userID, chunk, at)
		if err != nil {
			log.Err(err).Str("func", "flashcardRepository.MarkFlashcardsSynced").Msg("failed to create query")
			return 0, err
		}
		queries[i], args[i] = query, queryArgs
	}

	var synced int64
	run := func(ctx context.Context, exec execer) error {
		synced = 0
		for i := range queries {
			result, err := exec.ExecContext(ctx, queries[i], args[i]...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			synced += affected
		}
		return nil
	}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		if len(queries) == 1 {
			return run(ctx, r.DB)
		}
		return r.inTx(ctx, func(tx *sql.Tx) error {
			return run(ctx, tx)
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "flashcardRepository.MarkFlashcardsSynced").
			Str("user_id", userID).
			Int("ids_count", len(ids)).
			Msg("failed to mark flashcards as synced")
		return 0, err
	}

	log.Debug().
		Str("func", "flashcardRepository.MarkFlashcardsSynced").
		Str("user_id", userID).
		Int("ids_count", len(ids)).
		Int64("synced", synced).
		Msg("flashcards marked as synced")

	return synced, nil
}

func (r *flashcardRepository) MarkFlashcardFailed(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := r.buildMarkFailedQuery(id)
	if err != nil {
		log.Err(err).Str("func", "flashcardRepository.MarkFlashcardFailed").Msg("failed to create query")
		return false, err
	}
	statusQuery, statusArgs, err := r.buildSelectStatusQuery(id)
	if err != nil {
		log.Err(err).Str("func", "flashcardRepository.MarkFlashcardFailed").Msg("failed to create query")
		return false, err
	}

	var (
		affected int64
		current  models.FlashcardStatus
		found    bool
	)
	err = r.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.ExecContext(ctx, updateQuery, updateArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err = result.RowsAffected(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected > 0 {
			return nil
		}

		// nothing changed: read the current status only to classify the outcome
		err = r.QueryRowContext(ctx, statusQuery, statusArgs...).Scan(&current)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			found = false
			return nil
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		found = true
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "flashcardRepository.MarkFlashcardFailed").
			Int64("flashcard_id", id).
			Msg("failed to mark flashcard as failed")
		return false, err
	}

	switch {
	case affected > 0:
		return true, nil
	case !found:
		return false, nil
	case current == models.StatusFailed:
		return true, nil
	default:
		log.Warn().
			Str("func", "flashcardRepository.MarkFlashcardFailed").
			Int64("flashcard_id", id).
			Str("status", current.String()).
			Msg("flashcard cannot be marked as failed")
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current, models.StatusFailed)
	}
}

func (r *flashcardRepository) GetFlashcardStats(ctx context.Context, userID string) (models.FlashcardStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildStatsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "flashcardRepository.GetFlashcardStats").Msg("failed to create query")
		return models.FlashcardStats{}, err
	}

	var stats models.FlashcardStats
	err = r.withRetry(ctx, func(ctx context.Context) error {
		stats = models.FlashcardStats{}

		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				status models.FlashcardStatus
				count  int64
			)
			if err = rows.Scan(&status, &count); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			switch status {
			case models.StatusPending:
				stats.Pending = count
			case models.StatusSynced:
				stats.Synced = count
			case models.StatusFailed:
				stats.Failed = count
			}
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "flashcardRepository.GetFlashcardStats").
			Str("user_id", userID).
			Msg("failed to count flashcards")
		return models.FlashcardStats{}, err
	}

	stats.Total = stats.Pending + stats.Synced + stats.Failed
	return stats, nil
}
