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

type batchRepository struct {
	*DB
	logger *logger.Logger
}

// NewBatchRepository constructs a [BatchRepository] on top of db.
func NewBatchRepository(db *DB, logger *logger.Logger) BatchRepository {
	return &batchRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *batchRepository) CreateBatch(ctx context.Context, batch models.FlashcardBatch) (models.FlashcardBatch, error) {
	log := logger.FromContext(ctx)

	if batch.CreatedAt.IsZero() {
		batch.CreatedAt = time.Now().UTC()
	}
	batch.Status = models.BatchProcessing
	batch.CompletedAt = nil

	query, args, err := r.buildInsertBatchQuery(batch)
	if err != nil {
		log.Err(err).Str("func", "batchRepository.CreateBatch").Msg("failed to create query")
		return models.FlashcardBatch{}, err
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(&batch.ID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "batchRepository.CreateBatch").
			Str("user_id", batch.UserID).
			Str("batch_id", batch.BatchID).
			Msg("failed to insert batch")
		return models.FlashcardBatch{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return batch, nil
}

func (r *batchRepository) CompleteBatch(ctx context.Context, batchID string, total, processed int, status models.BatchStatus, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCompleteBatchQuery(batchID, total, processed, status, at)
	if err != nil {
		log.Err(err).Str("func", "batchRepository.CompleteBatch").Msg("failed to create query")
		return err
	}

	var affected int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "batchRepository.CompleteBatch").
			Str("batch_id", batchID).
			Msg("failed to complete batch")
		return err
	}
	if affected == 0 {
		return ErrBatchNotFound
	}

	return nil
}

func (r *batchRepository) GetBatch(ctx context.Context, batchID string) (models.FlashcardBatch, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectBatchQuery(batchID)
	if err != nil {
		log.Err(err).Str("func", "batchRepository.GetBatch").Msg("failed to create query")
		return models.FlashcardBatch{}, err
	}

	var batch models.FlashcardBatch
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(
			&batch.ID,
			&batch.UserID,
			&batch.BatchID,
			&batch.SourceURL,
			&batch.TotalCards,
			&batch.ProcessedCards,
			&batch.Status,
			&batch.CreatedAt,
			&batch.CompletedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.FlashcardBatch{}, ErrBatchNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "batchRepository.GetBatch").
			Str("batch_id", batchID).
			Msg("failed to get batch")
		return models.FlashcardBatch{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return batch, nil
}
