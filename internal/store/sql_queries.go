// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-card-sync/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	flashcardsTable = "flashcards"
	batchesTable    = "flashcard_batches"

	// syncChunkSize bounds the number of ids bound into one IN clause.
	syncChunkSize = 500
)

var flashcardColumns = []string{
	"id", "user_id", "front", "back", "deck_name",
	"source_url", "source_text", "tags", "difficulty", "batch_id",
	"status", "created_at", "synced_at",
}

var batchColumns = []string{
	"id", "user_id", "batch_id", "source_url",
	"total_cards", "processed_cards", "status",
	"created_at", "completed_at",
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func (db *DB) buildInsertFlashcardQuery(card models.Flashcard) (string, []any, error) {
	query, args, err := db.builder.
		Insert(flashcardsTable).
		Columns(
			"user_id", "front", "back", "deck_name",
			"source_url", "source_text", "tags", "difficulty", "batch_id",
			"status", "created_at",
		).
		Values(
			card.UserID, card.Front, card.Back, card.DeckName,
			card.SourceURL, card.SourceText, card.Tags, card.Difficulty, card.BatchID,
			models.StatusPending, card.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func (db *DB) buildSelectPendingQuery(userID string, limit uint64) (string, []any, error) {
	builder := db.builder.
		Select(flashcardColumns...).
		From(flashcardsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"status": models.StatusPending}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildMarkSyncedQuery builds the conditional pending -> synced transition
// for one chunk of ids.
func (db *DB) buildMarkSyncedQuery(userID string, ids []int64, at time.Time) (string, []any, error) {
	builder := db.builder.
		Update(flashcardsTable).
		Set("status", models.StatusSynced).
		Set("synced_at", at).
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"status": models.StatusPending})
	if userID != "" {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func (db *DB) buildMarkFailedQuery(id int64) (string, []any, error) {
	query, args, err := db.builder.
		Update(flashcardsTable).
		Set("status", models.StatusFailed).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": models.StatusPending}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func (db *DB) buildSelectStatusQuery(id int64) (string, []any, error) {
	query, args, err := db.builder.
		Select("status").
		From(flashcardsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func (db *DB) buildStatsQuery(userID string) (string, []any, error) {
	query, args, err := db.builder.
		Select("status", "COUNT(*)").
		From(flashcardsTable).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func (db *DB) buildInsertBatchQuery(batch models.FlashcardBatch) (string, []any, error) {
	query, args, err := db.builder.
		Insert(batchesTable).
		Columns("user_id", "batch_id", "source_url", "total_cards", "processed_cards", "status", "created_at").
		Values(batch.UserID, batch.BatchID, batch.SourceURL, batch.TotalCards, batch.ProcessedCards, batch.Status, batch.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func (db *DB) buildCompleteBatchQuery(batchID string, total, processed int, status models.BatchStatus, at time.Time) (string, []any, error) {
	query, args, err := db.builder.
		Update(batchesTable).
		Set("total_cards", total).
		Set("processed_cards", processed).
		Set("status", status).
		Set("completed_at", at).
		Where(sq.Eq{"batch_id": batchID}).
		Where(sq.Eq{"status": models.BatchProcessing}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func (db *DB) buildSelectBatchQuery(batchID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(batchColumns...).
		From(batchesTable).
		Where(sq.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// uniqueIDs drops duplicates and ids no row can carry, keeping first-seen
// order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func chunkIDs(ids []int64, size int) [][]int64 {
	chunks := make([][]int64, 0, len(ids)/size+1)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
