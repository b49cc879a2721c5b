// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/config"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(testContext(), config.Storage{DB: config.DB{Driver: "oracle"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

// newSQLiteStorages opens a migrated in-memory database. It skips when the
// binary was built without cgo.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(testContext(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite3 requires cgo")
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestSQLiteLifecycle(t *testing.T) {
	storages := newSQLiteStorages(t)
	repo := storages.FlashcardRepository
	ctx := testContext()

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]int64, 0, 3)
	for i, front := range []string{"one", "two", "three"} {
		card, err := repo.CreateFlashcard(ctx, models.Flashcard{
			UserID:    "u1",
			Front:     front,
			Back:      "back " + front,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, card.ID)
	}
	_, err := repo.CreateFlashcard(ctx, models.Flashcard{UserID: "u2", Front: "other", Back: "user", CreatedAt: base})
	require.NoError(t, err)

	stats, err := repo.GetFlashcardStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.FlashcardStats{Pending: 3, Total: 3}, stats)

	pending, err := repo.GetPendingFlashcards(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "three", pending[0].Front)
	assert.Equal(t, "one", pending[2].Front)

	synced, err := repo.MarkFlashcardsSynced(ctx, "u1", ids[:2], time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(2), synced)

	synced, err = repo.MarkFlashcardsSynced(ctx, "u1", ids[:2], time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, synced)

	// another user cannot acknowledge u1's cards
	synced, err = repo.MarkFlashcardsSynced(ctx, "u2", ids[2:], time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, synced)

	stats, err = repo.GetFlashcardStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.FlashcardStats{Pending: 1, Synced: 2, Total: 3}, stats)

	ok, err := repo.MarkFlashcardFailed(ctx, ids[2])
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkFlashcardFailed(ctx, ids[2])
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.MarkFlashcardFailed(ctx, ids[0])
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	ok, err = repo.MarkFlashcardFailed(ctx, 99999)
	require.NoError(t, err)
	assert.False(t, ok)

	stats, err = repo.GetFlashcardStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.FlashcardStats{Pending: 0, Synced: 2, Failed: 1, Total: 3}, stats)

	pending, err = repo.GetPendingFlashcards(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, pending)

	other, err := repo.GetFlashcardStats(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, models.FlashcardStats{Pending: 1, Total: 1}, other)
}

func TestSQLiteBatch(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := testContext()

	batch, err := storages.BatchRepository.CreateBatch(ctx, models.FlashcardBatch{
		UserID:    "u1",
		BatchID:   "batch-1",
		SourceURL: strPtr("https://example.com"),
	})
	require.NoError(t, err)
	assert.NotZero(t, batch.ID)

	err = storages.BatchRepository.CompleteBatch(ctx, "batch-1", 2, 2, models.BatchCompleted, time.Now().UTC())
	require.NoError(t, err)

	err = storages.BatchRepository.CompleteBatch(ctx, "batch-1", 2, 2, models.BatchCompleted, time.Now().UTC())
	assert.ErrorIs(t, err, ErrBatchNotFound)

	got, err := storages.BatchRepository.GetBatch(ctx, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, models.BatchCompleted, got.Status)
	assert.Equal(t, 2, got.ProcessedCards)
	assert.NotNil(t, got.CompletedAt)
}

func TestSQLiteConcurrentAcknowledgements(t *testing.T) {
	storages := newSQLiteStorages(t)
	repo := storages.FlashcardRepository
	ctx := testContext()

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]int64, 0, 60)
	for i := range 60 {
		card, err := repo.CreateFlashcard(ctx, models.Flashcard{
			UserID:    "u1",
			Front:     "front",
			Back:      "back",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
		ids = append(ids, card.ID)
	}

	// eight overlapping windows covering ids[0:50]; ids[50:] stay pending
	const workers = 8
	union := make(map[int64]struct{})
	windows := make([][]int64, workers)
	for w := range workers {
		start := w * 5
		window := append([]int64{0, -1, 999999}, ids[start:start+15]...)
		windows[w] = window
		for _, id := range ids[start : start+15] {
			union[id] = struct{}{}
		}
	}

	var (
		total atomic.Int64
		wg    sync.WaitGroup
	)
	errs := make(chan error, workers)
	for _, window := range windows {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := repo.MarkFlashcardsSynced(ctx, "u1", window, time.Now().UTC())
			if err != nil {
				errs <- err
				return
			}
			total.Add(n)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, int64(len(union)), total.Load())

	stats, err := repo.GetFlashcardStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.FlashcardStats{Pending: 10, Synced: 50, Total: 60}, stats)

	rows, err := storages.db.QueryContext(ctx, `SELECT id, status, synced_at FROM flashcards WHERE user_id = ?`, "u1")
	require.NoError(t, err)
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var (
			id       int64
			status   models.FlashcardStatus
			syncedAt *time.Time
		)
		require.NoError(t, rows.Scan(&id, &status, &syncedAt))
		seen++

		_, acked := union[id]
		if acked {
			assert.Equal(t, models.StatusSynced, status, "flashcard %d", id)
			assert.NotNil(t, syncedAt, "flashcard %d", id)
		} else {
			assert.Equal(t, models.StatusPending, status, "flashcard %d", id)
			assert.Nil(t, syncedAt, "flashcard %d", id)
		}
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 60, seen)
}
