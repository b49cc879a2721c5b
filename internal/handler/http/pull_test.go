// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-card-sync/internal/service"
	"github.com/MKhiriev/go-card-sync/internal/store"
	"github.com/MKhiriev/go-card-sync/internal/validators"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPending_Success(t *testing.T) {
	router := newTestRouter(service.Services{
		SyncService: &mockSyncSvc{
			fetchFn: func(_ context.Context, userID string) (models.PendingResponse, error) {
				assert.Equal(t, "user-1", userID)
				return models.PendingResponse{
					UserID: userID,
					Flashcards: []models.Flashcard{
						{ID: 1, UserID: userID, Front: "q1", Status: models.StatusPending},
						{ID: 2, UserID: userID, Front: "q2", Status: models.StatusPending},
					},
					Length: 2,
				}, nil
			},
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flashcards/pending/user-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.PendingResponse](t, rec.Body)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, 2, resp.Length)
	assert.Len(t, resp.Flashcards, 2)
}

func TestGetPending_EmptyListIsArray(t *testing.T) {
	router := newTestRouter(service.Services{
		SyncService: &mockSyncSvc{
			fetchFn: func(_ context.Context, userID string) (models.PendingResponse, error) {
				return models.PendingResponse{UserID: userID, Flashcards: []models.Flashcard{}}, nil
			},
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flashcards/pending/nobody", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"flashcards":[]`)
}

func TestGetPending_StorageError(t *testing.T) {
	router := newTestRouter(service.Services{
		SyncService: &mockSyncSvc{
			fetchFn: func(context.Context, string) (models.PendingResponse, error) {
				return models.PendingResponse{}, fmt.Errorf("%w: timeout", store.ErrExecutingQuery)
			},
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flashcards/pending/user-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "timeout")
}

func TestSync_Success(t *testing.T) {
	router := newTestRouter(service.Services{
		SyncService: &mockSyncSvc{
			acknowledgeFn: func(_ context.Context, req models.SyncRequest) (models.SyncResponse, error) {
				assert.Equal(t, "user-1", req.UserID)
				assert.Equal(t, []int64{1, 2, 99}, req.FlashcardIDs)
				return models.SyncResponse{SyncedCount: 2, RequestedCount: len(req.FlashcardIDs), UserID: req.UserID}, nil
			},
		},
	})
	body := models.SyncRequest{UserID: "user-1", FlashcardIDs: []int64{1, 2, 99}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flashcards/sync", encodeBody(t, body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.SyncResponse](t, rec.Body)
	assert.Equal(t, int64(2), resp.SyncedCount)
	assert.Equal(t, 3, resp.RequestedCount)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestSync_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "invalid json", body: `{"user_id":`, wantStatus: http.StatusBadRequest},
		{name: "trailing data", body: `{"user_id":"u","flashcard_ids":[1]} {}`, wantStatus: http.StatusBadRequest},
		{
			name:       "validation",
			body:       `{"user_id":"","flashcard_ids":[1]}`,
			err:        fmt.Errorf("%w: %w", validators.ErrValidation, validators.ErrInvalidUserID),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage",
			body:       `{"user_id":"u","flashcard_ids":[1]}`,
			err:        store.ErrCommitingTransaction,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(service.Services{
				SyncService: &mockSyncSvc{
					acknowledgeFn: func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
						return models.SyncResponse{}, tt.err
					},
				},
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/flashcards/sync", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.sync(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMarkFailed(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		found      bool
		err        error
		wantCalled bool
		wantStatus int
	}{
		{name: "marked", path: "/api/v1/flashcards/failed/7", found: true, wantCalled: true, wantStatus: http.StatusOK},
		{name: "not found", path: "/api/v1/flashcards/failed/7", wantCalled: true, wantStatus: http.StatusNotFound},
		{
			name:       "already synced",
			path:       "/api/v1/flashcards/failed/7",
			err:        fmt.Errorf("%w: synced -> failed", store.ErrInvalidStatusTransition),
			wantCalled: true,
			wantStatus: http.StatusConflict,
		},
		{name: "non numeric id", path: "/api/v1/flashcards/failed/abc", wantStatus: http.StatusBadRequest},
		{name: "non positive id", path: "/api/v1/flashcards/failed/0", wantCalled: true, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			router := newTestRouter(service.Services{
				LifecycleService: &mockLifecycleSvc{
					markFlashcardFailedFn: func(context.Context, int64) (bool, error) {
						called = true
						return tt.found, tt.err
					},
				},
			})
			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				resp := decodeBody[models.MarkFailedResponse](t, rec.Body)
				assert.Equal(t, int64(7), resp.FlashcardID)
				assert.Equal(t, models.StatusFailed, resp.Status)
			}
			if tt.name == "not found" {
				assert.Contains(t, rec.Body.String(), "Flashcard not found")
			}
		})
	}
}
