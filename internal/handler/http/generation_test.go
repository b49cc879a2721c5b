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

	"github.com/MKhiriev/go-card-sync/internal/export"
	"github.com/MKhiriev/go-card-sync/internal/generation"
	"github.com/MKhiriev/go-card-sync/internal/service"
	"github.com/MKhiriev/go-card-sync/internal/validators"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	router := newTestRouter(service.Services{
		GenerationService: &mockGenerationSvc{
			generateFn: func(_ context.Context, req models.GenerateRequest) (models.GenerateResponse, error) {
				assert.Equal(t, "u1", req.UserID)
				assert.Equal(t, 3, req.CardCount)
				return models.GenerateResponse{
					Success:           true,
					FlashcardsCreated: 3,
					FlashcardIDs:      []int64{10, 11, 12},
					BatchID:           "batch-1",
					Message:           "Created 3 flashcards",
				}, nil
			},
		},
	})
	body := models.GenerateRequest{UserID: "u1", Text: "Goroutines are cheap threads.", CardCount: 3}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flashcards/generate", encodeBody(t, body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.GenerateResponse](t, rec.Body)
	assert.True(t, resp.Success)
	assert.Equal(t, []int64{10, 11, 12}, resp.FlashcardIDs)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "invalid json", body: `nope`, wantStatus: http.StatusBadRequest},
		{
			name:       "blank text",
			body:       `{"user_id":"u1","text":" "}`,
			err:        fmt.Errorf("%w: %w", validators.ErrValidation, validators.ErrEmptyText),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "generator disabled",
			body:       `{"user_id":"u1","text":"t"}`,
			err:        service.ErrGeneratorNotConfigured,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "upstream failure",
			body:       `{"user_id":"u1","text":"t"}`,
			err:        fmt.Errorf("%w: status 500", generation.ErrGenerationFailed),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "malformed completion",
			body:       `{"user_id":"u1","text":"t"}`,
			err:        generation.ErrMalformedCompletion,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "nothing generated",
			body:       `{"user_id":"u1","text":"t"}`,
			err:        service.ErrNoFlashcardsGenerated,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(service.Services{
				GenerationService: &mockGenerationSvc{
					generateFn: func(context.Context, models.GenerateRequest) (models.GenerateResponse, error) {
						return models.GenerateResponse{}, tt.err
					},
				},
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/flashcards/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.generate(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestExport_Success(t *testing.T) {
	router := newTestRouter(service.Services{
		ExportService: &mockExportSvc{
			exportFn: func(_ context.Context, req models.ExportRequest) (models.ExportResult, error) {
				assert.Equal(t, models.DestinationAnki, req.Destination)
				require.Len(t, req.Conversation, 2)
				return models.ExportResult{Destination: req.Destination, Count: 4, Location: "FlashcardGen_0a1b2c3d"}, nil
			},
		},
	})
	body := models.ExportRequest{
		Conversation: []models.ChatMessage{
			{Role: models.RoleUser, Content: "Explain channels"},
			{Role: models.RoleAssistant, Content: "Channels are typed conduits."},
		},
		Destination: models.DestinationAnki,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/export", encodeBody(t, body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.ExportResponse](t, rec.Body)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Exported 4 flashcards to anki", resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 4, resp.Data.Count)
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown destination", err: fmt.Errorf("%w: notion", service.ErrUnknownDestination), wantStatus: http.StatusBadRequest},
		{name: "sink failure", err: fmt.Errorf("%w: anki offline", export.ErrExportFailed), wantStatus: http.StatusBadGateway},
		{name: "no cards", err: export.ErrNoCards, wantStatus: http.StatusUnprocessableEntity},
		{name: "generator disabled", err: service.ErrGeneratorNotConfigured, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(service.Services{
				ExportService: &mockExportSvc{
					exportFn: func(context.Context, models.ExportRequest) (models.ExportResult, error) {
						return models.ExportResult{}, tt.err
					},
				},
			})
			body := `{"conversation":[{"role":"user","content":"hi"}],"destination":"notion"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/export", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.export(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
