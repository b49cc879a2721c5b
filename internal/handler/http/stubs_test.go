// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/service"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/stretchr/testify/require"
)

var errUnexpectedCall = errors.New("unexpected call")

type mockLifecycleSvc struct {
	addFlashcardFn        func(ctx context.Context, spec models.FlashcardSpec) (models.Flashcard, error)
	addFlashcardBatchFn   func(ctx context.Context, req models.BatchRequest) (models.BatchResult, error)
	markFlashcardFailedFn func(ctx context.Context, id int64) (bool, error)
	getBatchFn            func(ctx context.Context, batchID string) (models.FlashcardBatch, error)
}

func (m *mockLifecycleSvc) CreateBatch(context.Context, string, string) (models.FlashcardBatch, error) {
	return models.FlashcardBatch{}, errUnexpectedCall
}

func (m *mockLifecycleSvc) AddFlashcard(ctx context.Context, spec models.FlashcardSpec) (models.Flashcard, error) {
	if m.addFlashcardFn == nil {
		return models.Flashcard{}, errUnexpectedCall
	}
	return m.addFlashcardFn(ctx, spec)
}

func (m *mockLifecycleSvc) AddFlashcardBatch(ctx context.Context, req models.BatchRequest) (models.BatchResult, error) {
	if m.addFlashcardBatchFn == nil {
		return models.BatchResult{}, errUnexpectedCall
	}
	return m.addFlashcardBatchFn(ctx, req)
}

func (m *mockLifecycleSvc) GetPendingFlashcards(context.Context, string) ([]models.Flashcard, error) {
	return nil, errUnexpectedCall
}

func (m *mockLifecycleSvc) MarkFlashcardsSynced(context.Context, []int64) (int64, error) {
	return 0, errUnexpectedCall
}

func (m *mockLifecycleSvc) SyncUserFlashcards(context.Context, string, []int64) (int64, error) {
	return 0, errUnexpectedCall
}

func (m *mockLifecycleSvc) MarkFlashcardFailed(ctx context.Context, id int64) (bool, error) {
	if m.markFlashcardFailedFn == nil {
		return false, errUnexpectedCall
	}
	return m.markFlashcardFailedFn(ctx, id)
}

func (m *mockLifecycleSvc) GetFlashcardStats(context.Context, string) (models.FlashcardStats, error) {
	return models.FlashcardStats{}, errUnexpectedCall
}

func (m *mockLifecycleSvc) GetBatch(ctx context.Context, batchID string) (models.FlashcardBatch, error) {
	if m.getBatchFn == nil {
		return models.FlashcardBatch{}, errUnexpectedCall
	}
	return m.getBatchFn(ctx, batchID)
}

type mockSyncSvc struct {
	fetchFn       func(ctx context.Context, userID string) (models.PendingResponse, error)
	acknowledgeFn func(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

func (m *mockSyncSvc) Fetch(ctx context.Context, userID string) (models.PendingResponse, error) {
	if m.fetchFn == nil {
		return models.PendingResponse{}, errUnexpectedCall
	}
	return m.fetchFn(ctx, userID)
}

func (m *mockSyncSvc) Acknowledge(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if m.acknowledgeFn == nil {
		return models.SyncResponse{}, errUnexpectedCall
	}
	return m.acknowledgeFn(ctx, req)
}

type mockStatsSvc struct {
	getStatsFn     func(ctx context.Context, userID string) (models.FlashcardStats, error)
	getDashboardFn func(ctx context.Context, userID string) (models.DashboardResponse, error)
}

func (m *mockStatsSvc) GetStats(ctx context.Context, userID string) (models.FlashcardStats, error) {
	if m.getStatsFn == nil {
		return models.FlashcardStats{}, errUnexpectedCall
	}
	return m.getStatsFn(ctx, userID)
}

func (m *mockStatsSvc) GetDashboard(ctx context.Context, userID string) (models.DashboardResponse, error) {
	if m.getDashboardFn == nil {
		return models.DashboardResponse{}, errUnexpectedCall
	}
	return m.getDashboardFn(ctx, userID)
}

type mockGenerationSvc struct {
	generateFn func(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error)
}

func (m *mockGenerationSvc) GenerateFromText(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error) {
	if m.generateFn == nil {
		return models.GenerateResponse{}, errUnexpectedCall
	}
	return m.generateFn(ctx, req)
}

type mockExportSvc struct {
	exportFn func(ctx context.Context, req models.ExportRequest) (models.ExportResult, error)
}

func (m *mockExportSvc) GenerateAndExport(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	if m.exportFn == nil {
		return models.ExportResult{}, errUnexpectedCall
	}
	return m.exportFn(ctx, req)
}

func (m *mockExportSvc) ExportAll(context.Context, []models.ExportCard) ([]models.ExportResult, error) {
	return nil, errUnexpectedCall
}

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoSvc) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, models.NotAvailable, models.NotAvailable)
}

// newTestServices fills every service the caller left nil with an empty
// stub so routes can be exercised in isolation.
func newTestServices(s service.Services) *service.Services {
	if s.LifecycleService == nil {
		s.LifecycleService = &mockLifecycleSvc{}
	}
	if s.SyncService == nil {
		s.SyncService = &mockSyncSvc{}
	}
	if s.StatsService == nil {
		s.StatsService = &mockStatsSvc{}
	}
	if s.GenerationService == nil {
		s.GenerationService = &mockGenerationSvc{}
	}
	if s.ExportService == nil {
		s.ExportService = &mockExportSvc{}
	}
	if s.AppInfoService == nil {
		s.AppInfoService = &mockAppInfoSvc{version: "1.0.0"}
	}
	return &s
}

func newTestHandler(s service.Services) *Handler {
	return &Handler{
		services: newTestServices(s),
		logger:   logger.Nop(),
	}
}

// newTestRouter returns the fully wired router so chi URL params resolve.
func newTestRouter(s service.Services) http.Handler {
	return newTestHandler(s).Init()
}

func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeBody[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}
