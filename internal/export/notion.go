// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/config"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

const (
	notionDatabaseTitle = "Flashcards"
	notionInitialStatus = "Learning"
)

type notionText struct {
	Text struct {
		Content string `json:"content"`
	} `json:"text"`
}

func richText(content string) []notionText {
	var t notionText
	t.Text.Content = content
	return []notionText{t}
}

type notionName struct {
	Name string `json:"name"`
}

type notionSearchResponse struct {
	Results []struct {
		Object string `json:"object"`
		ID     string `json:"id"`
		Parent struct {
			Type   string `json:"type"`
			PageID string `json:"page_id"`
		} `json:"parent"`
	} `json:"results"`
}

type notionObject struct {
	ID string `json:"id"`
}

type notionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NotionExporter appends cards as pages of a "Flashcards" database below a
// configured parent page, creating the database on first use.
type NotionExporter struct {
	client       *utils.HTTPClient
	parentPageID string
	now          func() time.Time
	logger       *logger.Logger

	mu         sync.Mutex
	databaseID string
}

// NewNotionExporter returns an [Exporter] for the Notion REST API.
func NewNotionExporter(cfg config.Export, logger *logger.Logger) (*NotionExporter, error) {
	if cfg.NotionAPIKey == "" || cfg.NotionParentPageID == "" {
		return nil, ErrNotionNotConfigured
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.NotionURL, "/"), cfg.Timeout)
	client.SetAuthToken(cfg.NotionAPIKey).
		SetHeader("Notion-Version", cfg.NotionVersion).
		SetHeader("Content-Type", "application/json")

	return &NotionExporter{
		client:       client,
		parentPageID: cfg.NotionParentPageID,
		now:          time.Now,
		logger:       logger,
	}, nil
}

func (e *NotionExporter) Name() models.Destination {
	return models.DestinationNotion
}

// Export creates one page per card. It stops at the first failure and
// reports how many pages were created before it.
func (e *NotionExporter) Export(ctx context.Context, cards []models.ExportCard) (models.ExportResult, error) {
	log := logger.FromContext(ctx)

	if len(cards) == 0 {
		return models.ExportResult{}, ErrNoCards
	}

	databaseID, err := e.database(ctx)
	if err != nil {
		log.Err(err).Str("func", "NotionExporter.Export").Msg("failed to resolve flashcards database")
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	result := models.ExportResult{Destination: models.DestinationNotion, Location: databaseID}
	for _, card := range cards {
		if err = e.createPage(ctx, databaseID, card); err != nil {
			log.Err(err).
				Str("func", "NotionExporter.Export").
				Int("created", result.Count).
				Msg("failed to create flashcard page")
			return result, fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
		result.Count++
	}

	return result, nil
}

// database returns the cached id of the flashcards database, looking it up
// or creating it on first use.
func (e *NotionExporter) database(ctx context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.databaseID != "" {
		return e.databaseID, nil
	}

	id, err := e.findDatabase(ctx)
	if err != nil {
		return "", err
	}
	if id == "" {
		if id, err = e.createDatabase(ctx); err != nil {
			return "", err
		}
	}

	e.databaseID = id
	return id, nil
}

func (e *NotionExporter) findDatabase(ctx context.Context) (string, error) {
	var found notionSearchResponse
	err := e.post(ctx, "/v1/search", map[string]any{
		"query":  notionDatabaseTitle,
		"filter": map[string]string{"property": "object", "value": "database"},
	}, &found)
	if err != nil {
		return "", err
	}

	parent := normalizeNotionID(e.parentPageID)
	for _, r := range found.Results {
		if r.Object == "database" && r.Parent.Type == "page_id" && normalizeNotionID(r.Parent.PageID) == parent {
			return r.ID, nil
		}
	}

	return "", nil
}

func (e *NotionExporter) createDatabase(ctx context.Context) (string, error) {
	var created notionObject
	err := e.post(ctx, "/v1/databases", map[string]any{
		"parent": map[string]string{"type": "page_id", "page_id": e.parentPageID},
		"title":  richText(notionDatabaseTitle),
		"properties": map[string]any{
			"Question": map[string]any{"title": map[string]any{}},
			"Answer":   map[string]any{"rich_text": map[string]any{}},
			"Status": map[string]any{"select": map[string]any{
				"options": []map[string]string{
					{"name": "Learning", "color": "blue"},
					{"name": "Reviewing", "color": "yellow"},
					{"name": "Mastered", "color": "green"},
				},
			}},
			"Next Review": map[string]any{"date": map[string]any{}},
			"Topic":       map[string]any{"multi_select": map[string]any{}},
		},
	}, &created)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func (e *NotionExporter) createPage(ctx context.Context, databaseID string, card models.ExportCard) error {
	topics := []notionName{}
	if card.Topic != "" {
		topics = append(topics, notionName{Name: card.Topic})
	}

	return e.post(ctx, "/v1/pages", map[string]any{
		"parent": map[string]string{"database_id": databaseID},
		"properties": map[string]any{
			"Question":    map[string]any{"title": richText(card.Question)},
			"Answer":      map[string]any{"rich_text": richText(card.Answer)},
			"Status":      map[string]any{"select": notionName{Name: notionInitialStatus}},
			"Next Review": map[string]any{"date": map[string]string{"start": e.now().Format(time.DateOnly)}},
			"Topic":       map[string]any{"multi_select": topics},
		},
	}, &notionObject{})
}

func (e *NotionExporter) post(ctx context.Context, path string, body, result any) error {
	var apiErr notionError

	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotionRequest, path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %s: status %d: %s %s", ErrNotionRequest, path, resp.StatusCode(), apiErr.Code, apiErr.Message)
	}

	return nil
}

func normalizeNotionID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}
