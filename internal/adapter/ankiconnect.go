// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

const (
	ankiConnectVersion = 6

	// AnkiBasicModel is the built-in note type with Front and Back fields.
	AnkiBasicModel = "Basic"
)

type ankiRequest struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// AnkiNote is the note payload of the addNote action.
type AnkiNote struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags"`
}

// AnkiConnect is a client of the AnkiConnect add-on API.
type AnkiConnect struct {
	client *utils.HTTPClient
	url    string
}

// NewAnkiConnect returns a client for the AnkiConnect endpoint at url.
func NewAnkiConnect(url string, timeout time.Duration) *AnkiConnect {
	return &AnkiConnect{
		client: utils.NewHTTPClient("", timeout),
		url:    url,
	}
}

// Invoke performs action and decodes the result field into result when it is
// not nil. The reply must hold exactly the result and error fields.
func (a *AnkiConnect) Invoke(ctx context.Context, action string, params, result any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ankiRequest{Action: action, Version: ankiConnectVersion, Params: params}).
		Post(a.url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAnkiConnection, err)
	}

	var reply map[string]json.RawMessage
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAnkiResponse, action, err)
	}
	if len(reply) != 2 {
		return fmt.Errorf("%w: %s: response has an unexpected number of fields", ErrAnkiResponse, action)
	}
	rawResult, hasResult := reply["result"]
	rawError, hasError := reply["error"]
	if !hasResult || !hasError {
		return fmt.Errorf("%w: %s: response is missing required fields", ErrAnkiResponse, action)
	}

	if !isJSONNull(rawError) {
		var message string
		if err = json.Unmarshal(rawError, &message); err != nil {
			message = string(rawError)
		}
		return fmt.Errorf("%w: %s: %s", ErrAnkiResponse, action, message)
	}

	if result != nil && !isJSONNull(rawResult) {
		if err = json.Unmarshal(rawResult, result); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrAnkiResponse, action, err)
		}
	}

	return nil
}

// CreateDeck creates deck, succeeding when it already exists.
func (a *AnkiConnect) CreateDeck(ctx context.Context, deck string) error {
	return a.Invoke(ctx, "createDeck", map[string]string{"deck": deck}, nil)
}

// AddNote adds note and returns the id Anki assigned to it.
func (a *AnkiConnect) AddNote(ctx context.Context, note AnkiNote) (int64, error) {
	var noteID int64
	err := a.Invoke(ctx, "addNote", map[string]AnkiNote{"note": note}, &noteID)
	return noteID, err
}

// Version returns the API version reported by AnkiConnect.
func (a *AnkiConnect) Version(ctx context.Context) (int, error) {
	var version int
	err := a.Invoke(ctx, "version", nil, &version)
	return version, err
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ankiImporter implements [DesktopImporter] on top of AnkiConnect.
type ankiImporter struct {
	anki   *AnkiConnect
	logger *logger.Logger
}

// NewAnkiImporter returns a [DesktopImporter] that adds cards to the local
// Anki collection.
func NewAnkiImporter(anki *AnkiConnect, logger *logger.Logger) DesktopImporter {
	return &ankiImporter{anki: anki, logger: logger}
}

// Import creates the card's deck when missing and adds it as a Basic note
// tagged with the card's comma-separated tags.
func (i *ankiImporter) Import(ctx context.Context, card models.Flashcard) error {
	deck := card.DeckName
	if deck == "" {
		deck = models.DefaultDeckName
	}

	if err := i.anki.CreateDeck(ctx, deck); err != nil {
		return err
	}

	tags := []string{}
	if card.Tags != nil {
		tags = SplitTags(*card.Tags)
	}

	_, err := i.anki.AddNote(ctx, AnkiNote{
		DeckName:  deck,
		ModelName: AnkiBasicModel,
		Fields:    map[string]string{"Front": card.Front, "Back": card.Back},
		Tags:      tags,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ankiImporter.Import").
			Int64("flashcard_id", card.ID).
			Msg("failed to add note")
		return err
	}

	return nil
}

// SplitTags turns a comma-separated tag list into Anki tags. Anki tags cannot
// contain spaces, so inner spaces become underscores.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, strings.ReplaceAll(p, " ", "_"))
	}
	return tags
}
