// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-card-sync/models"
)

type completionCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Topic    string `json:"topic"`
}

type completionEnvelope struct {
	Flashcards []completionCard `json:"flashcards"`
}

// parseCards extracts flashcards from an assistant reply. Both the
// {"flashcards":[...]} envelope and a bare array are accepted, optionally
// inside a fenced code block. Cards with an empty question or answer are
// dropped.
func parseCards(content string) ([]models.GeneratedCard, error) {
	raw := stripCodeFence(strings.TrimSpace(content))
	if raw == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedCompletion)
	}

	var cards []completionCard
	switch raw[0] {
	case '{':
		var envelope completionEnvelope
		if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}
		cards = envelope.Flashcards
	case '[':
		if err := json.Unmarshal([]byte(raw), &cards); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
		}
	default:
		return nil, fmt.Errorf("%w: reply is not JSON", ErrMalformedCompletion)
	}

	result := make([]models.GeneratedCard, 0, len(cards))
	for _, c := range cards {
		front, back := strings.TrimSpace(c.Question), strings.TrimSpace(c.Answer)
		if front == "" || back == "" {
			continue
		}
		result = append(result, models.GeneratedCard{
			Front: front,
			Back:  back,
			Topic: strings.TrimSpace(c.Topic),
		})
	}

	return result, nil
}

func stripCodeFence(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}

	body := s[start+3:]
	// drop the language tag line, e.g. ```json
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}
