// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Destination selects an export sink.
type Destination string

const (
	DestinationAnki   Destination = "anki"
	DestinationNotion Destination = "notion"
)

// ExportCard is the sink-neutral shape handed to exporters.
type ExportCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Topic    string `json:"topic,omitempty"`
}

// ExportCardsFromGenerated converts generator output into export cards.
func ExportCardsFromGenerated(cards []GeneratedCard) []ExportCard {
	out := make([]ExportCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, ExportCard{Question: c.Front, Answer: c.Back, Topic: c.Topic})
	}
	return out
}

// ExportRequest generates cards from a conversation and pushes them to one
// destination without touching the flashcard store.
type ExportRequest struct {
	Conversation []ChatMessage `json:"conversation" validate:"required,min=1,dive"`
	Destination  Destination   `json:"destination" validate:"oneof=anki notion"`
}

// ExportResult is what a sink reports back.
type ExportResult struct {
	Destination Destination `json:"destination"`
	Count       int         `json:"count"`
	Location    string      `json:"location,omitempty"`
}

// ExportResponse is the HTTP response of the export endpoint.
type ExportResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    *ExportResult `json:"data,omitempty"`
}
