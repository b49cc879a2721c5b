// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRole is the author of a chat message passed to the generator.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a conversation used as generator input.
type ChatMessage struct {
	Role    ChatRole `json:"role" validate:"oneof=system user assistant"`
	Content string   `json:"content" validate:"notblank"`
}

// GeneratedCard is a single card produced by the generator.
type GeneratedCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
	Topic string `json:"topic,omitempty"`
}

// WebDeckName is the default deck for cards captured from web pages.
const WebDeckName = "Web Learning"

// GenerateRequest asks the server to generate and store flashcards from
// a piece of captured text.
type GenerateRequest struct {
	UserID      string `json:"user_id" validate:"notblank,max=255"`
	Text        string `json:"text" validate:"notblank,max=100000"`
	SourceURL   string `json:"source_url,omitempty" validate:"omitempty,max=2048"`
	SourceTitle string `json:"source_title,omitempty" validate:"max=500"`
	Topic       string `json:"topic,omitempty" validate:"max=200"`
	DeckName    string `json:"deck_name,omitempty" validate:"max=200"`
	CardCount   int    `json:"card_count,omitempty" validate:"omitempty,min=1,max=50"`
}

// GenerateResponse reports the outcome of a generation request.
type GenerateResponse struct {
	Success           bool    `json:"success"`
	FlashcardsCreated int     `json:"flashcards_created"`
	FlashcardIDs      []int64 `json:"flashcard_ids"`
	BatchID           string  `json:"batch_id"`
	Message           string  `json:"message"`
}
