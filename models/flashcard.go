// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultDeckName is used when a flashcard is created without a deck.
const DefaultDeckName = "Default"

// Flashcard is a single generated card waiting to be pulled by the desktop
// client. Status is the only mutable dimension of a stored flashcard.
type Flashcard struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// UserID groups cards by owner. It is an opaque string.
	UserID string `json:"user_id"`

	Front    string `json:"front"`
	Back     string `json:"back"`
	DeckName string `json:"deck_name"`

	SourceURL  *string `json:"source_url,omitempty"`
	SourceText *string `json:"source_text,omitempty"`

	// Tags is a comma-separated list.
	Tags       *string `json:"tags,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`

	// BatchID links the card to the batch it was created in, if any.
	BatchID *string `json:"batch_id,omitempty"`

	Status FlashcardStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`

	// SyncedAt is set if and only if Status is StatusSynced.
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

// TableName returns the name of the table flashcards are stored in.
func (f Flashcard) TableName() string {
	return "flashcards"
}

// FlashcardSpec is the input accepted by AddFlashcard and by each item
// of AddFlashcardBatch.
type FlashcardSpec struct {
	UserID     string `json:"user_id" validate:"notblank,max=255"`
	Front      string `json:"front" validate:"notblank,max=10000"`
	Back       string `json:"back" validate:"notblank,max=10000"`
	DeckName   string `json:"deck_name,omitempty" validate:"max=200"`
	SourceURL  string `json:"source_url,omitempty" validate:"omitempty,max=2048"`
	SourceText string `json:"source_text,omitempty" validate:"max=2000"`
	Tags       string `json:"tags,omitempty" validate:"max=500"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`

	// BatchID is filled in by the batch path and never read from requests.
	BatchID string `json:"-"`
}

// FlashcardStats holds per-status counts for a single user.
// Total always equals Pending + Synced + Failed.
type FlashcardStats struct {
	Pending int64 `json:"pending"`
	Synced  int64 `json:"synced"`
	Failed  int64 `json:"failed"`
	Total   int64 `json:"total"`
}
