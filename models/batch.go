// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FlashcardBatch is a bookkeeping record for a set of flashcards created
// together from one source. It does not own the flashcard rows.
type FlashcardBatch struct {
	ID      int64  `json:"id"`
	UserID  string `json:"user_id"`
	BatchID string `json:"batch_id"`

	SourceURL *string `json:"source_url,omitempty"`

	TotalCards     int `json:"total_cards"`
	ProcessedCards int `json:"processed_cards"`

	Status BatchStatus `json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName returns the name of the table batches are stored in.
func (b FlashcardBatch) TableName() string {
	return "flashcard_batches"
}

// BatchRequest is the body of POST /api/v1/flashcards/batch.
type BatchRequest struct {
	UserID     string          `json:"user_id" validate:"notblank,max=255"`
	SourceURL  string          `json:"source_url,omitempty" validate:"omitempty,max=2048"`
	Flashcards []FlashcardSpec `json:"flashcards" validate:"required,min=1,max=500,dive"`
}

// BatchResult is what the lifecycle service returns for a batch creation:
// the batch token and every flashcard that was actually stored.
type BatchResult struct {
	BatchID    string      `json:"batch_id"`
	Flashcards []Flashcard `json:"flashcards"`
	Length     int         `json:"length"`
}

// BatchErrorResponse is returned when a batch stops on a failing item. It
// still lists the flashcards stored before the failure.
type BatchErrorResponse struct {
	Error string `json:"error"`
	BatchResult
}
