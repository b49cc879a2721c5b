// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PendingResponse is returned by the fetch half of the pull protocol.
type PendingResponse struct {
	UserID     string      `json:"user_id"`
	Flashcards []Flashcard `json:"flashcards"`

	// Length is the number of entries in Flashcards.
	Length int `json:"length"`
}

// MarkFailedResponse confirms that a flashcard is in the failed state.
type MarkFailedResponse struct {
	FlashcardID int64           `json:"flashcard_id"`
	Status      FlashcardStatus `json:"status"`
}

// PendingPreview is a shortened pending flashcard for dashboards.
type PendingPreview struct {
	ID        int64  `json:"id"`
	Front     string `json:"front"`
	DeckName  string `json:"deck_name"`
	CreatedAt string `json:"created_at"`
}

// DashboardResponse aggregates stats and the newest pending cards of a user.
type DashboardResponse struct {
	UserID        string           `json:"user_id"`
	Stats         FlashcardStats   `json:"stats"`
	PendingCount  int64            `json:"pending_count"`
	RecentPending []PendingPreview `json:"recent_pending"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
