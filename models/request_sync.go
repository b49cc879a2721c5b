// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncRequest is sent by the desktop client after an import run. It carries
// the identifiers of every flashcard the client managed to import.
type SyncRequest struct {
	// UserID is the identity the client pulls for.
	UserID string `json:"user_id" validate:"notblank,max=255"`

	// FlashcardIDs are the ids the client claims to have imported. Ids that
	// do not name a pending flashcard of UserID are skipped.
	FlashcardIDs []int64 `json:"flashcard_ids"`
}

// SyncResponse reports how many of the requested ids were actually
// transitioned. SyncedCount lower than RequestedCount is not an error.
type SyncResponse struct {
	SyncedCount    int64  `json:"synced_count"`
	RequestedCount int    `json:"requested_count"`
	UserID         string `json:"user_id"`
}
