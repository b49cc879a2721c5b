// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.SyncService.Fetch(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, "*Handler.getPending", "error getting pending flashcards", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SyncRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.SyncService.Acknowledge(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.sync", "error syncing flashcards", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) markFailed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "flashcard_id"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.markFailed").Msg("invalid flashcard id")
		http.Error(w, "invalid flashcard id", http.StatusBadRequest)
		return
	}

	found, err := h.services.LifecycleService.MarkFlashcardFailed(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.markFailed", "error marking flashcard as failed", err)
		return
	}
	if !found {
		http.Error(w, "Flashcard not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.MarkFailedResponse{FlashcardID: id, Status: models.StatusFailed}, http.StatusOK)
}
