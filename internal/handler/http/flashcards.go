// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var spec models.FlashcardSpec
	if err := utils.DecodeJSON(r, &spec); err != nil {
		log.Err(err).Str("func", "*Handler.createFlashcard").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	card, err := h.services.LifecycleService.AddFlashcard(r.Context(), spec)
	if err != nil {
		writeError(w, r, "*Handler.createFlashcard", "error creating flashcard", err)
		return
	}

	utils.WriteJSON(w, card, http.StatusCreated)
}

func (h *Handler) createBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BatchRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.createBatch").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.LifecycleService.AddFlashcardBatch(r.Context(), req)
	if err != nil && result.BatchID == "" {
		writeError(w, r, "*Handler.createBatch", "error creating flashcard batch", err)
		return
	}
	if err != nil {
		log.Warn().
			Str("func", "*Handler.createBatch").
			Str("batch_id", result.BatchID).
			Int("created", result.Length).
			Msg("batch stopped early")
		status, text := describeError(r, "*Handler.createBatch", "error creating flashcard batch", err)
		utils.WriteJSON(w, models.BatchErrorResponse{Error: text, BatchResult: result}, status)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) getBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := h.services.LifecycleService.GetBatch(r.Context(), chi.URLParam(r, "batch_id"))
	if err != nil {
		writeError(w, r, "*Handler.getBatch", "error getting batch", err)
		return
	}

	utils.WriteJSON(w, batch, http.StatusOK)
}
