// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/MKhiriev/go-card-sync/models"
)

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.GenerateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.GenerationService.GenerateFromText(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.generate", "error generating flashcards", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ExportRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.export").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.ExportService.GenerateAndExport(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.export", "error exporting flashcards", err)
		return
	}

	utils.WriteJSON(w, models.ExportResponse{
		Status:  "success",
		Message: fmt.Sprintf("Exported %d flashcards to %s", result.Count, result.Destination),
		Data:    &result,
	}, http.StatusOK)
}
