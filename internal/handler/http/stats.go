// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.GetStats(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, "*Handler.getStats", "error getting flashcard stats", err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.services.StatsService.GetDashboard(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, "*Handler.getDashboard", "error getting user dashboard", err)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}
