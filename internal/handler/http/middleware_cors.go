// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-card-sync/internal/utils"
	"github.com/rs/cors"
)

// withCORS lets the browser capture extension call the API. Without
// configured origins every origin is allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Content-Encoding", "Accept-Encoding", utils.TraceIDHeader},
		ExposedHeaders: []string{utils.TraceIDHeader},
		MaxAge:         600,
	}).Handler
}
