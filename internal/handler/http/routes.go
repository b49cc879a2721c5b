// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/v1/flashcards", func(r chi.Router) {
		r.Post("/", h.createFlashcard)
		r.Post("/batch", h.createBatch)
		r.Get("/batch/{batch_id}", h.getBatch)

		// pull protocol
		r.Get("/pending/{user_id}", h.getPending)
		r.Post("/sync", h.sync)
		r.Delete("/failed/{flashcard_id}", h.markFailed)

		r.Get("/stats/{user_id}", h.getStats)
		r.Get("/user/{user_id}/stats", h.getDashboard)

		r.Post("/generate", h.generate)
	})

	router.Post("/api/v1/export", h.export)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
