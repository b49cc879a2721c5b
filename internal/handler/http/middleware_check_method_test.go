// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	router.Route("/api/v1/flashcards", func(r chi.Router) {
		r.Post("/sync", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
		r.Delete("/failed/{flashcard_id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "registered get", method: http.MethodGet, path: "/health", want: http.StatusOK},
		{name: "registered nested post", method: http.MethodPost, path: "/api/v1/flashcards/sync", want: http.StatusAccepted},
		{name: "registered param route", method: http.MethodDelete, path: "/api/v1/flashcards/failed/7", want: http.StatusOK},
		{name: "post on get route", method: http.MethodPost, path: "/health", want: http.StatusNotFound},
		{name: "get on nested post route", method: http.MethodGet, path: "/api/v1/flashcards/sync", want: http.StatusNotFound},
		{name: "get on param route", method: http.MethodGet, path: "/api/v1/flashcards/failed/7", want: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/unknown", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestHasRoute(t *testing.T) {
	router := buildRouter()

	assert.True(t, hasRoute(router, http.MethodGet, "/health"))
	assert.True(t, hasRoute(router, http.MethodPost, "/api/v1/flashcards/sync"))
	assert.False(t, hasRoute(router, http.MethodGet, "/api/v1/flashcards/sync"))
	assert.False(t, hasRoute(router, http.MethodDelete, "/api/v1/flashcards/failed/7"))
}
