// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path served under another method answers 404 instead of chi's 405 so the
// API does not reveal which routes exist. When router has a handler for the
// exact path and method the request is served normally.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !hasRoute(router, r.Method, r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		router.ServeHTTP(w, r)
	}
}

// hasRoute reports whether router, including mounted sub-routers, registers
// method for the literal pattern path.
func hasRoute(router chi.Routes, method, path string) bool {
	found := false
	_ = chi.Walk(router, func(m, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if m == method && route == path {
			found = true
		}
		return nil
	})
	return found
}
