// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-card-sync/internal/export"
	"github.com/MKhiriev/go-card-sync/internal/generation"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/service"
	"github.com/MKhiriev/go-card-sync/internal/store"
	"github.com/MKhiriev/go-card-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,

	service.ErrGeneratorNotConfigured: http.StatusServiceUnavailable,
	service.ErrNoFlashcardsGenerated:  http.StatusUnprocessableEntity,
	service.ErrUnknownDestination:     http.StatusBadRequest,
	service.ErrNoExportersEnabled:     http.StatusServiceUnavailable,
	service.ErrVersionIsNotSpecified:  http.StatusInternalServerError,

	generation.ErrGenerationFailed:    http.StatusBadGateway,
	generation.ErrMalformedCompletion: http.StatusBadGateway,
	export.ErrExportFailed:            http.StatusBadGateway,
	export.ErrNoCards:                 http.StatusUnprocessableEntity,

	store.ErrFlashcardNotFound:       http.StatusNotFound,
	store.ErrBatchNotFound:           http.StatusNotFound,
	store.ErrInvalidStatusTransition: http.StatusConflict,
	store.ErrFlashcardNotSaved:       http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status mapped from it. Client
// errors carry the error text, server errors only msg.
func writeError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	status, text := describeError(r, funcName, msg, err)
	http.Error(w, text, status)
}

// describeError logs err and returns the response status and text for it.
func describeError(r *http.Request, funcName, msg string, err error) (int, string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(msg)

	if status < http.StatusInternalServerError {
		msg = msg + ": " + err.Error()
	}
	return status, msg
}
