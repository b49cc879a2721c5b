// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sync server errors, mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrDecodingResponse = errors.New("failed to decode response")
)

// AnkiConnect errors.
var (
	// ErrAnkiConnection is returned when AnkiConnect cannot be reached, which
	// usually means Anki is not running or the add-on is not installed.
	ErrAnkiConnection = errors.New("cannot connect to Anki, make sure Anki is running with AnkiConnect installed")

	// ErrAnkiResponse is returned for malformed replies and for replies whose
	// error field is set.
	ErrAnkiResponse = errors.New("unexpected AnkiConnect response")
)
