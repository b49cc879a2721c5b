// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages the desktop puller prints
// for the failures a user can act on.
package app

import (
	"errors"

	"github.com/MKhiriev/go-card-sync/internal/adapter"
	"github.com/MKhiriev/go-card-sync/internal/service"
)

const (
	// MsgAnkiNotRunning is shown when AnkiConnect does not answer.
	MsgAnkiNotRunning = "Anki is not reachable, start Anki with the AnkiConnect add-on installed"

	// MsgAnkiRejected is shown when AnkiConnect answered with an error.
	MsgAnkiRejected = "Anki rejected the request"

	// MsgNoUserID is shown when neither --user-id nor APP_USER_ID is set.
	MsgNoUserID = "no user id configured, pass --user-id or set APP_USER_ID"

	// MsgServerUnavailable is shown for 5xx answers of the sync server.
	MsgServerUnavailable = "the sync server is unavailable, try again later"

	// MsgServerRejected is shown for 4xx answers of the sync server.
	MsgServerRejected = "the sync server rejected the request"

	// MsgUnexpectedResponse is shown when a server reply cannot be decoded.
	MsgUnexpectedResponse = "the sync server sent an unexpected response"
)

// Describe turns err into a message for the terminal, keeping the error text
// for anything it does not recognise.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNoUserID):
		return MsgNoUserID
	case errors.Is(err, adapter.ErrAnkiConnection):
		return MsgAnkiNotRunning
	case errors.Is(err, adapter.ErrAnkiResponse):
		return MsgAnkiRejected + ": " + err.Error()
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return MsgServerUnavailable
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrUnprocessable),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return MsgServerRejected + ": " + err.Error()
	case errors.Is(err, adapter.ErrDecodingResponse):
		return MsgUnexpectedResponse
	default:
		return err.Error()
	}
}
