// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrGeneratorNotConfigured = errors.New("flashcard generator is not configured")
	ErrNoFlashcardsGenerated  = errors.New("no flashcards were generated")

	ErrUnknownDestination = errors.New("unknown export destination")
	ErrNoExportersEnabled = errors.New("no export destination is configured")

	ErrNoUserID = errors.New("user id is not configured")
)
