// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFlashcardNotFound is returned when a query targets a flashcard id
	// that does not exist.
	ErrFlashcardNotFound = errors.New("flashcard was not found")

	// ErrFlashcardNotSaved is returned when an INSERT completes without error
	// but no id was returned.
	ErrFlashcardNotSaved = errors.New("flashcard was not saved")

	// ErrBatchNotFound is returned when a batch token does not match any
	// batch row, or the batch was already completed.
	ErrBatchNotFound = errors.New("flashcard batch was not found")

	// ErrInvalidStatusTransition is returned when a conditional status update
	// matched no row because the flashcard is already in a terminal state
	// that the requested transition cannot leave.
	ErrInvalidStatusTransition = errors.New("invalid flashcard status transition")

	// ErrUnknownDriver is returned by [NewStorages] for a driver other than
	// postgres or sqlite.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
