// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// ErrValidation wraps every error returned by a [Validator], so callers can
// treat any of the specific errors below as a validation failure.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("user_id must not be empty")
	ErrEmptyFront         = errors.New("front must not be empty")
	ErrEmptyBack          = errors.New("back must not be empty")
	ErrInvalidDifficulty  = errors.New("difficulty must be one of easy, medium, hard")
	ErrFieldTooLong       = errors.New("field is too long")
	ErrInvalidSourceURL   = errors.New("invalid source url")
	ErrEmptyBatch         = errors.New("batch must contain between 1 and 500 flashcards")
	ErrEmptyText          = errors.New("text must not be empty")
	ErrInvalidCardCount   = errors.New("card_count must be between 1 and 50")
	ErrEmptyConversation  = errors.New("conversation must not be empty")
	ErrInvalidChatMessage = errors.New("invalid chat message")
	ErrInvalidDestination = errors.New("destination must be anki or notion")
)
