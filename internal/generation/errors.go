// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generation

import "errors"

var (
	// ErrGenerationFailed wraps every transport or upstream failure of the
	// model provider.
	ErrGenerationFailed = errors.New("flashcard generation failed")

	// ErrMalformedCompletion is returned when the assistant reply holds no
	// parseable flashcard JSON.
	ErrMalformedCompletion = errors.New("malformed completion")

	ErrMissingAPIKey = errors.New("generator api key is not configured")
)
