// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request models before they reach the
// lifecycle service. Every failure wraps [ErrValidation] and one of the
// field-specific sentinels, so callers can match with errors.Is.
package validators

import "context"

// Validator validates a value, optionally restricted to the named struct
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
