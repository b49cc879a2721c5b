// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs for as long as a context lives.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled and the job
// has released its resources.
type Worker interface {
	Run(ctx context.Context)
}
