// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import "errors"

var (
	ErrNoCards             = errors.New("no cards to export")
	ErrExportFailed        = errors.New("export failed")
	ErrNotionRequest       = errors.New("notion request failed")
	ErrNotionNotConfigured = errors.New("notion api key and parent page id are required")
)
