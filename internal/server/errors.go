// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoSyncAPIHandler = errors.New("flashcard sync api handler is missing")
	errNoListenAddress  = errors.New("http listen address is empty")
)
