// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the sync
// server ([GetStructuredConfig]) and the desktop puller ([GetClientConfig]).
//
// Layers, highest precedence first: environment (after loading an optional
// .env file), command-line flags, the JSON file named by CONFIG / -c, and
// built-in defaults.
package config
