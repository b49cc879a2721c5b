// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the puller:
// JSON response writing, the resty client wrapper, id generation, trace-id
// context keys and text truncation.
package utils
