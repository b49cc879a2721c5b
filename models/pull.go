// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PullReport summarises a single pull run of the desktop client.
type PullReport struct {
	Fetched  int   `json:"fetched"`
	Imported int   `json:"imported"`
	Synced   int64 `json:"synced"`
	Failed   int   `json:"failed"`
}
