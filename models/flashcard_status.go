// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownStatus is returned when a status value read from the database or
// decoded from JSON does not belong to the closed set of known statuses.
var ErrUnknownStatus = errors.New("unknown status")

// FlashcardStatus is the lifecycle state of a single flashcard.
//
// Transitions are forward-only: pending -> synced and pending -> failed.
// Both synced and failed are terminal.
type FlashcardStatus string

const (
	// StatusPending marks a flashcard created but not yet confirmed by a client.
	StatusPending FlashcardStatus = "pending"
	// StatusSynced marks a flashcard confirmed as imported by the desktop client.
	StatusSynced FlashcardStatus = "synced"
	// StatusFailed marks a flashcard that will never be imported.
	StatusFailed FlashcardStatus = "failed"
)

// FlashcardStatuses lists every known flashcard status in a stable order.
var FlashcardStatuses = []FlashcardStatus{StatusPending, StatusSynced, StatusFailed}

// Valid reports whether s is one of the known statuses.
func (s FlashcardStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSynced, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s FlashcardStatus) Terminal() bool {
	return s == StatusSynced || s == StatusFailed
}

func (s FlashcardStatus) String() string {
	return string(s)
}

// Value implements driver.Valuer.
func (s FlashcardStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return string(s), nil
}

// Scan implements sql.Scanner.
func (s *FlashcardStatus) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	status := FlashcardStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	*s = status
	return nil
}

// UnmarshalJSON rejects values outside of the closed status set.
func (s *FlashcardStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	status := FlashcardStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	*s = status
	return nil
}

// BatchStatus is the bookkeeping state of a flashcard batch.
type BatchStatus string

const (
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
)

// Valid reports whether s is one of the known batch statuses.
func (s BatchStatus) Valid() bool {
	switch s {
	case BatchProcessing, BatchCompleted, BatchFailed:
		return true
	}
	return false
}

// Value implements driver.Valuer.
func (s BatchStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return string(s), nil
}

// Scan implements sql.Scanner.
func (s *BatchStatus) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	status := BatchStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	*s = status
	return nil
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("%w: NULL", ErrUnknownStatus)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrUnknownStatus, src)
	}
}
