// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcardStatus_Valid(t *testing.T) {
	for _, s := range FlashcardStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, FlashcardStatus("archived").Valid())
	assert.False(t, FlashcardStatus("").Valid())
}

func TestFlashcardStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusSynced.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestFlashcardStatus_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    FlashcardStatus
		wantErr bool
	}{
		{name: "string", src: "pending", want: StatusPending},
		{name: "bytes", src: []byte("synced"), want: StatusSynced},
		{name: "unknown value", src: "archived", wantErr: true},
		{name: "null", src: nil, wantErr: true},
		{name: "wrong type", src: int64(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s FlashcardStatus
			err := s.Scan(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestFlashcardStatus_Value(t *testing.T) {
	v, err := StatusFailed.Value()
	require.NoError(t, err)
	assert.Equal(t, "failed", v)

	_, err = FlashcardStatus("bogus").Value()
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestFlashcardStatus_UnmarshalJSON(t *testing.T) {
	var card Flashcard
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"status":"synced"}`), &card))
	assert.Equal(t, StatusSynced, card.Status)

	err := json.Unmarshal([]byte(`{"id":1,"status":"done"}`), &card)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestBatchStatus_ScanAndValue(t *testing.T) {
	var s BatchStatus
	require.NoError(t, s.Scan("completed"))
	assert.Equal(t, BatchCompleted, s)

	assert.Error(t, s.Scan("done"))

	v, err := BatchProcessing.Value()
	require.NoError(t, err)
	assert.Equal(t, "processing", v)
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.2.0")
}

func TestExportCardsFromGenerated(t *testing.T) {
	got := ExportCardsFromGenerated([]GeneratedCard{{Front: "Q", Back: "A", Topic: "Go"}})
	require.Len(t, got, 1)
	assert.Equal(t, ExportCard{Question: "Q", Answer: "A", Topic: "Go"}, got[0])
}
