// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const defaultAnkiConnectURL = "http://127.0.0.1:8765"

// ClientAdapter holds the sync server address used by the puller.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientAnki holds the local AnkiConnect endpoint cards are imported into.
type ClientAnki struct {
	URL string
}

// ClientWorkers contains the puller's background job settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the desktop puller's view of [StructuredConfig].
type ClientConfig struct {
	UserID  string
	LogFile string
	Adapter ClientAdapter
	Anki    ClientAnki
	Workers ClientWorkers
}

// GetClientConfig builds and validates the puller configuration. overrides
// carries values bound to command-line flags and takes precedence over the
// environment.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withConfig(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	ankiURL := cfg.Export.AnkiConnectURL
	if ankiURL == "" {
		ankiURL = defaultAnkiConnectURL
	}

	clientCfg := &ClientConfig{
		UserID:  cfg.App.UserID,
		LogFile: cfg.App.LogFile,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Anki:    ClientAnki{URL: ankiURL},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
