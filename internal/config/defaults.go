// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "1.0.0",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverSQLite,
				DSN:          "card-sync.db",
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"chrome-extension://*", "moz-extension://*", "http://localhost:*"},
		},
		Generator: Generator{
			URL:       "https://openrouter.ai/api/v1",
			Model:     "openai/gpt-4o-mini",
			MaxTokens: 2000,
			Timeout:   60 * time.Second,
		},
		Export: Export{
			NotionURL:     "https://api.notion.com",
			NotionVersion: "2022-06-28",
			Timeout:       15 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
	}
}
