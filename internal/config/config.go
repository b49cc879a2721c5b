// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration shared by the sync server
// and the desktop puller. It is populated by merging a .env file, environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	// Generator configures the LLM used by the web-capture generation path.
	// Generation endpoints are disabled when APIKey is empty.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Export configures the non-authoritative Anki and Notion sinks.
	Export Export `envPrefix:"EXPORT_"`

	// Adapter is used by the desktop puller to reach the sync server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// UserID is the identity the desktop puller pulls flashcards for.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// LogFile is the rotated log file of the desktop puller.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is either "postgres" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is a PostgreSQL connection string or a SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds inbound transport settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSOrigins lists origins allowed to call the API from a browser,
	// e.g. the capture extension.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Generator holds OpenRouter chat-completion settings.
type Generator struct {
	// Env: GENERATOR_URL
	URL string `env:"URL"`
	// Env: GENERATOR_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: GENERATOR_MODEL
	Model string `env:"MODEL"`
	// Env: GENERATOR_MAX_TOKENS
	MaxTokens int `env:"MAX_TOKENS"`
	// Env: GENERATOR_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Export holds settings of the export sinks. A sink with an empty address
// or key is not registered.
type Export struct {
	// Env: EXPORT_ANKI_CONNECT_URL
	AnkiConnectURL string `env:"ANKI_CONNECT_URL"`
	// Env: EXPORT_NOTION_API_KEY
	NotionAPIKey string `env:"NOTION_API_KEY"`
	// Env: EXPORT_NOTION_PARENT_PAGE_ID
	NotionParentPageID string `env:"NOTION_PARENT_PAGE_ID"`
	// Env: EXPORT_NOTION_URL
	NotionURL string `env:"NOTION_URL"`
	// Env: EXPORT_NOTION_VERSION
	NotionVersion string `env:"NOTION_VERSION"`
	// Env: EXPORT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Adapter holds the address of the sync server as seen by the puller.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the pull period of the puller's watch mode.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// For each field the first non-zero value wins, in this order:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding set variables)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
