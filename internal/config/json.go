// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		UserID  string `json:"user_id"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		CORSOrigins     []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Generator struct {
		URL       string   `json:"url"`
		APIKey    string   `json:"api_key"`
		Model     string   `json:"model"`
		MaxTokens int      `json:"max_tokens"`
		Timeout   Duration `json:"timeout"`
	} `json:"generator,omitempty"`

	Export struct {
		AnkiConnectURL     string   `json:"anki_connect_url"`
		NotionAPIKey       string   `json:"notion_api_key"`
		NotionParentPageID string   `json:"notion_parent_page_id"`
		NotionURL          string   `json:"notion_url"`
		NotionVersion      string   `json:"notion_version"`
		Timeout            Duration `json:"timeout"`
	} `json:"export,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			UserID:  jsonCfg.App.UserID,
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSOrigins:     jsonCfg.Server.CORSOrigins,
		},
		Generator: Generator{
			URL:       jsonCfg.Generator.URL,
			APIKey:    jsonCfg.Generator.APIKey,
			Model:     jsonCfg.Generator.Model,
			MaxTokens: jsonCfg.Generator.MaxTokens,
			Timeout:   time.Duration(jsonCfg.Generator.Timeout),
		},
		Export: Export{
			AnkiConnectURL:     jsonCfg.Export.AnkiConnectURL,
			NotionAPIKey:       jsonCfg.Export.NotionAPIKey,
			NotionParentPageID: jsonCfg.Export.NotionParentPageID,
			NotionURL:          jsonCfg.Export.NotionURL,
			NotionVersion:      jsonCfg.Export.NotionVersion,
			Timeout:            time.Duration(jsonCfg.Export.Timeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration so JSON may carry either "30s" strings or
// integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
