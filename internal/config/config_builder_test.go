// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierLayerWins(t *testing.T) {
	cfg, err := newConfigBuilder().
		withConfig(&StructuredConfig{App: App{Version: "from-env"}}).
		withConfig(&StructuredConfig{App: App{Version: "from-json", UserID: "u1"}}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "u1", cfg.App.UserID)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestWithConfig_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withConfig(nil)
	assert.Empty(t, b.configs)
}

func TestWithJSON_UsesPathFromEarlierLayer(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"user_id": "json-user"}}`), 0o600))

	cfg, err := newConfigBuilder().
		withConfig(&StructuredConfig{JSONFilePath: p}).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "json-user", cfg.App.UserID)
}

func TestWithJSON_MissingFileIsAnError(t *testing.T) {
	_, err := newConfigBuilder().
		withConfig(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")}).
		withJSON().
		build()
	assert.Error(t, err)
}

func TestWithDotEnv_LoadsVariablesWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(p, []byte("CARD_SYNC_APP_USER_ID=dotenv-user\nCARD_SYNC_APP_VERSION=dotenv\n"), 0o600))

	t.Setenv("CARD_SYNC_APP_VERSION", "real-env")
	// registers a restore for the variable the .env file sets
	t.Setenv("CARD_SYNC_APP_USER_ID", "")
	require.NoError(t, os.Unsetenv("CARD_SYNC_APP_USER_ID"))

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "dotenv-user", os.Getenv("CARD_SYNC_APP_USER_ID"))
	assert.Equal(t, "real-env", os.Getenv("CARD_SYNC_APP_VERSION"))
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *StructuredConfig) {}},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = " " }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "notion without page", mutate: func(c *StructuredConfig) { c.Export.NotionAPIKey = "k" }, wantErr: ErrInvalidExportConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_OverridesAndDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CARD_SYNC_ADAPTER_ADDRESS", "cards.example.com:443")

	cfg, err := GetClientConfig(&StructuredConfig{App: App{UserID: "u1"}})
	require.NoError(t, err)

	assert.Equal(t, "u1", cfg.UserID)
	assert.Equal(t, "cards.example.com:443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultAnkiConnectURL, cfg.Anki.URL)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestGetClientConfig_RequiresUserID(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
