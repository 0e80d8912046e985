// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SESSION_KEY": "session_secret",
		"APP_VERSION":     "1.2.3",

		"STORAGE_DB_DATABASE_URI": "/var/lib/grocery/grocery.db",
		"STORAGE_SESSION_PATH":    "/var/lib/grocery/session.sealed",

		"ADAPTER_ADDRESS":         "https://sync.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"WORKERS_SYNC_INTERVAL": "10m",
		"WORKERS_RETRY_MIN":     "5s",
		"WORKERS_RETRY_MAX":     "1m",
		"WORKERS_PHASE_DELAY":   "-1s",

		"LOG_PATH":  "/var/log/grocery.log",
		"LOG_LEVEL": "debug",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "session_secret", cfg.App.SessionKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/lib/grocery/grocery.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/grocery/session.sealed", cfg.Storage.Session.Path)
	assert.Equal(t, "https://sync.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Second, cfg.Workers.RetryMin)
	assert.Equal(t, time.Minute, cfg.Workers.RetryMax)
	assert.Equal(t, -time.Second, cfg.Workers.PhaseDelay)
	assert.Equal(t, "/var/log/grocery.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg, err := parseEnv()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_SYNC_INTERVAL": "often"})

	_, err := parseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_SESSION_KEY",
		"APP_VERSION",
		"STORAGE_DB_DATABASE_URI",
		"STORAGE_SESSION_PATH",
		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"WORKERS_SYNC_INTERVAL",
		"WORKERS_RETRY_MIN",
		"WORKERS_RETRY_MAX",
		"WORKERS_PHASE_DELAY",
		"LOG_PATH",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		// t.Setenv registers the restore, Unsetenv drops the value for the test
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
