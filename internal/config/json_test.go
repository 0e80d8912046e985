package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "session_key": "secret", "version": "0.9.0" },
		"storage": {
			"db": { "dsn": "/data/grocery.db" },
			"session": { "path": "/data/session.sealed" }
		},
		"adapter": { "http_address": "https://sync.example.com", "request_timeout": "45s" },
		"workers": {
			"sync_interval": "30m",
			"retry_min": "1m",
			"retry_max": "1h",
			"phase_delay": "500ms"
		},
		"log": { "path": "/data/grocery.log", "level": "error" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "secret", cfg.App.SessionKey)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "/data/grocery.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/session.sealed", cfg.Storage.Session.Path)
	assert.Equal(t, "https://sync.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, time.Minute, cfg.Workers.RetryMin)
	assert.Equal(t, time.Hour, cfg.Workers.RetryMax)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.PhaseDelay)
	assert.Equal(t, "/data/grocery.log", cfg.Log.Path)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000000`, want: time.Millisecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
