// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the session sealing key and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local database and session file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the sync server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background sync schedule.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionKey is the passphrase the session file is sealed with.
	// Must be kept confidential.
	// Env: APP_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Session holds the sealed session file settings.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or "file:" URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session holds the location of the persisted session.
type Session struct {
	// Path is the file the sealed session (tokens, watermark) is written to.
	// Env: STORAGE_SESSION_PATH
	Path string `env:"PATH"`
}

// Adapter holds settings for the sync server transport.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server. A bare host:port is
	// treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sync job.
type Workers struct {
	// SyncInterval is the period between scheduled sync attempts.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RetryMin is the first backoff delay after a retryable failure.
	// Env: WORKERS_RETRY_MIN
	RetryMin time.Duration `env:"RETRY_MIN"`

	// RetryMax caps the exponential backoff.
	// Env: WORKERS_RETRY_MAX
	RetryMax time.Duration `env:"RETRY_MAX"`

	// PhaseDelay is the pause between the two phases of a two-phase sync.
	// A negative value disables the pause; zero means "use the default".
	// Env: WORKERS_PHASE_DELAY
	PhaseDelay time.Duration `env:"PHASE_DELAY"`
}

// Log holds logger settings.
type Log struct {
	// Path is the rotating log file. Empty means stdout.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}
