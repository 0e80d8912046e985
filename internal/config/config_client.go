package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SessionKey seals the persisted session.
	SessionKey string
	// Version is reported by the CLI.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientSession contains the session persistence settings.
type ClientSession struct {
	// Path is the sealed session file.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB      ClientDB
	Session ClientSession
}

// ClientWorkers contains background sync job settings.
type ClientWorkers struct {
	SyncInterval time.Duration
	RetryMin     time.Duration
	RetryMax     time.Duration
	PhaseDelay   time.Duration
}

// ClientLog contains logger settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetStructuredConfig loads and merges the configuration from defaults,
// environment variables, the flags set on fs and the JSON file named by
// either of them. fs may be nil.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig builds and validates the client config view.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.toClientConfig()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) toClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SessionKey: cfg.App.SessionKey,
			Version:    cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			Session: ClientSession{Path: cfg.Storage.Session.Path},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			RetryMin:     cfg.Workers.RetryMin,
			RetryMax:     cfg.Workers.RetryMax,
			PhaseDelay:   cfg.Workers.PhaseDelay,
		},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}
}
