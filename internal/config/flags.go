package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by every command of the client.
const (
	FlagConfig         = "config"
	FlagServer         = "server"
	FlagDB             = "db"
	FlagSessionFile    = "session-file"
	FlagSessionKey     = "session-key"
	FlagRequestTimeout = "request-timeout"
	FlagSyncInterval   = "sync-interval"
	FlagRetryMin       = "retry-min"
	FlagRetryMax       = "retry-max"
	FlagPhaseDelay     = "phase-delay"
	FlagLogFile        = "log-file"
	FlagLogLevel       = "log-level"
)

// RegisterFlags declares all configuration flags on fs.
//
// Flags:
//
//	-c/--config          json file path with configs
//	-s/--server          sync server address (URL or host:port)
//	-d/--db              local database DSN
//	--session-file       sealed session file path
//	--session-key        passphrase the session file is sealed with
//	--request-timeout    request timeout (e.g., "15s")
//	--sync-interval      period between background syncs (e.g., "15m")
//	--retry-min          first retry backoff (e.g., "30s")
//	--retry-max          backoff cap (e.g., "15m")
//	--phase-delay        pause between two-phase sync phases (e.g., "200ms", "0" turns it off)
//	--log-file           rotating log file path
//	--log-level          log level (debug, info, warn, error)
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.StringP(FlagServer, "s", "", "Sync server address")
	fs.StringP(FlagDB, "d", "", "Local database DSN")
	fs.String(FlagSessionFile, "", "Sealed session file path")
	fs.String(FlagSessionKey, "", "Session sealing passphrase")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 15s)")
	fs.Duration(FlagSyncInterval, 0, "Background sync interval (e.g., 15m)")
	fs.Duration(FlagRetryMin, 0, "First retry backoff (e.g., 30s)")
	fs.Duration(FlagRetryMax, 0, "Retry backoff cap (e.g., 15m)")
	fs.Duration(FlagPhaseDelay, 0, "Pause between sync phases (e.g., 200ms), 0 disables it")
	fs.String(FlagLogFile, "", "Log file path")
	fs.String(FlagLogLevel, "", "Log level")
}

// parseFlags builds a config out of the flags that were explicitly set.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	strs := map[string]*string{
		FlagConfig:      &cfg.JSONFilePath,
		FlagServer:      &cfg.Adapter.HTTPAddress,
		FlagDB:          &cfg.Storage.DB.DSN,
		FlagSessionFile: &cfg.Storage.Session.Path,
		FlagSessionKey:  &cfg.App.SessionKey,
		FlagLogFile:     &cfg.Log.Path,
		FlagLogLevel:    &cfg.Log.Level,
	}
	for name, dst := range strs {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		*dst = v
	}

	durations := map[string]*time.Duration{
		FlagRequestTimeout: &cfg.Adapter.RequestTimeout,
		FlagSyncInterval:   &cfg.Workers.SyncInterval,
		FlagRetryMin:       &cfg.Workers.RetryMin,
		FlagRetryMax:       &cfg.Workers.RetryMax,
		FlagPhaseDelay:     &cfg.Workers.PhaseDelay,
	}
	for name, dst := range durations {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetDuration(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		if name == FlagPhaseDelay && v == 0 {
			v = PhaseDelayDisabled
		}
		*dst = v
	}

	return cfg, nil
}
