package config

import "time"

// Built-in defaults applied before any other source.
const (
	DefaultDSN            = "grocery.db"
	DefaultSessionPath    = "session.sealed"
	DefaultRequestTimeout = 15 * time.Second
	DefaultSyncInterval   = 15 * time.Minute
	DefaultRetryMin       = 30 * time.Second
	DefaultRetryMax       = 15 * time.Minute
	DefaultPhaseDelay     = 200 * time.Millisecond
	DefaultLogLevel       = "info"
)

// PhaseDelayDisabled turns the pause between sync phases off. Zero cannot
// be used for that: merging treats it as "not set" and keeps the default.
const PhaseDelayDisabled time.Duration = -1

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:      DB{DSN: DefaultDSN},
			Session: Session{Path: DefaultSessionPath},
		},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
			RetryMin:     DefaultRetryMin,
			RetryMax:     DefaultRetryMax,
			PhaseDelay:   DefaultPhaseDelay,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
