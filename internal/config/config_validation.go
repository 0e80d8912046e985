// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// maxPhaseDelay bounds the pause between sync phases.
const maxPhaseDelay = 5 * time.Second

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Session.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.SyncInterval <= 0 || w.RetryMin <= 0 || w.RetryMax < w.RetryMin || w.PhaseDelay > maxPhaseDelay {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SessionKey == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
