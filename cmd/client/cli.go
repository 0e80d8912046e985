// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-grocery-sync/internal/adapter"
	"github.com/MKhiriev/go-grocery-sync/internal/app"
	"github.com/MKhiriev/go-grocery-sync/internal/client"
	"github.com/MKhiriev/go-grocery-sync/internal/config"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/service"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
)

// cli carries what every command needs besides its flags.
type cli struct {
	build  models.BuildInfo
	stdin  io.Reader
	stdout io.Writer
}

func newCLI(build models.BuildInfo, stdin io.Reader, stdout io.Writer) *cli {
	return &cli{build: build, stdin: stdin, stdout: stdout}
}

// exitError ends the process with code. err, when set, is printed first.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// withApp loads the configuration from cmd's flags, opens the client and
// hands it to fn.
func (c *cli) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *client.App) error) error {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewClientLogger("grocery-cli", cfg.Log)
	log.Debug().Str("func", "cli.withApp").Str("command", cmd.CommandPath()).Msg("command started")

	ctx := cmd.Context()
	a, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("func", "cli.withApp").Msg("error creating client app")
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "cli.withApp").Msg("error closing client app")
		}
	}()

	return describe(fn(ctx, a))
}

func (c *cli) println(a ...any) {
	fmt.Fprintln(c.stdout, a...)
}

func (c *cli) printf(format string, a ...any) {
	fmt.Fprintf(c.stdout, format, a...)
}

// describe replaces errors the user can act on with a readable message,
// keeping the original matchable.
func describe(err error) error {
	var msg string
	switch {
	case err == nil:
		return nil
	case errors.Is(err, client.ErrNotSignedIn), errors.Is(err, service.ErrNotAuthenticated):
		msg = app.MsgNotSignedIn
	case errors.Is(err, service.ErrSessionInvalidated):
		msg = app.MsgSessionExpired
	case errors.Is(err, service.ErrInvalidDataProvided):
		msg = app.MsgInvalidDataProvided
	case errors.Is(err, store.ErrNotFound):
		msg = app.MsgDataNotFound
	case errors.Is(err, adapter.ErrUnauthorized):
		msg = app.MsgInvalidLoginPassword
	default:
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an id", service.ErrInvalidDataProvided, raw)
	}
	return id, nil
}

func parseIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
