package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-grocery-sync/internal/app"
	"github.com/MKhiriev/go-grocery-sync/internal/client"
	"github.com/MKhiriev/go-grocery-sync/internal/service"
	"github.com/MKhiriev/go-grocery-sync/models"
)

func newSyncCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Synchronise once and exit",
		Long: `Runs a single synchronisation.

Exit codes:
  0  success
  1  failed, will succeed on a later attempt (network, server, timeout)
  2  failed, needs user action (sign in again)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				res := a.SyncOnce(ctx)
				c.println(client.RenderResult(res))

				switch res.Outcome {
				case models.OutcomeSuccess:
					return nil
				case models.OutcomeFatal:
					if errors.Is(res.Err, service.ErrNotAuthenticated) {
						c.println(app.MsgNotSignedIn)
					} else {
						c.println(app.MsgSessionExpired)
					}
				default:
					c.println(app.MsgSyncWillRetry)
				}
				return &exitError{code: app.ExitCode(res.Outcome)}
			})
		},
	}
}

func newRunCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Keep synchronising in the background until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				c.println(app.MsgBackgroundSyncStarted)
				return a.Run(ctx)
			})
		},
	}
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session and what the next sync would send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				st, err := a.Status(ctx)
				if err != nil {
					return err
				}
				c.println(client.RenderStatus(st))
				return nil
			})
		},
	}
}
