package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-grocery-sync/internal/app"
	"github.com/MKhiriev/go-grocery-sync/internal/client"
	"github.com/MKhiriev/go-grocery-sync/internal/service"
)

func newLoginCmd(c *cli) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the sync server",
		Example: `  # Password from a flag
  grocery login -u alice -p secret

  # Password from stdin
  echo secret | grocery login -u alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := readLine(c)
				if err != nil {
					return err
				}
				password = p
			}
			if strings.TrimSpace(username) == "" || password == "" {
				return describe(fmt.Errorf("%w: username and password are required", service.ErrInvalidDataProvided))
			}

			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				if err := a.Services().AuthService.SignIn(ctx, username, password); err != nil {
					return err
				}
				c.println(fmt.Sprintf(app.MsgSignedIn, username))
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&username, "username", "u", "", "Account name")
	f.StringVarP(&password, "password", "p", "", "Account password, read from stdin when empty")

	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session, local data is kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				if err := a.Services().AuthService.Logout(ctx); err != nil {
					return err
				}
				c.println(app.MsgSignedOut)
				return nil
			})
		},
	}
}

func readLine(c *cli) (string, error) {
	sc := bufio.NewScanner(c.stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", nil
	}
	return strings.TrimRight(sc.Text(), "\r\n"), nil
}
