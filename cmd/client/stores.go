package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-grocery-sync/internal/client"
	"github.com/MKhiriev/go-grocery-sync/models"
)

func newStoreCmd(c *cli) *cobra.Command {
	ls := func(cmd *cobra.Command, args []string) error {
		return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
			stores, err := a.Services().ShoppingService.GetStores(ctx)
			if err != nil {
				return err
			}
			c.println(client.RenderStores(stores))
			return nil
		})
	}

	cmd := &cobra.Command{
		Use:     "store",
		Aliases: []string{"stores", "s"},
		Short:   "Manage store locations",
		Args:    cobra.NoArgs,
		RunE:    ls,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "ls",
			Short: "Show all stores",
			Args:  cobra.NoArgs,
			RunE:  ls,
		},
		newStoreAddCmd(c),
		&cobra.Command{
			Use:     "rm ID",
			Aliases: []string{"delete"},
			Short:   "Delete a store",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return describe(err)
				}
				return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
					return a.Services().ShoppingService.DeleteStore(ctx, id)
				})
			},
		},
	)

	return cmd
}

func newStoreAddCmd(c *cli) *cobra.Command {
	var loc models.StoreLocation

	cmd := &cobra.Command{
		Use:     "add NAME...",
		Short:   "Add a store",
		Example: `  grocery store add Corner Shop --address "1 Main St" --lat 52.52 --lon 13.405`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc.Name = strings.Join(args, " ")
			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				s, err := a.Services().ShoppingService.AddStore(ctx, loc)
				if err != nil {
					return err
				}
				c.printf("added store %d\n", s.ID)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&loc.Address, "address", "", "Street address")
	f.Float64Var(&loc.Latitude, "lat", 0, "Latitude")
	f.Float64Var(&loc.Longitude, "lon", 0, "Longitude")
	f.StringVar(&loc.GeofenceID, "geofence", "", "Device geofence registration id")

	return cmd
}
