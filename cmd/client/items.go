package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-grocery-sync/internal/client"
	"github.com/MKhiriev/go-grocery-sync/models"
)

func newItemCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items", "i"},
		Short:   "Manage the items of a list",
	}

	cmd.AddCommand(
		newItemAddCmd(c),
		newItemCheckCmd(c, "check", "Mark an item as bought", true),
		newItemCheckCmd(c, "uncheck", "Mark an item as not bought yet", false),
		&cobra.Command{
			Use:     "rm ID",
			Aliases: []string{"delete"},
			Short:   "Delete an item",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return describe(err)
				}
				return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
					return a.Services().ShoppingService.DeleteItem(ctx, id)
				})
			},
		},
		&cobra.Command{
			Use:     "reorder LIST_ID ITEM_ID...",
			Short:   "Set the custom order of a list",
			Example: "  grocery item reorder 3 12 10 11",
			Args:    cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return describe(err)
				}
				return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
					return a.Services().ShoppingService.ReorderItems(ctx, ids[0], ids[1:])
				})
			},
		},
	)

	return cmd
}

func newItemAddCmd(c *cli) *cobra.Command {
	var (
		quantity float64
		unit     string
	)

	cmd := &cobra.Command{
		Use:     "add LIST_ID NAME...",
		Short:   "Add an item to a list",
		Example: "  grocery item add 3 Milk --qty 2 --unit l",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID(args[0])
			if err != nil {
				return describe(err)
			}
			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				it, err := a.Services().ShoppingService.AddItem(ctx, models.ShoppingItem{
					ListID:   listID,
					Name:     strings.Join(args[1:], " "),
					Quantity: quantity,
					UnitType: unit,
				})
				if err != nil {
					return err
				}
				c.printf("added item %d\n", it.ID)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&quantity, "qty", "q", 1, "Quantity")
	f.StringVarP(&unit, "unit", "u", "", "Unit, e.g. kg or pcs")

	return cmd
}

func newItemCheckCmd(c *cli, use, short string, checked bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return describe(err)
			}
			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				for _, id := range ids {
					if err := a.Services().ShoppingService.SetItemChecked(ctx, id, checked); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
