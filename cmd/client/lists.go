package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-grocery-sync/internal/client"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
)

func newListCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"lists", "l"},
		Short:   "Manage shopping lists",
		Args:    cobra.NoArgs,
		RunE:    listLs(c),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "ls",
			Short: "Show all lists",
			Args:  cobra.NoArgs,
			RunE:  listLs(c),
		},
		&cobra.Command{
			Use:     "add NAME...",
			Short:   "Create a list",
			Example: "  grocery list add Weekend BBQ",
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
					l, err := a.Services().ShoppingService.CreateList(ctx, strings.Join(args, " "))
					if err != nil {
						return err
					}
					c.printf("created list %d\n", l.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rename ID NAME...",
			Short: "Rename a list",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return describe(err)
				}
				return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
					return a.Services().ShoppingService.RenameList(ctx, id, strings.Join(args[1:], " "))
				})
			},
		},
		&cobra.Command{
			Use:     "rm ID",
			Aliases: []string{"delete"},
			Short:   "Delete a list with all its items",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return describe(err)
				}
				return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
					return a.Services().ShoppingService.DeleteList(ctx, id)
				})
			},
		},
		newListShowCmd(c),
	)

	return cmd
}

func newListShowCmd(c *cli) *cobra.Command {
	var sortMode string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show the items of a list",
		Example: `  grocery list show 3
  grocery list show 3 --sort quantity`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return describe(err)
			}
			return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
				shopping := a.Services().ShoppingService

				list, err := findList(ctx, a, id)
				if err != nil {
					return err
				}
				items, err := shopping.GetItems(ctx, id, models.ParseSortMode(sortMode))
				if err != nil {
					return err
				}
				c.println(client.RenderItems(list, items))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sortMode, "sort", string(models.SortCustom), "Item order: custom, date, quantity or checked")

	return cmd
}

func listLs(c *cli) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return c.withApp(cmd, func(ctx context.Context, a *client.App) error {
			lists, err := a.Services().ShoppingService.GetLists(ctx)
			if err != nil {
				return err
			}
			c.println(client.RenderLists(lists))
			return nil
		})
	}
}

func findList(ctx context.Context, a *client.App, id int64) (models.ShoppingList, error) {
	lists, err := a.Services().ShoppingService.GetLists(ctx)
	if err != nil {
		return models.ShoppingList{}, err
	}
	for _, l := range lists {
		if l.ID == id {
			return l, nil
		}
	}
	return models.ShoppingList{}, fmt.Errorf("list %d: %w", id, store.ErrNotFound)
}
