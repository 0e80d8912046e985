// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-grocery-sync/internal/config"
)

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "grocery",
		Short: "Offline-first shopping lists synchronised with a grocery server",
		Long: `grocery keeps shopping lists, items and stores in a local database and
synchronises them with the server whenever a connection is available.

Every change is applied locally first. Use "grocery sync" to push and pull
once, or "grocery run" to keep a background sync going.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       c.build.Version,
	}
	root.SetOut(c.stdout)
	root.SetIn(c.stdin)

	config.RegisterFlags(root.PersistentFlags())

	root.AddGroup(
		&cobra.Group{ID: "sync", Title: "Account and sync:"},
		&cobra.Group{ID: "data", Title: "Shopping data:"},
	)

	for _, cmd := range []*cobra.Command{
		newLoginCmd(c),
		newLogoutCmd(c),
		newSyncCmd(c),
		newRunCmd(c),
		newStatusCmd(c),
	} {
		cmd.GroupID = "sync"
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		newListCmd(c),
		newItemCmd(c),
		newStoreCmd(c),
	} {
		cmd.GroupID = "data"
		root.AddCommand(cmd)
	}
	root.AddCommand(newVersionCmd(c))

	return root
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.println(c.build.String())
		},
	}
}
