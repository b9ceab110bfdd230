// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the stored custom benchmark URL",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the custom benchmark URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.openPrefs()
			if err != nil {
				return err
			}
			defer db.Close()
			u, err := db.CustomURL(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}, &cobra.Command{
		Use:   "set url",
		Short: "Replace the custom benchmark URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.openPrefs()
			if err != nil {
				return err
			}
			defer db.Close()
			return db.SetCustomURL(cmd.Context(), args[0])
		},
	})
	return cmd
}
