// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/uibench/resultview/internal/tui"
	"github.com/uibench/resultview/report"
)

func (c *cli) tuiCmd() *cobra.Command {
	var (
		server   string
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "tui [--server url] [file...]",
		Short: "Browse reports in the terminal",
		Long: `Tui shows the comparison table of the given JSON exports in the
terminal. With --server, it follows a running viewer instead,
refreshing the table every --interval.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if server == "" && len(args) == 0 {
				return errors.New("need JSON export files or --server")
			}
			st, err := loadReports(args)
			if err != nil {
				return err
			}
			var load tui.Loader
			if server != "" {
				load = remoteLoader(http.DefaultClient, server)
			}
			return tui.Run(tui.New(st.Reports(), load, interval))
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "follow the viewer at `url`")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "refresh `interval` with --server")
	return cmd
}

// remoteLoader returns a loader fetching the JSON export of the
// viewer at base.
func remoteLoader(client *http.Client, base string) tui.Loader {
	u := strings.TrimSuffix(base, "/") + "/export.json"
	return func(ctx context.Context) ([]*report.Report, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("%s: %s", u, resp.Status)
		}
		return report.Read(resp.Body, u)
	}
}
