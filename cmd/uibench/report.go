// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/uibench/resultview/benchtab"
	"github.com/uibench/resultview/chart"
	"github.com/uibench/resultview/htmlreport"
	"github.com/uibench/resultview/report"
	"github.com/uibench/resultview/store"
)

// withOutput calls f with the named file, or with def if name is
// empty. The file is closed afterwards and its close error reported.
func withOutput(name string, def io.Writer, f func(w io.Writer) error) (err error) {
	if name == "" {
		return f(def)
	}
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return f(out)
}

func (c *cli) reportCmd() *cobra.Command {
	var (
		format    string
		filter    string
		userAgent string
		output    string
		color     bool
	)
	cmd := &cobra.Command{
		Use:   "report [flags] file...",
		Short: "Render JSON exports as a comparison table",
		Long: `Report merges the reports of the given JSON exports and renders
them as a comparison table: plain text, the static HTML document the
viewer exports, or the merged JSON export.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadReports(args)
			if err != nil {
				return err
			}
			return withOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return writeReport(w, st, format, filter, userAgent, color)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output `format`: text, html or json")
	cmd.Flags().StringVar(&filter, "filter", "", "only show test cases containing `substr`")
	cmd.Flags().StringVar(&userAgent, "user-agent", "uibench", "user agent `name` shown in HTML output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to `file` instead of standard output")
	cmd.Flags().BoolVar(&color, "color", false, "color text output")
	return cmd
}

func writeReport(w io.Writer, st *store.Store, format, filter, userAgent string, color bool) error {
	reports, names := st.Snapshot()
	if format == "json" {
		return report.WriteJSON(w, reports)
	}

	var r benchtab.Renderer
	switch format {
	case "text":
		r = benchtab.Text{Color: color}
	case "html":
		r = htmlreport.Document{UserAgent: userAgent}
	default:
		return errors.Errorf("unknown format %q", format)
	}
	t, err := benchtab.Build(reports, names, benchtab.Options{Filter: filter})
	if err != nil {
		return err
	}
	return r.Render(w, t)
}

func (c *cli) chartCmd() *cobra.Command {
	var row, output string
	cmd := &cobra.Command{
		Use:   "chart --row test [-o file.png] file...",
		Short: "Plot one test case of JSON exports as a PNG box plot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadReports(args)
			if err != nil {
				return err
			}
			reports, names := st.Snapshot()
			t, err := benchtab.Build(reports, names, benchtab.Options{})
			if err != nil {
				return err
			}
			return withOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return chart.WritePNG(w, t, row)
			})
		},
	}
	cmd.Flags().StringVar(&row, "row", "", "test case `name` to plot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to `file` instead of standard output")
	cmd.MarkFlagRequired("row")
	return cmd
}
