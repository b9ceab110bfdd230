// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/uibench/resultview/benchurl"
	"github.com/uibench/resultview/internal/texttab"
)

func (c *cli) urlCmd() *cobra.Command {
	var (
		custom bool
		flags  benchurl.Options
	)
	cmd := &cobra.Command{
		Use:   "url [--custom] contestant|url [version]",
		Short: "Print the URL that runs a benchmark",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.cfg.Bench
			f := cmd.Flags()
			if f.Changed("iterations") {
				opts.Iterations = flags.Iterations
			}
			if f.Changed("disable-scu") {
				opts.DisableSCU = flags.DisableSCU
			}
			if f.Changed("dom-recycling") {
				opts.EnableDOMRecycling = flags.EnableDOMRecycling
			}
			if f.Changed("mobile") {
				opts.Mobile = flags.Mobile
			}
			if f.Changed("full-render-time") {
				opts.FullRenderTime = flags.FullRenderTime
			}
			if f.Changed("tests") {
				opts.Filter = flags.Filter
			}
			if opts.Iterations < 1 {
				return errors.Errorf("invalid iteration count %d", opts.Iterations)
			}

			var (
				u   string
				err error
			)
			if custom {
				if len(args) > 1 {
					return errors.New("a custom URL takes no version")
				}
				u, err = benchurl.Custom(args[0], opts)
			} else {
				ct, ok := benchurl.Find(c.cfg.Contestants, args[0])
				if !ok {
					return errors.Errorf("unknown contestant %q; see uibench contestants", args[0])
				}
				var version string
				if len(args) > 1 {
					version = args[1]
				}
				u, err = ct.Open(version, opts)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
	f := cmd.Flags()
	f.BoolVar(&custom, "custom", false, "treat the argument as a benchmark URL")
	f.IntVarP(&flags.Iterations, "iterations", "i", 0, "iterations per test case (default from config)")
	f.BoolVar(&flags.DisableSCU, "disable-scu", false, "disable shouldComponentUpdate optimization")
	f.BoolVar(&flags.EnableDOMRecycling, "dom-recycling", false, "enable DOM recycling")
	f.BoolVar(&flags.Mobile, "mobile", false, "mobile mode")
	f.BoolVar(&flags.FullRenderTime, "full-render-time", false, "measure full render time")
	f.StringVar(&flags.Filter, "tests", "", "only run test cases containing `substr`")
	return cmd
}

func (c *cli) contestantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contestants",
		Short: "List the benchmark catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var t texttab.Table
			t.Row().Cell("NAME").Cell("VERSIONS").Cell("BENCHMARK")
			for _, ct := range c.cfg.Contestants {
				versions := strings.Join(ct.Versions, ",")
				if versions == "" {
					versions = "stable"
				}
				t.Row().Cell(ct.Name).Cell(versions).Cell(ct.BenchmarkURL)
			}
			return t.Format(cmd.OutOrStdout())
		},
	}
}
