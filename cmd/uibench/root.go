// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/uibench/resultview/internal/config"
	"github.com/uibench/resultview/internal/logging"
	"github.com/uibench/resultview/prefs"
	_ "github.com/uibench/resultview/prefs/mysql"
	_ "github.com/uibench/resultview/prefs/sqlite3"
	"github.com/uibench/resultview/report"
	"github.com/uibench/resultview/store"
)

// cli holds the state shared by all commands.
type cli struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "uibench",
		Short:         "Collect and compare uibench benchmark reports",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&c.cfgFile, "config", "c", "", "config `file` (default ./uibench.yaml if present)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log `level`, overriding the configuration")

	root.AddCommand(
		c.serveCmd(),
		c.reportCmd(),
		c.chartCmd(),
		c.tuiCmd(),
		c.urlCmd(),
		c.contestantsCmd(),
		c.prefsCmd(),
	)
	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.cfg, c.log = cfg, log
	return nil
}

// errPrefsDisabled is returned when preferences are configured off.
var errPrefsDisabled = errors.New("preferences are disabled (prefs.driver is none)")

// openPrefs opens the configured preferences database. It returns
// errPrefsDisabled if there is none.
func (c *cli) openPrefs() (*prefs.DB, error) {
	if c.cfg.Prefs.Driver == config.PrefsDisabled {
		return nil, errPrefsDisabled
	}
	if err := c.cfg.EnsurePrefsDir(); err != nil {
		return nil, err
	}
	db, err := prefs.OpenSQL(c.cfg.Prefs.Driver, c.cfg.Prefs.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "open preferences")
	}
	return db, nil
}

// loadReports reads JSON exports into a store, in file order.
func loadReports(files []string) (*store.Store, error) {
	s := store.New()
	for _, name := range files {
		reports, err := report.ReadFile(name)
		if err != nil {
			return nil, err
		}
		for _, r := range reports {
			s.Update(r)
		}
	}
	return s, nil
}
