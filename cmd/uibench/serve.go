// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/uibench/resultview/prefs"
	"github.com/uibench/resultview/viewer"
)

// shutdownTimeout bounds the wait for in-flight requests on exit.
const shutdownTimeout = 5 * time.Second

func (c *cli) serveCmd() *cobra.Command {
	var (
		addr  string
		files []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the results viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return c.serve(ctx, ln, files)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "serve HTTP on `address` (default from config)")
	cmd.Flags().StringSliceVar(&files, "load", nil, "preload reports from JSON export `files`")
	return cmd
}

// serve runs the viewer on ln until ctx is done, then shuts it down
// gracefully.
func (c *cli) serve(ctx context.Context, ln net.Listener, files []string) error {
	st, err := loadReports(files)
	if err != nil {
		ln.Close()
		return err
	}

	var db *prefs.DB
	switch db, err = c.openPrefs(); {
	case errors.Is(err, errPrefsDisabled):
		c.log.Info("preferences disabled")
	case err != nil:
		ln.Close()
		return err
	default:
		defer db.Close()
	}

	app := &viewer.App{
		Store:       st,
		Prefs:       db,
		Contestants: c.cfg.Contestants,
		Options:     c.cfg.Bench,
		CORSOrigins: c.cfg.CORS.Origins,
		Log:         logrus.NewEntry(c.log),
	}
	srv := &http.Server{
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	c.log.WithFields(logrus.Fields{
		"addr":    ln.Addr().String(),
		"reports": st.Len(),
	}).Info("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errc; err != http.ErrServerClosed {
		return err
	}
	return nil
}
