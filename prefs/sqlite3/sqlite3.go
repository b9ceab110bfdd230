// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for prefs.DB. It must
// be imported instead of go-sqlite3 so that connections are
// configured for the viewer.
package sqlite3

import (
	"database/sql"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/uibench/resultview/prefs"
)

func init() {
	prefs.RegisterOpenHook("sqlite3", func(db *sql.DB, dsn string) error {
		// An in-memory database exists only on the connection
		// that created it.
		db.SetMaxOpenConns(1)
		db.Driver().(*sqlite3.SQLiteDriver).ConnectHook = func(c *sqlite3.SQLiteConn) error {
			_, err := c.Exec("PRAGMA busy_timeout = 5000;", nil)
			return err
		}
		return nil
	})
}
