// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefstest opens preference databases for tests.
package prefstest

import (
	"context"
	"flag"
	"testing"

	"github.com/uibench/resultview/prefs"
	_ "github.com/uibench/resultview/prefs/mysql"
	_ "github.com/uibench/resultview/prefs/sqlite3"
)

var mysqlDSN = flag.String("mysql", "", "run preference tests against this MySQL `dsn` instead of in-memory SQLite")

// NewDB makes a connection to a testing database, either in-memory
// sqlite3 or MySQL depending on the -mysql flag. The database is
// closed when the test finishes.
func NewDB(t *testing.T) *prefs.DB {
	t.Helper()
	driverName, dataSourceName := "sqlite3", ":memory:"
	if *mysqlDSN != "" {
		driverName, dataSourceName = "mysql", *mysqlDSN
	}
	d, err := prefs.OpenSQL(driverName, dataSourceName)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if driverName == "mysql" {
		// Shared servers keep state between runs.
		if err := d.SetCustomURL(context.Background(), ""); err != nil {
			t.Fatal(err)
		}
		return d
	}
	// Make sure the database really is empty.
	if v, err := d.CustomURL(context.Background()); err != nil || v != "" {
		t.Fatalf("fresh database has custom URL %q (err %v), want empty", v, err)
	}
	return d
}
