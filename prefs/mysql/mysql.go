// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mysql provides the mysql driver for prefs.DB.
package mysql

import (
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/uibench/resultview/prefs"
)

func init() {
	prefs.RegisterOpenHook("mysql", func(db *sql.DB, dsn string) error {
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return errors.Wrap(err, "mysql DSN")
		}
		if cfg.DBName == "" {
			return errors.Errorf("mysql DSN %q does not name a database", dsn)
		}
		// Servers close idle connections; drop ours first.
		db.SetConnMaxLifetime(3 * time.Minute)
		return nil
	})
}
