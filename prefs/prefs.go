// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs stores the viewer's local preferences in a SQL
// database.
package prefs

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// customURLKey names the custom benchmark URL preference.
const customURLKey = "customURL"

// DB is a preference database. It's safe for concurrent use by
// multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	get *sql.Stmt
	set *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; a driver package (prefs/sqlite3 or
// prefs/mysql) must be imported to register the driver and its open
// hook.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db, dataSourceName); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(db *sql.DB, dataSourceName string) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(db *sql.DB, dataSourceName string) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Preferences (
	Name VARCHAR(255) NOT NULL PRIMARY KEY,
	Value {{if .sqlite3}}TEXT{{else}}VARCHAR(8192){{end}} NOT NULL
);
`))

// createTables creates any missing tables on the connection in
// db.sql.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return errors.Wrap(err, "create table")
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
// REPLACE is understood by both sqlite3 and mysql.
func (db *DB) prepareStatements() error {
	var err error
	db.get, err = db.sql.Prepare("SELECT Value FROM Preferences WHERE Name = ?")
	if err != nil {
		return err
	}
	db.set, err = db.sql.Prepare("REPLACE INTO Preferences(Name, Value) VALUES (?, ?)")
	return err
}

func (db *DB) lookup(ctx context.Context, name string) (string, error) {
	var v string
	err := db.get.QueryRowContext(ctx, name).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading preference %s", name)
	}
	return v, nil
}

func (db *DB) store(ctx context.Context, name, value string) error {
	if _, err := db.set.ExecContext(ctx, name, value); err != nil {
		return errors.Wrapf(err, "writing preference %s", name)
	}
	return nil
}

// CustomURL returns the custom benchmark URL, or "" if it was never
// set.
func (db *DB) CustomURL(ctx context.Context) (string, error) {
	return db.lookup(ctx, customURLKey)
}

// SetCustomURL replaces the custom benchmark URL.
func (db *DB) SetCustomURL(ctx context.Context, url string) error {
	return db.store(ctx, customURLKey, url)
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.get.Close(); err != nil {
		return err
	}
	if err := db.set.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
