// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mysql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uibench/resultview/prefs"
	_ "github.com/uibench/resultview/prefs/mysql"
)

// The hook rejects bad DSNs before any connection is attempted.
func TestOpenRejectsDSN(t *testing.T) {
	check := func(dsn, want string) {
		t.Helper()
		_, err := prefs.OpenSQL("mysql", dsn)
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), want)
		}
	}
	check("user@tcp(127.0.0.1:1)/", "does not name a database")
	check("not a dsn", "mysql DSN")
}
