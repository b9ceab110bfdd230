// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uibench/resultview/prefs"
	"github.com/uibench/resultview/prefs/prefstest"
)

func TestCustomURL(t *testing.T) {
	ctx := context.Background()
	db := prefstest.NewDB(t)

	got, err := db.CustomURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	for _, v := range []string{"http://localhost:8080/", "https://example.com/bench?x=1", ""} {
		require.NoError(t, db.SetCustomURL(ctx, v))
		got, err := db.CustomURL(ctx)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCustomURLConcurrent(t *testing.T) {
	ctx := context.Background()
	db := prefstest.NewDB(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := db.SetCustomURL(ctx, "http://example.com/"); err != nil {
				t.Error(err)
			}
			if _, err := db.CustomURL(ctx); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	got, err := db.CustomURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/", got)
}

// TestPersistence verifies that the preference survives reopening a
// file database.
func TestPersistence(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "prefs.db")

	db, err := prefs.OpenSQL("sqlite3", dsn)
	require.NoError(t, err)
	require.NoError(t, db.SetCustomURL(ctx, "http://localhost:3000/"))
	require.NoError(t, db.Close())

	db, err = prefs.OpenSQL("sqlite3", dsn)
	require.NoError(t, err)
	defer db.Close()
	got, err := db.CustomURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/", got)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := prefs.OpenSQL("nosuchdriver", "")
	assert.Error(t, err)
}
