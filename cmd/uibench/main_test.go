// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uibench/resultview/benchurl"
	"github.com/uibench/resultview/internal/logging"
	"github.com/uibench/resultview/report"
	"github.com/uibench/resultview/store"
	"github.com/uibench/resultview/viewer"
)

var testReports = []*report.Report{
	{
		Name: "react", Version: "16", Iterations: 5,
		Timing: report.Timing{Start: 0, Run: 0.05, FirstRender: 0.01},
		Samples: report.Samples{
			{Name: "table/render", Values: []float64{0.002, 0.002, 0.0021}},
			{Name: "anim", Values: []float64{0.001}},
		},
	},
	{
		Name: "preact", Version: "8", Iterations: 5,
		Timing: report.Timing{Start: 0, Run: 0.04, FirstRender: 0.02},
		Samples: report.Samples{
			{Name: "table/render", Values: []float64{0.004}},
			{Name: "anim", Values: []float64{0.002}},
		},
	},
}

// setup isolates the test from the user's configuration and returns
// a JSON export of testReports.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("UIBENCH_PREFS_DRIVER", "sqlite3")
	t.Setenv("UIBENCH_PREFS_DSN", filepath.Join(dir, "prefs", "prefs.db"))

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, testReports))
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReportText(t *testing.T) {
	export := setup(t)
	out, err := run(t, "report", export)
	require.NoError(t, err)
	for _, want := range []string{"react 16", "preact 8", "Flags:", "Times:", "table/render", "4 (2.00)"} {
		assert.Contains(t, out, want)
	}

	out, err = run(t, "report", "--filter", "anim", export)
	require.NoError(t, err)
	assert.NotContains(t, out, "table/render")
	assert.Contains(t, out, `filter: "anim" (1 tests)`)
}

func TestReportFormats(t *testing.T) {
	export := setup(t)

	out, err := run(t, "report", "-f", "html", "--user-agent", "Firefox", export)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "UI Benchmark Report: Firefox", doc.Find("title").Text())

	merged := filepath.Join(t.TempDir(), "merged.json")
	_, err = run(t, "report", "-f", "json", "-o", merged, export, export)
	require.NoError(t, err)
	reports, err := report.ReadFile(merged)
	require.NoError(t, err)
	assert.Equal(t, append(append([]*report.Report{}, testReports...), testReports...), reports)

	_, err = run(t, "report", "-f", "xml", export)
	assert.EqualError(t, err, `unknown format "xml"`)
	_, err = run(t, "report", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	_, err = run(t, "report")
	assert.Error(t, err)
}

func TestChart(t *testing.T) {
	export := setup(t)
	out, err := run(t, "chart", "--row", "anim", export)
	require.NoError(t, err)
	_, err = png.Decode(strings.NewReader(out))
	assert.NoError(t, err)

	_, err = run(t, "chart", "--row", "nope", export)
	assert.Error(t, err)
}

func TestURL(t *testing.T) {
	setup(t)
	for _, tt := range []struct {
		args []string
		want string
	}{
		{
			[]string{"url", "React", "16"},
			"https://localvoid.github.io/uibench-react/16/index.html?report=true&i=5&disableSCU=true\n",
		},
		{
			[]string{"url", "-i", "3", "--disable-scu=false", "--tests", "tree", "Preact"},
			"https://developit.github.io/uibench-preact/?report=true&i=3&filter=tree\n",
		},
		{
			[]string{"url", "--custom", "--mobile", "http://localhost:9000/?x=1"},
			"http://localhost:9000/?x=1&report=true&i=5&disableSCU=true&mobile=true\n",
		},
	} {
		out, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}

	_, err := run(t, "url", "Nope")
	assert.Error(t, err)
	_, err = run(t, "url", "React", "99")
	assert.Error(t, err)
	_, err = run(t, "url", "-i", "0", "React", "16")
	assert.Error(t, err)
}

func TestContestants(t *testing.T) {
	setup(t)
	out, err := run(t, "contestants")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(benchurl.DefaultContestants)+1)
	assert.Contains(t, out, "14,15,16")
	assert.Contains(t, out, "https://developit.github.io/uibench-preact/")
}

func TestPrefs(t *testing.T) {
	setup(t)
	out, err := run(t, "prefs", "get")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	_, err = run(t, "prefs", "set", "http://localhost:9000/")
	require.NoError(t, err)
	out, err = run(t, "prefs", "get")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/\n", out)

	t.Setenv("UIBENCH_PREFS_DRIVER", "none")
	_, err = run(t, "prefs", "get")
	assert.Equal(t, errPrefsDisabled, err)
}

func TestBadConfig(t *testing.T) {
	setup(t)
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "contestants")
	assert.Error(t, err)
	_, err = run(t, "--log-level", "loud", "contestants")
	assert.Error(t, err)
}

func TestServe(t *testing.T) {
	export := setup(t)
	c := &cli{}
	require.NoError(t, c.init(&cobra.Command{}))
	c.log.SetOutput(&bytes.Buffer{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.serve(ctx, ln, []string{export}) }()

	load := remoteLoader(http.DefaultClient, "http://"+ln.Addr().String()+"/")
	reports, err := load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testReports, reports)

	cancel()
	assert.NoError(t, <-done)
}

func TestRemoteLoaderErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := remoteLoader(srv.Client(), srv.URL)(context.Background())
	assert.ErrorContains(t, err, "404")

	st := store.New()
	st.Update(testReports[0])
	app := &viewer.App{Store: st, Log: logging.Discard()}
	live := httptest.NewServer(app.Handler())
	defer live.Close()
	reports, err := remoteLoader(live.Client(), live.URL)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testReports[:1], reports)
}
