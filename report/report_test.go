// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactJSON = `{
	"name": "React",
	"version": "16.2.0",
	"flags": {"fullRenderTime": false, "preserveState": true, "scu": true, "recycling": false, "disableChecks": false},
	"timing": {"start": 0.1, "run": 0.35, "firstRender": 0.012},
	"iterations": 3,
	"samples": {
		"table/[100,4]/render": [0.0031, 0.0029, 0.0030],
		"anim/100/32": [0.0011, 0.0012, 0.0010],
		"tree/[50,10]/render": [0.0052, 0.0050, 0.0049]
	}
}`

func TestUnmarshalKeepsSampleOrder(t *testing.T) {
	var r Report
	require.NoError(t, json.Unmarshal([]byte(reactJSON), &r))

	assert.Equal(t, "React", r.Name)
	assert.Equal(t, "16.2.0", r.Version)
	assert.Equal(t, Flags{PreserveState: true, SCU: true}, r.Flags)
	assert.Equal(t, Timing{Start: 0.1, Run: 0.35, FirstRender: 0.012}, r.Timing)
	assert.Equal(t, 3, r.Iterations)
	assert.Equal(t, []string{"table/[100,4]/render", "anim/100/32", "tree/[50,10]/render"}, r.Samples.Names())

	vs, ok := r.Samples.Get("anim/100/32")
	require.True(t, ok)
	assert.Equal(t, []float64{0.0011, 0.0012, 0.0010}, vs)
	_, ok = r.Samples.Get("missing")
	assert.False(t, ok)
}

func TestSamplesDuplicateKey(t *testing.T) {
	var s Samples
	require.NoError(t, json.Unmarshal([]byte(`{"a": [1], "b": [2], "a": [3]}`), &s))
	want := Samples{{"a", []float64{3}}, {"b", []float64{2}}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestSamplesErrors(t *testing.T) {
	check := func(input string) {
		t.Helper()
		var s Samples
		assert.Error(t, json.Unmarshal([]byte(input), &s), "input %s", input)
	}
	check(`[1, 2]`)
	check(`{"a": "x"}`)
	check(`{"a": [1, "x"]}`)

	var s Samples
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Nil(t, s)
}

func TestRoundTrip(t *testing.T) {
	var r Report
	require.NoError(t, json.Unmarshal([]byte(reactJSON), &r))
	reports := []*Report{&r, {
		Name:       "ivi",
		Version:    "0.27.0",
		Flags:      Flags{FullRenderTime: true, DisableChecks: true},
		Timing:     Timing{Start: 0, Run: 0.05, FirstRender: 0.004},
		Iterations: 5,
		Samples:    Samples{{"z", []float64{1, 2}}, {"a", []float64{0.5}}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, reports))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n  {\n    \"name\": \"React\""), "output:\n%s", buf.String())

	got, err := Read(&buf, "export.json")
	require.NoError(t, err)
	if diff := cmp.Diff(reports, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestReadValidation(t *testing.T) {
	check := func(input string) {
		t.Helper()
		_, err := Read(strings.NewReader(input), "bad.json")
		var verr *ValidationError
		if assert.True(t, errors.As(err, &verr), "input %s: got %v", input, err) {
			assert.Equal(t, "bad.json", verr.FileName)
			assert.NotEmpty(t, verr.Errors)
			assert.Contains(t, verr.Error(), "bad.json")
		}
	}
	check(`{}`)
	check(`[{"version": "1"}]`)
	check(`[{"name": "x", "samples": {"a": []}}]`)
	check(`[{"name": "x", "samples": {"a": ["slow"]}}]`)
	check(`[{"name": 1, "samples": {}}]`)

	_, err := Read(strings.NewReader(`[{`), "truncated.json")
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "uibench.json")
	require.NoError(t, os.WriteFile(name, []byte("["+reactJSON+"]"), 0o644))

	reports, err := ReadFile(name)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "React 16.2.0", reports[0].Title())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(errors.Cause(err)), "got %v", err)
}

func TestDecodeMessage(t *testing.T) {
	r, err := DecodeMessage(strings.NewReader(`{"type": "report", "data": ` + reactJSON + `}`))
	require.NoError(t, err)
	assert.Equal(t, "React", r.Name)
	assert.Len(t, r.Samples, 3)

	_, err = DecodeMessage(strings.NewReader(`{"type": "progress", "data": {"done": 3}}`))
	assert.Equal(t, ErrIgnored, err)

	_, err = DecodeMessage(strings.NewReader(`{"data": {}}`))
	assert.Equal(t, ErrIgnored, err)

	_, err = DecodeMessage(strings.NewReader(`not json`))
	assert.Error(t, err)
	assert.NotEqual(t, ErrIgnored, err)

	_, err = DecodeMessage(strings.NewReader(`{"type": "report", "data": {"samples": [1]}}`))
	assert.Error(t, err)

	// A report message must carry a report.
	for _, msg := range []string{
		`{"type": "report", "data": null}`,
		`{"type": "report", "data":   null  }`,
		`{"type": "report"}`,
	} {
		r, err := DecodeMessage(strings.NewReader(msg))
		assert.Error(t, err, msg)
		assert.NotEqual(t, ErrIgnored, err, msg)
		assert.Nil(t, r, msg)
	}
}

func TestTiming(t *testing.T) {
	assert.InDelta(t, 0.25, Timing{Start: 0.1, Run: 0.35}.JSInit(), 1e-12)
	assert.Equal(t, "ivi", (&Report{Name: "ivi"}).Title())
}
