// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uibench/resultview/benchtab"
	"github.com/uibench/resultview/report"
)

func table(t *testing.T) *benchtab.Table {
	t.Helper()
	reports := []*report.Report{
		{Name: "React", Version: "16", Samples: report.Samples{{Name: "render", Values: []float64{0.010, 0.012, 0.011, 0.020}}}},
		{Name: "ivi", Version: "0.27", Samples: report.Samples{{Name: "render", Values: []float64{0.004}}}},
	}
	tab, err := benchtab.Build(reports, []string{"render"}, benchtab.Options{})
	require.NoError(t, err)
	return tab
}

func TestPlot(t *testing.T) {
	pl, err := Plot(table(t), "render")
	require.NoError(t, err)
	assert.Equal(t, "render", pl.Title.Text)
	assert.Equal(t, 0.0, pl.Y.Min)
	assert.InDelta(t, 20, pl.Y.Max, 1e-9)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, table(t), "render"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	// 10cm x 8cm at 96 dpi.
	assert.InDelta(t, 378, b.Dx(), 2)
	assert.InDelta(t, 302, b.Dy(), 2)
}

func TestMissingRow(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, table(t), "nope")
	assert.True(t, errors.Is(err, ErrNoRow), "got %v", err)
	assert.Zero(t, buf.Len())
}
