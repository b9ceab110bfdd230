// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws the distribution of one test case's samples as
// box plots, one box per report.
package chart

import (
	"image/color"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/uibench/resultview/benchtab"
)

// ErrNoRow is returned by WritePNG for a test case that is not in the
// table.
var ErrNoRow = errors.New("no such test row")

const dpi = 96

// Plot returns the box plot of test row name of t. Each box is filled
// with the rank color of its cell.
func Plot(t *benchtab.Table, name string) (*plot.Plot, error) {
	row := t.Test(name)
	if row == nil {
		return nil, errors.Wrapf(ErrNoRow, "%q", name)
	}

	pl := plot.New()
	pl.Title.Text = name
	pl.Y.Label.Text = "time"
	pl.Y.Min = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	w := vg.Points(20)
	var nominalX []string
	for i, samples := range row.Samples {
		values := make(plotter.Values, len(samples))
		for j, s := range samples {
			values[j] = s * 1000
		}
		b, err := plotter.NewBoxPlot(w, float64(i), values)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: column %d", name, i)
		}
		b.BoxStyle.Color = color.Black
		if c, err := colorful.Hex(row.Cells[i].Color); err == nil {
			b.FillColor = c
		}
		pl.Add(b)

		col := t.Columns[i]
		nominalX = append(nominalX, col.Name+" "+col.Version)
	}
	pl.NominalX(nominalX...)
	pl.X.Tick.Label.YAlign = draw.YTop
	return pl, nil
}

// WritePNG draws the box plot of test row name of t to w as a PNG
// image.
func WritePNG(w io.Writer, t *benchtab.Table, name string) error {
	pl, err := Plot(t, name)
	if err != nil {
		return err
	}

	// Heuristic size: room for each box and its label.
	width := 4 + 3*float64(len(t.Columns))
	if width < 10 {
		width = 10
	}
	height := 8.0

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter),
		vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}
