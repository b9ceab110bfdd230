// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab shapes a set of uibench reports into a comparison
// table. The table is computed once by Build and then rendered by any
// number of Renderers, none of which recompute statistics.
package benchtab

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/uibench/resultview/benchmath"
	"github.com/uibench/resultview/benchrank"
	"github.com/uibench/resultview/internal/texttab"
)

// A Table compares a set of reports. Every row has one cell per
// column, in column order.
type Table struct {
	// Columns identifies the reports, in arrival order.
	Columns []Column

	// Flags are the capability flag rows.
	Flags []*FlagRow

	// JSInit and FirstRender rank the page-level timings.
	JSInit, FirstRender *Row

	// Overall is each report's sum of the display values of the
	// test rows in Tests. Rows removed by a filter do not count.
	Overall []int

	// Iterations is each report's iteration count.
	Iterations []int

	// Tests holds a row per test case, in first-seen order,
	// restricted to the names matching the filter.
	Tests []*Row

	// Filter is the filter the table was built with.
	Filter string
}

// A Column identifies one report.
type Column struct {
	Name, Version string
}

// A FlagRow shows one capability flag of each report.
type FlagRow struct {
	Label string
	Cells []FlagCell
}

// A FlagCell is one report's flag. Color is benchrank.Best when On
// and benchrank.Worst otherwise.
type FlagCell struct {
	On    bool
	Color string
}

// A Row is a ranked row of the table.
type Row struct {
	// Label is the row heading: a test case name for test rows.
	Label string

	// IsTest reports whether the row is a test case row. Only test
	// rows carry Summary, Title and Samples.
	IsTest bool

	Rank  benchrank.Row
	Cells []*Cell

	// Samples holds each report's raw measurements for a test row.
	Samples [][]float64
}

// A Cell is one report's entry in a Row.
type Cell struct {
	// Summary summarizes the report's samples of a test row.
	Summary benchmath.Summary

	// Value is the display value of the cell.
	Value int

	// Color is the "#rrggbb" rank color of the cell.
	Color string

	// Ratio is the rank ratio; 0 for the best cell.
	Ratio float64

	// Title is the detail text of a test row cell: the rounded
	// mean, stdev, min and max on separate lines.
	Title string
}

// Annotation returns the ratio annotation of c, or "" for the best
// cell of a row.
func (c *Cell) Annotation() string {
	return benchrank.FormatRatio(c.Ratio)
}

// Text returns the value of c followed by its annotation.
func (c *Cell) Text() string {
	s := strconv.Itoa(c.Value)
	if a := c.Annotation(); a != "" {
		s += " " + a
	}
	return s
}

// maxDisplay bounds display values so that the conversion to int is
// exact on every platform.
const maxDisplay = 1 << 31

// Display converts a duration in seconds to the table's display unit,
// rounding halves up. NaN displays as 0; values beyond ±maxDisplay are
// clamped.
func Display(seconds float64) int {
	return roundHalfUp(seconds * 1000)
}

// roundHalfUp rounds x to the nearest integer, halves toward positive
// infinity. Unlike math.Floor(x+0.5) it does not round up values just
// below a half, whose sum with 0.5 rounds to the next integer.
func roundHalfUp(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= maxDisplay:
		return maxDisplay
	case x <= -maxDisplay:
		return -maxDisplay
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return int(r)
}

// Test returns the test row called name, or nil.
func (t *Table) Test(name string) *Row {
	for _, row := range t.Tests {
		if row.Label == name {
			return row
		}
	}
	return nil
}

// A Renderer writes a Table in some output format.
type Renderer interface {
	Render(w io.Writer, t *Table) error
}

// Text renders tables as fixed-width text.
type Text struct {
	// Color enables terminal background colors.
	Color bool
}

func (r Text) Render(w io.Writer, t *Table) error {
	return t.ToText(w, r.Color)
}

// ToText renders t to a textual representation, assuming a
// fixed-width font. If color is set, cells get their rank color as a
// terminal background, as far as the terminal supports it.
func (t *Table) ToText(w io.Writer, color bool) error {
	var o texttab.Table
	cols := len(t.Columns)

	styled := func(hex string) []texttab.CellOption {
		if !color {
			return nil
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color("#000000"))
		return []texttab.CellOption{texttab.Style(func(s string) string { return style.Render(s) })}
	}

	o.Row().Cell("")
	for _, c := range t.Columns {
		o.Cell(c.Name+" "+c.Version, texttab.Right)
	}

	o.Row().Span(cols+1, "Flags:")
	for _, f := range t.Flags {
		o.Row().Cell(f.Label)
		for _, c := range f.Cells {
			v := "no"
			if c.On {
				v = "yes"
			}
			o.Cell(v, append(styled(c.Color), texttab.Right)...)
		}
	}

	ranked := func(row *Row) {
		o.Row().Cell(row.Label)
		for _, c := range row.Cells {
			o.Cell(c.Text(), append(styled(c.Color), texttab.Right)...)
		}
	}
	plain := func(label string, values []int) {
		o.Row().Cell(label)
		for _, v := range values {
			o.Cell(strconv.Itoa(v), texttab.Right)
		}
	}

	o.Row().Span(cols+1, "Times:")
	ranked(t.JSInit)
	ranked(t.FirstRender)
	plain("Overall Tests Time", t.Overall)
	plain("Iterations", t.Iterations)
	for _, row := range t.Tests {
		ranked(row)
	}

	if err := o.Format(w); err != nil {
		return err
	}
	if t.Filter != "" {
		_, err := fmt.Fprintf(w, "\nfilter: %q (%d tests)\n", t.Filter, len(t.Tests))
		return err
	}
	return nil
}
