// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables whose cells may be
// decorated, for example with terminal colors, after layout.
package texttab

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can chain them to
// build up a row at once.
type Table struct {
	cells []cell
	cols  int

	curRow, curCol int
}

type cell struct {
	row, col, span int
	value          string
	margin         int
	alignment      align
	style          func(string) string
}

// A CellOption changes how a cell is laid out or decorated.
type CellOption func(c *cell)

var (
	Left   CellOption = func(c *cell) { c.alignment = alignLeft }
	Center CellOption = func(c *cell) { c.alignment = alignCenter }
	Right  CellOption = func(c *cell) { c.alignment = alignRight }
)

// Style decorates the cell's padded text with f. The cell is padded
// to the full width of its columns before f is applied, so a
// background color covers the whole cell. f must not change the
// printed width of its argument.
func Style(f func(string) string) CellOption {
	return func(c *cell) { c.style = f }
}

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad pads s to width w according to a. If full is false, left
// aligned text is not padded on the right.
func (a align) pad(s string, w int, full bool) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	var l int
	switch a {
	case alignCenter:
		l = (w - n) / 2
	case alignRight:
		l = w - n
	}
	r := 0
	if full {
		r = w - n - l
	}
	return strings.Repeat(" ", l) + s + strings.Repeat(" ", r)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if len(t.cells) > 0 {
		t.curRow++
	}
	t.curCol = 0
	return t
}

// Cell adds a single-column cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	return t.Span(1, value, opts...)
}

// Span adds a cell covering cols columns at the current row and
// column.
func (t *Table) Span(cols int, value string, opts ...CellOption) *Table {
	c := cell{row: t.curRow, col: t.curCol, span: cols, value: value}
	if t.curCol > 0 {
		c.margin = 1
	}
	for _, o := range opts {
		o(&c)
	}
	t.cells = append(t.cells, c)

	t.curCol += cols
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// widths returns the width of each column, including its left margin.
func (t *Table) widths() []int {
	ws := make([]int, t.cols)
	var spans []cell
	for _, c := range t.cells {
		w := utf8.RuneCountInString(c.value) + c.margin
		if c.span > 1 {
			spans = append(spans, c)
			continue
		}
		ws[c.col] = max(ws[c.col], w)
	}
	// Spanning cells that do not fit widen the last column they
	// cover; tables here only span headings over value columns.
	for _, c := range spans {
		w := utf8.RuneCountInString(c.value) + c.margin
		last := c.col + c.span - 1
		tw := 0
		for col := c.col; col <= last; col++ {
			tw += ws[col]
		}
		if tw < w {
			ws[last] += w - tw
		}
	}
	return ws
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	ws := t.widths()

	// offs[i] is where column i's margin begins; offs[t.cols] is
	// the width of the table.
	offs := make([]int, t.cols+1)
	for i, cw := range ws {
		offs[i+1] = offs[i] + cw
	}

	cells := append([]cell(nil), t.cells...)
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].row != cells[j].row {
			return cells[i].row < cells[j].row
		}
		return cells[i].col < cells[j].col
	})

	var b strings.Builder
	row, off := 0, 0
	for _, c := range cells {
		if c.value == "" && c.style == nil {
			// Skip empty cells to avoid trailing spaces.
			continue
		}
		for c.row > row {
			b.WriteByte('\n')
			row++
			off = 0
		}

		b.WriteString(strings.Repeat(" ", offs[c.col]-off+c.margin))
		tw := offs[c.col+c.span] - offs[c.col] - c.margin
		s := c.alignment.pad(c.value, tw, c.style != nil)
		off = offs[c.col] + c.margin + utf8.RuneCountInString(s)
		if c.style != nil {
			s = c.style(s)
		}
		b.WriteString(s)
	}
	if len(cells) > 0 {
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}
