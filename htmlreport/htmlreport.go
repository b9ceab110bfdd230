// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlreport renders benchmark tables as HTML: a standalone
// document for export and the viewer's interactive page. Both share
// the same table markup.
package htmlreport

import (
	"io"
	"net/url"

	"github.com/google/safehtml"

	"github.com/uibench/resultview/benchtab"
	"github.com/uibench/resultview/benchurl"
)

// Document renders a standalone HTML report.
type Document struct {
	// UserAgent identifies the browser the report was made with.
	UserAgent string
}

// Render writes the document for t to w.
func (d Document) Render(w io.Writer, t *benchtab.Table) error {
	return templates.ExecuteTemplate(w, "document", struct {
		UserAgent string
		Table     *tableView
	}{d.UserAgent, newTableView(t, false)})
}

// Page renders the viewer's interactive page: the benchmark launcher
// followed by the results table, or "Empty" if there are no reports.
type Page struct {
	// CustomURL is the stored custom benchmark URL.
	CustomURL string

	// Contestants are the benchmarks the page offers to open.
	Contestants []benchurl.Contestant

	// Options are the options new benchmark windows are opened
	// with.
	Options benchurl.Options

	// Charts links test rows to their box plots.
	Charts bool

	// Error, if set, replaces the table in the results panel.
	Error string
}

// Render writes the page for t to w.
func (p Page) Render(w io.Writer, t *benchtab.Table) error {
	cs := make([]contestantView, len(p.Contestants))
	for i, c := range p.Contestants {
		cs[i] = contestantView{
			Name:     c.Name,
			HomeURL:  safehtml.URLSanitized(c.URL),
			Comments: c.Comments,
			Versions: c.Versions,
		}
	}
	return templates.ExecuteTemplate(w, "page", struct {
		CustomURL   string
		Contestants []contestantView
		Options     benchurl.Options
		Table       *tableView
		Error       string
	}{p.CustomURL, cs, p.Options, newTableView(t, p.Charts), p.Error})
}

type contestantView struct {
	Name     string
	HomeURL  safehtml.URL
	Comments string
	Versions []string
}

// tableView is a benchtab.Table with colors converted to styles.
type tableView struct {
	Columns             []benchtab.Column
	Filter              string
	Flags               []flagView
	JSInit, FirstRender rowView
	Overall, Iterations []int
	Tests               []rowView
}

type flagView struct {
	Label string
	Cells []safehtml.Style
}

type rowView struct {
	Label    string
	IsTest   bool
	Chart    bool
	ChartURL safehtml.URL
	Cells    []cellView
}

type cellView struct {
	Style      safehtml.Style
	Value      int
	Annotation string
	Title      string
}

func background(color string) safehtml.Style {
	return safehtml.StyleFromProperties(safehtml.StyleProperties{BackgroundColor: color})
}

func newTableView(t *benchtab.Table, charts bool) *tableView {
	v := &tableView{
		Columns:    t.Columns,
		Filter:     t.Filter,
		Overall:    t.Overall,
		Iterations: t.Iterations,
	}
	for _, f := range t.Flags {
		fv := flagView{Label: f.Label}
		for _, c := range f.Cells {
			fv.Cells = append(fv.Cells, background(c.Color))
		}
		v.Flags = append(v.Flags, fv)
	}
	v.JSInit = newRowView(t.JSInit, false)
	v.FirstRender = newRowView(t.FirstRender, false)
	for _, row := range t.Tests {
		v.Tests = append(v.Tests, newRowView(row, charts))
	}
	return v
}

func newRowView(row *benchtab.Row, charts bool) rowView {
	v := rowView{Label: row.Label, IsTest: row.IsTest}
	if charts && row.IsTest {
		v.Chart = true
		v.ChartURL = safehtml.URLSanitized("/chart.png?" + url.Values{"row": {row.Label}}.Encode())
	}
	for _, c := range row.Cells {
		v.Cells = append(v.Cells, cellView{
			Style:      background(c.Color),
			Value:      c.Value,
			Annotation: c.Annotation(),
			Title:      c.Title,
		})
	}
	return v
}
