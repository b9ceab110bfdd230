// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/uibench/resultview/benchmath"
	"github.com/uibench/resultview/benchrank"
	"github.com/uibench/resultview/report"
)

// Options configures Build.
type Options struct {
	// Filter restricts the test rows to names containing Filter
	// (case-sensitive). The empty filter keeps every row.
	Filter string
}

// A MissingSampleError reports a report that lacks one of the sample
// names being tabulated.
type MissingSampleError struct {
	Sample string
	Report string
}

func (e *MissingSampleError) Error() string {
	return fmt.Sprintf("report %s has no sample %q", e.Report, e.Sample)
}

// flags lists the flag rows in display order. Spec tests run unless
// disabled, so that row is on when disableChecks is off.
var flags = []struct {
	label string
	on    func(report.Flags) bool
}{
	{"Measure Full Render Time", func(f report.Flags) bool { return f.FullRenderTime }},
	{"Preserve State", func(f report.Flags) bool { return f.PreserveState }},
	{"sCU Optimization", func(f report.Flags) bool { return f.SCU }},
	{"DOM Recycling", func(f report.Flags) bool { return f.Recycling }},
	{"Spec Tests", func(f report.Flags) bool { return !f.DisableChecks }},
}

// Build computes the comparison table of reports. Test rows follow
// sampleNames, which is normally the store's first-seen order.
//
// Every report must have every sample named in sampleNames that
// passes the filter; otherwise Build returns a *MissingSampleError.
func Build(reports []*report.Report, sampleNames []string, opts Options) (*Table, error) {
	t := &Table{
		Filter:     opts.Filter,
		Columns:    make([]Column, len(reports)),
		Overall:    make([]int, len(reports)),
		Iterations: make([]int, len(reports)),
	}
	for i, r := range reports {
		t.Columns[i] = Column{r.Name, r.Version}
		t.Iterations[i] = r.Iterations
	}

	for _, f := range flags {
		row := &FlagRow{Label: f.label, Cells: make([]FlagCell, len(reports))}
		for i, r := range reports {
			on := f.on(r.Flags)
			row.Cells[i] = FlagCell{On: on, Color: benchrank.Worst}
			if on {
				row.Cells[i].Color = benchrank.Best
			}
		}
		t.Flags = append(t.Flags, row)
	}

	jsInit := make([]float64, len(reports))
	firstRender := make([]float64, len(reports))
	for i, r := range reports {
		jsInit[i] = r.Timing.JSInit()
		firstRender[i] = r.Timing.FirstRender
	}
	t.JSInit = rankedRow("JS Init Time", jsInit)
	t.FirstRender = rankedRow("First Render Time", firstRender)

	for _, name := range sampleNames {
		if !strings.Contains(name, opts.Filter) {
			continue
		}
		row, err := testRow(name, reports)
		if err != nil {
			return nil, err
		}
		for i, c := range row.Cells {
			t.Overall[i] += c.Value
		}
		t.Tests = append(t.Tests, row)
	}
	return t, nil
}

// rankedRow ranks values and fills in the cells of a timing row.
func rankedRow(label string, values []float64) *Row {
	row := &Row{Label: label, Rank: benchrank.Rank(values)}
	row.Cells = make([]*Cell, len(values))
	for i, v := range values {
		row.Cells[i] = &Cell{
			Value: Display(v),
			Color: row.Rank.Colors[i],
			Ratio: row.Rank.Ratios[i],
		}
	}
	return row
}

// testRow summarizes every report's samples of one test case and
// ranks the medians.
func testRow(name string, reports []*report.Report) (*Row, error) {
	summaries := make([]benchmath.Summary, len(reports))
	medians := make([]float64, len(reports))
	samples := make([][]float64, len(reports))
	for i, r := range reports {
		values, ok := r.Samples.Get(name)
		if !ok {
			return nil, &MissingSampleError{Sample: name, Report: r.Title()}
		}
		s, err := benchmath.Summarize(values)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %q of report %s", name, r.Title())
		}
		summaries[i], medians[i], samples[i] = s, s.Median, values
	}

	row := rankedRow(name, medians)
	row.IsTest = true
	row.Samples = samples
	for i, c := range row.Cells {
		s := summaries[i]
		c.Summary = s
		c.Title = fmt.Sprintf("mean: %d\nstdev: %d\nmin: %d\nmax: %d",
			Display(s.Mean), Display(s.StdDev), Display(s.Min), Display(s.Max))
	}
	return row, nil
}
