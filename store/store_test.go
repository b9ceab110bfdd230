// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uibench/resultview/report"
)

func rep(name string, samples ...string) *report.Report {
	r := &report.Report{Name: name}
	for _, s := range samples {
		r.Samples = append(r.Samples, report.Sample{Name: s, Values: []float64{1}})
	}
	return r
}

func TestSampleNamesFirstSeen(t *testing.T) {
	s := New()
	a, b := rep("a", "x", "y"), rep("b", "y", "z")
	s.Update(a)
	s.Update(b)

	assert.Equal(t, []string{"x", "y", "z"}, s.SampleNames())
	assert.Equal(t, []*report.Report{a, b}, s.Reports())
	assert.Equal(t, 2, s.Len())

	// Later reports never reorder existing names.
	s.Update(rep("c", "w", "z", "x"))
	assert.Equal(t, []string{"x", "y", "z", "w"}, s.SampleNames())
}

func TestUpdateAcceptsAnything(t *testing.T) {
	var s Store
	s.Update(rep("dup"))
	s.Update(rep("dup"))
	s.Update(&report.Report{})
	assert.Equal(t, 3, s.Len())
	assert.Empty(t, s.SampleNames())
}

func TestViewsAreCopies(t *testing.T) {
	s := New()
	s.Update(rep("a", "x"))

	names := s.SampleNames()
	names[0] = "mutated"
	reports := s.Reports()
	reports[0] = nil

	assert.Equal(t, []string{"x"}, s.SampleNames())
	require.NotNil(t, s.Reports()[0])
}

func TestSnapshotConcurrent(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Update(rep(fmt.Sprint(i), fmt.Sprintf("s%d", j)))
				reports, names := s.Snapshot()
				// Every name must come from one of the snapshot's reports.
				for _, name := range names {
					found := false
					for _, r := range reports {
						if _, ok := r.Samples.Get(name); ok {
							found = true
							break
						}
					}
					if !found {
						t.Errorf("sample %q not in any report of the snapshot", name)
						return
					}
				}
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 400, s.Len())
	assert.Len(t, s.SampleNames(), 50)
}
