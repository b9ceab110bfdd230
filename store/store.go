// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store holds the reports received during a viewer session.
package store

import (
	"sync"

	"github.com/uibench/resultview/report"
)

// A Store is an append-only, ordered collection of reports together
// with the union of their sample names in first-seen order.
//
// A Store is safe for concurrent use. The zero Store is empty and
// ready to use.
type Store struct {
	mu          sync.RWMutex
	reports     []*report.Report
	sampleNames []string
	seen        map[string]bool
}

// New returns an empty Store.
func New() *Store {
	return new(Store)
}

// Update appends r to the store. Sample names of r that the store has
// not seen yet are appended to the sample names in r's key order.
// Update never rejects a report.
func (s *Store) Update(r *report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	s.reports = append(s.reports, r)
	for _, sample := range r.Samples {
		if !s.seen[sample.Name] {
			s.seen[sample.Name] = true
			s.sampleNames = append(s.sampleNames, sample.Name)
		}
	}
}

// Reports returns the reports in arrival order. The returned slice is
// a copy; the reports themselves must not be modified.
func (s *Store) Reports() []*report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*report.Report(nil), s.reports...)
}

// SampleNames returns the distinct sample names in first-seen order.
func (s *Store) SampleNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.sampleNames...)
}

// Snapshot returns the reports and sample names as of a single point
// in time, so that every sample name refers to a key of at least one
// of the returned reports.
func (s *Store) Snapshot() (reports []*report.Report, sampleNames []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*report.Report(nil), s.reports...), append([]string(nil), s.sampleNames...)
}

// Len returns the number of reports in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
