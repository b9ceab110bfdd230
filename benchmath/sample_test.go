// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	check := func(values []float64, want Summary) {
		t.Helper()
		got, err := Summarize(values)
		require.NoError(t, err)
		if got != want {
			t.Errorf("for %v, got %+v, want %+v", values, got, want)
		}
	}

	check([]float64{4}, Summary{Count: 1, Median: 4, Mean: 4, StdDev: 0, Min: 4, Max: 4})
	check([]float64{2, 4, 4, 4, 5, 5, 7, 9}, Summary{Count: 8, Median: 4.5, Mean: 5, StdDev: 2, Min: 2, Max: 9})
	check([]float64{3, 1, 2}, Summary{Count: 3, Median: 2, Mean: 2, StdDev: math.Sqrt(2.0 / 3), Min: 1, Max: 3})
	check([]float64{10, 10, 10}, Summary{Count: 3, Median: 10, Mean: 10, StdDev: 0, Min: 10, Max: 10})
	check([]float64{1, 2, 3, 4}, Summary{Count: 4, Median: 2.5, Mean: 2.5, StdDev: math.Sqrt(1.25), Min: 1, Max: 4})
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.True(t, errors.Is(err, ErrEmptySample), "got %v", err)
	_, err = Summarize([]float64{})
	assert.True(t, errors.Is(err, ErrEmptySample), "got %v", err)
}

func TestSummarizeDoesNotSort(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Summarize(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestSummaryBounds(t *testing.T) {
	samples := [][]float64{
		{1},
		{0.001, 0.002},
		{5, 1, 9, 3, 3, 7},
		{0.0123, 0.0119, 0.0131, 0.0127, 0.0118},
		{1e-6, 1e3, 2, 2, 2},
		{-3, -1, -2},
	}
	for _, xs := range samples {
		s, err := Summarize(xs)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Min, s.Median, "%v", xs)
		assert.LessOrEqual(t, s.Median, s.Max, "%v", xs)
		assert.LessOrEqual(t, s.Min, s.Mean, "%v", xs)
		assert.LessOrEqual(t, s.Mean, s.Max, "%v", xs)
		assert.GreaterOrEqual(t, s.StdDev, 0.0, "%v", xs)
		assert.Equal(t, len(xs), s.Count)
	}
}
