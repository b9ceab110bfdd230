// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes descriptive statistics over the repeated
// timing measurements of a single benchmark test case.
//
// The statistics are purely descriptive: there are no significance
// tests or confidence intervals. Every value is expressed in the unit
// of the input (seconds for uibench reports).
package benchmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/pkg/errors"
)

// ErrEmptySample is returned by Summarize for a sample with no
// measurements. Reports never carry empty samples, so this indicates
// malformed input.
var ErrEmptySample = errors.New("empty sample")

// A Summary summarizes a set of repeated measurements of one test
// case.
type Summary struct {
	// Count is the number of measurements.
	Count int

	// Median is the middle measurement, or the mean of the two
	// middle measurements when Count is even.
	Median float64

	// Mean is the arithmetic mean.
	Mean float64

	// StdDev is the population standard deviation: the square
	// root of the mean squared deviation from Mean. It is not
	// Bessel-corrected.
	StdDev float64

	// Min and Max are the extrema.
	Min, Max float64
}

// Summarize computes the Summary of values. values is not modified.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySample
	}

	n := float64(len(values))
	s := Summary{Count: len(values)}
	s.Min, s.Max = stats.Bounds(values)
	s.Mean = vec.Sum(values) / n

	mean := s.Mean
	sq := vec.Map(func(x float64) float64 {
		d := x - mean
		return d * d
	}, values)
	s.StdDev = math.Sqrt(vec.Sum(sq) / n)

	s.Median = median(values)
	return s, nil
}

// median returns the median of a non-empty sample.
//
// stats.Sample.Quantile interpolates with the R8 method, which does
// not reduce exactly to the mean of the two middle values, so the
// median is computed directly over a sorted copy.
func median(values []float64) float64 {
	xs := append([]float64(nil), values...)
	sort.Float64s(xs)
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}

// String returns a compact one-line form of s, in the input unit.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d median=%g mean=%g stdev=%g min=%g max=%g",
		s.Count, s.Median, s.Mean, s.StdDev, s.Min, s.Max)
}
