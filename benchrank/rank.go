// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrank ranks one representative value per contestant
// against the best (smallest) value in the set.
//
// Each value gets a ratio, the factor by which it exceeds the best
// value, and a color on a perceptually uniform scale from green (best)
// to red (worst).
package benchrank

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colors are produced in the CIE LCh(ab) space with fixed lightness
// and chroma; only the hue moves between worstHue and bestHue.
const (
	lightness = 0.9
	chroma    = 0.4
	bestHue   = 140
	worstHue  = 30
)

var (
	// Best is the color of the minimum value of a Row.
	Best = lch(bestHue)
	// Worst is the color of the maximum value of a Row with more
	// than one distinct value. It also marks disabled capability
	// flags.
	Worst = lch(worstHue)
)

// lch converts a hue in degrees to a "#rrggbb" color.
func lch(hue float64) string {
	return colorful.Hcl(hue, chroma, lightness).Clamped().Hex()
}

// Color returns the color of a value at position t in [0, 1] between
// the minimum (t=0) and the maximum (t=1) of a Row.
func Color(t float64) string {
	return lch(worstHue + (bestHue-worstHue)*(1-t))
}

// A Row is the ranking of one set of values. Values, Colors and
// Ratios are parallel slices.
type Row struct {
	Values   []float64
	Min, Max float64

	// Colors holds the "#rrggbb" color of each value.
	Colors []string

	// Ratios holds value/Min for each value, or 0 for values
	// equal to Min. This is a multiplicative factor, not a
	// relative difference: a value twice the minimum has ratio 2.
	Ratios []float64
}

// Rank ranks values. Only values exactly equal to the minimum are
// considered best; Rank does not use a tolerance.
func Rank(values []float64) Row {
	r := Row{Values: values}
	if len(values) == 0 {
		return r
	}
	r.Min, r.Max = stats.Bounds(values)
	r.Colors = make([]string, len(values))
	r.Ratios = make([]float64, len(values))
	for i, v := range values {
		if v == r.Min {
			r.Colors[i] = Best
			continue
		}
		// v != Min implies Max > Min, so scale is well defined.
		r.Ratios[i] = v / r.Min
		r.Colors[i] = Color(r.scale(v))
	}
	return r
}

// scale maps v linearly from [r.Min, r.Max] to [0, 1].
func (r Row) scale(v float64) float64 {
	return (v - r.Min) / (r.Max - r.Min)
}

// FormatRatio formats a ratio as a "(x.xx)" annotation, or returns ""
// for the best value.
func FormatRatio(ratio float64) string {
	switch {
	case ratio == 0:
		return ""
	case math.IsInf(ratio, 1):
		return "(Infinity)"
	}
	return fmt.Sprintf("(%.2f)", ratio)
}
