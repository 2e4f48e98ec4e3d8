// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package chart

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Range is the vertical span a graph currently represents.
type Range struct {
	// Min and Max bound the data, Low and High the padded axis.
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	// Step between axis ticks, balance graphs only.
	Step float64 `json:"step,omitempty"`
	// Empty is set when no series had a value.
	Empty bool `json:"empty"`
	// Degenerate is set when Min equals Max, including the empty case.
	Degenerate bool `json:"degenerate"`
}

// Span returns the padded extent.
func (r Range) Span() float64 {
	return r.High - r.Low
}

// Anchor is the single value of a degenerate range.
func (r Range) Anchor() float64 {
	return r.Min
}

// computeRange reduces the values to a padded range. A degenerate range
// is widened by one unit on each side so the anchor sits in the middle of
// the area.
func computeRange(values []float64, padding float64) Range {
	r := Range{}
	if len(values) == 0 {
		r.Empty = true
		r.Degenerate = true
	} else {
		r.Min, r.Max = values[0], values[0]
		for _, v := range values[1:] {
			if v < r.Min {
				r.Min = v
			}
			if v > r.Max {
				r.Max = v
			}
		}
		r.Degenerate = r.Min == r.Max
	}

	lo, hi := r.Min, r.Max
	if r.Degenerate {
		lo--
		hi++
	}
	pad := (hi - lo) * padding
	r.Low = lo - pad
	r.High = hi + pad
	return r
}

// area is the pixel band a graph is drawn in.
type area struct {
	top    float64
	height float64
}

func (a area) middle() int {
	return roundHalfUp(a.top + a.height/2)
}

func (a area) y(r Range, v float64) int {
	return roundHalfUp(a.top + (r.High-v)/r.Span()*a.height)
}

func (a area) value(r Range, y int) float64 {
	if a.height == 0 {
		return r.High
	}
	return r.High - (float64(y)-a.top)*r.Span()/a.height
}

// roundHalfUp rounds ties toward positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// formatValue prints v with two decimals; negative zero prints as 0.00.
func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// stepLadder holds the step mantissas, largest first. Each decade of the
// half span gets the largest mantissa that fits, which keeps two to five
// ticks on the axis.
var stepLadder = []decimal.Decimal{
	decimal.NewFromInt(5),
	decimal.NewFromFloat(2.5),
	decimal.NewFromInt(1),
}

// stepFor picks the tick step for a padded span.
func stepFor(span float64) decimal.Decimal {
	if !(span > 0) || math.IsInf(span, 0) {
		return decimal.Zero
	}
	target := decimal.NewFromFloat(span / 2)
	exp := int32(math.Floor(math.Log10(span / 2)))
	// Log10 may land one decade off near exact powers of ten.
	for decimal.New(1, exp+1).LessThanOrEqual(target) {
		exp++
	}
	for decimal.New(1, exp).GreaterThan(target) {
		exp--
	}
	decade := decimal.New(1, exp)
	for _, m := range stepLadder {
		if s := m.Mul(decade); s.LessThanOrEqual(target) {
			return s
		}
	}
	return decade
}

// stepValues returns the multiples of step within [low, high], highest
// first.
func stepValues(low, high float64, step decimal.Decimal) []float64 {
	s, _ := step.Float64()
	if !(s > 0) {
		return nil
	}
	first := int64(math.Floor(high / s))
	last := int64(math.Ceil(low / s))
	var out []float64
	for i := first; i >= last; i-- {
		v, _ := step.Mul(decimal.NewFromInt(i)).Float64()
		out = append(out, v)
	}
	return out
}
