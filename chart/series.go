// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package chart

import "math"

// Series is one plotted line. IsAbsent may be shorter than Values; a
// missing flag means the value is present unless it is NaN.
type Series struct {
	Name     string    `json:"name"`
	Values   []float64 `json:"values"`
	IsAbsent []bool    `json:"isAbsent,omitempty"`
}

// NewSeries builds a series, flagging NaN values as absent.
func NewSeries(name string, values ...float64) *Series {
	s := &Series{
		Name:     name,
		Values:   values,
		IsAbsent: make([]bool, len(values)),
	}
	for i, v := range values {
		s.IsAbsent[i] = math.IsNaN(v)
	}
	return s
}

// IsNull reports whether the i-th point has no value.
func (s *Series) IsNull(i int) bool {
	if i < len(s.IsAbsent) && s.IsAbsent[i] {
		return true
	}
	return math.IsNaN(s.Values[i])
}

// Present returns the non-null values in order.
func (s *Series) Present() []float64 {
	var out []float64
	for i, v := range s.Values {
		if !s.IsNull(i) {
			out = append(out, v)
		}
	}
	return out
}

// flatten merges the non-null values of every series with the extra
// values. Infinite values are skipped like absent ones.
func flatten(series []*Series, extra []float64) []float64 {
	var values []float64
	for _, s := range series {
		if s == nil {
			continue
		}
		for _, v := range s.Present() {
			if !math.IsInf(v, 0) {
				values = append(values, v)
			}
		}
	}
	for _, v := range extra {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			values = append(values, v)
		}
	}
	return values
}
