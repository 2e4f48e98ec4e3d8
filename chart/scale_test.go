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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStepFor(t *testing.T) {
	var tests = []struct {
		span float64
		step string
	}{
		{24000, "10000"},
		{7497.6, "2500"},
		{1.14, "0.5"},
		{2, "1"},
		{200, "100"},
		{11, "5"},
		{0.004, "0.001"},
		{0, "0"},
		{-3, "0"},
	}

	for _, tt := range tests {
		if got := stepFor(tt.span).String(); got != tt.step {
			t.Errorf("stepFor(%v)=%s, want %s", tt.span, got, tt.step)
		}
	}
}

func TestStepValues(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]float64{10000, 0}, stepValues(-6720, 17280, decimal.NewFromInt(10000)))
	assert.Equal([]float64{0.3, 0.2, 0.1}, stepValues(0.05, 0.35, decimal.NewFromFloat(0.1)))
	assert.Nil(stepValues(-1, 1, decimal.Zero))
}

func TestComputeRange(t *testing.T) {
	assert := assert.New(t)

	r := computeRange([]float64{1, 10, 20, -10, 3}, 0.1)
	assert.Equal(-10.0, r.Min)
	assert.Equal(20.0, r.Max)
	assert.InDelta(-13, r.Low, 1e-9)
	assert.InDelta(23, r.High, 1e-9)
	assert.False(r.Degenerate)

	r = computeRange([]float64{10, 10}, 0.1)
	assert.True(r.Degenerate)
	assert.False(r.Empty)
	assert.Equal(10.0, r.Anchor())
	assert.InDelta(8.8, r.Low, 1e-9)
	assert.InDelta(11.2, r.High, 1e-9)

	r = computeRange(nil, 0.1)
	assert.True(r.Empty)
	assert.True(r.Degenerate)
	assert.Equal(0.0, r.Anchor())
	assert.InDelta(2.4, r.Span(), 1e-9)
}

func TestRoundHalfUp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, roundHalfUp(2.5))
	assert.Equal(-2, roundHalfUp(-2.5))
	assert.Equal(377, roundHalfUp(376.75))
	assert.Equal(367, roundHalfUp(367.375))
}

func TestFormatValue(t *testing.T) {
	var tests = []struct {
		v    float64
		want string
	}{
		{11.76, "11.76"},
		{10, "10.00"},
		{9.976, "9.98"},
		{-21.504, "-21.50"},
		{-0.0000001, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{2999883.0045, "2999883.00"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.v), "formatValue(%v)", tt.v)
	}
}

func TestFlatten(t *testing.T) {
	s := &Series{Values: []float64{1, 2, 3, math.Inf(1)}, IsAbsent: []bool{false, true}}
	got := flatten([]*Series{s, nil, NewSeries("b", Null, 4)}, []float64{math.NaN(), 7})
	assert.Equal(t, []float64{1, 3, 4, 7}, got)
}
