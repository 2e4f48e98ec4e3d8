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

// RateCalculator draws in the pre-scaled space of the pixel mapper. Rate
// axis ticks are produced by the rate chart itself.
type RateCalculator struct {
	mapper PixelMapper
}

func (c *RateCalculator) Type() GraphType {
	return GraphTypeRate
}

func (c *RateCalculator) Range() Range {
	return Range{}
}

func (c *RateCalculator) CalculateRange(series []*Series, bounds []float64) {}

func (c *RateCalculator) CalculateY(value float64) (int, bool) {
	if math.IsNaN(value) {
		return 0, false
	}
	return roundHalfUp(c.mapper.CalculateY(value)), true
}

func (c *RateCalculator) CalculateValue(y int) string {
	return formatValue(c.mapper.CalculateValue(float64(y)))
}

func (c *RateCalculator) CalculateAxises(candidates []float64) []AxisTick {
	return []AxisTick{}
}
