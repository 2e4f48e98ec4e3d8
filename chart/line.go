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

	log "github.com/sirupsen/logrus"
)

// LineCalculator maps indicator lines into the graph area below the
// profit area.
type LineCalculator struct {
	area    area
	padding float64
	rng     Range
}

func (c *LineCalculator) Type() GraphType {
	return GraphTypeLine
}

func (c *LineCalculator) Range() Range {
	return c.rng
}

// CalculateRange computes the padded range of all series. The bounds are
// merged with the data, so axis values given by the caller always stay
// visible.
func (c *LineCalculator) CalculateRange(series []*Series, bounds []float64) {
	c.rng = computeRange(flatten(series, bounds), c.padding)
	log.WithFields(log.Fields{
		"type":       GraphTypeLine,
		"low":        c.rng.Low,
		"high":       c.rng.High,
		"degenerate": c.rng.Degenerate,
	}).Debug("Graph range computed")
}

func (c *LineCalculator) CalculateY(value float64) (int, bool) {
	if math.IsNaN(value) {
		return 0, false
	}
	return c.area.y(c.rng, value), true
}

func (c *LineCalculator) CalculateValue(y int) string {
	return formatValue(c.area.value(c.rng, y))
}

// CalculateAxises projects the candidate values in the given order. The
// caller is responsible for keeping them within the range.
func (c *LineCalculator) CalculateAxises(candidates []float64) []AxisTick {
	ticks := []AxisTick{}
	if c.rng.Empty {
		return ticks
	}
	for _, v := range candidates {
		y, ok := c.CalculateY(v)
		if !ok {
			continue
		}
		ticks = append(ticks, AxisTick{Value: v, Y: y})
	}
	return ticks
}
