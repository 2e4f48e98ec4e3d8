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

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// BalanceCalculator maps profit and loss amounts into the profit area,
// right below the rate chart.
type BalanceCalculator struct {
	area    area
	padding float64
	rng     Range
	step    decimal.Decimal
}

func (c *BalanceCalculator) Type() GraphType {
	return GraphTypeBalance
}

func (c *BalanceCalculator) Range() Range {
	return c.rng
}

// CalculateRange computes the padded range and the tick step. Bounds are
// ignored, the axis always follows the amounts.
func (c *BalanceCalculator) CalculateRange(series []*Series, _ []float64) {
	c.rng = computeRange(flatten(series, nil), c.padding)
	c.step = decimal.Zero
	if !c.rng.Degenerate {
		c.step = stepFor(c.rng.Span())
	}
	c.rng.Step, _ = c.step.Float64()
	log.WithFields(log.Fields{
		"type":       GraphTypeBalance,
		"low":        c.rng.Low,
		"high":       c.rng.High,
		"step":       c.step.String(),
		"degenerate": c.rng.Degenerate,
	}).Debug("Graph range computed")
}

func (c *BalanceCalculator) CalculateY(value float64) (int, bool) {
	if math.IsNaN(value) {
		return 0, false
	}
	return c.area.y(c.rng, value), true
}

func (c *BalanceCalculator) CalculateValue(y int) string {
	return formatValue(c.area.value(c.rng, y))
}

// CalculateAxises ignores the candidates. A degenerate range still gets
// its baseline.
func (c *BalanceCalculator) CalculateAxises(_ []float64) []AxisTick {
	if c.rng.Degenerate {
		return []AxisTick{{Value: c.rng.Anchor(), Y: c.area.middle()}}
	}
	ticks := []AxisTick{}
	for _, v := range stepValues(c.rng.Low, c.rng.High, c.step) {
		ticks = append(ticks, AxisTick{Value: v, Y: c.area.y(c.rng, v)})
	}
	return ticks
}
