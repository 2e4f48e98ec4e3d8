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
	"github.com/juju/errors"
)

// Canvas is the PixelMapper of a chart whose rate area starts at the top
// of the drawing surface.
type Canvas struct {
	rateHeight   int
	profitHeight int
	graphHeight  int
	rateLow      float64
	rateHigh     float64
}

// NewCanvas checks the area heights. The rate range defaults to [0, 1].
func NewCanvas(rateHeight, profitHeight, graphHeight int) (*Canvas, error) {
	if rateHeight <= 0 || profitHeight <= 0 || graphHeight <= 0 {
		return nil, errors.NotValidf("canvas heights %d/%d/%d", rateHeight, profitHeight, graphHeight)
	}
	return &Canvas{
		rateHeight:   rateHeight,
		profitHeight: profitHeight,
		graphHeight:  graphHeight,
		rateHigh:     1,
	}, nil
}

// SetRateRange sets the values drawn at the bottom and the top of the
// rate area.
func (c *Canvas) SetRateRange(low, high float64) error {
	if !(high > low) {
		return errors.NotValidf("rate range [%v, %v]", low, high)
	}
	c.rateLow, c.rateHigh = low, high
	return nil
}

// FitRate sets the rate range to the padded range of the series.
func (c *Canvas) FitRate(series []*Series, padding float64) Range {
	r := computeRange(flatten(series, nil), padding)
	c.rateLow, c.rateHigh = r.Low, r.High
	return r
}

func (c *Canvas) RateAreaHeight() int   { return c.rateHeight }
func (c *Canvas) ProfitAreaHeight() int { return c.profitHeight }
func (c *Canvas) GraphAreaHeight() int  { return c.graphHeight }

func (c *Canvas) CalculateY(value float64) float64 {
	return (c.rateHigh - value) / (c.rateHigh - c.rateLow) * float64(c.rateHeight)
}

func (c *Canvas) CalculateValue(y float64) float64 {
	return c.rateHigh - y*(c.rateHigh-c.rateLow)/float64(c.rateHeight)
}
