// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package chart maps chart values to pixel coordinates and back, and
// computes the axis ticks of the graphs drawn below the rate chart.
package chart

import (
	"math"

	"github.com/juju/errors"
)

// GraphType selects the value to pixel policy of a calculator.
type GraphType string

const (
	GraphTypeRate    GraphType = "rate"
	GraphTypeLine    GraphType = "line"
	GraphTypeBalance GraphType = "balance"
)

const (
	// DefaultAreaMargin is the gap in pixels between the rate area and
	// the graphs drawn below it.
	DefaultAreaMargin = 8
	// DefaultRangePadding is added above and below the data range, as a
	// ratio of the data span.
	DefaultRangePadding = 0.1
)

// Null marks a missing data point in a literal value list.
var Null = math.NaN()

// AxisTick is a labeled grid line.
type AxisTick struct {
	Value float64 `json:"value"`
	Y     int     `json:"y"`
}

// PixelMapper provides the canvas geometry and the primitive transform of
// the rate area.
type PixelMapper interface {
	RateAreaHeight() int
	ProfitAreaHeight() int
	GraphAreaHeight() int
	CalculateY(value float64) float64
	CalculateValue(y float64) float64
}

// Calculator converts values of one graph to pixel coordinates.
//
// CalculateRange must be called once per data refresh before the other
// methods give meaningful results. After that CalculateY, CalculateValue
// and CalculateAxises only read the cached range and may be called from
// several goroutines.
type Calculator interface {
	Type() GraphType
	Range() Range
	CalculateRange(series []*Series, bounds []float64)
	// CalculateY returns false for a null value.
	CalculateY(value float64) (int, bool)
	CalculateValue(y int) string
	CalculateAxises(candidates []float64) []AxisTick
}

// Option tunes the layout of a calculator.
type Option func(*layout)

type layout struct {
	margin  int
	padding float64
}

// WithAreaMargin sets the gap between the rate area and the graph areas.
func WithAreaMargin(px int) Option {
	return func(l *layout) {
		l.margin = px
	}
}

// WithRangePadding sets the ratio of the data span added on both sides of
// the range.
func WithRangePadding(ratio float64) Option {
	return func(l *layout) {
		l.padding = ratio
	}
}

// ParseGraphType converts a type tag to a GraphType.
func ParseGraphType(tag string) (GraphType, error) {
	switch gt := GraphType(tag); gt {
	case GraphTypeRate, GraphTypeLine, GraphTypeBalance:
		return gt, nil
	}
	return "", errors.NotSupportedf("graph type %q", tag)
}

// Create builds the calculator registered for the type tag.
func Create(tag string, mapper PixelMapper, opts ...Option) (Calculator, error) {
	gt, err := ParseGraphType(tag)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return New(gt, mapper, opts...)
}

// New builds a calculator for the given graph type.
func New(gt GraphType, mapper PixelMapper, opts ...Option) (Calculator, error) {
	if mapper == nil {
		return nil, errors.NotValidf("nil pixel mapper")
	}
	l := layout{margin: DefaultAreaMargin, padding: DefaultRangePadding}
	for _, opt := range opts {
		opt(&l)
	}
	if l.margin < 0 {
		return nil, errors.NotValidf("area margin %d", l.margin)
	}
	if l.padding < 0 || math.IsNaN(l.padding) {
		return nil, errors.NotValidf("range padding %v", l.padding)
	}

	switch gt {
	case GraphTypeRate:
		return &RateCalculator{mapper: mapper}, nil
	case GraphTypeLine:
		return &LineCalculator{
			area:    lineArea(mapper, l),
			padding: l.padding,
		}, nil
	case GraphTypeBalance:
		return &BalanceCalculator{
			area:    balanceArea(mapper, l),
			padding: l.padding,
		}, nil
	}
	return nil, errors.NotSupportedf("graph type %q", string(gt))
}

// lineArea is placed below the profit area.
func lineArea(m PixelMapper, l layout) area {
	return area{
		top:    float64(m.RateAreaHeight() + l.margin + m.ProfitAreaHeight()),
		height: float64(m.GraphAreaHeight()),
	}
}

func balanceArea(m PixelMapper, l layout) area {
	return area{
		top:    float64(m.RateAreaHeight() + l.margin),
		height: float64(m.ProfitAreaHeight()),
	}
}
