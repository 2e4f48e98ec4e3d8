// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package main

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/signal18/graphcalc/chart"
	"github.com/signal18/graphcalc/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConf = config.Config{
	RateAreaHeight:   200,
	ProfitAreaHeight: 100,
	GraphAreaHeight:  100,
	AreaMargin:       8,
	RangePadding:     0.1,
}

func TestRunCalcBalanceText(t *testing.T) {
	input := writeInput(t, "pl.json", `{"series": [
		{"values": [0, 100, 15280]},
		{"values": [-4720, 1234, null]}
	]}`)

	out := &bytes.Buffer{}
	err := runCalc(out, testConf, calcOptions{
		graphType: "balance",
		input:     input,
		format:    "text",
		values:    []float64{0, 13248, math.NaN()},
		pixels:    []int{225},
	})
	require.NoError(t, err)

	for _, line := range []string{
		"type: balance\n",
		"range: [-6720, 17280]\n",
		"y(0) = 280\n",
		"y(13248) = 225\n",
		"y(null) = null\n",
		"value(225) = 13200.00\n",
		"tick 10,000 y=238\n",
		"tick 0 y=280\n",
	} {
		assert.Contains(t, out.String(), line)
	}
}

func TestRunCalcLineJSON(t *testing.T) {
	input := writeInput(t, "line.toml", `
[[series]]
values = [1.0, 10.0, 20.0]

[[series]]
values = [-10.0, 3.0, 0.0]
absent = [2]
`)

	out := &bytes.Buffer{}
	err := runCalc(out, testConf, calcOptions{
		graphType: "line",
		input:     input,
		format:    "json",
		bounds:    []float64{20, 70},
		values:    []float64{12},
		pixels:    []int{377},
		axises:    []float64{-12, 21, 30},
	})
	require.NoError(t, err)

	var res calcResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, chart.GraphTypeLine, res.Type)
	require.Len(t, res.Points, 1)
	require.NotNil(t, res.Points[0].Y)
	assert.Equal(t, 377, *res.Points[0].Y)
	assert.Equal(t, []pixelValue{{Y: 377, Value: "11.76"}}, res.Values)
	require.Len(t, res.Axises, 3)
	assert.Equal(t, chart.AxisTick{Value: -12, Y: 402}, res.Axises[0].AxisTick)
	assert.Equal(t, "-12", res.Axises[0].Label)
}

func TestRunCalcRateUsesCanvas(t *testing.T) {
	input := writeInput(t, "rate.json", `{"series": [{"values": [100, 120]}]}`)

	res, err := calculate(testConf, mustLoad(t, input), calcOptions{
		graphType: "rate",
		values:    []float64{110},
		axises:    []float64{100, 120},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, *res.Points[0].Y)
	assert.Empty(t, res.Axises)
}

func TestRunCalcErrors(t *testing.T) {
	input := writeInput(t, "pl.json", `{"series": [{"values": [1]}]}`)

	err := runCalc(&bytes.Buffer{}, testConf, calcOptions{graphType: "candle", input: input, format: "text"})
	assert.True(t, errors.IsNotSupported(err))

	err = runCalc(&bytes.Buffer{}, testConf, calcOptions{graphType: "line", input: input, format: "xml"})
	assert.True(t, errors.IsNotSupported(err))

	bad := testConf
	bad.GraphAreaHeight = 0
	err = runCalc(&bytes.Buffer{}, bad, calcOptions{graphType: "line", input: input, format: "text"})
	assert.True(t, errors.IsNotValid(err))
}

func mustLoad(t *testing.T, path string) *Input {
	t.Helper()
	in, err := LoadInput(path)
	require.NoError(t, err)
	return in
}
