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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/signal18/graphcalc/chart"
	"github.com/signal18/graphcalc/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type calcOptions struct {
	graphType string
	input     string
	format    string
	bounds    []float64
	values    []float64
	pixels    []int
	axises    []float64
}

var calcOpts calcOptions

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVar(&calcOpts.graphType, "type", "line", "Graph type: rate, line or balance")
	calcCmd.Flags().StringVar(&calcOpts.input, "input", "", "Series file (.json or .toml)")
	calcCmd.Flags().StringVar(&calcOpts.format, "format", "text", "Output format: text or json")
	calcCmd.Flags().Float64SliceVar(&calcOpts.bounds, "bounds", nil, "Values the line range must include, overrides the file bounds")
	calcCmd.Flags().Float64SliceVar(&calcOpts.values, "value", nil, "Values to convert to pixel coordinates")
	calcCmd.Flags().IntSliceVar(&calcOpts.pixels, "pixel", nil, "Pixel coordinates to convert to values")
	calcCmd.Flags().Float64SliceVar(&calcOpts.axises, "axis", nil, "Axis candidates of line graphs")
	calcCmd.MarkFlagRequired("input")
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute coordinates and axis ticks of a graph",
	Long: `calc seeds the range of a graph with the series of the input file, then prints the
pixel coordinate of every --value, the value of every --pixel and the axis ticks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(os.Stdout, conf, calcOpts)
	},
}

// point has a nil Value and Y for a null input.
type point struct {
	Value *float64 `json:"value"`
	Y     *int     `json:"y"`
}

type pixelValue struct {
	Y     int    `json:"y"`
	Value string `json:"value"`
}

type tick struct {
	chart.AxisTick
	Label string `json:"label"`
}

type calcResult struct {
	Type   chart.GraphType `json:"type"`
	Range  chart.Range     `json:"range"`
	Points []point         `json:"points"`
	Values []pixelValue    `json:"values"`
	Axises []tick          `json:"axises"`
}

func calculate(conf config.Config, in *Input, opts calcOptions) (*calcResult, error) {
	canvas, err := chart.NewCanvas(conf.RateAreaHeight, conf.ProfitAreaHeight, conf.GraphAreaHeight)
	if err != nil {
		return nil, errors.Trace(err)
	}
	canvas.FitRate(in.Series, conf.RangePadding)

	calc, err := chart.Create(opts.graphType, canvas,
		chart.WithAreaMargin(conf.AreaMargin),
		chart.WithRangePadding(conf.RangePadding))
	if err != nil {
		return nil, errors.Trace(err)
	}
	bounds := opts.bounds
	if len(bounds) == 0 {
		bounds = in.Bounds
	}
	calc.CalculateRange(in.Series, bounds)

	res := &calcResult{
		Type:   calc.Type(),
		Range:  calc.Range(),
		Points: []point{},
		Values: []pixelValue{},
		Axises: []tick{},
	}
	for _, v := range opts.values {
		p := point{}
		if y, ok := calc.CalculateY(v); ok {
			value := v
			p.Value, p.Y = &value, &y
		}
		res.Points = append(res.Points, p)
	}
	for _, y := range opts.pixels {
		res.Values = append(res.Values, pixelValue{Y: y, Value: calc.CalculateValue(y)})
	}
	for _, t := range calc.CalculateAxises(opts.axises) {
		res.Axises = append(res.Axises, tick{AxisTick: t, Label: chart.FormatTick(t, calc.Type())})
	}
	log.WithFields(log.Fields{
		"type":   res.Type,
		"series": len(in.Series),
		"ticks":  len(res.Axises),
	}).Info("Graph coordinates computed")
	return res, nil
}

func runCalc(out io.Writer, conf config.Config, opts calcOptions) error {
	in, err := LoadInput(opts.input)
	if err != nil {
		return errors.Annotatef(err, "could not load %s", opts.input)
	}
	res, err := calculate(conf, in, opts)
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Trace(enc.Encode(res))
	case "text":
		printResult(out, res)
		return nil
	}
	return errors.NotSupportedf("output format %q", opts.format)
}

func printResult(out io.Writer, res *calcResult) {
	fmt.Fprintf(out, "type: %s\n", res.Type)
	fmt.Fprintf(out, "range: [%g, %g]\n", res.Range.Low, res.Range.High)
	for _, p := range res.Points {
		if p.Y == nil {
			fmt.Fprintln(out, "y(null) = null")
			continue
		}
		fmt.Fprintf(out, "y(%g) = %d\n", *p.Value, *p.Y)
	}
	for _, v := range res.Values {
		fmt.Fprintf(out, "value(%d) = %s\n", v.Y, v.Value)
	}
	for _, t := range res.Axises {
		fmt.Fprintf(out, "tick %s y=%d\n", t.Label, t.Y)
	}
}
