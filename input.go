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
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/buger/jsonparser"
	"github.com/juju/errors"
	"github.com/signal18/graphcalc/chart"
)

// Input is the data of one chart render pass.
type Input struct {
	Series []*chart.Series
	Bounds []float64
}

// LoadInput reads a .json or .toml series file.
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSONInput(data)
	case ".toml":
		return ParseTOMLInput(data)
	default:
		return nil, errors.NotSupportedf("input format %q", ext)
	}
}

// ParseJSONInput reads {"series":[{"name":"a","values":[1,null]}],"bounds":[0,1]}.
// Null values are kept as absent points.
func ParseJSONInput(data []byte) (*Input, error) {
	in := &Input{}
	var perr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, _ error) {
		if perr != nil {
			return
		}
		if dataType != jsonparser.Object {
			perr = errors.NotValidf("series %d", len(in.Series))
			return
		}
		s, err := parseJSONSeries(value, len(in.Series))
		if err != nil {
			perr = err
			return
		}
		in.Series = append(in.Series, s)
	}, "series")
	if err == jsonparser.KeyPathNotFoundError {
		return nil, errors.NotValidf("input without series")
	}
	if err != nil {
		return nil, errors.Annotate(err, "could not parse series")
	}
	if perr != nil {
		return nil, perr
	}

	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, _ error) {
		if perr != nil {
			return
		}
		if dataType != jsonparser.Number {
			perr = errors.NotValidf("bound %q", value)
			return
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			perr = errors.Trace(err)
			return
		}
		in.Bounds = append(in.Bounds, f)
	}, "bounds")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, errors.Annotate(err, "could not parse bounds")
	}
	return in, perr
}

func parseJSONSeries(data []byte, index int) (*chart.Series, error) {
	name, err := jsonparser.GetString(data, "name")
	if err != nil {
		name = fmt.Sprintf("series%d", index)
	}
	s := &chart.Series{Name: name}
	var perr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, _ error) {
		if perr != nil {
			return
		}
		switch dataType {
		case jsonparser.Null:
			s.Values = append(s.Values, math.NaN())
			s.IsAbsent = append(s.IsAbsent, true)
		case jsonparser.Number:
			f, err := jsonparser.ParseFloat(value)
			if err != nil {
				perr = errors.Annotatef(err, "series %s", name)
				return
			}
			s.Values = append(s.Values, f)
			s.IsAbsent = append(s.IsAbsent, false)
		default:
			perr = errors.NotValidf("value %q in series %s", value, name)
		}
	}, "values")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, errors.Annotatef(err, "series %s", name)
	}
	return s, perr
}

type tomlSeries struct {
	Name   string    `toml:"name"`
	Values []float64 `toml:"values"`
	Absent []int     `toml:"absent"`
}

type tomlInput struct {
	Series []tomlSeries `toml:"series"`
	Bounds []float64    `toml:"bounds"`
}

// ParseTOMLInput reads [[series]] tables. TOML has no null, absent points
// are listed by index.
func ParseTOMLInput(data []byte) (*Input, error) {
	var raw tomlInput
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Annotate(err, "could not parse input")
	}
	if len(raw.Series) == 0 {
		return nil, errors.NotValidf("input without series")
	}
	in := &Input{Bounds: raw.Bounds}
	for i, rs := range raw.Series {
		name := rs.Name
		if name == "" {
			name = fmt.Sprintf("series%d", i)
		}
		s := &chart.Series{
			Name:     name,
			Values:   rs.Values,
			IsAbsent: make([]bool, len(rs.Values)),
		}
		for _, idx := range rs.Absent {
			if idx < 0 || idx >= len(rs.Values) {
				return nil, errors.NotValidf("absent index %d in series %s", idx, name)
			}
			s.IsAbsent[idx] = true
		}
		in.Series = append(in.Series, s)
	}
	return in, nil
}
