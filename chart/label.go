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
	"strconv"

	humanize "github.com/dustin/go-humanize"
)

// FormatTick returns the label drawn next to a tick. Balance ticks are
// amounts with thousands separators, line ticks of four digits or more get
// an SI prefix.
func FormatTick(t AxisTick, gt GraphType) string {
	switch gt {
	case GraphTypeBalance:
		return humanize.Commaf(t.Value)
	case GraphTypeLine:
		if math.Abs(t.Value) >= 1000 {
			v, prefix := humanize.ComputeSI(t.Value)
			return strconv.FormatFloat(v, 'f', -1, 64) + prefix
		}
	}
	return strconv.FormatFloat(t.Value, 'f', -1, 64)
}
