// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"goki.dev/colorspace"
	"goki.dev/colorspace/palette"
)

// MatchScales generates a [palette.Scales] color scale through the given
// stops and adjusts every step with [Match] so that each contrasts with
// the background by at least the target percentage.
func MatchScales(stops []colorspace.Value, steps int, bg colorspace.Value, target float32) []colorspace.Value {
	scale := palette.Scales(stops, steps)
	for i, c := range scale {
		m := Match(c, bg, target)
		c.Release()
		scale[i] = m
	}
	return scale
}
