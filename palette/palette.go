// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates color palettes from a base color: classic
// hue-rotation harmonies, two-color mixes with shortest-arc hue
// interpolation, evenly spaced shades, and multi-stop scales.
package palette

import (
	"goki.dev/colorspace"
	"goki.dev/mat32/v2"
)

// Harmony is a named set of hue rotations in degrees, each producing one
// color of the harmony relative to the base hue.
type Harmony struct {

	// Name identifies the harmony (e.g., "complementary").
	Name string

	// Ratios are the hue rotations in degrees for each generated color.
	Ratios []float32
}

// Harmonies is the standard set of hue-rotation harmonies.
var Harmonies = []Harmony{
	{"complementary", []float32{180}},
	{"split-complementary", []float32{150, 210}},
	{"triadic", []float32{120, 240}},
	{"tetradic", []float32{90, 180, 270}},
	{"analogous", []float32{-30, 30}},
}

// harmonyFace returns the polar face used for hue rotation: oklch for
// the oklab family, lch for the lab family, and hsl for everything else.
func harmonyFace(space colorspace.Space) colorspace.Space {
	switch space {
	case colorspace.Oklab, colorspace.Oklch:
		return colorspace.Oklch
	case colorspace.Lab, colorspace.LCh:
		return colorspace.LCh
	}
	return colorspace.HSL
}

// HarmonyColors generates the given harmonies from the base color: the
// base hue is extracted on the color's native polar face, rotated by
// each ratio (normalized into [0, 360)), and each generated color is
// converted back into the base color's space. The base color is
// untouched; the caller owns the returned values.
func HarmonyColors(base colorspace.Value, variants []Harmony) (map[string][]colorspace.Value, error) {
	face := harmonyFace(base.Space)
	fv, err := base.In(face)
	if err != nil {
		return nil, err
	}
	defer fv.Release()
	hueIdx := face.HueChannel()

	out := make(map[string][]colorspace.Value, len(variants))
	for _, h := range variants {
		vals := make([]colorspace.Value, 0, len(h.Ratios))
		for _, ratio := range h.Ratios {
			c := fv.Clone()
			c.V[hueIdx] = wrap360(c.V[hueIdx] + ratio)
			if err := c.Convert(base.Space); err != nil {
				c.Release()
				return out, err
			}
			vals = append(vals, c)
		}
		out[h.Name] = vals
	}
	return out, nil
}

// mixHueChannel is the channel interpolated on the shortest hue arc for
// each space: 0 for hsl and hwb, 2 for lch and oklch, none otherwise.
func mixHueChannel(space colorspace.Space) int {
	switch space {
	case colorspace.HSL, colorspace.HWB:
		return 0
	case colorspace.LCh, colorspace.Oklch:
		return 2
	}
	return -1
}

func wrap360(h float32) float32 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

// Mix returns the linear interpolation from start to end at weight t
// (clamped to 0-1) in start's space, converting end into that space
// first when needed. The hue channel, where the space has one, takes the
// signed shortest arc (wrapping an endpoint across 0 when the raw
// difference exceeds 180 degrees) and lands in [0, 360); every other
// channel, and alpha, interpolates linearly.
func Mix(start, end colorspace.Value, t float32) colorspace.Value {
	t = mat32.Clamp(t, 0, 1)
	ev := end
	if end.Space != start.Space {
		conv, err := end.In(start.Space)
		if err != nil {
			return start.Clone()
		}
		defer conv.Release()
		ev = conv
	}
	out := start.Clone()
	hueIdx := mixHueChannel(start.Space)
	for i := 0; i < 3; i++ {
		a, b := start.V[i], ev.V[i]
		if i == hueIdx {
			if mat32.Abs(b-a) > 180 {
				if b > a {
					a += 360
				} else {
					b += 360
				}
			}
			out.V[i] = wrap360(mat32.Lerp(a, b, t))
			continue
		}
		out.V[i] = mat32.Lerp(a, b, t)
	}
	out.Alpha = mat32.Lerp(start.Alpha, ev.Alpha, t)
	return out
}

// Shades returns steps evenly spaced mixes from start to end, inclusive
// of both endpoints. Zero or negative steps return nil; a single step
// returns a clone of start.
func Shades(start, end colorspace.Value, steps int) []colorspace.Value {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []colorspace.Value{start.Clone()}
	}
	out := make([]colorspace.Value, 0, steps)
	for i := 0; i < steps; i++ {
		out = append(out, Mix(start, end, float32(i)/float32(steps-1)))
	}
	return out
}

// Scales returns steps colors evenly spaced along the piecewise-linear
// scale through the given stops: each output position selects its
// enclosing stop segment and mixes within it. Zero or negative steps
// return nil; fewer than 2 stops return clones of the stops.
func Scales(stops []colorspace.Value, steps int) []colorspace.Value {
	if steps <= 0 {
		return nil
	}
	if len(stops) < 2 {
		out := make([]colorspace.Value, 0, len(stops))
		for _, s := range stops {
			out = append(out, s.Clone())
		}
		return out
	}
	if steps == 1 {
		return []colorspace.Value{stops[0].Clone()}
	}
	segs := len(stops) - 1
	out := make([]colorspace.Value, 0, steps)
	for i := 0; i < steps; i++ {
		pos := float32(i) / float32(steps-1) * float32(segs)
		seg := int(mat32.Floor(pos))
		if seg >= segs {
			seg = segs - 1
		}
		out = append(out, Mix(stops[seg], stops[seg+1], pos-float32(seg)))
	}
	return out
}
