// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "goki.dev/mat32/v2"

// ChannelBounds is the valid range of one channel in a space's gamut.
// A Max of exactly 360 marks a circular (hue) dimension, which wraps
// modulo 360 instead of clamping.
type ChannelBounds struct {
	Min, Max float32
}

// Circular returns whether this is a circular (hue) dimension.
func (cb ChannelBounds) Circular() bool {
	return cb.Max == 360
}

var hueBounds = ChannelBounds{0, 360}

// bounds is the per-space gamut table. The XYZ hub spaces have no entry:
// bounds lookups against them (or against unrecognized space tags) pass
// through unchanged rather than erroring, matching the advisory nature
// of the table.
var bounds = [SpacesN]*[3]ChannelBounds{
	RGB:   {{0, 1}, {0, 1}, {0, 1}},
	HSL:   {hueBounds, {0, 1}, {0, 1}},
	HSV:   {hueBounds, {0, 1}, {0, 1}},
	HWB:   {hueBounds, {0, 1}, {0, 1}},
	Lab:   {{0, 1}, {-100, 100}, {-100, 100}},
	LCh:   {{0, 1}, {0, 150}, hueBounds},
	LRGB:  {{0, 1}, {0, 1}, {0, 1}},
	Oklab: {{0, 1}, {-0.4, 0.4}, {-0.4, 0.4}},
	Oklch: {{0, 1}, {0, 0.4}, hueBounds},
}

// Bounds returns the gamut bounds for the given space, or nil if the
// space has no bounds table entry (the XYZ hubs and invalid tags).
func Bounds(space Space) *[3]ChannelBounds {
	if !space.IsValid() {
		return nil
	}
	return bounds[space]
}

func clampBuf(space Space, buf []float32) {
	cb := Bounds(space)
	if cb == nil {
		return
	}
	for i, b := range cb {
		if b.Circular() {
			buf[i] = wrapHue(buf[i])
		} else {
			buf[i] = mat32.Clamp(buf[i], b.Min, b.Max)
		}
	}
}

// Clamp returns a copy of the value with every bounded channel clamped
// into its gamut range and every circular (hue) channel wrapped into
// [0, 360). Values in spaces without a bounds entry are returned as
// plain clones. The original is untouched; see [ClampInPlace] to mutate.
func Clamp(v Value) Value {
	c := v.Clone()
	clampBuf(c.Space, c.V)
	return c
}

// ClampInPlace clamps the value into its space's gamut in place,
// with the same semantics as [Clamp].
func ClampInPlace(v *Value) {
	clampBuf(v.Space, v.V)
}

// InGamut returns whether every non-circular channel of the value lies
// within its bounds widened by the given tolerance on both sides.
// Circular (hue) channels are always in gamut, as are values in spaces
// without a bounds entry.
func InGamut(v Value, tolerance float32) bool {
	cb := Bounds(v.Space)
	if cb == nil {
		return true
	}
	for i, b := range cb {
		if b.Circular() {
			continue
		}
		if v.V[i] < b.Min-tolerance || v.V[i] > b.Max+tolerance {
			return false
		}
	}
	return true
}
