// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "goki.dev/mat32/v2"

// This file has the adapters for the sRGB side of the conversion graph:
// the piecewise gamma transfer between device and linear sRGB, the
// linear sRGB <-> XYZ (D65) matrices, and the cylindrical family
// (HSV, HSL, HWB) derived from device sRGB.

// SRGBFromLinearComp converts a linear sRGB component to its
// gamma-corrected device value, clamping negative linear inputs to 0
// before the fractional power is applied.
func SRGBFromLinearComp(lin float32) float32 {
	if lin < 0 {
		lin = 0
	}
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*mat32.Pow(lin, 1.0/2.4) - 0.055
}

// SRGBToLinearComp converts a gamma-corrected device sRGB component to
// its linear value.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return mat32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBToLinear decodes device sRGB in to linear sRGB out (in may alias out).
func SRGBToLinear(in, out []float32) {
	r := SRGBToLinearComp(in[0])
	g := SRGBToLinearComp(in[1])
	b := SRGBToLinearComp(in[2])
	out[0], out[1], out[2] = r, g, b
}

// LinearToSRGB encodes linear sRGB in to device sRGB out (in may alias out).
func LinearToSRGB(in, out []float32) {
	r := SRGBFromLinearComp(in[0])
	g := SRGBFromLinearComp(in[1])
	b := SRGBFromLinearComp(in[2])
	out[0], out[1], out[2] = r, g, b
}

// sRGB (D65) <-> XYZ matrices per IEC 61966-2-1 via Lindbloom.
var (
	linearToXYZMat = [3][3]float32{
		{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
		{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
		{0.01933081871559182, 0.11919477979462598, 0.9505321522496607},
	}
	xyzToLinearMat = [3][3]float32{
		{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
		{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
		{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
	}
)

func matMul(m [3][3]float32, in, out []float32) {
	x := m[0][0]*in[0] + m[0][1]*in[1] + m[0][2]*in[2]
	y := m[1][0]*in[0] + m[1][1]*in[1] + m[1][2]*in[2]
	z := m[2][0]*in[0] + m[2][1]*in[1] + m[2][2]*in[2]
	out[0], out[1], out[2] = x, y, z
}

// LinearToXYZ65 converts linear sRGB in to XYZ (D65) out (in may alias out).
func LinearToXYZ65(in, out []float32) {
	matMul(linearToXYZMat, in, out)
}

// XYZ65ToLinear converts XYZ (D65) in to linear sRGB out (in may alias out).
func XYZ65ToLinear(in, out []float32) {
	matMul(xyzToLinearMat, in, out)
}

// wrapHue normalizes a hue in degrees into [0, 360).
func wrapHue(h float32) float32 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

// RGBToHSV converts device sRGB in to HSV out (in may alias out), using
// the standard max / min / chroma sector formulas. Hue is 0 and
// saturation is 0 at the achromatic singularities (chroma = 0, value = 0).
func RGBToHSV(in, out []float32) {
	r, g, b := in[0], in[1], in[2]
	v := mat32.Max(r, mat32.Max(g, b))
	mn := mat32.Min(r, mat32.Min(g, b))
	c := v - mn
	var h, s float32
	if c != 0 {
		switch v {
		case r:
			h = 60 * ((g - b) / c)
		case g:
			h = 60 * ((b-r)/c + 2)
		default:
			h = 60 * ((r-g)/c + 4)
		}
		h = wrapHue(h)
	}
	if v != 0 {
		s = c / v
	}
	out[0], out[1], out[2] = h, s, v
}

// HSVToRGB converts HSV in to device sRGB out (in may alias out).
func HSVToRGB(in, out []float32) {
	h, s, v := wrapHue(in[0]), in[1], in[2]
	c := v * s
	hp := h / 60
	x := c * (1 - mat32.Abs(hp-2*mat32.Floor(hp/2)-1))
	var r, g, b float32
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	out[0], out[1], out[2] = r+m, g+m, b+m
}

// HSVToHSL converts HSV in to HSL out (in may alias out), using the
// closed-form value / lightness relation, with saturation 0 at the
// achromatic lightness extremes.
func HSVToHSL(in, out []float32) {
	h, s, v := in[0], in[1], in[2]
	l := v * (1 - s/2)
	var sl float32
	if l != 0 && l != 1 {
		sl = (v - l) / mat32.Min(l, 1-l)
	}
	out[0], out[1], out[2] = h, sl, l
}

// HSLToHSV converts HSL in to HSV out (in may alias out).
func HSLToHSV(in, out []float32) {
	h, s, l := in[0], in[1], in[2]
	v := l + s*mat32.Min(l, 1-l)
	var sv float32
	if v != 0 {
		sv = 2 * (1 - l/v)
	}
	out[0], out[1], out[2] = h, sv, v
}

// HSVToHWB converts HSV in to HWB out (in may alias out).
func HSVToHWB(in, out []float32) {
	h, s, v := in[0], in[1], in[2]
	out[0], out[1], out[2] = h, (1-s)*v, 1-v
}

// HWBToHSV converts HWB in to HSV out (in may alias out). When whiteness
// plus blackness meets or exceeds 1 the color is achromatic and both are
// scaled down proportionally.
func HWBToHSV(in, out []float32) {
	h, w, b := in[0], in[1], in[2]
	if w+b >= 1 {
		sum := w + b
		w /= sum
		b /= sum
	}
	v := 1 - b
	var s float32
	if v != 0 {
		s = 1 - w/v
	}
	out[0], out[1], out[2] = h, s, v
}
