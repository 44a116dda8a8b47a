// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "goki.dev/mat32/v2"

// This file has the CIE adapters: XYZ (D50) <-> L*a*b*, the shared
// rectangular <-> polar adapter for the LCh faces, and the Bradford
// chromatic adaptation transform bridging the D65 and D50 hubs.

// Reference white points in XYZ, Y normalized to 1.
var (
	WhiteD65 = [3]float32{0.95047, 1.0, 1.08883}
	WhiteD50 = [3]float32{0.96422, 1.0, 0.82521}
)

// CIE 1976 L*a*b* constants: the linear-toe threshold and slope.
const (
	labEpsilon = 0.008856451679035631
	labKappa   = 903.2962962962963
)

func labCompress(t float32) float32 {
	if t > labEpsilon {
		return mat32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// XYZ50ToLab converts XYZ (D50) in to L*a*b* out (in may alias out).
// Lightness is normalized to 0-1; a and b are in native CIELAB units.
func XYZ50ToLab(in, out []float32) {
	fx := labCompress(in[0] / WhiteD50[0])
	fy := labCompress(in[1] / WhiteD50[1])
	fz := labCompress(in[2] / WhiteD50[2])
	l := (116*fy - 16) / 100
	a := 500 * (fx - fy)
	b := 200 * (fy - fz)
	out[0], out[1], out[2] = l, a, b
}

// LabToXYZ50 converts L*a*b* in to XYZ (D50) out (in may alias out),
// inverting the cube-root law with the linear toe below the CIE
// epsilon / kappa thresholds.
func LabToXYZ50(in, out []float32) {
	l100 := in[0] * 100
	fy := (l100 + 16) / 116
	fx := in[1]/500 + fy
	fz := fy - in[2]/200
	var xr, yr, zr float32
	if fx3 := fx * fx * fx; fx3 > labEpsilon {
		xr = fx3
	} else {
		xr = (116*fx - 16) / labKappa
	}
	if l100 > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l100 / labKappa
	}
	if fz3 := fz * fz * fz; fz3 > labEpsilon {
		zr = fz3
	} else {
		zr = (116*fz - 16) / labKappa
	}
	out[0] = xr * WhiteD50[0]
	out[1] = yr * WhiteD50[1]
	out[2] = zr * WhiteD50[2]
}

// RectToPolar converts a rectangular perceptual space to its cylindrical
// face (lab -> lch, oklab -> oklch): chroma is the hypotenuse of the two
// rectangular axes and hue is their angle in degrees, normalized into
// [0, 360). The lightness channel passes through (in may alias out).
func RectToPolar(in, out []float32) {
	l, a, b := in[0], in[1], in[2]
	c := mat32.Sqrt(a*a + b*b)
	h := mat32.RadToDeg(mat32.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	out[0], out[1], out[2] = l, c, h
}

// PolarToRect converts a cylindrical perceptual space back to its
// rectangular form (lch -> lab, oklch -> oklab) (in may alias out).
func PolarToRect(in, out []float32) {
	l, c, h := in[0], in[1], in[2]
	hr := mat32.DegToRad(h)
	a := c * mat32.Cos(hr)
	b := c * mat32.Sin(hr)
	out[0], out[1], out[2] = l, a, b
}

// Bradford cone response matrix and its inverse.
var (
	bradfordMat = [3][3]float32{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	bradfordInvMat = [3][3]float32{
		{0.9869929054667123, -0.14705425642099013, 0.15996265166373125},
		{0.4323052697233945, 0.5183602715367776, 0.0492912282128556},
		{-0.00852866457517732, 0.04004282165408487, 0.9684866957875502},
	}
)

// Per-channel cone response scale ratios between the adapted white
// points, computed once at init rather than per conversion.
var (
	bradford65To50 [3]float32
	bradford50To65 [3]float32
)

func init() {
	var cone65, cone50 [3]float32
	matMul(bradfordMat, WhiteD65[:], cone65[:])
	matMul(bradfordMat, WhiteD50[:], cone50[:])
	for i := range cone65 {
		bradford65To50[i] = cone50[i] / cone65[i]
		bradford50To65[i] = cone65[i] / cone50[i]
	}
}

func bradfordAdapt(scale [3]float32, in, out []float32) {
	var cone [3]float32
	matMul(bradfordMat, in, cone[:])
	cone[0] *= scale[0]
	cone[1] *= scale[1]
	cone[2] *= scale[2]
	matMul(bradfordInvMat, cone[:], out)
}

// XYZ65ToXYZ50 applies the Bradford chromatic adaptation transform from
// the D65 white point to D50 (in may alias out).
func XYZ65ToXYZ50(in, out []float32) {
	bradfordAdapt(bradford65To50, in, out)
}

// XYZ50ToXYZ65 applies the Bradford chromatic adaptation transform from
// the D50 white point to D65 (in may alias out).
func XYZ50ToXYZ65(in, out []float32) {
	bradfordAdapt(bradford50To65, in, out)
}
