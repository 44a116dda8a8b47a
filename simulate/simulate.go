// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simulate projects colors through color vision deficiency
// models, showing how they appear to viewers with the common forms of
// dichromacy or with total color blindness.
package simulate

import (
	"goki.dev/colorspace"
)

// Deficiency is a form of color vision deficiency.
type Deficiency int32

const (
	// Protanopia is missing long-wavelength (red) cone response.
	Protanopia Deficiency = iota

	// Deuteranopia is missing medium-wavelength (green) cone response.
	Deuteranopia

	// Tritanopia is missing short-wavelength (blue) cone response.
	Tritanopia

	// Achromatopsia is total color blindness: only luminance is perceived.
	Achromatopsia
)

var deficiencyNames = []string{"protanopia", "deuteranopia", "tritanopia", "achromatopsia"}

func (d Deficiency) String() string {
	if d < 0 || int(d) >= len(deficiencyNames) {
		return "unknown"
	}
	return deficiencyNames[d]
}

// Dichromacy projection matrices in linear sRGB, per Machado, Oliveira,
// and Fernandes (2009) at full severity.
var dichromatMats = [3][3][3]float32{
	Protanopia: {
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	},
	Deuteranopia: {
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	},
	Tritanopia: {
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	},
}

// Rec. 709 luma weights for the achromatopsia gray projection.
var lumaWeights = [3]float32{0.2126, 0.7152, 0.0722}

// Simulate returns the color as perceived with the given deficiency:
// the color is projected through the deficiency's mixing matrix in
// linear sRGB (or collapsed to luminance-weighted gray for
// achromatopsia), converted back into its original space, and clamped,
// since simulated colors frequently land slightly out of gamut. The
// original is untouched.
func Simulate(v colorspace.Value, d Deficiency) colorspace.Value {
	if d < Protanopia || d > Achromatopsia {
		return v.Clone()
	}
	lin, err := v.In(colorspace.LRGB)
	if err != nil {
		return v.Clone()
	}
	defer lin.Release()

	r, g, b := lin.V[0], lin.V[1], lin.V[2]
	if d == Achromatopsia {
		gray := lumaWeights[0]*r + lumaWeights[1]*g + lumaWeights[2]*b
		lin.V[0], lin.V[1], lin.V[2] = gray, gray, gray
	} else {
		m := dichromatMats[d]
		lin.V[0] = m[0][0]*r + m[0][1]*g + m[0][2]*b
		lin.V[1] = m[1][0]*r + m[1][1]*g + m[1][2]*b
		lin.V[2] = m[2][0]*r + m[2][1]*g + m[2][2]*b
	}

	out, err := lin.In(v.Space)
	if err != nil {
		return v.Clone()
	}
	colorspace.ClampInPlace(&out)
	return out
}
