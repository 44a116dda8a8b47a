// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast measures and manipulates text / background contrast
// using the APCA (Advanced Perceptual Contrast Algorithm) lightness
// contrast value Lc, including rating tiers and lightness matching to a
// target contrast.
package contrast

import (
	"goki.dev/colorspace"
	"goki.dev/mat32/v2"
)

// SoftClampThreshold is the luminance below which [SoftClamp] lifts
// near-black values to prevent runaway contrast.
const SoftClampThreshold = 0.022

// Luminance returns the CIE relative luminance of the color: the Y
// channel of its XYZ (D65) form.
func Luminance(v colorspace.Value) float32 {
	scratch := colorspace.Acquire()
	defer colorspace.Release(scratch)
	if err := colorspace.Convert(v.V, scratch, v.Space, colorspace.XYZ65); err != nil {
		return 0
	}
	return scratch[1]
}

// SoftClamp lifts near-black luminance values: y is unchanged at or
// above the clamp threshold, and below it gains (threshold-y)^1.414.
func SoftClamp(y float32) float32 {
	if y >= SoftClampThreshold {
		return y
	}
	return y + mat32.Pow(SoftClampThreshold-y, 1.414)
}

// Lc returns the raw APCA contrast between soft-clamped text and
// background luminances: an asymmetric power law using exponents
// 0.56 / 0.57 when the background is lighter than the text and
// 0.65 / 0.62 when it is darker, scaled by 1.14. The result is positive
// on light backgrounds and negative on dark ones.
func Lc(yText, yBg float32) float32 {
	if yBg > yText {
		return (mat32.Pow(yBg, 0.56) - mat32.Pow(yText, 0.57)) * 1.14
	}
	return (mat32.Pow(yBg, 0.65) - mat32.Pow(yText, 0.62)) * 1.14
}

// Check returns the signed APCA contrast percentage between the text and
// background colors: positive for light backgrounds, negative for dark
// ones, with magnitudes below 0.001 snapped to exactly 0.
func Check(text, bg colorspace.Value) float32 {
	lc := Lc(SoftClamp(Luminance(text)), SoftClamp(Luminance(bg)))
	if mat32.Abs(lc) < 0.001 {
		return 0
	}
	return lc * 100
}

// CheckBulk returns the APCA contrast percentage of each text color
// against the one background.
func CheckBulk(texts []colorspace.Value, bg colorspace.Value) []float32 {
	out := make([]float32, len(texts))
	for i, txt := range texts {
		out[i] = Check(txt, bg)
	}
	return out
}

// Rating is an APCA contrast tier.
type Rating int32

const (
	Fail Rating = iota
	UI
	Bronze
	Silver
	Gold
	Platinum
)

var ratingNames = []string{"fail", "ui", "bronze", "silver", "gold", "platinum"}

func (r Rating) String() string {
	if r < 0 || int(r) >= len(ratingNames) {
		return "fail"
	}
	return ratingNames[r]
}

// RatingFor returns the contrast tier for the given signed contrast
// percentage, by absolute value: 90 and up is platinum, then gold (75),
// silver (60), bronze (45), ui (30), and fail below that.
func RatingFor(contrast float32) Rating {
	a := mat32.Abs(contrast)
	switch {
	case a >= 90:
		return Platinum
	case a >= 75:
		return Gold
	case a >= 60:
		return Silver
	case a >= 45:
		return Bronze
	case a >= 30:
		return UI
	}
	return Fail
}

// matchIterations is the fixed bisection depth of [Match].
const matchIterations = 12

// Match returns the color adjusted to contrast with the background by at
// least the target percentage, holding its oklch chroma and hue fixed
// and bisecting over lightness: toward 1 on dark backgrounds and toward
// 0 on light ones. The best lightness found meeting the target is used;
// if no lightness within reach meets it, the extreme is used. The result
// is converted back into the color's original space; the original is
// untouched.
func Match(v, bg colorspace.Value, target float32) colorspace.Value {
	ok, err := v.In(colorspace.Oklch)
	if err != nil {
		return v.Clone()
	}
	defer ok.Release()

	dark := Luminance(bg) < 0.5
	extreme := float32(0)
	if dark {
		extreme = 1
	}

	meets := func(l float32) bool {
		ok.V[0] = l
		return mat32.Abs(Check(ok, bg)) >= target
	}

	near, far := ok.V[0], extreme
	best := extreme
	if meets(near) {
		best = near
	} else {
		for i := 0; i < matchIterations; i++ {
			mid := (near + far) / 2
			if meets(mid) {
				far = mid
				best = mid
			} else {
				near = mid
			}
		}
	}

	ok.V[0] = best
	out, err := ok.In(v.Space)
	if err != nil {
		return v.Clone()
	}
	return out
}
