// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	v, err := FromHex("#a1b2c3")
	assert.NoError(t, err)
	assert.Equal(t, RGB, v.Space)
	assert.InDelta(t, float32(0xa1)/255, v.V[0], 1e-6)
	assert.InDelta(t, float32(0xb2)/255, v.V[1], 1e-6)
	assert.InDelta(t, float32(0xc3)/255, v.V[2], 1e-6)
	assert.Equal(t, float32(1), v.Alpha)
	v.Release()

	// short forms double each nibble
	v, err = FromHex("#abc")
	assert.NoError(t, err)
	assert.InDelta(t, float32(0xaa)/255, v.V[0], 1e-6)
	assert.InDelta(t, float32(0xbb)/255, v.V[1], 1e-6)
	assert.InDelta(t, float32(0xcc)/255, v.V[2], 1e-6)
	v.Release()

	v, err = FromHex("#abcd")
	assert.NoError(t, err)
	assert.InDelta(t, float32(0xdd)/255, v.Alpha, 1e-6)
	v.Release()

	v, err = FromHex("#11223344")
	assert.NoError(t, err)
	assert.InDelta(t, float32(0x44)/255, v.Alpha, 1e-6)
	v.Release()

	_, err = FromHex("#abcde")
	assert.Error(t, err)
	_, err = FromHex("#gghhii")
	assert.Error(t, err)
}

func TestFromStringFunctional(t *testing.T) {
	v, err := FromString("rgb(255 0 0)")
	assert.NoError(t, err)
	assert.Equal(t, RGB, v.Space)
	assert.Equal(t, []float32{1, 0, 0}, v.V)
	v.Release()

	// legacy comma form with alpha
	v, err = FromString("rgba(255, 0, 0, 0.5)")
	assert.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, v.V)
	assert.InDelta(t, 0.5, v.Alpha, 1e-6)
	v.Release()

	v, err = FromString("hsl(120deg 50% 75%)")
	assert.NoError(t, err)
	assert.Equal(t, HSL, v.Space)
	assert.InDelta(t, 120, v.V[0], 1e-4)
	assert.InDelta(t, 0.5, v.V[1], 1e-6)
	assert.InDelta(t, 0.75, v.V[2], 1e-6)
	v.Release()

	v, err = FromString("lab(52% 40.1 -59.2 / 25%)")
	assert.NoError(t, err)
	assert.Equal(t, Lab, v.Space)
	assert.InDelta(t, 0.52, v.V[0], 1e-6)
	assert.InDelta(t, 40.1, v.V[1], 1e-4)
	assert.InDelta(t, -59.2, v.V[2], 1e-4)
	assert.InDelta(t, 0.25, v.Alpha, 1e-6)
	v.Release()

	v, err = FromString("oklch(62% 0.17 240deg)")
	assert.NoError(t, err)
	assert.Equal(t, Oklch, v.Space)
	assert.InDelta(t, 0.62, v.V[0], 1e-6)
	assert.InDelta(t, 0.17, v.V[1], 1e-6)
	assert.InDelta(t, 240, v.V[2], 1e-4)
	v.Release()
}

func TestFromStringColorForm(t *testing.T) {
	v, err := FromString("color(srgb-linear 0.5 0.25 0.125)")
	assert.NoError(t, err)
	assert.Equal(t, LRGB, v.Space)
	assert.Equal(t, []float32{0.5, 0.25, 0.125}, v.V)
	v.Release()

	v, err = FromString("color(xyz 0.3 0.4 0.5)")
	assert.NoError(t, err)
	assert.Equal(t, XYZ65, v.Space)
	v.Release()

	v, err = FromString("color(xyz-d50 0.3 0.4 0.5 / 0.5)")
	assert.NoError(t, err)
	assert.Equal(t, XYZ50, v.Space)
	assert.InDelta(t, 0.5, v.Alpha, 1e-6)
	v.Release()

	// any known space tag works verbatim as a profile
	v, err = FromString("color(hsv 200 0.5 0.5)")
	assert.NoError(t, err)
	assert.Equal(t, HSV, v.Space)
	v.Release()

	_, err = FromString("color(nonsense 1 2 3)")
	assert.Error(t, err)
}

func TestFromStringErrors(t *testing.T) {
	for _, bad := range []string{
		"", "notacolor", "rgb(255 0 0", "rgb 255 0 0)",
		"rgb(1 2)", "rgb(x y z)", "color()",
	} {
		_, err := FromString(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	base := []float32{0.8, 0.2, 0.4}
	for sp := Space(0); sp < SpacesN; sp++ {
		v := New(sp, 0, 0, 0)
		assert.NoError(t, Convert(base, v.V, RGB, sp))
		s := Format(v, -1)
		p, err := FromString(s)
		assert.NoError(t, err, s)
		assert.Equal(t, sp, p.Space, s)
		hue := sp.HueChannel()
		for i := 0; i < 3; i++ {
			if i == hue {
				d := hueDelta(v.V[i], p.V[i])
				assert.LessOrEqual(t, d, float32(0.01), s)
				continue
			}
			assert.InDelta(t, v.V[i], p.V[i], 0.01, s)
		}
		p.Release()
		v.Release()
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "rgb(255 0 0)", Format(New(RGB, 1, 0, 0), -1))
	assert.Equal(t, "rgb(255 0 0 / 0.5)", Format(NewAlpha(RGB, 1, 0, 0, 0.5), -1))
	assert.Equal(t, "hsl(120deg 50% 75%)", Format(New(HSL, 120, 0.5, 0.75), -1))
	assert.Equal(t, "hwb(0deg 10% 20%)", Format(New(HWB, 0, 0.1, 0.2), -1))
	assert.Equal(t, "lab(52% 40.1 -59.2)", Format(New(Lab, 0.52, 40.1, -59.2), -1))
	assert.Equal(t, "lch(52% 70 120deg)", Format(New(LCh, 0.52, 70, 120), -1))
	assert.Equal(t, "oklab(63% 0.1 -0.1)", Format(New(Oklab, 0.63, 0.1, -0.1), -1))
	assert.Equal(t, "oklch(63% 0.17 240deg)", Format(New(Oklch, 0.63, 0.17, 240), -1))
	assert.Equal(t, "color(srgb-linear 0.5 0.25 0.125)", Format(New(LRGB, 0.5, 0.25, 0.125), -1))
	assert.Equal(t, "color(xyz-d65 0.3 0.4 0.5)", Format(New(XYZ65, 0.3, 0.4, 0.5), -1))
	assert.Equal(t, "color(xyz-d50 0.3 0.4 0.5)", Format(New(XYZ50, 0.3, 0.4, 0.5), -1))
	assert.Equal(t, "color(hsv 200 0.5 0.5)", Format(New(HSV, 200, 0.5, 0.5), -1))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex(New(RGB, 1, 0, 0), false))
	assert.Equal(t, "#ff000080", Hex(NewAlpha(RGB, 1, 0, 0, 0.5), true))

	// non-rgb values convert on the way out
	red := New(HSL, 0, 1, 0.5)
	assert.Equal(t, "#ff0000", Hex(red, false))

	// out-of-gamut channels clamp to the byte range
	assert.Equal(t, "#ff0000", Hex(New(RGB, 1.2, -0.1, 0), false))
}

func TestStringer(t *testing.T) {
	v := New(RGB, 1, 0, 0)
	assert.Equal(t, "rgb(255 0 0)", fmt.Sprint(v))
}
