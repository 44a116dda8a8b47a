// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	"goki.dev/mat32/v2"
)

// DefaultPrecision is the number of decimal places used when formatting
// channel values with a negative precision argument.
const DefaultPrecision = 4

// Format returns the CSS text form of the value with the given number of
// decimal places (negative for [DefaultPrecision]): rgb as integer 0-255
// channels, hsl and hwb with deg and % suffixes, lab and oklab with %
// lightness and raw a / b, lch and oklch with % lightness, raw chroma,
// and deg hue, and lrgb / xyz65 / xyz50 through the generic color() form
// with their profile keywords. Spaces with no dedicated form fall back
// to color(tag v0 v1 v2). Alpha below 1 is appended after a slash.
// Numeric channels are formatted as they are, without gamut clamping;
// only the rgb integer form clamps to its byte range.
func Format(v Value, prec int) string {
	if prec < 0 {
		prec = DefaultPrecision
	}
	var b strings.Builder
	switch v.Space {
	case RGB:
		fmt.Fprintf(&b, "rgb(%d %d %d", byteChannel(v.V[0]), byteChannel(v.V[1]), byteChannel(v.V[2]))
	case HSL:
		fmt.Fprintf(&b, "hsl(%sdeg %s%% %s%%", fmtNum(v.V[0], prec), fmtNum(v.V[1]*100, prec), fmtNum(v.V[2]*100, prec))
	case HWB:
		fmt.Fprintf(&b, "hwb(%sdeg %s%% %s%%", fmtNum(v.V[0], prec), fmtNum(v.V[1]*100, prec), fmtNum(v.V[2]*100, prec))
	case Lab:
		fmt.Fprintf(&b, "lab(%s%% %s %s", fmtNum(v.V[0]*100, prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	case LCh:
		fmt.Fprintf(&b, "lch(%s%% %s %sdeg", fmtNum(v.V[0]*100, prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	case Oklab:
		fmt.Fprintf(&b, "oklab(%s%% %s %s", fmtNum(v.V[0]*100, prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	case Oklch:
		fmt.Fprintf(&b, "oklch(%s%% %s %sdeg", fmtNum(v.V[0]*100, prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	case LRGB:
		fmt.Fprintf(&b, "color(srgb-linear %s %s %s", fmtNum(v.V[0], prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	case XYZ65:
		fmt.Fprintf(&b, "color(xyz-d65 %s %s %s", fmtNum(v.V[0], prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	case XYZ50:
		fmt.Fprintf(&b, "color(xyz-d50 %s %s %s", fmtNum(v.V[0], prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	default:
		fmt.Fprintf(&b, "color(%v %s %s %s", v.Space, fmtNum(v.V[0], prec), fmtNum(v.V[1], prec), fmtNum(v.V[2], prec))
	}
	if v.Alpha < 1 {
		fmt.Fprintf(&b, " / %s", fmtNum(v.Alpha, prec))
	}
	b.WriteByte(')')
	return b.String()
}

// Hex returns the hex text form of the value, converting to rgb space as
// needed and clamping each channel to its byte range. The alpha byte is
// appended when withAlpha is true.
func Hex(v Value, withAlpha bool) string {
	buf := v.V
	if v.Space != RGB {
		scratch := Acquire()
		defer Release(scratch)
		if err := Convert(v.V, scratch, v.Space, RGB); err != nil {
			scratch[0], scratch[1], scratch[2] = 0, 0, 0
		}
		buf = scratch
	}
	if withAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", byteChannel(buf[0]), byteChannel(buf[1]), byteChannel(buf[2]), byteChannel(v.Alpha))
	}
	return fmt.Sprintf("#%02x%02x%02x", byteChannel(buf[0]), byteChannel(buf[1]), byteChannel(buf[2]))
}

// byteChannel maps a 0-1 channel value to its rounded byte, clamped.
func byteChannel(x float32) uint8 {
	return uint8(mat32.Clamp(x, 0, 1)*255 + 0.5)
}

// round half-up to the given number of decimal places.
func roundTo(x float32, prec int) float32 {
	pow := mat32.Pow(10, float32(prec))
	return mat32.Floor(x*pow+0.5) / pow
}

func fmtNum(x float32, prec int) string {
	return strconv.FormatFloat(float64(roundTo(x, prec)), 'f', -1, 32)
}
