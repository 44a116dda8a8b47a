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

// FromString returns a [Value] parsed from the given CSS color string.
// It accepts hex notation (#RGB, #RGBA, #RRGGBB, #RRGGBBAA), functional
// notation in both the legacy comma form and the modern space / slash
// form (rgb, rgba, hsl, hsla, hwb, lab, lch, oklab, oklch), and the
// generic color(profile v0 v1 v2 [/ alpha]) form, where the profile
// srgb-linear maps to lrgb, xyz and xyz-d65 map to xyz65, xyz-d50 maps
// to xyz50, and any other profile is used verbatim as a space tag.
// Channel values are normalized per space family: rgb channels are
// divided by 255 (percentages by 100), hsl/hwb saturation and lightness
// by 100, and lab/lch lightness by 100 (oklab/oklch lightness only when
// given as a percentage). Alpha accepts a number or percentage, clamped
// to 0-1.
func FromString(str string) (Value, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	if s == "" {
		return Value{}, fmt.Errorf("colorspace.FromString: cannot parse color from empty string")
	}
	if s[0] == '#' {
		return FromHex(s)
	}
	op := strings.IndexByte(s, '(')
	if op <= 0 || !strings.HasSuffix(s, ")") {
		return Value{}, fmt.Errorf("colorspace.FromString: cannot parse color from string %q", str)
	}
	name := strings.TrimSpace(s[:op])
	body := strings.TrimSpace(s[op+1 : len(s)-1])

	toks, alphaTok, err := splitArgs(body)
	if err != nil {
		return Value{}, fmt.Errorf("colorspace.FromString: %w in string %q", err, str)
	}

	space := SpacesN
	switch name {
	case "color":
		if len(toks) < 1 {
			return Value{}, fmt.Errorf("colorspace.FromString: color() without a profile in string %q", str)
		}
		space, err = spaceFromProfile(toks[0])
		if err != nil {
			return Value{}, err
		}
		toks = toks[1:]
	case "rgba":
		space = RGB
	case "hsla":
		space = HSL
	default:
		space, err = SpaceFromName(name)
		if err != nil {
			return Value{}, fmt.Errorf("colorspace.FromString: unknown function %q in string %q", name, str)
		}
	}
	if len(toks) != 3 {
		return Value{}, fmt.Errorf("colorspace.FromString: expected 3 channels, got %d in string %q", len(toks), str)
	}

	v := New(space, 0, 0, 0)
	for i, tok := range toks {
		v.V[i], err = parseChannel(tok, space, i)
		if err != nil {
			v.Release()
			return Value{}, fmt.Errorf("colorspace.FromString: %w in string %q", err, str)
		}
	}
	if alphaTok != "" {
		v.Alpha, err = parseAlpha(alphaTok)
		if err != nil {
			v.Release()
			return Value{}, fmt.Errorf("colorspace.FromString: %w in string %q", err, str)
		}
	}
	return v, nil
}

// splitArgs tokenizes a functional-notation body, handling both the
// legacy comma form (with an optional fourth alpha argument) and the
// modern space form (with an optional slash-separated alpha).
func splitArgs(body string) (toks []string, alphaTok string, err error) {
	if strings.ContainsRune(body, ',') {
		parts := strings.Split(body, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) == 4 {
			return parts[:3], parts[3], nil
		}
		return parts, "", nil
	}
	if main, al, found := strings.Cut(body, "/"); found {
		alphaTok = strings.TrimSpace(al)
		body = main
	}
	return strings.Fields(body), alphaTok, nil
}

// spaceFromProfile maps a color() profile keyword to its space tag.
func spaceFromProfile(profile string) (Space, error) {
	switch profile {
	case "srgb-linear":
		return LRGB, nil
	case "xyz", "xyz-d65":
		return XYZ65, nil
	case "xyz-d50":
		return XYZ50, nil
	}
	space, err := SpaceFromName(profile)
	if err != nil {
		return SpacesN, fmt.Errorf("colorspace.FromString: unknown color() profile %q", profile)
	}
	return space, nil
}

func parseChannel(tok string, space Space, idx int) (float32, error) {
	pct := strings.HasSuffix(tok, "%")
	tok = strings.TrimSuffix(tok, "%")
	tok = strings.TrimSuffix(tok, "deg")
	f64, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid channel value %q", tok)
	}
	f := float32(f64)
	if pct {
		return f / 100, nil
	}
	switch {
	case space == RGB:
		f /= 255
	case (space == HSL || space == HWB) && idx > 0:
		f /= 100
	case (space == Lab || space == LCh) && idx == 0:
		f /= 100
	}
	return f, nil
}

func parseAlpha(tok string) (float32, error) {
	pct := strings.HasSuffix(tok, "%")
	tok = strings.TrimSuffix(tok, "%")
	f64, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha value %q", tok)
	}
	f := float32(f64)
	if pct {
		f /= 100
	}
	return mat32.Clamp(f, 0, 1), nil
}

// FromHex returns a [Value] in rgb space parsed from a hex color string
// with an optional leading #. 3- and 4-digit forms double each nibble;
// 6- and 8-digit forms use one byte per channel; the optional fourth
// component is alpha. Any other length is an error.
func FromHex(hex string) (Value, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3, 4:
		var exp strings.Builder
		for _, r := range h {
			exp.WriteRune(r)
			exp.WriteRune(r)
		}
		h = exp.String()
	case 6, 8:
	default:
		return Value{}, fmt.Errorf("colorspace.FromHex: invalid hex color length in %q", hex)
	}
	n, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return Value{}, fmt.Errorf("colorspace.FromHex: invalid hex color %q: %w", hex, err)
	}
	alpha := float32(1)
	if len(h) == 8 {
		alpha = float32(n&0xff) / 255
		n >>= 8
	}
	r := float32(n>>16&0xff) / 255
	g := float32(n>>8&0xff) / 255
	b := float32(n&0xff) / 255
	return NewAlpha(RGB, r, g, b, alpha), nil
}
