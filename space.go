// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// Space is a supported color space. It tags every [Value] and drives all
// routing, bounds, and formatting table lookups.
type Space int32

const (
	// RGB is gamma-corrected (sRGB transfer) device RGB, channels 0-1.
	RGB Space = iota

	// HSL is hue (degrees), saturation, and lightness derived from sRGB.
	HSL

	// HSV is hue (degrees), saturation, and value derived from sRGB.
	HSV

	// HWB is hue (degrees), whiteness, and blackness derived from sRGB.
	HWB

	// Lab is CIE L*a*b* referenced to illuminant D50, with lightness
	// normalized to 0-1 and a, b in native CIELAB units.
	Lab

	// LCh is the cylindrical form of [Lab]: lightness, chroma, hue (degrees).
	LCh

	// LRGB is linear-light sRGB, channels 0-1 before gamma encoding.
	LRGB

	// Oklab is the Oklab perceptual space, referenced to illuminant D65.
	Oklab

	// Oklch is the cylindrical form of [Oklab]: lightness, chroma, hue (degrees).
	Oklch

	// XYZ50 is CIE XYZ referenced to illuminant D50; the D50 conversion hub.
	XYZ50

	// XYZ65 is CIE XYZ referenced to illuminant D65; the D65 conversion hub.
	XYZ65

	// SpacesN is the number of supported spaces.
	SpacesN
)

var spaceNames = [SpacesN]string{"rgb", "hsl", "hsv", "hwb", "lab", "lch", "lrgb", "oklab", "oklch", "xyz50", "xyz65"}

func (s Space) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Space(%d)", int32(s))
	}
	return spaceNames[s]
}

// IsValid returns whether the space is one of the supported spaces.
func (s Space) IsValid() bool {
	return s >= 0 && s < SpacesN
}

// SpaceFromName returns the [Space] with the given lowercase tag name
// (e.g., "rgb", "oklch", "xyz65"). It returns an error if no space has
// that name.
func SpaceFromName(name string) (Space, error) {
	for i, nm := range spaceNames {
		if nm == name {
			return Space(i), nil
		}
	}
	return SpacesN, fmt.Errorf("colorspace.SpaceFromName: unknown space name %q", name)
}

// hubs gives the reference-white hub that each space's conversion chain
// funnels through. The hub spaces map to themselves.
var hubs = [SpacesN]Space{
	RGB:   XYZ65,
	HSL:   XYZ65,
	HSV:   XYZ65,
	HWB:   XYZ65,
	Lab:   XYZ50,
	LCh:   XYZ50,
	LRGB:  XYZ65,
	Oklab: XYZ65,
	Oklch: XYZ65,
	XYZ50: XYZ50,
	XYZ65: XYZ65,
}

// Hub returns the XYZ reference-white hub ([XYZ50] or [XYZ65]) that
// conversions from this space funnel through.
func (s Space) Hub() Space {
	if !s.IsValid() {
		return SpacesN
	}
	return hubs[s]
}

// polarFaces gives the cylindrical / polar face of each space: the
// hue-bearing space that shares its model. Spaces with no polar
// counterpart (linear RGB and the XYZ hubs) map to themselves.
var polarFaces = [SpacesN]Space{
	RGB:   HSL,
	HSL:   HSL,
	HSV:   HSV,
	HWB:   HWB,
	Lab:   LCh,
	LCh:   LCh,
	LRGB:  LRGB,
	Oklab: Oklch,
	Oklch: Oklch,
	XYZ50: XYZ50,
	XYZ65: XYZ65,
}

// PolarFace returns the natural cylindrical / polar face of the space
// (e.g., rgb -> hsl, lab -> lch). Spaces with no polar counterpart
// return themselves.
func (s Space) PolarFace() Space {
	if !s.IsValid() {
		return SpacesN
	}
	return polarFaces[s]
}

// hueChannel is the index of the hue channel in each space, or -1 for
// spaces with no hue channel. Used by interpolation and gamut wrapping.
var hueChannel = [SpacesN]int{
	RGB:   -1,
	HSL:   0,
	HSV:   0,
	HWB:   0,
	Lab:   -1,
	LCh:   2,
	LRGB:  -1,
	Oklab: -1,
	Oklch: 2,
	XYZ50: -1,
	XYZ65: -1,
}

// HueChannel returns the index of the hue channel in this space,
// or -1 if the space has no hue channel.
func (s Space) HueChannel() int {
	if !s.IsValid() {
		return -1
	}
	return hueChannel[s]
}
