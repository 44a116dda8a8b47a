// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// Adapter is one edge of the conversion graph: a pure transform from a
// 3-element input buffer to a 3-element output buffer. Every adapter is
// safe when in and out are the same buffer; chains rely on this to run
// in place.
type Adapter func(in, out []float32)

// toHub holds the ordered adapter chain taking each space to its native
// XYZ hub. The hub spaces have no chain (nil copies through).
var toHub = [SpacesN][]Adapter{
	RGB:   {SRGBToLinear, LinearToXYZ65},
	HSL:   {HSLToHSV, HSVToRGB, SRGBToLinear, LinearToXYZ65},
	HSV:   {HSVToRGB, SRGBToLinear, LinearToXYZ65},
	HWB:   {HWBToHSV, HSVToRGB, SRGBToLinear, LinearToXYZ65},
	Lab:   {LabToXYZ50},
	LCh:   {PolarToRect, LabToXYZ50},
	LRGB:  {LinearToXYZ65},
	Oklab: {OklabToXYZ65},
	Oklch: {PolarToRect, OklabToXYZ65},
}

// fromHub holds the ordered adapter chain taking each space's native XYZ
// hub back to the space. The hub spaces have no chain.
var fromHub = [SpacesN][]Adapter{
	RGB:   {XYZ65ToLinear, LinearToSRGB},
	HSL:   {XYZ65ToLinear, LinearToSRGB, RGBToHSV, HSVToHSL},
	HSV:   {XYZ65ToLinear, LinearToSRGB, RGBToHSV},
	HWB:   {XYZ65ToLinear, LinearToSRGB, RGBToHSV, HSVToHWB},
	Lab:   {XYZ50ToLab},
	LCh:   {XYZ50ToLab, RectToPolar},
	LRGB:  {XYZ65ToLinear},
	Oklab: {XYZ65ToOklab},
	Oklch: {XYZ65ToOklab, RectToPolar},
}

// direct holds the same-model shortcut chains that bypass the hubs
// entirely, both for speed and to avoid compounding floating-point error
// through the nonlinear hub stages.
var direct [SpacesN][SpacesN][]Adapter

func init() {
	direct[RGB][HSV] = []Adapter{RGBToHSV}
	direct[HSV][RGB] = []Adapter{HSVToRGB}
	direct[RGB][HSL] = []Adapter{RGBToHSV, HSVToHSL}
	direct[HSL][RGB] = []Adapter{HSLToHSV, HSVToRGB}
	direct[RGB][HWB] = []Adapter{RGBToHSV, HSVToHWB}
	direct[HWB][RGB] = []Adapter{HWBToHSV, HSVToRGB}
	direct[HSV][HSL] = []Adapter{HSVToHSL}
	direct[HSL][HSV] = []Adapter{HSLToHSV}
	direct[HSV][HWB] = []Adapter{HSVToHWB}
	direct[HWB][HSV] = []Adapter{HWBToHSV}
	direct[HSL][HWB] = []Adapter{HSLToHSV, HSVToHWB}
	direct[HWB][HSL] = []Adapter{HWBToHSV, HSVToHSL}
	direct[RGB][LRGB] = []Adapter{SRGBToLinear}
	direct[LRGB][RGB] = []Adapter{LinearToSRGB}
	direct[Lab][LCh] = []Adapter{RectToPolar}
	direct[LCh][Lab] = []Adapter{PolarToRect}
	direct[Oklab][Oklch] = []Adapter{RectToPolar}
	direct[Oklch][Oklab] = []Adapter{PolarToRect}
}

func copyBuf(in, out []float32) {
	if &in[0] == &out[0] {
		return
	}
	out[0], out[1], out[2] = in[0], in[1], in[2]
}

// applyChain runs an ordered adapter chain from in to out (which may
// alias). An empty chain copies; a single step runs directly; longer
// chains stage interior steps through exactly one pooled scratch buffer,
// so extra allocation is O(1) regardless of chain length.
func applyChain(chain []Adapter, in, out []float32) {
	switch len(chain) {
	case 0:
		copyBuf(in, out)
	case 1:
		chain[0](in, out)
	default:
		scratch := Acquire()
		chain[0](in, scratch)
		for _, ad := range chain[1 : len(chain)-1] {
			ad(scratch, scratch)
		}
		chain[len(chain)-1](scratch, out)
		Release(scratch)
	}
}

// Convert writes the color in (in space from) into out as space to.
// in and out must each have 3 elements and may be the same buffer.
// Identity conversions copy; same-model pairs run their direct shortcut;
// everything else goes through the source space's XYZ hub, crosses the
// Bradford bridge if the target hub has a different white point, and
// descends the target space's chain. Channels are never clamped to the
// target gamut here; see [Clamp] for explicit gamut mapping.
func Convert(in, out []float32, from, to Space) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("colorspace.Convert: cannot convert between %v and %v", from, to)
	}
	if from == to {
		copyBuf(in, out)
		return nil
	}
	if chain := direct[from][to]; chain != nil {
		applyChain(chain, in, out)
		return nil
	}
	applyChain(toHub[from], in, out)
	srcHub, dstHub := hubs[from], hubs[to]
	if srcHub != dstHub {
		if srcHub == XYZ65 {
			XYZ65ToXYZ50(out, out)
		} else {
			XYZ50ToXYZ65(out, out)
		}
	}
	applyChain(fromHub[to], out, out)
	return nil
}

// ConvertHue writes the color in (in the given space) into out as the
// space's natural cylindrical / polar face (rgb -> hsl, lab -> lch,
// oklab -> oklch), returning the face space. Spaces with no polar
// counterpart copy through unchanged.
func ConvertHue(in, out []float32, space Space) (Space, error) {
	if !space.IsValid() {
		return SpacesN, fmt.Errorf("colorspace.ConvertHue: unknown space %v", space)
	}
	face := polarFaces[space]
	if face == space {
		copyBuf(in, out)
		return face, nil
	}
	return face, Convert(in, out, space, face)
}
