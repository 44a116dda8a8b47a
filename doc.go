// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace converts, parses, formats, and perceptually
// manipulates colors across eleven representations: device sRGB, linear
// sRGB, HSV, HSL, HWB, CIE L*a*b* and LCh at illuminant D50, Oklab and
// Oklch, and CIE XYZ at both D65 and D50.
//
// The core is the conversion engine: a hub-and-bridge routing graph in
// which every space reaches every other through a short chain of pure
// adapter functions, funneling through its native XYZ hub and crossing a
// Bradford chromatic adaptation bridge only when the source and target
// reference white points differ. Same-model pairs (rgb and its
// cylindrical family, lab and lch, oklab and oklch) take direct
// shortcuts that bypass the hubs. Multi-step chains stage through a
// single buffer drawn from a bounded recycling [Pool], keeping the hot
// path free of per-conversion allocation.
//
// All execution is single-threaded and synchronous: the shared pool has
// no locking, so a concurrent host must confine it to one goroutine or
// give each goroutine its own [Pool].
//
// The subpackages build derived utilities on the engine: palette
// (harmonies, mixing, shades, scales), contrast (APCA), simulate
// (color vision deficiency), and picker (UI coordinate adapter).
package colorspace
