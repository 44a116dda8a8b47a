// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "goki.dev/mat32/v2"

// Oklab <-> XYZ (D65) per Björn Ottosson's reference matrices:
// a fixed matrix into an LMS-like cone space, an elementwise cube root,
// and a fixed matrix into Oklab; the inverse cubes and applies the
// inverse matrices.

var (
	oklabM1 = [3][3]float32{
		{0.8190224432164319, 0.3619062562801221, -0.12887378261216414},
		{0.0329836671980271, 0.9292868468965546, 0.03614466816999844},
		{0.048177199566046255, 0.26423952494422764, 0.6335478258136937},
	}
	oklabM2 = [3][3]float32{
		{0.2104542553, 0.793617785, -0.0040720468},
		{1.9779984951, -2.428592205, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.808675766},
	}
	oklabM2Inv = [3][3]float32{
		{1.0, 0.3963377774, 0.2158037573},
		{1.0, -0.1055613458, -0.0638541728},
		{1.0, -0.0894841775, -1.291485548},
	}
	oklabM1Inv = [3][3]float32{
		{1.2268798733741557, -0.5578149965554813, 0.28139105017721583},
		{-0.04057576262431372, 1.1122868293970594, -0.07171106666151701},
		{-0.07637294974672142, -0.4214933239627914, 1.5869240244272418},
	}
)

// XYZ65ToOklab converts XYZ (D65) in to Oklab out (in may alias out).
func XYZ65ToOklab(in, out []float32) {
	var lms [3]float32
	matMul(oklabM1, in, lms[:])
	lms[0] = mat32.Cbrt(lms[0])
	lms[1] = mat32.Cbrt(lms[1])
	lms[2] = mat32.Cbrt(lms[2])
	matMul(oklabM2, lms[:], out)
}

// OklabToXYZ65 converts Oklab in to XYZ (D65) out (in may alias out).
func OklabToXYZ65(in, out []float32) {
	var lms [3]float32
	matMul(oklabM2Inv, in, lms[:])
	lms[0] = lms[0] * lms[0] * lms[0]
	lms[1] = lms[1] * lms[1] * lms[1]
	lms[2] = lms[2] * lms[2] * lms[2]
	matMul(oklabM1Inv, lms[:], out)
}
