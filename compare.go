// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "goki.dev/mat32/v2"

// Equal returns whether the two values represent the same color within
// the given per-channel tolerance. Values sharing the same buffer and
// space are trivially equal; an alpha difference beyond the tolerance
// fails immediately; same-space values compare channel by channel; for
// cross-space comparisons b is converted into a's space through one
// pooled scratch buffer first. A failed conversion (unknown space tag)
// compares unequal.
func Equal(a, b Value, tolerance float32) bool {
	if a.Space == b.Space && len(a.V) == 3 && len(b.V) == 3 && &a.V[0] == &b.V[0] {
		return mat32.Abs(a.Alpha-b.Alpha) <= tolerance
	}
	if mat32.Abs(a.Alpha-b.Alpha) > tolerance {
		return false
	}
	bv := b.V
	if a.Space != b.Space {
		scratch := Acquire()
		defer Release(scratch)
		if err := Convert(b.V, scratch, b.Space, a.Space); err != nil {
			return false
		}
		bv = scratch
	}
	for i := range a.V {
		if mat32.Abs(a.V[i]-bv[i]) > tolerance {
			return false
		}
	}
	return true
}

// Distance returns the Euclidean distance between the two colors in
// Oklab, converting either side through a pooled scratch buffer only
// when it is not already Oklab.
func Distance(a, b Value) float32 {
	av, bv := a.V, b.V
	if a.Space != Oklab {
		scratch := Acquire()
		defer Release(scratch)
		if err := Convert(a.V, scratch, a.Space, Oklab); err != nil {
			return 0
		}
		av = scratch
	}
	if b.Space != Oklab {
		scratch := Acquire()
		defer Release(scratch)
		if err := Convert(b.V, scratch, b.Space, Oklab); err != nil {
			return 0
		}
		bv = scratch
	}
	dl := av[0] - bv[0]
	da := av[1] - bv[1]
	db := av[2] - bv[2]
	return mat32.Sqrt(dl*dl + da*da + db*db)
}
