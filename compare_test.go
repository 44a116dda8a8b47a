// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualSameSpace(t *testing.T) {
	a := New(RGB, 1, 0, 0)
	b := New(RGB, 1, 0.004, 0)
	assert.True(t, Equal(a, b, 0.01))
	assert.False(t, Equal(a, b, 0.001))

	// a value is always equal to itself, whatever the tolerance
	assert.True(t, Equal(a, a, 0))

	a.Release()
	b.Release()
}

func TestEqualCrossSpace(t *testing.T) {
	a := New(RGB, 1, 0, 0)
	b := New(HSL, 0, 1, 0.5)
	assert.True(t, Equal(a, b, 0.001))
	assert.True(t, Equal(b, a, 0.001))

	c := New(Oklch, 0.6, 0.25, 29)
	assert.False(t, Equal(a, c, 0.001))
	c.Release()

	bad := New(Space(99), 1, 0, 0)
	assert.False(t, Equal(a, bad, 1))
	bad.Release()

	a.Release()
	b.Release()
}

func TestEqualAlphaGate(t *testing.T) {
	a := New(RGB, 1, 0, 0)
	b := a.WithAlpha(0.5)
	assert.False(t, Equal(a, b, 0.01))
	assert.True(t, Equal(a, b, 0.6))
	b.Release()
	a.Release()
}

func TestDistance(t *testing.T) {
	a := New(RGB, 1, 0, 0)
	b := New(RGB, 1, 0, 0)
	assert.InDelta(t, 0, Distance(a, b), 1e-4)

	white := New(RGB, 1, 1, 1)
	black := New(RGB, 0, 0, 0)
	dwb := Distance(white, black)
	assert.InDelta(t, 1, dwb, 0.02)

	// symmetric, and red is closer to orange than to blue
	orange := New(RGB, 1, 0.5, 0)
	blue := New(RGB, 0, 0, 1)
	assert.InDelta(t, Distance(a, orange), Distance(orange, a), 1e-5)
	assert.Less(t, Distance(a, orange), Distance(a, blue))

	// mixed-space input converts before measuring
	ok, err := a.In(Oklab)
	assert.NoError(t, err)
	assert.InDelta(t, 0, Distance(a, ok), 1e-4)

	ok.Release()
	orange.Release()
	blue.Release()
	white.Release()
	black.Release()
	a.Release()
	b.Release()
}
