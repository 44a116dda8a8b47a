// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	v := New(RGB, 1.2, -0.1, 0.5)
	c := Clamp(v)
	assert.Equal(t, []float32{1, 0, 0.5}, c.V)
	assert.Equal(t, []float32{1.2, -0.1, 0.5}, v.V)

	// idempotent
	c2 := Clamp(c)
	assert.Equal(t, c.V, c2.V)

	c2.Release()
	c.Release()
	v.Release()
}

func TestClampHueWrap(t *testing.T) {
	v := New(HSL, 380, 1.5, -0.5)
	ClampInPlace(&v)
	assert.Equal(t, []float32{20, 1, 0}, v.V)
	v.Release()

	v = New(Oklch, 0.5, 0.5, -30)
	ClampInPlace(&v)
	assert.Equal(t, []float32{0.5, 0.4, 330}, v.V)
	v.Release()
}

func TestClampPassThrough(t *testing.T) {
	v := New(XYZ65, 2, -1, 5)
	c := Clamp(v)
	assert.Equal(t, []float32{2, -1, 5}, c.V)
	c.Release()
	v.Release()

	v = New(Space(99), 2, -1, 5)
	ClampInPlace(&v)
	assert.Equal(t, []float32{2, -1, 5}, v.V)
	v.Release()
}

func TestInGamut(t *testing.T) {
	v := New(RGB, 1.005, 0, 0.5)
	assert.False(t, InGamut(v, 0))
	assert.True(t, InGamut(v, 0.01))
	v.Release()

	// hue channels never count against gamut
	v = New(HSL, 720, 0.5, 0.5)
	assert.True(t, InGamut(v, 0))
	v.Release()

	v = New(XYZ50, 9, 9, 9)
	assert.True(t, InGamut(v, 0))
	v.Release()
}

func TestBounds(t *testing.T) {
	b := Bounds(LCh)
	assert.NotNil(t, b)
	assert.True(t, b[2].Circular())
	assert.False(t, b[1].Circular())
	assert.Nil(t, Bounds(XYZ65))
	assert.Nil(t, Bounds(Space(-1)))
}
