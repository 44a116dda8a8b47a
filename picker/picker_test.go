// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/colorspace"
)

func TestNew(t *testing.T) {
	p := New()
	assert.Equal(t, State{Hue: 0, Sat: 1, Val: 1, Alpha: 1}, p.State())
}

func TestSetXY(t *testing.T) {
	p := New()
	p.SetXY(0.25, 0.75)
	assert.Equal(t, float32(0.25), p.State().Sat)
	assert.Equal(t, float32(0.25), p.State().Val)

	x, y := p.XY()
	assert.Equal(t, float32(0.25), x)
	assert.Equal(t, float32(0.75), y)

	// out-of-range coordinates clamp
	p.SetXY(-1, 2)
	assert.Equal(t, float32(0), p.State().Sat)
	assert.Equal(t, float32(0), p.State().Val)
}

func TestSliders(t *testing.T) {
	p := New()
	p.SetHuePos(0.5)
	assert.Equal(t, float32(180), p.State().Hue)
	assert.Equal(t, float32(0.5), p.HuePos())
	p.SetHuePos(3)
	assert.Equal(t, float32(360), p.State().Hue)

	p.SetAlphaPos(0.25)
	assert.Equal(t, float32(0.25), p.State().Alpha)
	assert.Equal(t, float32(0.25), p.AlphaPos())
	p.SetAlphaPos(-2)
	assert.Equal(t, float32(0), p.State().Alpha)
}

func TestSubscribe(t *testing.T) {
	p := New()
	var got []State
	id := p.Subscribe(func(s State) {
		got = append(got, s)
	})

	p.SetHuePos(0.5)
	p.SetXY(1, 0)
	assert.Len(t, got, 2)
	assert.Equal(t, float32(180), got[0].Hue)
	assert.Equal(t, float32(1), got[1].Sat)

	p.Unsubscribe(id)
	p.SetAlphaPos(0.5)
	assert.Len(t, got, 2)

	// unknown ids are ignored
	p.Unsubscribe(99)
}

func TestSetColor(t *testing.T) {
	p := New()
	var notified bool
	p.Subscribe(func(State) { notified = true })

	c := colorspace.NewAlpha(colorspace.RGB, 0, 1, 1, 0.5)
	assert.NoError(t, p.SetColor(c))
	assert.True(t, notified)
	s := p.State()
	assert.Equal(t, float32(180), s.Hue)
	assert.Equal(t, float32(1), s.Sat)
	assert.Equal(t, float32(1), s.Val)
	assert.Equal(t, float32(0.5), s.Alpha)
	c.Release()

	bad := colorspace.New(colorspace.Space(99), 0, 0, 0)
	assert.Error(t, p.SetColor(bad))
	bad.Release()
}

func TestColor(t *testing.T) {
	p := New()
	p.SetHuePos(1.0 / 3)
	p.SetXY(1, 0)

	v, err := p.Color(colorspace.RGB)
	assert.NoError(t, err)
	assert.Equal(t, colorspace.RGB, v.Space)
	assert.InDelta(t, 0, v.V[0], 1e-4)
	assert.InDelta(t, 1, v.V[1], 1e-4)
	assert.InDelta(t, 0, v.V[2], 1e-4)
	v.Release()

	_, err = p.Color(colorspace.Space(99))
	assert.Error(t, err)
}
