// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker adapts normalized UI control coordinates to color
// state: a 2-D saturation / value plane, 1-D hue and alpha sliders, and
// a subscription mechanism notifying listeners of every state change.
// It holds state in HSV plus alpha, the native model of the plane.
package picker

import (
	"goki.dev/colorspace"
	"goki.dev/mat32/v2"
)

// State is the picker's color state: HSV channels plus alpha.
type State struct {

	// Hue in degrees, 0-360.
	Hue float32

	// Sat is the saturation, 0-1; the x axis of the 2-D plane.
	Sat float32

	// Val is the value, 0-1; inverted on the y axis of the 2-D plane.
	Val float32

	// Alpha is the opacity, 0-1.
	Alpha float32
}

// Picker maps normalized UI coordinates to HSV + alpha color state and
// back, notifying subscribers whenever the state changes. The zero
// value is not ready to use; call [New].
type Picker struct {
	state  State
	nextID int
	subs   map[int]func(State)
}

// New returns a new [Picker] initialized to opaque pure red
// (hue 0, full saturation and value).
func New() *Picker {
	return &Picker{
		state: State{Hue: 0, Sat: 1, Val: 1, Alpha: 1},
		subs:  map[int]func(State){},
	}
}

// State returns the current color state.
func (p *Picker) State() State {
	return p.state
}

// Subscribe registers a function called with the new state after every
// change, returning an id for [Picker.Unsubscribe].
func (p *Picker) Subscribe(fn func(State)) int {
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	return id
}

// Unsubscribe removes the subscription with the given id; unknown ids
// are ignored.
func (p *Picker) Unsubscribe(id int) {
	delete(p.subs, id)
}

func (p *Picker) notify() {
	for _, fn := range p.subs {
		fn(p.state)
	}
}

// SetXY sets the saturation / value plane position from normalized 2-D
// coordinates: x is saturation and y runs top to bottom from full value
// to none. Both are clamped to 0-1.
func (p *Picker) SetXY(x, y float32) {
	p.state.Sat = mat32.Clamp(x, 0, 1)
	p.state.Val = 1 - mat32.Clamp(y, 0, 1)
	p.notify()
}

// XY returns the current normalized saturation / value plane position.
func (p *Picker) XY() (x, y float32) {
	return p.state.Sat, 1 - p.state.Val
}

// SetHuePos sets the hue from a normalized 1-D slider position, clamped
// to 0-1 and scaled to degrees.
func (p *Picker) SetHuePos(t float32) {
	p.state.Hue = mat32.Clamp(t, 0, 1) * 360
	p.notify()
}

// HuePos returns the hue as a normalized 1-D slider position.
func (p *Picker) HuePos() float32 {
	return p.state.Hue / 360
}

// SetAlphaPos sets the alpha from a normalized 1-D slider position,
// clamped to 0-1.
func (p *Picker) SetAlphaPos(t float32) {
	p.state.Alpha = mat32.Clamp(t, 0, 1)
	p.notify()
}

// AlphaPos returns the alpha slider position.
func (p *Picker) AlphaPos() float32 {
	return p.state.Alpha
}

// SetColor sets the picker state from the given color, converting it to
// HSV through the engine.
func (p *Picker) SetColor(v colorspace.Value) error {
	hsv, err := v.In(colorspace.HSV)
	if err != nil {
		return err
	}
	defer hsv.Release()
	p.state = State{Hue: hsv.V[0], Sat: hsv.V[1], Val: hsv.V[2], Alpha: hsv.Alpha}
	p.notify()
	return nil
}

// Color returns the picker state as a [Value] in the given space.
// The caller owns (and eventually releases) the returned value.
func (p *Picker) Color(space colorspace.Space) (colorspace.Value, error) {
	hsv := colorspace.NewAlpha(colorspace.HSV, p.state.Hue, p.state.Sat, p.state.Val, p.state.Alpha)
	err := hsv.Convert(space)
	return hsv, err
}
