// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// Value is a color: a space tag, a 3-element channel buffer, and an
// alpha in 0-1 (1 = opaque). The buffer is exclusively owned by the
// Value; it comes from the shared [Pool] when constructed through [New]
// and goes back to it through [Value.Release], which is a caller
// obligation; there is no automatic reclamation. Channel semantics
// depend on the space and are never implicitly clamped or validated.
type Value struct {

	// Space is the color space the channel values are expressed in.
	Space Space

	// V is the channel buffer, always exactly 3 elements.
	V []float32

	// Alpha is the opacity in 0-1, 1 by default.
	Alpha float32
}

// New returns a fully opaque [Value] in the given space with the given
// channel values, drawing its buffer from the shared pool.
func New(space Space, v0, v1, v2 float32) Value {
	return NewAlpha(space, v0, v1, v2, 1)
}

// NewAlpha returns a [Value] in the given space with the given channel
// and alpha values, drawing its buffer from the shared pool.
func NewAlpha(space Space, v0, v1, v2, alpha float32) Value {
	buf := Acquire()
	buf[0], buf[1], buf[2] = v0, v1, v2
	return Value{Space: space, V: buf, Alpha: alpha}
}

// Clone returns a copy of the value with its own freshly drawn buffer;
// the original is untouched.
func (v Value) Clone() Value {
	return NewAlpha(v.Space, v.V[0], v.V[1], v.V[2], v.Alpha)
}

// WithAlpha returns a copy of the value (with its own buffer) with the
// given alpha.
func (v Value) WithAlpha(alpha float32) Value {
	c := v.Clone()
	c.Alpha = alpha
	return c
}

// Convert converts the value in place into the given space: the space
// tag and the channel buffer are both rewritten, preserving buffer
// identity. Alpha is unchanged.
func (v *Value) Convert(to Space) error {
	err := Convert(v.V, v.V, v.Space, to)
	if err != nil {
		return err
	}
	v.Space = to
	return nil
}

// In returns the value converted into the given space as a new [Value]
// with its own buffer; the original is untouched.
func (v Value) In(to Space) (Value, error) {
	c := v.Clone()
	err := c.Convert(to)
	return c, err
}

// Polar returns the value converted onto its space's natural cylindrical
// face (see [ConvertHue]) as a new [Value]; the original is untouched.
func (v Value) Polar() (Value, error) {
	c := v.Clone()
	face, err := ConvertHue(v.V, c.V, v.Space)
	if err != nil {
		return c, err
	}
	c.Space = face
	return c, nil
}

// Release returns the value's buffer to the shared pool and nils it.
// The value must not be used afterward.
func (v *Value) Release() {
	Release(v.V)
	v.V = nil
}

// String returns the CSS text form of the value at default precision,
// implementing [fmt.Stringer]. See [Format].
func (v Value) String() string {
	return Format(v, -1)
}
