// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolReuse(t *testing.T) {
	p := NewPool()
	buf := p.Acquire()
	assert.Equal(t, 3, len(buf))
	buf[0], buf[1], buf[2] = 1, 2, 3

	p.Release(buf)
	again := p.Acquire()
	assert.Same(t, &buf[0], &again[0])

	// a second acquire with an empty free-list allocates fresh
	fresh := p.Acquire()
	assert.NotSame(t, &buf[0], &fresh[0])
}

func TestPoolOverflow(t *testing.T) {
	p := NewPool()
	bufs := make([][]float32, 0, 2*PoolCapacity)
	for i := 0; i < 2*PoolCapacity; i++ {
		bufs = append(bufs, p.Acquire())
	}
	for _, b := range bufs {
		p.Release(b) // beyond capacity must drop silently
	}
	assert.Equal(t, PoolCapacity, len(p.free))
}

func TestPoolBadRelease(t *testing.T) {
	p := NewPool()
	p.Release(nil)
	p.Release(make([]float32, 4))
	assert.Equal(t, 0, len(p.free))
}

func TestPoolPreallocate(t *testing.T) {
	p := NewPool()
	p.Preallocate(8)
	assert.Equal(t, 8, len(p.free))

	p.Preallocate(10 * PoolCapacity)
	assert.Equal(t, PoolCapacity, len(p.free))

	p.Clear()
	assert.Equal(t, 0, len(p.free))
}

func TestSharedPool(t *testing.T) {
	buf := Acquire()
	Release(buf)
	again := Acquire()
	assert.Same(t, &buf[0], &again[0])
	Release(again)
}
