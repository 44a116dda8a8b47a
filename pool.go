// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// PoolCapacity is the maximum number of free buffers retained by a [Pool].
// Buffers released beyond this capacity are dropped for the garbage
// collector to reclaim.
const PoolCapacity = 256

// Pool is a bounded free-list of 3-element float32 buffers, recycled so
// that conversion chains do not allocate on every call. Buffers are not
// zeroed on acquire or release: every adapter fully overwrites its
// output, so reused buffers may carry stale channel data until written.
// A Pool is not safe for concurrent use; confine it to one goroutine or
// give each goroutine its own (see [NewPool]).
type Pool struct {
	free [][]float32
}

// NewPool returns a new empty [Pool]. Most callers can use the shared
// package-level pool via [Acquire] and [Release] instead.
func NewPool() *Pool {
	return &Pool{}
}

// Acquire returns a 3-element buffer, recycled from the free-list if one
// is available, freshly allocated otherwise. The buffer contents are
// undefined; the caller owns the buffer until it calls [Pool.Release].
func (p *Pool) Acquire() []float32 {
	n := len(p.free)
	if n == 0 {
		return make([]float32, 3)
	}
	buf := p.free[n-1]
	p.free = p.free[:n-1]
	return buf
}

// Release returns the given buffer to the free-list. The caller must not
// read or write the buffer afterward. Buffers beyond [PoolCapacity], nil
// buffers, and buffers of the wrong length are silently dropped.
func (p *Pool) Release(buf []float32) {
	if len(buf) != 3 || len(p.free) >= PoolCapacity {
		return
	}
	p.free = append(p.free, buf)
}

// Preallocate fills the free-list with up to n fresh buffers, capped at
// [PoolCapacity], so that subsequent [Pool.Acquire] calls do not allocate.
func (p *Pool) Preallocate(n int) {
	if n > PoolCapacity {
		n = PoolCapacity
	}
	for len(p.free) < n {
		p.free = append(p.free, make([]float32, 3))
	}
}

// Clear empties the free-list.
func (p *Pool) Clear() {
	p.free = nil
}

// pool is the shared package pool used by the conversion engine and the
// [Value] lifecycle functions. It is package-wide state with no locking,
// valid only under a single logical thread of control (see [Pool]).
var pool Pool

// Acquire returns a 3-element buffer from the shared package pool.
func Acquire() []float32 {
	return pool.Acquire()
}

// Release returns the given buffer to the shared package pool.
func Release(buf []float32) {
	pool.Release(buf)
}
