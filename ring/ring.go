// Copyright 2025-2026 The langtools Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package ring implements the fixed-size lookahead buffer shared by the
// lexer and parser cores.
package ring

// A Ring is a FIFO holding exactly k items: Put inserts at the back and
// returns the evicted front, Peek indexes from the front. There is no
// grow or shrink; freshly created slots hold zero values.
//
// Lookaheads of one or two cover most languages, so k = 1 and k = 2 take
// direct-assignment paths with no modular arithmetic. Behavior is
// identical across all k.
type Ring[T any] struct {
	buf   []T
	first int
}

// New creates a Ring with k slots. k must be at least 1.
func New[T any](k int) *Ring[T] {
	if k < 1 {
		panic("ring: size must be at least 1")
	}
	return &Ring[T]{buf: make([]T, k)}
}

// Len returns the number of slots.
func (r *Ring[T]) Len() int { return len(r.buf) }

// Front returns the item at the logical front, like Peek(0).
func (r *Ring[T]) Front() T { return r.buf[r.first] }

// Peek returns the i-th item counted from the logical front. i must be
// in [0, Len()); anything else is a bug in the caller.
func (r *Ring[T]) Peek(i int) T {
	switch buf := r.buf; len(buf) {
	case 1, 2:
		// first is always 0 here, the bounds check stands in for the
		// contract check.
		return buf[i]
	default:
		if i < 0 || i >= len(buf) {
			panic("ring: peek out of range")
		}
		return buf[(r.first+i)%len(buf)]
	}
}

// Put inserts item at the back and returns the evicted front item.
func (r *Ring[T]) Put(item T) T {
	switch buf := r.buf; len(buf) {
	case 1:
		res := buf[0]
		buf[0] = item
		return res
	case 2:
		res := buf[0]
		buf[0], buf[1] = buf[1], item
		return res
	default:
		res := buf[r.first]
		buf[r.first] = item
		r.first = (r.first + 1) % len(buf)
		return res
	}
}

// Reset moves the logical front back to slot 0. Slot contents are kept.
func (r *Ring[T]) Reset() { r.first = 0 }
