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

package arena

import "unsafe"

// Make allocates a zeroed T in the arena and returns a pointer to it.
//
// The garbage collector does not scan arena pages, so T must not contain
// Go pointers; store indices or arena-relative handles instead.
func Make[T any](a *Arena) *T {
	var zero T
	n := int(unsafe.Sizeof(zero))
	if n == 0 {
		return &zero
	}
	b := a.Alloc(n, int(unsafe.Alignof(zero)))
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// MakeSlice allocates a slice of n zeroed Ts whose backing array lives in
// the arena. Returns nil if n <= 0. The pointer-freedom rule of Make
// applies to the element type.
//
// The slice must not be appended past its capacity; append would move it
// out of the arena silently.
func MakeSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n)
	}
	b := a.Alloc(size*n, int(unsafe.Alignof(zero)))
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
