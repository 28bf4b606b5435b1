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

// Package arena implements a page-based bump allocator.
//
// An Arena pre-allocates pages and hands out aligned chunks of them.
// Nothing is ever freed individually: all memory is released at once when
// the Arena becomes unreachable. As an exception, Mark and Rewind can undo
// allocations that did not cross a page boundary, which supports the
// "tentatively allocate, roll back if unused" pattern the symbol pool is
// built on.
//
// An Arena and everything allocated from it belong to a single owner; it
// is not safe for concurrent use.
package arena

// DefaultPageSize is the page size used by New when none is given (1 MiB).
const DefaultPageSize = 1 << 20

type page struct {
	buf []byte
	off int
}

// An Arena is a bump allocator over a growing list of pages. Allocation
// happens at the end of the last page; earlier pages are full (or were
// abandoned when an allocation did not fit) and are never revisited.
type Arena struct {
	pages    []page
	pageSize int
}

// A State marks an allocation point captured with Mark and restored with
// Rewind.
type State struct {
	pages int
	off   int
}

// New creates an Arena with the given page size; if pageSize <= 0,
// DefaultPageSize is used. The first page is allocated eagerly.
func New(pageSize int) *Arena {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	a := &Arena{pageSize: pageSize}
	a.grow(pageSize)
	return a
}

// Alloc returns n bytes of fresh arena memory aligned to align, which must
// be a power of two. The bytes stay valid for the lifetime of the Arena.
// If the open page cannot satisfy the request, a new page sized
// max(pageSize, n) is opened and the allocation restarts at its base.
// Alloc returns nil if n <= 0.
//
// Running out of memory for a new page is fatal: the runtime throws, there
// is no error value to check on the hot path.
func (a *Arena) Alloc(n, align int) []byte {
	if n <= 0 {
		return nil
	}
	p := &a.pages[len(a.pages)-1]
	off := alignUp(p.off, align)
	if off+n > len(p.buf) {
		a.grow(n)
		p = &a.pages[len(a.pages)-1]
		off = 0
	}
	p.off = off + n
	return p.buf[off : off+n : off+n]
}

// Mark captures the current allocation state for a later Rewind.
func (a *Arena) Mark() State {
	return State{len(a.pages), a.pages[len(a.pages)-1].off}
}

// Rewind takes the arena back to s, releasing everything allocated since
// the matching Mark, but only if no page boundary was crossed in between.
// Otherwise Rewind does nothing: memory beyond a page boundary cannot be
// cheaply reclaimed, and the caller promised not to care.
func (a *Arena) Rewind(s State) {
	if s.pages == len(a.pages) {
		a.pages[len(a.pages)-1].off = s.off
	}
}

// NumPages returns the number of pages owned by the arena.
func (a *Arena) NumPages() int { return len(a.pages) }

func (a *Arena) grow(min int) {
	size := a.pageSize
	if min > size {
		size = min
	}
	a.pages = append(a.pages, page{buf: make([]byte, size)})
}

func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}
