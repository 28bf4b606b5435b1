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

package sym

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"fortio.org/safecast"

	"github.com/langtools/fe/arena"
)

// header is the length prefix written in front of each pooled string.
const header = 4

// A Pool interns strings. Text bytes live in an Arena owned by the pool,
// so a Sym stays valid exactly as long as its pool. Share one pool across
// a whole compilation; do not share it between goroutines without
// external locking.
type Pool struct {
	arena *arena.Arena
	index map[string]Sym
	strs  []string // handle -> arena-backed view, 1-based
}

// NewPool creates an empty Pool with its own string arena.
func NewPool() *Pool {
	return &Pool{
		arena: arena.New(0),
		index: make(map[string]Sym),
	}
}

// Sym interns s. Interning the same text any number of times yields
// bit-identical Syms, so handing the result around and comparing with ==
// is all a front end ever needs to do with identifiers.
//
// The empty string and strings of up to MaxInline bytes never touch the
// pool at all.
func (p *Pool) Sym(s string) Sym {
	if len(s) == 0 {
		return 0
	}
	if len(s) <= MaxInline {
		w := uint64(len(s))
		for i := 0; i < len(s); i++ {
			w |= uint64(s[i]) << (8 * (i + 1))
		}
		return Sym(w)
	}

	// Tentatively copy s into the arena: a length prefix, the text, and a
	// terminating NUL. If the text turns out to be a duplicate, the
	// allocation is rewound instead of leaking a second copy.
	mark := p.arena.Mark()
	buf := p.arena.Alloc(header+len(s)+1, header)
	binary.LittleEndian.PutUint32(buf, uint32(len(s)))
	copy(buf[header:], s)
	buf[header+len(s)] = 0
	view := unsafe.String(&buf[header], len(s))

	if sym, ok := p.index[view]; ok {
		p.arena.Rewind(mark)
		return sym
	}
	handle, err := safecast.Convert[uint32](len(p.strs) + 1)
	if err != nil {
		panic(fmt.Errorf("sym: pool overflow: %w", err))
	}
	sym := Sym(uint64(handle) << 8)
	p.strs = append(p.strs, view)
	p.index[view] = sym
	return sym
}

// Bytes interns a byte slice; the pool copies it, the caller keeps
// ownership of b. This is the usual entry point for lexeme buffers.
func (p *Pool) Bytes(b []byte) Sym {
	return p.Sym(string(b))
}

// Value returns the text s denotes, in O(1). Inline and empty Syms
// resolve without consulting the table, so they work across pools.
// Passing a pooled Sym from a different Pool is a caller error.
func (p *Pool) Value(s Sym) string {
	if s == 0 || s.Inline() {
		return s.inlineValue()
	}
	return p.strs[uint64(s)>>8-1]
}

// Len returns the byte length of the text s denotes.
func (p *Pool) Len(s Sym) int {
	if n := s.Len(); n >= 0 {
		return n
	}
	return len(p.strs[uint64(s)>>8-1])
}

// Count returns the number of distinct pooled strings. Inline Syms are
// not counted: they never enter the pool.
func (p *Pool) Count() int { return len(p.strs) }
