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

// Package sym implements interned strings.
//
// A Sym is a single machine word, yet comparing two Syms with == compares
// string content in O(1): the Pool never stores the same text twice, and
// short strings have exactly one packed encoding, so equal text always
// yields bit-identical words.
package sym

import "strconv"

// MaxInline is the longest byte length packed directly into a Sym word,
// with no pool and no allocation involved.
const MaxInline = 8 - 2

// A Sym is an interned string handle; pass it around by value and compare
// it with ==. The zero value denotes the empty string.
//
// The encoding is discriminated by the low byte of the word:
//   - the whole word is 0: the empty string;
//   - low byte in 1..MaxInline: an inline string, the low byte is the
//     length and the text bytes sit in the next MaxInline bytes;
//   - low byte 0, remainder nonzero: a handle into the owning Pool's
//     arena-backed string table.
//
// The explicit discriminant replaces the pointer-tagging trick often used
// for small-string inlining: it needs no assumptions about alignment or
// endianness, and it keeps raw pointers away from the garbage collector.
type Sym uint64

// IsValid reports whether s denotes a non-empty string.
func (s Sym) IsValid() bool { return s != 0 }

// Inline reports whether s carries its text in the word itself.
func (s Sym) Inline() bool { return s&0xFF != 0 }

// Len returns the byte length of inline text, or -1 for a pooled Sym
// whose length only the owning Pool knows.
func (s Sym) Len() int {
	switch {
	case s == 0:
		return 0
	case s.Inline():
		return int(s & 0xFF)
	}
	return -1
}

// String implements fmt.Stringer for inline and empty Syms. Pooled Syms
// render as sym(#handle); use Pool.Value for their text.
func (s Sym) String() string {
	if s == 0 || s.Inline() {
		return s.inlineValue()
	}
	return "sym(#" + strconv.FormatUint(uint64(s)>>8, 10) + ")"
}

func (s Sym) inlineValue() string {
	n := int(s & 0xFF)
	var b [MaxInline]byte
	w := uint64(s) >> 8
	for i := range b {
		b[i] = byte(w >> (8 * i))
	}
	return string(b[:n])
}
