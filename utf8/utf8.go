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

// Package utf8 implements the codec underneath the lexer core: stateless
// decoding of a byte stream into code points, encoding back into bytes,
// and ASCII-only character classes for building token recognizers.
//
// Unlike the standard library's unicode/utf8, Decode works directly on an
// io.ByteReader and reports end of input and malformed sequences as
// in-band sentinel runes. That is what a lexer's hot loop wants: no error
// values to branch on and no separate end-of-input state to carry around.
package utf8

import (
	"errors"
	"io"
)

// Max is the maximum number of bytes in a UTF-8 sequence.
const Max = 4

// BOM is the byte order mark. Lexers discard a leading BOM; the codec
// itself never strips it.
const BOM rune = 0xFEFF

// Sentinels returned by Decode. Both are negative, so they can never
// collide with a code point.
const (
	EOF     rune = -1 // end of input
	Invalid rune = -2 // malformed byte sequence
)

// ErrRange is returned by Encode for values outside [0, 0x10FFFF].
var ErrRange = errors.New("utf8: code point out of range")

// seqLen returns the byte length of the sequence introduced by b, or 0 if
// b cannot introduce one.
func seqLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// Decode reads one UTF-8 sequence from r and returns its code point. It
// returns EOF at the end of the input and Invalid for a malformed
// sequence. A malformed sequence consumes the offending byte but nothing
// past it, so a caller that wants to resynchronize simply calls Decode
// again.
func Decode(r io.ByteReader) rune {
	b, err := r.ReadByte()
	if err != nil {
		return EOF
	}
	n := seqLen(b)
	switch n {
	case 0:
		return Invalid
	case 1:
		return rune(b)
	}
	c := rune(b) & (0x1F >> (n - 2))
	for i := 1; i != n; i++ {
		b, err = r.ReadByte()
		if err != nil || b&0xC0 != 0x80 {
			return Invalid
		}
		c = c<<6 | rune(b&0x3F)
	}
	return c
}

// Encode writes the canonical UTF-8 sequence for c to w. It returns
// ErrRange if c is not in [0, 0x10FFFF], or the first write error.
func Encode(w io.ByteWriter, c rune) error {
	if c < 0 || c > 0x10FFFF {
		return ErrRange
	}
	switch {
	case c <= 0x7F:
		return w.WriteByte(byte(c))
	case c <= 0x7FF:
		return put(w, byte(c>>6)|0xC0, byte(c)&0x3F|0x80)
	case c <= 0xFFFF:
		return put(w, byte(c>>12)|0xE0, byte(c>>6)&0x3F|0x80, byte(c)&0x3F|0x80)
	default:
		return put(w, byte(c>>18)|0xF0, byte(c>>12)&0x3F|0x80, byte(c>>6)&0x3F|0x80, byte(c)&0x3F|0x80)
	}
}

func put(w io.ByteWriter, bytes ...byte) error {
	for _, b := range bytes {
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}
