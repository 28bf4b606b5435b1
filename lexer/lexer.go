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

// Package lexer provides the scanning core that concrete lexers build on.
//
// A Lexer keeps a fixed window of code points ahead of the cursor and
// tracks the source span of the token being scanned. Client lexers embed
// *Lexer and drive it with the Accept and Skip families; see the package
// examples.
package lexer

import (
	"bufio"
	"bytes"
	"io"

	"github.com/langtools/fe"
	"github.com/langtools/fe/ring"
	"github.com/langtools/fe/utf8"
)

// Lexer is the scanning core. It decodes code points from an input
// stream, exposes a fixed lookahead window over them, and maintains the
// source location of the token in flight.
//
// The lookahead may contain the utf8.EOF and utf8.Invalid sentinels;
// consuming either is harmless and neither is ever appended to the
// token text.
type Lexer struct {
	r     io.ByteReader
	ahead *ring.Ring[rune]
	loc   fe.Loc // span of the token being scanned
	peek  fe.Pos // position of the front of the lookahead
	buf   bytes.Buffer
}

// New creates a Lexer reading from r. If r does not implement
// io.ByteReader it is wrapped in a bufio.Reader. A leading byte order
// mark is discarded; a byte order mark anywhere else stays visible in
// the lookahead.
func New(r io.Reader, opts ...Option) *Lexer {
	o := options{lookahead: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lookahead < 1 {
		panic("lexer: lookahead must be at least 1")
	}
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	l := &Lexer{
		r:     br,
		ahead: ring.New[rune](o.lookahead),
		peek:  fe.Pos{Row: 1, Col: 1},
	}
	l.loc = fe.At(o.path, l.peek)
	for i := 0; i < o.lookahead; i++ {
		l.ahead.Put(utf8.Decode(br))
	}
	l.SkipRune(utf8.BOM)
	return l
}

// Front returns the code point under the cursor without consuming it.
// Equivalent to Ahead(0).
func (l *Lexer) Front() rune { return l.ahead.Front() }

// Ahead returns the i'th code point of the lookahead, 0 <= i < k.
func (l *Lexer) Ahead(i int) rune { return l.ahead.Peek(i) }

// Pos returns the position of the code point under the cursor.
func (l *Lexer) Pos() fe.Pos { return l.peek }

// Loc returns the span of the token being scanned, from the most recent
// Start through the last consumed code point.
func (l *Lexer) Loc() fe.Loc { return l.loc }

// Text returns the token text accumulated since the last Start.
func (l *Lexer) Text() string { return l.buf.String() }

// Start begins a new token at the cursor and clears the accumulated
// text.
func (l *Lexer) Start() {
	l.loc.Begin = l.peek
	l.loc.Finis = l.peek
	l.buf.Reset()
}

// Next consumes and returns the code point under the cursor, extending
// the current token's span over it. The text buffer is not touched; use
// the Accept family to accumulate text.
func (l *Lexer) Next() rune {
	l.loc.Finis = l.peek
	res := l.ahead.Put(utf8.Decode(l.r))
	switch c := l.ahead.Front(); {
	case c == '\n':
		l.peek.Row++
		l.peek.Col = 0
	case c == utf8.EOF:
		// nothing left to advance over
	case res == utf8.BOM:
		// zero width, the cursor does not move
	default:
		l.peek.Col++
	}
	return res
}

type appendMode int

const (
	appendOff appendMode = iota
	appendOn
	appendLower
	appendUpper
)

func (l *Lexer) accept(pred func(rune) bool, mode appendMode) bool {
	c := l.ahead.Front()
	if !pred(c) {
		return false
	}
	switch mode {
	case appendLower:
		c = utf8.ToLower(c)
	case appendUpper:
		c = utf8.ToUpper(c)
	}
	if mode != appendOff && c >= 0 {
		_ = utf8.Encode(&l.buf, c)
	}
	l.Next()
	return true
}

// Accept consumes the code point under the cursor and appends it to the
// token text if pred holds for it. It reports whether it consumed.
func (l *Lexer) Accept(pred func(rune) bool) bool {
	return l.accept(pred, appendOn)
}

// AcceptLower is Accept with the code point folded to lower case before
// appending. Folding applies to ASCII letters only.
func (l *Lexer) AcceptLower(pred func(rune) bool) bool {
	return l.accept(pred, appendLower)
}

// AcceptUpper is Accept with the code point folded to upper case before
// appending. Folding applies to ASCII letters only.
func (l *Lexer) AcceptUpper(pred func(rune) bool) bool {
	return l.accept(pred, appendUpper)
}

// Skip consumes the code point under the cursor without appending it if
// pred holds for it. It reports whether it consumed.
func (l *Lexer) Skip(pred func(rune) bool) bool {
	return l.accept(pred, appendOff)
}

// AcceptRune consumes and appends the code point under the cursor if it
// equals want.
func (l *Lexer) AcceptRune(want rune) bool {
	return l.accept(func(c rune) bool { return c == want }, appendOn)
}

// SkipRune consumes the code point under the cursor without appending
// it if it equals want.
func (l *Lexer) SkipRune(want rune) bool {
	return l.accept(func(c rune) bool { return c == want }, appendOff)
}
