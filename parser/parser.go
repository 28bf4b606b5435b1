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

// Package parser provides the token shifting base for recursive descent
// parsers: a fixed token lookahead, accept/expect/eat consumption, and
// location tracking over multi-token constructs.
package parser

import (
	"github.com/langtools/fe"
	"github.com/langtools/fe/ring"
)

// A Token carries a tag identifying its kind and its source location.
type Token[Tag comparable] interface {
	Tag() Tag
	Loc() fe.Loc
}

// A Lexer produces the token stream a Parser consumes.
type Lexer[T any] interface {
	Lex() T
}

// Parser shifts tokens from a Lexer through a fixed lookahead window.
// Concrete parsers embed *Parser and consume tokens with Accept, Expect
// and Eat.
type Parser[T Token[Tag], Tag comparable] struct {
	// SyntaxErr is invoked by Expect when the front token does not
	// carry the wanted tag. ctxt names the construct being parsed.
	SyntaxErr func(want Tag, ctxt string, got T)

	lex   Lexer[T]
	ahead *ring.Ring[T]
	prev  fe.Loc
}

// New creates a Parser pulling from lex with a lookahead of k tokens.
// path is the file path used for locations before any token has been
// consumed; it may be nil.
func New[T Token[Tag], Tag comparable](lex Lexer[T], k int, path *string) *Parser[T, Tag] {
	p := &Parser[T, Tag]{
		lex:   lex,
		ahead: ring.New[T](k),
		prev:  fe.At(path, fe.Pos{Row: 1, Col: 1}),
	}
	for i := 0; i < k; i++ {
		p.ahead.Put(lex.Lex())
	}
	return p
}

// Ahead returns the i'th token of the lookahead, 0 <= i < k, without
// consuming anything.
func (p *Parser[T, Tag]) Ahead(i int) T { return p.ahead.Peek(i) }

// Lex consumes and returns the front token, pulling the next one from
// the lexer.
func (p *Parser[T, Tag]) Lex() T {
	res := p.ahead.Put(p.lex.Lex())
	p.prev = res.Loc()
	return res
}

// Accept consumes the front token if it carries tag. The second result
// reports whether it did.
func (p *Parser[T, Tag]) Accept(tag Tag) (T, bool) {
	if p.ahead.Front().Tag() != tag {
		var zero T
		return zero, false
	}
	return p.Lex(), true
}

// Expect is Accept, reporting a mismatch through SyntaxErr. ctxt names
// the construct being parsed and is handed through to the callback.
func (p *Parser[T, Tag]) Expect(tag Tag, ctxt string) (T, bool) {
	if tok, ok := p.Accept(tag); ok {
		return tok, true
	}
	if p.SyntaxErr != nil {
		p.SyntaxErr(tag, ctxt, p.ahead.Front())
	}
	var zero T
	return zero, false
}

// Eat consumes the front token, which must carry tag. It panics
// otherwise; use it only where the grammar already guarantees the tag.
func (p *Parser[T, Tag]) Eat(tag Tag) T {
	if p.ahead.Front().Tag() != tag {
		panic("parser: internal error")
	}
	return p.Lex()
}

// A Tracker accumulates the source span of a multi-token construct. It
// is anchored at the front token's begin when created and its Loc ends
// at the last consumed token.
type Tracker[T Token[Tag], Tag comparable] struct {
	p   *Parser[T, Tag]
	pos fe.Pos
}

// Tracker anchors a Tracker at the front token.
func (p *Parser[T, Tag]) Tracker() Tracker[T, Tag] {
	return Tracker[T, Tag]{p: p, pos: p.ahead.Front().Loc().Begin}
}

// Loc returns the span from the Tracker's anchor through the last
// consumed token.
func (t Tracker[T, Tag]) Loc() fe.Loc {
	return fe.Loc{Path: t.p.prev.Path, Begin: t.pos, Finis: t.p.prev.Finis}
}
