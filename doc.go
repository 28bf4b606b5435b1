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

/*
Package fe provides the foundational building blocks for writing language
front ends: hand-written lexers and recursive-descent parsers that need
fast, allocation-cheap tokenization with precise source locations.

It is a toolkit, not a framework. The pieces are small and you pick the
ones you need:

  - arena: a page-based bump allocator; everything below allocates
    through it.
  - sym: interned strings. A sym.Sym is one machine word, comparing two
    of them with == compares string content in O(1), and strings of up
    to six bytes are packed into the word itself with no allocation.
  - ring: the fixed-size lookahead buffer shared by the lexer and parser
    cores.
  - utf8: a sentinel-based UTF-8 codec plus the ASCII character classes
    that token recognizers are written in terms of.
  - lexer: the character-level core. It decodes the input, keeps K code
    points of lookahead, tracks row/column positions and exposes
    Accept/Skip primitives that concrete lexers compose into token
    recognizers.
  - parser: the token-level mirror of the lexer core, generic over the
    concrete token type.

This package itself holds what the rest has in common: Pos and Loc, the
row/column position and span types every token and diagnostic carries,
and Driver, the shared per-compilation state (symbol pool plus
diagnostics counters).

# Writing a lexer

A concrete lexer embeds *lexer.Lexer and writes one recognizer per token
shape as a composition of Accept and Skip calls:

	l.Start()                     // begin a lexeme
	if l.Accept(utf8.IsAlpha) {
		for l.Accept(utf8.IsAlnum) {
		}
		return Tok{l.Loc(), Id, driver.Sym(l.Text())}
	}

There is no error to check anywhere on this path: end of input and
malformed UTF-8 travel in band as the negative code points utf8.EOF and
utf8.Invalid, and the concrete lexer decides whether to skip, complain,
or stop.

# Ownership

One Driver owns the symbol pool and the arena behind it; lexers and
parsers borrow it. Syms and Locs stay valid as long as the driver (and
the path strings handed to lexers) stay alive. None of this is safe for
concurrent use; give each goroutine its own driver, or fence a shared
one yourself.
*/
package fe
