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

package parser_test

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/langtools/fe"
	"github.com/langtools/fe/lexer"
	"github.com/langtools/fe/parser"
	"github.com/langtools/fe/utf8"
)

type calcTag int

const (
	cEOF calcTag = iota
	cLit
	cAdd
	cSub
	cMul
	cDiv
	cParenL
	cParenR
	cErr
)

func (t calcTag) String() string {
	switch t {
	case cEOF:
		return "<end of file>"
	case cLit:
		return "<literal>"
	default:
		return [...]string{"", "", "+", "-", "*", "/", "(", ")", "<error>"}[t]
	}
}

type calcTok struct {
	tag calcTag
	loc fe.Loc
	val int64
}

func (t calcTok) Tag() calcTag { return t.tag }
func (t calcTok) Loc() fe.Loc  { return t.loc }

type calcLexer struct {
	*lexer.Lexer
	d *fe.Driver
}

func (x *calcLexer) Lex() calcTok {
	for {
		x.Start()
		switch {
		case x.SkipRune(utf8.EOF):
			return calcTok{tag: cEOF, loc: x.Loc()}
		case x.Skip(utf8.IsSpace):
		case x.AcceptRune('+'):
			return calcTok{tag: cAdd, loc: x.Loc()}
		case x.AcceptRune('-'):
			return calcTok{tag: cSub, loc: x.Loc()}
		case x.AcceptRune('*'):
			return calcTok{tag: cMul, loc: x.Loc()}
		case x.AcceptRune('/'):
			return calcTok{tag: cDiv, loc: x.Loc()}
		case x.AcceptRune('('):
			return calcTok{tag: cParenL, loc: x.Loc()}
		case x.AcceptRune(')'):
			return calcTok{tag: cParenR, loc: x.Loc()}
		case x.Accept(utf8.IsDigit):
			for x.Accept(utf8.IsDigit) {
			}
			v, _ := strconv.ParseInt(x.Text(), 10, 64)
			return calcTok{tag: cLit, loc: x.Loc(), val: v}
		default:
			x.d.Err(x.Loc().AnewBegin(), "invalid input character %q", x.Next())
		}
	}
}

type calcParser struct {
	*parser.Parser[calcTok, calcTag]
	d *fe.Driver
}

func newCalcParser(d *fe.Driver, src string, path *string) *calcParser {
	lex := &calcLexer{Lexer: lexer.New(strings.NewReader(src), lexer.Path(path)), d: d}
	p := &calcParser{Parser: parser.New[calcTok, calcTag](lex, 1, path), d: d}
	p.SyntaxErr = func(want calcTag, ctxt string, got calcTok) {
		d.Err(got.loc, "expected %v while parsing %s, got %v", want, ctxt, got.tag)
	}
	return p
}

var prec = map[calcTag]int{cAdd: 1, cSub: 1, cMul: 2, cDiv: 2}

func (p *calcParser) expr(min int) int64 {
	lhs := p.primary()
	for {
		op := p.Ahead(0).tag
		pr, ok := prec[op]
		if !ok || pr < min {
			return lhs
		}
		p.Eat(op)
		rhs := p.expr(pr + 1)
		switch op {
		case cAdd:
			lhs += rhs
		case cSub:
			lhs -= rhs
		case cMul:
			lhs *= rhs
		case cDiv:
			lhs /= rhs
		}
	}
}

func (p *calcParser) primary() int64 {
	if tok, ok := p.Accept(cLit); ok {
		return tok.val
	}
	if _, ok := p.Accept(cParenL); ok {
		v := p.expr(1)
		p.Expect(cParenR, "parenthesized expression")
		return v
	}
	if _, ok := p.Accept(cSub); ok {
		return -p.primary()
	}
	p.Expect(cLit, "primary expression")
	p.Lex()
	return 0
}

// A complete little front end: the lexer feeds a precedence climbing
// parser and both report through a shared driver.
func Example() {
	d := fe.NewDriver()
	d.Out = os.Stdout
	path := "calc"

	for _, src := range []string{"1 + 2 * 3", "(1 + 2) * -3", "4 / 2 +"} {
		p := newCalcParser(d, src, &path)
		track := p.Tracker()
		v := p.expr(1)
		p.Expect(cEOF, "calculation")
		fmt.Printf("%v: %s = %d\n", track.Loc(), src, v)
	}
	fmt.Println(d.NumErrors(), "errors")

	// Output:
	// calc:1:1-9: 1 + 2 * 3 = 7
	// calc:1:1-12: (1 + 2) * -3 = -9
	// calc:1:7: error: expected <literal> while parsing primary expression, got <end of file>
	// calc:1:1-7: 4 / 2 + = 2
	// 1 errors
}
