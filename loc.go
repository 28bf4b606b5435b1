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

package fe

import (
	"fmt"
	"strconv"
)

// A Pos is a row/column position in a source file, both 1-based; zero
// means "unknown". Pass Pos around by value.
type Pos struct {
	Row uint16
	Col uint16
}

// IsValid reports whether p denotes a known position.
func (p Pos) IsValid() bool { return p.Row != 0 }

func (p Pos) String() string {
	if p.Row == 0 {
		return "<unknown position>"
	}
	if p.Col == 0 {
		return strconv.Itoa(int(p.Row))
	}
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// A Loc is a span within a source file. Finis names the last position
// inside the span, not one past it. A Loc is small; pass it by value.
//
// Path is borrowed, not owned: whoever mints Locs must keep the path
// string alive for as long as any Loc derived from it. Comparison with ==
// checks Path by pointer identity, so all Locs into one file should share
// a single path pointer (the driver usually owns it).
type Loc struct {
	Path  *string
	Begin Pos
	Finis Pos
}

// At returns the single-position location of pos within path.
func At(path *string, pos Pos) Loc { return Loc{path, pos, pos} }

// IsValid reports whether l denotes a known location.
func (l Loc) IsValid() bool { return l.Begin.IsValid() }

// AnewBegin returns the location collapsed onto its begin position.
func (l Loc) AnewBegin() Loc { return Loc{l.Path, l.Begin, l.Begin} }

// AnewFinis returns the location collapsed onto its finis position.
func (l Loc) AnewFinis() Loc { return Loc{l.Path, l.Finis, l.Finis} }

// Join returns the span from l's begin to other's finis, in l's file.
func (l Loc) Join(other Loc) Loc { return Loc{l.Path, l.Begin, other.Finis} }

// String renders l the way diagnostics cite it: path:row:col, with a
// -col suffix when the span covers several columns of one row and a
// -row:col suffix when it covers several rows.
func (l Loc) String() string {
	if !l.IsValid() {
		return "<unknown location>"
	}
	path := "<unknown file>"
	if l.Path != nil {
		path = *l.Path
	}
	s := path + ":" + l.Begin.String()
	switch {
	case l.Begin == l.Finis:
	case l.Begin.Row == l.Finis.Row:
		s += "-" + strconv.Itoa(int(l.Finis.Col))
	default:
		s += "-" + l.Finis.String()
	}
	return s
}
