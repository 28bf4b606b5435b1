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
	"io"
	"os"

	"github.com/langtools/fe/sym"
)

// A Driver bundles the state a front end shares across all of its lexers
// and parsers: the symbol pool (and with it the string arena) plus
// diagnostics bookkeeping. Create one Driver per compilation and hand it
// down by reference; the Driver is the sole owner of the pool, nothing
// else ever destroys it.
type Driver struct {
	*sym.Pool
	Out io.Writer // diagnostics sink; NewDriver sets it to os.Stderr

	numErrors   int
	numWarnings int
}

// NewDriver creates a Driver with a fresh symbol pool, reporting to
// standard error.
func NewDriver() *Driver {
	return &Driver{Pool: sym.NewPool(), Out: os.Stderr}
}

// Note emits a remark tied to loc. Notes are not counted.
func (d *Driver) Note(loc Loc, format string, args ...any) {
	d.diag(loc, "note", format, args)
}

// Warn emits a warning tied to loc and bumps the warning count.
func (d *Driver) Warn(loc Loc, format string, args ...any) {
	d.numWarnings++
	d.diag(loc, "warning", format, args)
}

// Err emits an error tied to loc and bumps the error count.
func (d *Driver) Err(loc Loc, format string, args ...any) {
	d.numErrors++
	d.diag(loc, "error", format, args)
}

func (d *Driver) diag(loc Loc, kind, format string, args []any) {
	fmt.Fprintf(d.Out, "%s: %s: %s\n", loc, kind, fmt.Sprintf(format, args...))
}

// NumErrors returns the number of errors emitted so far.
func (d *Driver) NumErrors() int { return d.numErrors }

// NumWarnings returns the number of warnings emitted so far.
func (d *Driver) NumWarnings() int { return d.numWarnings }
