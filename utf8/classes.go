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

package utf8

// Character classes for token recognizers. They take full code points but
// are locale-independent and byte-level: everything outside the ASCII
// range is uniformly false, sentinels included. Languages with Unicode
// identifiers bring their own tables on top of these.

// IsASCII reports whether c is a 7-bit code point.
func IsASCII(c rune) bool { return 0 <= c && c <= 0x7F }

func IsDigit(c rune) bool { return '0' <= c && c <= '9' }

// IsODigit reports whether c is an octal digit.
func IsODigit(c rune) bool { return '0' <= c && c <= '7' }

// IsBDigit reports whether c is a binary digit.
func IsBDigit(c rune) bool { return c == '0' || c == '1' }

func IsXDigit(c rune) bool {
	return IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func IsLower(c rune) bool { return 'a' <= c && c <= 'z' }
func IsUpper(c rune) bool { return 'A' <= c && c <= 'Z' }
func IsAlpha(c rune) bool { return IsLower(c) || IsUpper(c) }
func IsAlnum(c rune) bool { return IsAlpha(c) || IsDigit(c) }

func IsSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsBlank reports whether c separates words within a line.
func IsBlank(c rune) bool { return c == ' ' || c == '\t' }

func IsCntrl(c rune) bool { return 0 <= c && c < 0x20 || c == 0x7F }
func IsPrint(c rune) bool { return ' ' <= c && c <= '~' }
func IsGraph(c rune) bool { return '!' <= c && c <= '~' }
func IsPunct(c rune) bool { return IsGraph(c) && !IsAlnum(c) }

// ToLower folds ASCII upper case; any other code point passes through
// unchanged.
func ToLower(c rune) rune {
	if IsUpper(c) {
		return c + 'a' - 'A'
	}
	return c
}

// ToUpper folds ASCII lower case; any other code point passes through
// unchanged.
func ToUpper(c rune) rune {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

// Range returns a predicate reporting whether a code point lies in
// [lo, hi], both ends included.
func Range(lo, hi rune) func(rune) bool {
	return func(c rune) bool { return lo <= c && c <= hi }
}

// Any returns a predicate reporting whether a code point equals one of
// the given runes.
func Any(runes ...rune) func(rune) bool {
	return func(c rune) bool {
		for _, d := range runes {
			if c == d {
				return true
			}
		}
		return false
	}
}
