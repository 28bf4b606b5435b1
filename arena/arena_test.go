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

package arena

import (
	"testing"
	"unsafe"
)

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

// Within one page, consecutive allocations return strictly increasing,
// non-overlapping addresses.
func TestAllocBump(t *testing.T) {
	a := New(1024)
	var prev []byte
	for i := 0; i < 16; i++ {
		b := a.Alloc(32, 1)
		if len(b) != 32 {
			t.Fatalf("Alloc(32) returned %d bytes", len(b))
		}
		if prev != nil && addr(b) < addr(prev)+32 {
			t.Fatalf("allocation %d overlaps its predecessor", i)
		}
		prev = b
	}
	if n := a.NumPages(); n != 1 {
		t.Fatalf("expected 1 page, got %d", n)
	}
}

func TestAllocZero(t *testing.T) {
	a := New(0)
	if b := a.Alloc(0, 1); b != nil {
		t.Fatalf("Alloc(0) = %v, want nil", b)
	}
	if b := a.Alloc(-5, 1); b != nil {
		t.Fatalf("Alloc(-5) = %v, want nil", b)
	}
}

func TestAlign(t *testing.T) {
	a := New(1024)
	a.Alloc(1, 1)
	for _, align := range []int{2, 4, 8, 16} {
		b := a.Alloc(3, align)
		if addr(b)%uintptr(align) != 0 {
			t.Errorf("Alloc(3, %d) not %d-aligned", align, align)
		}
	}
}

// Crossing the page boundary opens exactly one new page, sized
// max(pageSize, n).
func TestPageBoundary(t *testing.T) {
	a := New(64)
	a.Alloc(48, 1)
	if n := a.NumPages(); n != 1 {
		t.Fatalf("expected 1 page, got %d", n)
	}
	a.Alloc(32, 1) // does not fit in the 16 remaining bytes
	if n := a.NumPages(); n != 2 {
		t.Fatalf("expected 2 pages, got %d", n)
	}

	// An over-sized request gets a page of its own.
	a.Alloc(200, 1)
	if n := a.NumPages(); n != 3 {
		t.Fatalf("expected 3 pages, got %d", n)
	}
	// That page is exactly 200 bytes, so it is already full.
	a.Alloc(1, 1)
	if n := a.NumPages(); n != 4 {
		t.Fatalf("expected 4 pages, got %d", n)
	}
}

// Rewinding to a mark and re-allocating yields the same address as the
// first time around.
func TestRewind(t *testing.T) {
	a := New(1024)
	a.Alloc(16, 1)
	m := a.Mark()
	p1 := a.Alloc(24, 1)
	a.Rewind(m)
	p2 := a.Alloc(24, 1)
	if addr(p1) != addr(p2) {
		t.Fatalf("rewound allocation moved: %#x != %#x", addr(p1), addr(p2))
	}
}

// A Rewind across a page boundary is a no-op.
func TestRewindAcrossPage(t *testing.T) {
	a := New(64)
	p1 := a.Alloc(16, 1)
	m := a.Mark()
	a.Alloc(100, 1) // opens a new page
	a.Rewind(m)
	if n := a.NumPages(); n != 2 {
		t.Fatalf("Rewind dropped pages: %d", n)
	}
	p2 := a.Alloc(16, 1)
	if addr(p1) == addr(p2) {
		t.Fatal("Rewind across a page boundary must not reclaim memory")
	}
}

func TestMake(t *testing.T) {
	type vec struct{ x, y, z float64 }
	a := New(0)
	v := Make[vec](a)
	if *v != (vec{}) {
		t.Fatalf("Make returned non-zero memory: %+v", *v)
	}
	v.x, v.y, v.z = 1, 2, 3
	w := Make[vec](a)
	if *w != (vec{}) {
		t.Fatalf("Make returned dirty memory: %+v", *w)
	}
	if uintptr(unsafe.Pointer(v))%unsafe.Alignof(vec{}) != 0 {
		t.Fatal("Make returned misaligned pointer")
	}
}

func TestMakeSlice(t *testing.T) {
	a := New(0)
	s := MakeSlice[uint32](a, 10)
	if len(s) != 10 {
		t.Fatalf("len = %d, want 10", len(s))
	}
	for i := range s {
		if s[i] != 0 {
			t.Fatalf("s[%d] = %d, want 0", i, s[i])
		}
		s[i] = uint32(i)
	}
	if MakeSlice[uint32](a, 0) != nil {
		t.Fatal("MakeSlice(0) must return nil")
	}
}

func BenchmarkAlloc(b *testing.B) {
	a := New(0)
	m := a.Mark()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Alloc(24, 8)
		if i&1023 == 1023 {
			a.Rewind(m) // stay within the first page
		}
	}
}
