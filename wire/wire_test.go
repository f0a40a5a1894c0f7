/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package wire

import (
	"strings"
	"testing"
)

func TestIntRoundTrip(t *testing.T) {
	r := NewReader(strings.NewReader("42 -17 0\n"), 0)
	for _, want := range []int32{42, -17, 0} {
		got, err := r.Int()
		if err != nil {
			t.Fatalf("Int: %v", err)
		}
		if got != want {
			t.Errorf("Int() = %d, want %d", got, want)
		}
	}
}

func TestHollerithRoundTrip(t *testing.T) {
	f := NewFrame().HollerithString("hello world")
	r := NewReader(strings.NewReader(string(f.Bytes())), 0)
	got, err := r.HollerithString()
	if err != nil {
		t.Fatalf("HollerithString: %v", err)
	}
	if got != "hello world" {
		t.Errorf("HollerithString() = %q, want %q", got, "hello world")
	}
}

func TestHollerithEmpty(t *testing.T) {
	r := NewReader(strings.NewReader("0H"), 0)
	b, err := r.Hollerith()
	if err != nil {
		t.Fatalf("Hollerith: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("Hollerith() = %q, want empty", b)
	}
}

func TestBitstring(t *testing.T) {
	r := NewReader(strings.NewReader("1010"), 0)
	bits, err := r.Bitstring(4)
	if err != nil {
		t.Fatalf("Bitstring: %v", err)
	}
	want := []bool{true, false, true, false}
	for i, v := range want {
		if bits[i] != v {
			t.Errorf("bit %d = %v, want %v", i, bits[i], v)
		}
	}
}

func TestBitstringBadChar(t *testing.T) {
	r := NewReader(strings.NewReader("102"), 0)
	if _, err := r.Bitstring(3); err == nil {
		t.Fatal("expected error for non-binary bitstring char")
	}
}

func TestReadArrayNonEmpty(t *testing.T) {
	r := NewReader(strings.NewReader("3 { 1 2 3 }"), 0)
	got, err := ReadInt32Array(r)
	if err != nil {
		t.Fatalf("ReadInt32Array: %v", err)
	}
	want := []int32{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("elem %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReadArrayStarOptOut(t *testing.T) {
	r := NewReader(strings.NewReader("5 *"), 0)
	got, err := ReadInt32Array(r)
	if err != nil {
		t.Fatalf("ReadInt32Array: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0 for opted-out array", len(got))
	}
}

func TestArrayFrameRoundTrip(t *testing.T) {
	f := NewFrame().Array(3, func(f *Frame) {
		f.Int(1).Int(2).Int(3)
	})
	r := NewReader(strings.NewReader(string(f.Bytes())), 0)
	got, err := ReadInt32Array(r)
	if err != nil {
		t.Fatalf("ReadInt32Array: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestArrayFrameEmptySerializesAsStar(t *testing.T) {
	f := NewFrame().Array(0, func(f *Frame) {})
	if string(f.Bytes()) != "0 *" {
		t.Errorf("Array(0, ...) = %q, want %q", f.Bytes(), "0 *")
	}
}

func TestFloat(t *testing.T) {
	r := NewReader(strings.NewReader("3.25\n"), 0)
	got, err := r.Float()
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	if got != 3.25 {
		t.Errorf("Float() = %v, want 3.25", got)
	}
}

func TestLatin1RoundTrip(t *testing.T) {
	s := "äÄ"
	b := UTF8ToLatin1(s)
	if len(b) != 2 {
		t.Fatalf("UTF8ToLatin1 produced %d bytes, want 2", len(b))
	}
	got := Latin1ToUTF8(b)
	if got != s {
		t.Errorf("Latin1ToUTF8(UTF8ToLatin1(%q)) = %q", s, got)
	}
}
