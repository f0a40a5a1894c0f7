/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package cache

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestStoreFetchesOnceAndCaches(t *testing.T) {
	var calls int32
	s := NewStore("test", func(k int32) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	})
	for i := 0; i < 3; i++ {
		v, err := s.Get(1)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != "value" {
			t.Errorf("Get() = %q, want %q", v, "value")
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("fetch called %d times, want 1", got)
	}
}

func TestStoreInvalidateForcesRefetch(t *testing.T) {
	var calls int32
	s := NewStore("test", func(k int32) (string, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			return "first", nil
		}
		return "second", nil
	})
	v, _ := s.Get(1)
	if v != "first" {
		t.Fatalf("Get() = %q, want %q", v, "first")
	}
	s.Invalidate(1)
	v, _ = s.Get(1)
	if v != "second" {
		t.Errorf("Get() after Invalidate = %q, want %q", v, "second")
	}
}

func TestStoreInvalidateMissingKeyIsNoop(t *testing.T) {
	s := NewStore("test", func(k int32) (string, error) { return "v", nil })
	s.Invalidate(42) // must not panic
}

func TestStorePropagatesFetchError(t *testing.T) {
	wantErr := errors.New("boom")
	s := NewStore("test", func(k int32) (string, error) { return "", wantErr })
	if _, err := s.Get(1); !errors.Is(err, wantErr) {
		t.Errorf("Get() error = %v, want %v", err, wantErr)
	}
}

func TestStorePeekDoesNotFetch(t *testing.T) {
	var calls int32
	s := NewStore("test", func(k int32) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "v", nil
	})
	if _, ok := s.Peek(1); ok {
		t.Fatal("Peek on empty store returned ok=true")
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("Peek triggered %d fetches, want 0", got)
	}
	s.Set(1, "preset")
	v, ok := s.Peek(1)
	if !ok || v != "preset" {
		t.Errorf("Peek() = (%q, %v), want (%q, true)", v, ok, "preset")
	}
}
