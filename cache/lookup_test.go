/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package cache

import "testing"

// foldingTable builds a 256-byte collate table where 'a','A',0xE4 ('ä'
// in Latin-1) and 0xC4 ('Ä') all normalize to 'a', and every other
// byte maps to itself.
func foldingTable() []byte {
	t := make([]byte, 256)
	for i := range t {
		t[i] = byte(i)
	}
	t['A'] = 'a'
	t[0xE4] = 'a'
	t[0xC4] = 'a'
	return t
}

func TestRewriteCaseInsensitiveExpandsFoldedChar(t *testing.T) {
	table := foldingTable()
	got := rewriteCaseInsensitive("^a[0-9]+$", table)
	// Class members are emitted in ascending byte order: 'A'(0x41),
	// 'a'(0x61), 0xC4, 0xE4.
	want := "^[Aa\xc4\xe4][0-9]+$"
	if got != want {
		t.Errorf("rewriteCaseInsensitive = %q, want %q", got, want)
	}
}

func TestRewriteCaseInsensitiveLeavesBracketsAlone(t *testing.T) {
	table := foldingTable()
	got := rewriteCaseInsensitive("[abc]", table)
	if got != "[abc]" {
		t.Errorf("rewriteCaseInsensitive = %q, want unchanged %q", got, "[abc]")
	}
}

func TestRewriteCaseInsensitiveDegenerateClassUnchanged(t *testing.T) {
	table := foldingTable()
	got := rewriteCaseInsensitive("z", table)
	if got != "z" {
		t.Errorf("rewriteCaseInsensitive(%q) = %q, want unchanged (no fold partner)", "z", got)
	}
}

func TestRewriteCaseInsensitivePassesEscapesThrough(t *testing.T) {
	table := foldingTable()
	got := rewriteCaseInsensitive(`\a`, table)
	if got != `\a` {
		t.Errorf("rewriteCaseInsensitive(%q) = %q, want escape preserved verbatim", `\a`, got)
	}
}
