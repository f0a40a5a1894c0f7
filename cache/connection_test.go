/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package cache

import "testing"

func TestCharsetParamExtractsValue(t *testing.T) {
	cases := map[string]string{
		"text/plain; charset=utf-8":      "utf-8",
		`text/plain; charset="us-ascii"`: "us-ascii",
		"text/plain":                     "",
		"text/plain;  CHARSET=Latin-1":   "Latin-1",
	}
	for in, want := range cases {
		if got := charsetParam(in); got != want {
			t.Errorf("charsetParam(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeBytesLatin1(t *testing.T) {
	b := []byte{0xe4} // 'ä' in Latin-1
	got := decodeBytes(b, "ISO-8859-1")
	if got != "ä" {
		t.Errorf("decodeBytes(ISO-8859-1) = %q, want %q", got, "ä")
	}
}

func TestDecodeBytesUnknownCharsetPassesThrough(t *testing.T) {
	b := []byte("plain ascii")
	got := decodeBytes(b, "utf-8")
	if got != "plain ascii" {
		t.Errorf("decodeBytes(utf-8) = %q, want %q", got, "plain ascii")
	}
}

func TestItoa(t *testing.T) {
	cases := map[int32]string{0: "0", 42: "42", -17: "-17", 7: "7"}
	for in, want := range cases {
		if got := itoa(in); got != want {
			t.Errorf("itoa(%d) = %q, want %q", in, got, want)
		}
	}
}
