/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package wire

import "golang.org/x/text/encoding/charmap"

// Latin1ToUTF8 decodes ISO-8859-1 bytes (the protocol's default
// charset) to a Go string. Every byte of Latin-1 maps to exactly one
// Unicode code point, so this never fails.
func Latin1ToUTF8(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// ISO-8859-1 has no invalid byte sequences; this path is
		// unreachable but kept defensive against decoder changes.
		return string(b)
	}
	return string(out)
}

// UTF8ToLatin1 encodes a Go string to ISO-8859-1 bytes for the wire.
// Code points outside Latin-1 are replaced per charmap's default
// encoder behavior (best-effort; the protocol has no escape for them).
func UTF8ToLatin1(s string) []byte {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
