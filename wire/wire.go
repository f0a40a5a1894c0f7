/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package wire implements the byte-level codec for LysKOM Protocol A:
// decimal integers and floats, Hollerith length-prefixed strings, fixed
// width bitstrings, and whitespace-delimited arrays framed by `{ }` or
// `*`. Everything here operates on raw bytes; the protocol's default
// character set is ISO-8859-1 and callers decode to native strings only
// at the boundary that needs them (aux-item content-type may override
// the encoding for a given text).
package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrProtocol is returned for any malformed framing: an unexpected byte
// where a terminator was required, a bitstring character outside
// {0,1}, or EOF in the middle of a fixed-length read.
var ErrProtocol = errors.New("wire: protocol error")

func isWS(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Reader wraps a buffered byte source and exposes the protocol's atomic
// decoders. It is not safe for concurrent use; the engine above it
// serializes access through the single-reader discipline described by
// the protocol.
type Reader struct {
	br    *bufio.Reader
	trace func(string)
}

// NewReader wraps r with protocol-level decoding. bufSize mirrors the
// sizing knobs the teacher's entry codec exposes; 0 selects a sane
// default.
func NewReader(r io.Reader, bufSize int) *Reader {
	if bufSize <= 0 {
		bufSize = 4096
	}
	return &Reader{br: bufio.NewReaderSize(r, bufSize)}
}

// SetTrace installs a callback invoked with a human-readable rendering
// of every atom read off the wire. Passing nil disables tracing.
func (r *Reader) SetTrace(fn func(string)) { r.trace = fn }

// Buffered returns the number of bytes currently held in the read
// buffer without requiring a socket read, used by PollAvailable to
// drain only what's already arrived.
func (r *Reader) Buffered() int { return r.br.Buffered() }

func (r *Reader) trc(format string, args ...any) {
	if r.trace != nil {
		r.trace(fmt.Sprintf(format, args...))
	}
}

// ReadByte reads a single byte, wrapping EOF as ErrProtocol's sibling
// receive error so callers can distinguish "clean close" from
// "malformed frame" further up the stack.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, newReceiveError(err)
	}
	return b, nil
}

func (r *Reader) unreadByte() {
	_ = r.br.UnreadByte()
}

// skipWS consumes leading SP/HT/CR/LF and returns the first non-
// whitespace byte without consuming it.
func (r *Reader) skipWS() (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isWS(b) {
			r.unreadByte()
			return b, nil
		}
	}
}

// IntAndNext reads a decimal integer, skipping leading whitespace, and
// returns the value along with the terminating (non-digit) byte it
// consumed without pushing back. This is needed to detect the 'H' that
// follows a Hollerith length.
func (r *Reader) IntAndNext() (int64, byte, error) {
	if _, err := r.skipWS(); err != nil {
		return 0, 0, err
	}
	var (
		neg      bool
		haveDigs bool
		val      int64
	)
	b, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	if b == '-' {
		neg = true
		b, err = r.ReadByte()
		if err != nil {
			return 0, 0, err
		}
	}
	for b >= '0' && b <= '9' {
		val = val*10 + int64(b-'0')
		haveDigs = true
		b, err = r.ReadByte()
		if err != nil {
			return 0, 0, err
		}
	}
	if !haveDigs {
		return 0, 0, fmt.Errorf("%w: expected digit, got %q", ErrProtocol, b)
	}
	if neg {
		val = -val
	}
	r.trc("int %d", val)
	return val, b, nil
}

// Int reads a decimal integer and pushes the terminator back so the
// next read sees it.
func (r *Reader) Int() (int32, error) {
	v, term, err := r.IntAndNext()
	if err != nil {
		return 0, err
	}
	r.unreadByte()
	_ = term
	return int32(v), nil
}

// Int64 is Int with 64-bit range, used for a handful of wide counters.
func (r *Reader) Int64() (int64, error) {
	v, _, err := r.IntAndNext()
	if err != nil {
		return 0, err
	}
	r.unreadByte()
	return v, nil
}

// Float reads a decimal float: optional sign, then a run of
// [0-9eE.+-].
func (r *Reader) Float() (float64, error) {
	if _, err := r.skipWS(); err != nil {
		return 0, err
	}
	buf := make([]byte, 0, 16)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if (b >= '0' && b <= '9') || b == 'e' || b == 'E' || b == '.' || b == '+' || b == '-' {
			buf = append(buf, b)
			continue
		}
		r.unreadByte()
		break
	}
	if len(buf) == 0 {
		return 0, fmt.Errorf("%w: empty float", ErrProtocol)
	}
	var f float64
	if _, err := fmt.Sscanf(string(buf), "%g", &f); err != nil {
		return 0, fmt.Errorf("%w: bad float %q: %v", ErrProtocol, buf, err)
	}
	return f, nil
}

// Hollerith reads a <len>H<bytes> string, returning the raw bytes.
func (r *Reader) Hollerith() ([]byte, error) {
	n, term, err := r.IntAndNext()
	if err != nil {
		return nil, err
	}
	if term != 'H' {
		return nil, fmt.Errorf("%w: expected 'H', got %q", ErrProtocol, term)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative hollerith length %d", ErrProtocol, n)
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r.br, buf); err != nil {
			return nil, newReceiveError(err)
		}
	}
	r.trc("hollerith %dH%q", n, buf)
	return buf, nil
}

// HollerithString is Hollerith decoded as an ISO-8859-1 string (the
// protocol default); callers needing a different charset should use
// Hollerith and decode themselves.
func (r *Reader) HollerithString() (string, error) {
	b, err := r.Hollerith()
	if err != nil {
		return "", err
	}
	return Latin1ToUTF8(b), nil
}

// Bitstring reads exactly n characters from {0,1}, skipping leading
// whitespace before the first. Any other character is ErrProtocol.
func (r *Reader) Bitstring(n int) ([]bool, error) {
	if _, err := r.skipWS(); err != nil {
		return nil, err
	}
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		switch b {
		case '0':
			out[i] = false
		case '1':
			out[i] = true
		default:
			return nil, fmt.Errorf("%w: bad bitstring char %q", ErrProtocol, b)
		}
	}
	return out, nil
}

// expect reads one byte (after skipping whitespace when ws is true)
// and requires it to equal want.
func (r *Reader) expect(want byte, ws bool) error {
	if ws {
		if _, err := r.skipWS(); err != nil {
			return err
		}
	}
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	if b != want {
		return fmt.Errorf("%w: expected %q, got %q", ErrProtocol, want, b)
	}
	return nil
}

// ArrayLen reads the leading length of an array and the opening
// delimiter, returning n and whether the body is the opted-out "*"
// form. Callers then read n elements (when !star) and must consume the
// closing '}' via ArrayEnd.
func (r *Reader) ArrayLen() (n int32, star bool, err error) {
	v, err := r.Int()
	if err != nil {
		return 0, false, err
	}
	b, err := r.skipWS()
	if err != nil {
		return 0, false, err
	}
	switch b {
	case '{':
		r.ReadByte()
		return v, false, nil
	case '*':
		r.ReadByte()
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("%w: expected '{' or '*', got %q", ErrProtocol, b)
	}
}

// ArrayEnd consumes the closing '}' of a non-star array.
func (r *Reader) ArrayEnd() error {
	return r.expect('}', true)
}

// ReadArray reads a full array of T using elem to decode each element.
// If the server sent "*" (opted out or empty), the result is an empty,
// non-nil slice regardless of the declared length — decoding never
// fails on a suppressed body.
func ReadArray[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	n, star, err := r.ArrayLen()
	if err != nil {
		return nil, err
	}
	if star {
		return []T{}, nil
	}
	out := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := elem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := r.ArrayEnd(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadInt32Array is the common case of ReadArray for plain integers.
func ReadInt32Array(r *Reader) ([]int32, error) {
	return ReadArray(r, func(r *Reader) (int32, error) { return r.Int() })
}
