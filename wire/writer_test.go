/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package wire

import (
	"bytes"
	"testing"
)

func TestWriterSendFramesIDOpcodeAndArgs(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 0)
	f := NewFrame().Int(42).HollerithString("hi")
	if err := w.Send(1, 62, f); err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := "1 62 42 2Hhi\n"
	if buf.String() != want {
		t.Errorf("Send wrote %q, want %q", buf.String(), want)
	}
}

func TestWriterSendWithNilArgsOmitsTrailingSpace(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 0)
	if err := w.Send(3, 1, nil); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if buf.String() != "3 1\n" {
		t.Errorf("Send wrote %q, want %q", buf.String(), "3 1\n")
	}
}

func TestWriterSendGreeting(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 0)
	if err := w.SendGreeting("alice"); err != nil {
		t.Fatalf("SendGreeting: %v", err)
	}
	want := "A5Halice\n"
	if buf.String() != want {
		t.Errorf("SendGreeting wrote %q, want %q", buf.String(), want)
	}
}

func TestWriterSetTraceReceivesSentLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 0)
	var traced string
	w.SetTrace(func(s string) { traced = s })
	if err := w.Send(1, 1, nil); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if traced != "-> 1 1" {
		t.Errorf("trace = %q, want %q", traced, "-> 1 1")
	}
}
