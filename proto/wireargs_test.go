/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import (
	"testing"

	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/wire"
)

func frameString(req Request) string {
	f := wire.NewFrame()
	req.WriteArgs(f)
	return string(f.Bytes())
}

func TestVoidRequestsSerializeEmptyArgs(t *testing.T) {
	for _, req := range []Request{Logout{}, SyncKOM{}, UserActive{}} {
		if got := frameString(req); got != "" {
			t.Errorf("%T.WriteArgs produced %q, want empty", req, got)
		}
	}
}

func TestChangeConferenceSerializesInt(t *testing.T) {
	got := frameString(ChangeConference{ConfNo: 42})
	if got != "42" {
		t.Errorf("ChangeConference.WriteArgs = %q, want %q", got, "42")
	}
}

func TestLoginSerializesPasswordAndInvisibleFlag(t *testing.T) {
	got := frameString(Login{Person: 7, Password: "hunter2", Invisible: true})
	want := "7 7Hhunter2 1"
	if got != want {
		t.Errorf("Login.WriteArgs = %q, want %q", got, want)
	}
}

func TestMarkAsReadSerializesArray(t *testing.T) {
	got := frameString(MarkAsRead{ConfNo: 3, Texts: []int32{10, 11, 12}})
	want := "3 3 { 10 11 12 }"
	if got != want {
		t.Errorf("MarkAsRead.WriteArgs = %q, want %q", got, want)
	}
}

func TestMarkAsReadSerializesEmptyArrayAsStar(t *testing.T) {
	got := frameString(MarkAsRead{ConfNo: 3})
	want := "3 0 *"
	if got != want {
		t.Errorf("MarkAsRead.WriteArgs = %q, want %q", got, want)
	}
}

func TestGetTextSerializesThreeInts(t *testing.T) {
	got := frameString(GetText{TextNo: 1, StartChar: 0, MaxChars: -1})
	want := "1 0 -1"
	if got != want {
		t.Errorf("GetText.WriteArgs = %q, want %q", got, want)
	}
}

func TestGetCollateTableSerializesEmptyArgs(t *testing.T) {
	if got := frameString(GetCollateTable{}); got != "" {
		t.Errorf("GetCollateTable.WriteArgs = %q, want empty", got)
	}
}

func TestSetConfTypeSerializesBitstring(t *testing.T) {
	got := frameString(SetConfType{ConfNo: 5, Type: kom.ConfType{RdProt: true, Secret: true}})
	want := "5 10100000"
	if got != want {
		t.Errorf("SetConfType.WriteArgs = %q, want %q", got, want)
	}
}

func TestGetMembership11SerializesAllFields(t *testing.T) {
	got := frameString(GetMembership11{Person: 1, First: 0, NoOfConfs: 255, WantReadRanges: true, MaxRanges: 10})
	want := "1 0 255 1 10"
	if got != want {
		t.Errorf("GetMembership11.WriteArgs = %q, want %q", got, want)
	}
}

func TestOpcodesAreDistinctAcrossSample(t *testing.T) {
	reqs := []Request{Logout{}, ChangeConference{}, Login{}, GetText{}, GetCollateTable{}, GetMembership11{}}
	seen := make(map[int32]bool)
	for _, r := range reqs {
		if seen[r.Opcode()] {
			t.Errorf("duplicate opcode %d for %T", r.Opcode(), r)
		}
		seen[r.Opcode()] = true
	}
}
