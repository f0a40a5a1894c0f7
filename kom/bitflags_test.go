/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import (
	"strings"
	"testing"

	"github.com/rindlow/pykomgrep/wire"
)

func TestParseConfTypeOldForm(t *testing.T) {
	r := wire.NewReader(strings.NewReader("1010 "), 0)
	ct, err := ParseConfType(r)
	if err != nil {
		t.Fatalf("ParseConfType: %v", err)
	}
	if !ct.RdProt || ct.Original || !ct.Secret || ct.Letterbox {
		t.Errorf("ConfType = %+v, want RdProt,Secret set", ct)
	}
}

func TestParseConfType8RoundTrip(t *testing.T) {
	want := ConfType{RdProt: true, Secret: true, AllowAnonymous: true}
	f := wire.NewFrame()
	want.Write(f)
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	got, err := ParseConfType8(r)
	if err != nil {
		t.Fatalf("ParseConfType8: %v", err)
	}
	if got != want {
		t.Errorf("ParseConfType8() = %+v, want %+v", got, want)
	}
}

func TestParsePrivBitsRoundTrip(t *testing.T) {
	want := PrivBits{Wheel: true, CreateConf: true}
	f := wire.NewFrame()
	want.Write(f)
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	got, err := ParsePrivBits(r)
	if err != nil {
		t.Fatalf("ParsePrivBits: %v", err)
	}
	if got != want {
		t.Errorf("ParsePrivBits() = %+v, want %+v", got, want)
	}
}

func TestParseMembershipTypeRoundTrip(t *testing.T) {
	want := MembershipType{Invitation: true, Secret: true}
	f := wire.NewFrame()
	want.Write(f)
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	got, err := ParseMembershipType(r)
	if err != nil {
		t.Fatalf("ParseMembershipType: %v", err)
	}
	if got != want {
		t.Errorf("ParseMembershipType() = %+v, want %+v", got, want)
	}
}

func TestParseAuxItemFlagsRoundTrip(t *testing.T) {
	want := AuxItemFlags{Deleted: true, DontGarb: true}
	f := wire.NewFrame()
	want.Write(f)
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	got, err := ParseAuxItemFlags(r)
	if err != nil {
		t.Fatalf("ParseAuxItemFlags: %v", err)
	}
	if got != want {
		t.Errorf("ParseAuxItemFlags() = %+v, want %+v", got, want)
	}
}
