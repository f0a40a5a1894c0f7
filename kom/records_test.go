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

func TestParseUConference(t *testing.T) {
	f := wire.NewFrame().HollerithString("test-conf")
	ConfType{Secret: true}.Write(f)
	f.Int(42).Int(1)
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	c, err := ParseUConference(r)
	if err != nil {
		t.Fatalf("ParseUConference: %v", err)
	}
	if c.Name != "test-conf" || !c.Type.Secret || c.HighestLocalNo != 42 || c.NiceFlag != 1 {
		t.Errorf("UConference = %+v, unexpected fields", c)
	}
}

func TestParseConfZInfoList(t *testing.T) {
	f := wire.NewFrame().Array(2, func(f *wire.Frame) {
		// Conf-Z-Info carries the old 4-flag conf type.
		f.HollerithString("a")
		f.Bitstring([]bool{false, false, false, false})
		f.Int(1)
		f.HollerithString("b")
		f.Bitstring([]bool{false, false, true, false}) // secret
		f.Int(2)
	})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	got, err := ParseConfZInfoList(r)
	if err != nil {
		t.Fatalf("ParseConfZInfoList: %v", err)
	}
	if len(got) != 2 || got[0].Name != "a" || got[1].ConfNo != 2 || !got[1].Type.Secret {
		t.Errorf("ConfZInfoList = %+v, unexpected", got)
	}
}

func TestParseTextStatWithMiscInfoAndAuxItems(t *testing.T) {
	f := wire.NewFrame()
	Time{}.Write(f)
	f.Int(7).Int(3).Int(100).Int(0)
	f.Array(2, func(f *wire.Frame) {
		f.Int(MIRecpt).Int(11)
		f.Int(MILocNo).Int(5)
	})
	f.Array(0, func(f *wire.Frame) {})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	ts, err := ParseTextStat(r)
	if err != nil {
		t.Fatalf("ParseTextStat: %v", err)
	}
	if ts.Author != 7 || ts.NoOfLines != 3 || ts.NoOfChars != 100 {
		t.Errorf("TextStat = %+v, unexpected header fields", ts)
	}
	if len(ts.MiscInfo.Recipients) != 1 || ts.MiscInfo.Recipients[0].Recpt != 11 || ts.MiscInfo.Recipients[0].LocNo != 5 {
		t.Errorf("TextStat.MiscInfo = %+v, unexpected", ts.MiscInfo)
	}
	if len(ts.AuxItems) != 0 {
		t.Errorf("TextStat.AuxItems = %v, want empty", ts.AuxItems)
	}
}
