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

func TestParseAsyncNewName(t *testing.T) {
	f := wire.NewFrame().Int(7).HollerithString("old").HollerithString("new")
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	msg, err := ParseAsyncNewName(r)
	if err != nil {
		t.Fatalf("ParseAsyncNewName: %v", err)
	}
	m := msg.(AsyncNewNameMsg)
	if m.ConfNo != 7 || m.OldName != "old" || m.NewName != "new" {
		t.Errorf("AsyncNewNameMsg = %+v, unexpected", m)
	}
	if m.AsyncTag() != AsyncNewName {
		t.Errorf("AsyncTag() = %d, want %d", m.AsyncTag(), AsyncNewName)
	}
}

func TestParseAsyncLeaveConf(t *testing.T) {
	r := wire.NewReader(strings.NewReader("7 "), 0)
	msg, err := ParseAsyncLeaveConf(r)
	if err != nil {
		t.Fatalf("ParseAsyncLeaveConf: %v", err)
	}
	if msg.(AsyncLeaveConfMsg).ConfNo != 7 {
		t.Errorf("ConfNo = %d, want 7", msg.(AsyncLeaveConfMsg).ConfNo)
	}
}

func TestParseAsyncDeletedTextCarriesTextStat(t *testing.T) {
	f := wire.NewFrame().Int(100)
	Time{}.Write(f)
	f.Int(5).Int(1).Int(10).Int(0)
	f.Array(1, func(f *wire.Frame) { f.Int(MIRecpt).Int(3) })
	f.Array(0, func(f *wire.Frame) {})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	msg, err := ParseAsyncDeletedText(r)
	if err != nil {
		t.Fatalf("ParseAsyncDeletedText: %v", err)
	}
	m := msg.(AsyncDeletedTextMsg)
	if m.TextNo != 100 || len(m.TextStat.MiscInfo.Recipients) != 1 || m.TextStat.MiscInfo.Recipients[0].Recpt != 3 {
		t.Errorf("AsyncDeletedTextMsg = %+v, unexpected", m)
	}
}

func TestAsyncParsersRegistryCoversAllTags(t *testing.T) {
	tags := []int32{
		AsyncNewTextOld, AsyncNewName, AsyncIAmOn, AsyncSyncDB, AsyncLeaveConf,
		AsyncLogin, AsyncRejectedConnection, AsyncSendMessage, AsyncLogout,
		AsyncDeletedText, AsyncNewText, AsyncNewRecipient, AsyncSubRecipient,
		AsyncNewMembership, AsyncNewUserArea, AsyncNewPresentation, AsyncNewMotd,
		AsyncTextAuxChanged,
	}
	for _, tag := range tags {
		if _, ok := AsyncParsers[tag]; !ok {
			t.Errorf("AsyncParsers missing entry for tag %d", tag)
		}
	}
	if len(AsyncParsers) != len(tags) {
		t.Errorf("AsyncParsers has %d entries, want %d", len(AsyncParsers), len(tags))
	}
}
