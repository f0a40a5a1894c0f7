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

func TestParseTextListWithHole(t *testing.T) {
	f := wire.NewFrame().Int(10).Array(3, func(f *wire.Frame) {
		f.Int(100).Int(0).Int(102)
	})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	tl, err := ParseTextList(r)
	if err != nil {
		t.Fatalf("ParseTextList: %v", err)
	}
	if tl.FirstLocalNo != 10 || len(tl.Texts) != 3 || tl.Texts[1] != 0 {
		t.Errorf("TextList = %+v, unexpected", tl)
	}
}

func TestParseTextMappingDenseBlock(t *testing.T) {
	f := wire.NewFrame().Int(1).Int(4).Int(1).Int(int32(BlockDense)).Int(1).Array(3, func(f *wire.Frame) {
		f.Int(100).Int(101).Int(102)
	})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	tm, err := ParseTextMapping(r)
	if err != nil {
		t.Fatalf("ParseTextMapping: %v", err)
	}
	if !tm.LaterTextsExists || tm.BlockType != BlockDense {
		t.Fatalf("TextMapping = %+v, unexpected header", tm)
	}
	pairs := tm.Pairs()
	if len(pairs) != 3 || pairs[0] != (TextNumberPair{LocalNumber: 1, GlobalNumber: 100}) {
		t.Errorf("Pairs() = %+v, unexpected", pairs)
	}
	dict := tm.Dict()
	if dict[2] != 101 {
		t.Errorf("Dict()[2] = %d, want 101", dict[2])
	}
}

func TestParseTextMappingUnknownBlockTypeErrors(t *testing.T) {
	f := wire.NewFrame().Int(1).Int(4).Int(0).Int(2)
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	if _, err := ParseTextMapping(r); err == nil {
		t.Fatal("ParseTextMapping: want error for unknown block type, got nil")
	}
}

func TestParseTextMappingSparsePairsSkipsHoleInDict(t *testing.T) {
	f := wire.NewFrame().Int(1).Int(3).Int(0).Int(int32(BlockSparse)).Array(2, func(f *wire.Frame) {
		f.Int(1).Int(0)
		f.Int(2).Int(200)
	})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	tm, err := ParseTextMapping(r)
	if err != nil {
		t.Fatalf("ParseTextMapping: %v", err)
	}
	dict := tm.Dict()
	if _, ok := dict[1]; ok {
		t.Errorf("Dict() kept hole entry for local 1: %v", dict)
	}
	if dict[2] != 200 {
		t.Errorf("Dict()[2] = %d, want 200", dict[2])
	}
}
