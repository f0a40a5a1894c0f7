/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import "testing"

func TestIsUnread(t *testing.T) {
	rrs := []ReadRange{{FirstRead: 1, LastRead: 5}, {FirstRead: 10, LastRead: 12}}
	cases := map[int32]bool{
		3:  false,
		7:  true,
		10: false,
		13: true,
	}
	for local, want := range cases {
		if got := IsUnread(rrs, local); got != want {
			t.Errorf("IsUnread(%d) = %v, want %v", local, got, want)
		}
	}
}

func TestReadRangesToGapsAndLastSingleRange(t *testing.T) {
	rrs := []ReadRange{{FirstRead: 1, LastRead: 5}}
	gaps, last := ReadRangesToGapsAndLast(rrs)
	if len(gaps) != 0 {
		t.Errorf("gaps = %v, want none for a single range", gaps)
	}
	if last != 6 {
		t.Errorf("last = %d, want 6", last)
	}
}

func TestReadRangesToGapsAndLastWithInteriorGap(t *testing.T) {
	rrs := []ReadRange{{FirstRead: 1, LastRead: 5}, {FirstRead: 10, LastRead: 12}}
	gaps, last := ReadRangesToGapsAndLast(rrs)
	if len(gaps) != 1 {
		t.Fatalf("gaps = %v, want 1 entry", gaps)
	}
	if gaps[0].First != 6 || gaps[0].Count != 4 {
		t.Errorf("gap = %+v, want {First:6 Count:4}", gaps[0])
	}
	if last != 13 {
		t.Errorf("last = %d, want 13", last)
	}
}

func TestReadRangesToGapsAndLastEmpty(t *testing.T) {
	gaps, last := ReadRangesToGapsAndLast(nil)
	if len(gaps) != 0 {
		t.Errorf("gaps = %v, want none", gaps)
	}
	if last != 1 {
		t.Errorf("last = %d, want 1 for no ranges at all", last)
	}
}
