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
	gotime "time"

	"github.com/rindlow/pykomgrep/wire"
)

func TestTimeWriteParseRoundTrip(t *testing.T) {
	want := Time{
		Seconds: 30, Minutes: 15, Hours: 10,
		Day: 17, Month: 5, YearSince1900: 124,
		DayOfWeek: 1, DayOfYear: 168, IsDST: true,
	}
	f := wire.NewFrame()
	want.Write(f)
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	got, err := ParseTime(r)
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if got != want {
		t.Errorf("ParseTime() = %+v, want %+v", got, want)
	}
}

func TestTimeAsTime(t *testing.T) {
	kt := Time{Seconds: 5, Minutes: 4, Hours: 3, Day: 2, Month: 0, YearSince1900: 124}
	got := kt.AsTime(gotime.UTC)
	want := gotime.Date(2024, gotime.January, 2, 3, 4, 5, 0, gotime.UTC)
	if !got.Equal(want) {
		t.Errorf("AsTime() = %v, want %v", got, want)
	}
}

func TestTimeFromGoRoundTrip(t *testing.T) {
	g := gotime.Date(2024, gotime.March, 9, 1, 2, 3, 0, gotime.UTC)
	kt := TimeFromGo(g)
	back := kt.AsTime(gotime.UTC)
	if !back.Equal(g) {
		t.Errorf("TimeFromGo->AsTime round trip = %v, want %v", back, g)
	}
}
