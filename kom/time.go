/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import (
	gotime "time"

	"github.com/rindlow/pykomgrep/wire"
)

// Time mirrors the protocol's nine-field civil-time record. YearSince1900
// follows the wire representation rather than a Go time.Time directly,
// matching libc's struct tm that the original server/client exchange.
type Time struct {
	Seconds       int32
	Minutes       int32
	Hours         int32
	Day           int32
	Month         int32 // 0-11
	YearSince1900 int32
	DayOfWeek     int32 // 0=Sunday
	DayOfYear     int32 // 0-365
	IsDST         bool
}

func ParseTime(r *wire.Reader) (Time, error) {
	var t Time
	vals := make([]int32, 8)
	for i := range vals {
		v, err := r.Int()
		if err != nil {
			return Time{}, err
		}
		vals[i] = v
	}
	t.Seconds, t.Minutes, t.Hours = vals[0], vals[1], vals[2]
	t.Day, t.Month, t.YearSince1900 = vals[3], vals[4], vals[5]
	t.DayOfWeek, t.DayOfYear = vals[6], vals[7]
	dst, err := r.Int()
	if err != nil {
		return Time{}, err
	}
	t.IsDST = dst != 0
	return t, nil
}

func (t Time) Write(f *wire.Frame) *wire.Frame {
	dst := int32(0)
	if t.IsDST {
		dst = 1
	}
	return f.Int(t.Seconds).Int(t.Minutes).Int(t.Hours).
		Int(t.Day).Int(t.Month).Int(t.YearSince1900).
		Int(t.DayOfWeek).Int(t.DayOfYear).Int(dst)
}

// AsTime converts to the host's civil-time representation, round-
// tripping through time.Date the way the spec requires.
func (t Time) AsTime(loc *gotime.Location) gotime.Time {
	if loc == nil {
		loc = gotime.Local
	}
	return gotime.Date(1900+int(t.YearSince1900), gotime.Month(t.Month+1), int(t.Day),
		int(t.Hours), int(t.Minutes), int(t.Seconds), 0, loc)
}

// TimeFromGo builds a Time from a Go time.Time, filling weekday/yday.
func TimeFromGo(g gotime.Time) Time {
	return Time{
		Seconds:       int32(g.Second()),
		Minutes:       int32(g.Minute()),
		Hours:         int32(g.Hour()),
		Day:           int32(g.Day()),
		Month:         int32(g.Month() - 1),
		YearSince1900: int32(g.Year() - 1900),
		DayOfWeek:     int32(g.Weekday()),
		DayOfYear:     int32(g.YearDay() - 1),
	}
}
