/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import "github.com/rindlow/pykomgrep/wire"

// Structured-response requests: the reply body parses into a single
// record via the paired kom.Parse* function named in each comment.

type GetTime struct{} // -> kom.ParseTime

func (GetTime) Opcode() int32           { return OpGetTime }
func (GetTime) WriteArgs(f *wire.Frame) {}

type GetTextStat struct{ TextNo int32 } // -> kom.ParseTextStat

func (r GetTextStat) Opcode() int32           { return OpGetTextStat }
func (r GetTextStat) WriteArgs(f *wire.Frame) { f.Int(r.TextNo) }

type GetConfStat struct{ ConfNo int32 } // -> kom.ParseConference

func (r GetConfStat) Opcode() int32           { return OpGetConfStat }
func (r GetConfStat) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo) }

type GetPersonStat struct{ Person int32 } // -> kom.ParsePerson

func (r GetPersonStat) Opcode() int32           { return OpGetPersonStat }
func (r GetPersonStat) WriteArgs(f *wire.Frame) { f.Int(r.Person) }

type GetUconfStat struct{ ConfNo int32 } // -> kom.ParseUConference

func (r GetUconfStat) Opcode() int32           { return OpGetUconfStat }
func (r GetUconfStat) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo) }

type GetMap struct { // -> kom.ParseTextList
	ConfNo     int32
	FirstLocal int32
	NoOfTexts  int32
}

func (r GetMap) Opcode() int32 { return OpGetMap }
func (r GetMap) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).Int(r.FirstLocal).Int(r.NoOfTexts)
}

type LocalToGlobal struct { // -> kom.ParseTextMapping
	ConfNo     int32
	FirstLocal int32
	NoOfTexts  int32
}

func (r LocalToGlobal) Opcode() int32 { return OpLocalToGlobal }
func (r LocalToGlobal) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).Int(r.FirstLocal).Int(r.NoOfTexts)
}

type LocalToGlobalReverse struct { // -> kom.ParseTextMapping
	ConfNo    int32
	LastLocal int32
	NoOfTexts int32
}

func (r LocalToGlobalReverse) Opcode() int32 { return OpLocalToGlobalReverse }
func (r LocalToGlobalReverse) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).Int(r.LastLocal).Int(r.NoOfTexts)
}

type MapCreatedTexts struct { // -> kom.ParseTextMapping
	Author     int32
	FirstLocal int32
	NoOfTexts  int32
}

func (r MapCreatedTexts) Opcode() int32 { return OpMapCreatedTexts }
func (r MapCreatedTexts) WriteArgs(f *wire.Frame) {
	f.Int(r.Author).Int(r.FirstLocal).Int(r.NoOfTexts)
}

type MapCreatedTextsReverse struct { // -> kom.ParseTextMapping
	Author    int32
	LastLocal int32
	NoOfTexts int32
}

func (r MapCreatedTextsReverse) Opcode() int32 { return OpMapCreatedTextsReverse }
func (r MapCreatedTextsReverse) WriteArgs(f *wire.Frame) {
	f.Int(r.Author).Int(r.LastLocal).Int(r.NoOfTexts)
}

type WhoIsOnDynamic struct { // -> array of kom.ParseDynamicSessionInfo
	WantVisible   bool
	WantInvisible bool
	ActiveLast    int32
}

func (r WhoIsOnDynamic) Opcode() int32 { return OpWhoIsOnDynamic }
func (r WhoIsOnDynamic) WriteArgs(f *wire.Frame) {
	vis, inv := int32(0), int32(0)
	if r.WantVisible {
		vis = 1
	}
	if r.WantInvisible {
		inv = 1
	}
	f.Int(vis).Int(inv).Int(r.ActiveLast)
}

type GetStaticSessionInfo struct{ SessionNo int32 } // -> kom.ParseStaticSessionInfo

func (r GetStaticSessionInfo) Opcode() int32           { return OpGetStaticSessionInfo }
func (r GetStaticSessionInfo) WriteArgs(f *wire.Frame) { f.Int(r.SessionNo) }

type GetScheduling struct{ SessionNo int32 } // -> kom.ParseSchedulingInfo

func (r GetScheduling) Opcode() int32           { return OpGetScheduling }
func (r GetScheduling) WriteArgs(f *wire.Frame) { f.Int(r.SessionNo) }

type GetVersionInfo struct{} // -> kom.ParseVersionInfo

func (GetVersionInfo) Opcode() int32           { return OpGetVersionInfo }
func (GetVersionInfo) WriteArgs(f *wire.Frame) {}

type GetInfo struct{} // -> kom.ParseInfo

func (GetInfo) Opcode() int32           { return OpGetInfo }
func (GetInfo) WriteArgs(f *wire.Frame) {}

type GetBoottimeInfo struct{} // -> kom.ParseStaticServerInfo

func (GetBoottimeInfo) Opcode() int32           { return OpGetBoottimeInfo }
func (GetBoottimeInfo) WriteArgs(f *wire.Frame) {}

// QueryReadTexts10 returns the caller's membership record in its v10
// shape for the given conference; callers that need v11 semantics
// should use QueryReadTexts11 instead — the two are never silently
// interchanged.
type QueryReadTexts10 struct { // -> kom.ParseMembership10
	Person int32
	ConfNo int32
}

func (r QueryReadTexts10) Opcode() int32           { return OpQueryReadTexts10 }
func (r QueryReadTexts10) WriteArgs(f *wire.Frame) { f.Int(r.Person).Int(r.ConfNo) }

type QueryReadTexts11 struct { // -> kom.ParseMembership11
	Person        int32
	ConfNo        int32
	WantReadRanges bool
	MaxReadRanges int32
}

func (r QueryReadTexts11) Opcode() int32 { return OpQueryReadTexts11 }
func (r QueryReadTexts11) WriteArgs(f *wire.Frame) {
	want := int32(0)
	if r.WantReadRanges {
		want = 1
	}
	f.Int(r.Person).Int(r.ConfNo).Int(want).Int(r.MaxReadRanges)
}

type GetStatsDescription struct{} // -> kom.ParseStatsDescription

func (GetStatsDescription) Opcode() int32           { return OpGetStatsDescription }
func (GetStatsDescription) WriteArgs(f *wire.Frame) {}

type GetStats struct{ What string } // -> array of kom.ParseStats

func (r GetStats) Opcode() int32           { return OpGetStats }
func (r GetStats) WriteArgs(f *wire.Frame) { f.HollerithString(r.What) }
