/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import "github.com/rindlow/pykomgrep/wire"

// Array-response requests: the reply body is an Array<T>; see the
// paired kom decoder named in each comment for the element type.

type GetMarks struct{} // -> array of kom.ParseMark

func (GetMarks) Opcode() int32           { return OpGetMarks }
func (GetMarks) WriteArgs(f *wire.Frame) {}

// ReZLookup issues a regexp lookup; Pattern should already be rewritten
// for case-insensitivity by the cache layer's collation logic before
// this request is sent — this type itself is a thin wire wrapper.
type ReZLookup struct { // -> array of kom.ParseConfZInfo
	Pattern   string
	WantPers  bool
	WantConfs bool
}

func (r ReZLookup) Opcode() int32 { return OpReZLookup }
func (r ReZLookup) WriteArgs(f *wire.Frame) {
	wp, wc := int32(0), int32(0)
	if r.WantPers {
		wp = 1
	}
	if r.WantConfs {
		wc = 1
	}
	f.HollerithString(r.Pattern).Int(wp).Int(wc)
}

type LookupZName struct { // -> array of kom.ParseConfZInfo
	Name      string
	WantPers  bool
	WantConfs bool
}

func (r LookupZName) Opcode() int32 { return OpLookupZName }
func (r LookupZName) WriteArgs(f *wire.Frame) {
	wp, wc := int32(0), int32(0)
	if r.WantPers {
		wp = 1
	}
	if r.WantConfs {
		wc = 1
	}
	f.HollerithString(r.Name).Int(wp).Int(wc)
}

type GetMembers struct { // -> array of kom.ParseMember
	ConfNo    int32
	First     int32
	NoOfMembers int32
}

func (r GetMembers) Opcode() int32 { return OpGetMembers }
func (r GetMembers) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).Int(r.First).Int(r.NoOfMembers)
}

type GetUnreadConfs struct{ Person int32 } // -> array of int32

func (r GetUnreadConfs) Opcode() int32           { return OpGetUnreadConfs }
func (r GetUnreadConfs) WriteArgs(f *wire.Frame) { f.Int(r.Person) }

type QueryAsync struct{} // -> array of int32 (accepted async tags)

func (QueryAsync) Opcode() int32           { return OpQueryAsync }
func (QueryAsync) WriteArgs(f *wire.Frame) {}

type QueryPredefinedAuxItems struct{} // -> array of int32

func (QueryPredefinedAuxItems) Opcode() int32           { return OpQueryPredefinedAuxItems }
func (QueryPredefinedAuxItems) WriteArgs(f *wire.Frame) {}

// GetMembership10 is obsolete (use GetMembership11); want-read-texts
// selects whether the server fills in last-text-read/read-texts.
type GetMembership10 struct { // -> array of kom.ParseMembership10
	Person        int32
	First         int32
	NoOfConfs     int32
	WantReadTexts bool
}

func (r GetMembership10) Opcode() int32 { return OpGetMembership10 }
func (r GetMembership10) WriteArgs(f *wire.Frame) {
	want := int32(0)
	if r.WantReadTexts {
		want = 1
	}
	f.Int(r.Person).Int(r.First).Int(r.NoOfConfs).Int(want)
}

type GetMembership11 struct { // -> array of kom.ParseMembership11
	Person         int32
	First          int32
	NoOfConfs      int32
	WantReadRanges bool
	MaxRanges      int32
}

func (r GetMembership11) Opcode() int32 { return OpGetMembership11 }
func (r GetMembership11) WriteArgs(f *wire.Frame) {
	want := int32(0)
	if r.WantReadRanges {
		want = 1
	}
	f.Int(r.Person).Int(r.First).Int(r.NoOfConfs).Int(want).Int(r.MaxRanges)
}
