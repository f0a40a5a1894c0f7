/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import "github.com/rindlow/pykomgrep/wire"

// ReadRange is an inclusive [FirstRead, LastRead] interval of local
// text numbers the user has read; the union across ranges defines
// what is "read" in a conference.
type ReadRange struct {
	FirstRead int32
	LastRead  int32
}

func ParseReadRange(r *wire.Reader) (ReadRange, error) {
	var rr ReadRange
	var err error
	if rr.FirstRead, err = r.Int(); err != nil {
		return rr, err
	}
	if rr.LastRead, err = r.Int(); err != nil {
		return rr, err
	}
	return rr, nil
}

func (rr ReadRange) Write(f *wire.Frame) *wire.Frame {
	return f.Int(rr.FirstRead).Int(rr.LastRead)
}

// Contains reports whether local is within [FirstRead, LastRead].
func (rr ReadRange) Contains(local int32) bool {
	return local >= rr.FirstRead && local <= rr.LastRead
}

// IsUnread reports whether local is not covered by any range in rrs.
func IsUnread(rrs []ReadRange, local int32) bool {
	for _, rr := range rrs {
		if rr.Contains(local) {
			return false
		}
	}
	return true
}

// Gap is an interior gap between two read ranges: Count unread local
// numbers starting at First. The open-ended tail beyond the last range
// is not a Gap; ReadRangesToGapsAndLast returns it separately as last.
type Gap struct {
	First int32
	Count int32
}

// ReadRangesToGapsAndLast enumerates interior gaps between consecutive
// ranges and returns the first unread local number past the final
// range (last = lastRange.LastRead + 1). Ranges must be sorted
// ascending by FirstRead, as the server returns them.
func ReadRangesToGapsAndLast(rrs []ReadRange) (gaps []Gap, last int32) {
	var prevLast int32
	for i, rr := range rrs {
		if i > 0 && rr.FirstRead > prevLast+1 {
			gaps = append(gaps, Gap{First: prevLast + 1, Count: rr.FirstRead - prevLast - 1})
		}
		prevLast = rr.LastRead
	}
	if len(rrs) > 0 {
		last = prevLast + 1
	} else {
		last = 1
	}
	return
}

// Membership10 is the protocol-10 membership shape: a fixed
// last-text-read plus an explicit read-texts list, rather than
// read-ranges.
type Membership10 struct {
	Position      int32
	LastTime      Time
	Conference    int32
	Priority      int32
	LastTextRead  int32
	ReadTexts     []int32
	AddedBy       int32
	AddedAt       Time
	Type          MembershipType
}

func ParseMembership10(r *wire.Reader) (Membership10, error) {
	var m Membership10
	var err error
	if m.Position, err = r.Int(); err != nil {
		return m, err
	}
	if m.LastTime, err = ParseTime(r); err != nil {
		return m, err
	}
	if m.Conference, err = r.Int(); err != nil {
		return m, err
	}
	if m.Priority, err = r.Int(); err != nil {
		return m, err
	}
	if m.LastTextRead, err = r.Int(); err != nil {
		return m, err
	}
	if m.ReadTexts, err = wire.ReadInt32Array(r); err != nil {
		return m, err
	}
	if m.AddedBy, err = r.Int(); err != nil {
		return m, err
	}
	if m.AddedAt, err = ParseTime(r); err != nil {
		return m, err
	}
	if m.Type, err = ParseMembershipType(r); err != nil {
		return m, err
	}
	return m, nil
}

// Membership11 replaces LastTextRead+ReadTexts with ReadRanges.
type Membership11 struct {
	Position   int32
	LastTime   Time
	Conference int32
	Priority   int32
	ReadRanges []ReadRange
	AddedBy    int32
	AddedAt    Time
	Type       MembershipType
}

func ParseMembership11(r *wire.Reader) (Membership11, error) {
	var m Membership11
	var err error
	if m.Position, err = r.Int(); err != nil {
		return m, err
	}
	if m.LastTime, err = ParseTime(r); err != nil {
		return m, err
	}
	if m.Conference, err = r.Int(); err != nil {
		return m, err
	}
	if m.Priority, err = r.Int(); err != nil {
		return m, err
	}
	if m.ReadRanges, err = wire.ReadArray(r, ParseReadRange); err != nil {
		return m, err
	}
	if m.AddedBy, err = r.Int(); err != nil {
		return m, err
	}
	if m.AddedAt, err = ParseTime(r); err != nil {
		return m, err
	}
	if m.Type, err = ParseMembershipType(r); err != nil {
		return m, err
	}
	return m, nil
}

// Member is one entry of a get-members reply: a person number paired
// with its membership type summary.
type Member struct {
	Member int32
	Type   MembershipType
}

func ParseMember(r *wire.Reader) (Member, error) {
	var m Member
	var err error
	if m.Member, err = r.Int(); err != nil {
		return m, err
	}
	if m.Type, err = ParseMembershipType(r); err != nil {
		return m, err
	}
	return m, nil
}

// ParseMembership10List and ParseMembership11List decode get-membership's
// array reply (v10/v11 respectively); query-read-texts returns a bare
// Membership10/Membership11 instead and uses ParseMembership10/11
// directly.
func ParseMembership10List(r *wire.Reader) ([]Membership10, error) {
	return wire.ReadArray(r, ParseMembership10)
}

func ParseMembership11List(r *wire.Reader) ([]Membership11, error) {
	return wire.ReadArray(r, ParseMembership11)
}
