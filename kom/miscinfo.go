/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import (
	"fmt"

	"github.com/rindlow/pykomgrep/wire"
)

// Raw misc-info tags as they appear on the wire, before folding into
// CookedMiscInfo.
const (
	MIRecpt    int32 = 0
	MICCRecpt  int32 = 1
	MICommTo   int32 = 2
	MICommIn   int32 = 3
	MIFootnTo  int32 = 4
	MIFootnIn  int32 = 5
	MILocNo    int32 = 6
	MIRecTime  int32 = 7
	MISentBy   int32 = 8
	MISentAt   int32 = 9
	MIBCCRecpt int32 = 15
)

// RecipientKind distinguishes to/cc/bcc recipients.
type RecipientKind int

const (
	RecptTo RecipientKind = iota
	RecptCC
	RecptBCC
)

// CommentKind distinguishes comment from footnote references.
type CommentKind int

const (
	CommentKindComment CommentKind = iota
	CommentKindFootnote
)

// MIRecipient is one recipient of a text, with the trailing
// loc-no/rec-time/sent-by/sent-at attributes folded in when present.
type MIRecipient struct {
	Type    RecipientKind
	Recpt   int32
	LocNo   int32
	RecTime *Time
	SentBy  *int32
	SentAt  *Time
}

// MICommentTo is an outgoing comment/footnote reference (text this
// text comments on or footnotes), with trailing sent-by/sent-at.
type MICommentTo struct {
	Kind   CommentKind
	TextNo int32
	SentBy *int32
	SentAt *Time
}

// MICommentIn is an incoming comment/footnote reference: other texts
// that comment on this one. Read-only — it is never sent back to the
// server (there is no input form).
type MICommentIn struct {
	Kind   CommentKind
	TextNo int32
}

// RawMiscInfo is one (tag,value...) tuple off the wire before folding.
// Value holds the tag's single int argument for every tag except
// rec-time/sent-at, which carry a full Time record instead (Time is
// populated and Value is left zero for those two tags).
type RawMiscInfo struct {
	Tag   int32
	Value int32
	Time  Time
}

func parseRawMiscInfo(r *wire.Reader) (RawMiscInfo, error) {
	var m RawMiscInfo
	var err error
	if m.Tag, err = r.Int(); err != nil {
		return m, err
	}
	switch m.Tag {
	case MIRecTime, MISentAt:
		if m.Time, err = ParseTime(r); err != nil {
			return m, err
		}
	default:
		if m.Value, err = r.Int(); err != nil {
			return m, err
		}
	}
	return m, nil
}

// CookedMiscInfo is the three derived lists built by folding a flat
// raw misc-info stream, per the protocol's text-stat misc-info format.
type CookedMiscInfo struct {
	Recipients []MIRecipient
	CommentTo  []MICommentTo
	CommentIn  []MICommentIn
}

// ParseCookedMiscInfo reads the raw misc-info array off the wire and
// folds it into CookedMiscInfo: a recpt/cc-recpt/bcc-recpt tuple opens
// a new recipient and subsequent loc-no/rec-time/sent-by/sent-at
// tuples attach to it until a tuple outside that set arrives; a
// comm-to/footn-to tuple opens a new outgoing comment reference with
// the same trailing-attribute rule; a comm-in/footn-in tuple is a
// single-item comment-in reference, normalized to the same kind enum
// as comm-to/footn-to, and carries no trailing attributes. Any other
// tag is a protocol error.
func ParseCookedMiscInfo(r *wire.Reader) (CookedMiscInfo, error) {
	raws, err := wire.ReadArray(r, parseRawMiscInfo)
	if err != nil {
		return CookedMiscInfo{}, err
	}
	return foldMiscInfo(raws)
}

func foldMiscInfo(raws []RawMiscInfo) (CookedMiscInfo, error) {
	var cmi CookedMiscInfo
	i := 0
	n := len(raws)
	for i < n {
		tag := raws[i].Tag
		switch tag {
		case MIRecpt, MICCRecpt, MIBCCRecpt:
			kind := RecptTo
			switch tag {
			case MICCRecpt:
				kind = RecptCC
			case MIBCCRecpt:
				kind = RecptBCC
			}
			rec := MIRecipient{Type: kind, Recpt: raws[i].Value}
			i++
			for i < n {
				switch raws[i].Tag {
				case MILocNo:
					rec.LocNo = raws[i].Value
					i++
				case MIRecTime:
					t := raws[i].Time
					rec.RecTime = &t
					i++
				case MISentBy:
					v := raws[i].Value
					rec.SentBy = &v
					i++
				case MISentAt:
					t := raws[i].Time
					rec.SentAt = &t
					i++
				default:
					goto doneRecpt
				}
			}
		doneRecpt:
			cmi.Recipients = append(cmi.Recipients, rec)
		case MICommTo, MIFootnTo:
			kind := CommentKindComment
			if tag == MIFootnTo {
				kind = CommentKindFootnote
			}
			c := MICommentTo{Kind: kind, TextNo: raws[i].Value}
			i++
			for i < n {
				switch raws[i].Tag {
				case MISentBy:
					v := raws[i].Value
					c.SentBy = &v
					i++
				case MISentAt:
					t := raws[i].Time
					c.SentAt = &t
					i++
				default:
					goto doneComm
				}
			}
		doneComm:
			cmi.CommentTo = append(cmi.CommentTo, c)
		case MICommIn, MIFootnIn:
			kind := CommentKindComment
			if tag == MIFootnIn {
				kind = CommentKindFootnote
			}
			cmi.CommentIn = append(cmi.CommentIn, MICommentIn{Kind: kind, TextNo: raws[i].Value})
			i++
		default:
			return CookedMiscInfo{}, fmt.Errorf("%w: unexpected misc-info tag %d", ErrProtocol, tag)
		}
	}
	return cmi, nil
}

// WriteMiscInfoInput serializes recipients then comment-to references,
// in the order present; comment-in is never emitted (it is read-only,
// derived by the server from other texts' comment-to fields).
func WriteMiscInfoInput(f *wire.Frame, cmi CookedMiscInfo) *wire.Frame {
	// Recipients contribute one tuple each on input (recpt + value);
	// the server derives loc-no/rec-time/sent-by/sent-at itself, so
	// only the recipient-kind tuple travels on input misc-info.
	tuples := make([]RawMiscInfo, 0, len(cmi.Recipients)+len(cmi.CommentTo))
	for _, r := range cmi.Recipients {
		tag := MIRecpt
		switch r.Type {
		case RecptCC:
			tag = MICCRecpt
		case RecptBCC:
			tag = MIBCCRecpt
		}
		tuples = append(tuples, RawMiscInfo{Tag: tag, Value: r.Recpt})
	}
	for _, c := range cmi.CommentTo {
		tag := MICommTo
		if c.Kind == CommentKindFootnote {
			tag = MIFootnTo
		}
		tuples = append(tuples, RawMiscInfo{Tag: tag, Value: c.TextNo})
	}
	return f.Array(len(tuples), func(f *wire.Frame) {
		for _, t := range tuples {
			f.Int(t.Tag).Int(t.Value)
		}
	})
}
