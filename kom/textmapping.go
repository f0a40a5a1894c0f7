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

// TextList is the result of get-map: a first local number and the
// ordered global numbers starting there (0 marks a hole).
type TextList struct {
	FirstLocalNo int32
	Texts        []int32
}

func ParseTextList(r *wire.Reader) (TextList, error) {
	var tl TextList
	var err error
	if tl.FirstLocalNo, err = r.Int(); err != nil {
		return tl, err
	}
	if tl.Texts, err = wire.ReadInt32Array(r); err != nil {
		return tl, err
	}
	return tl, nil
}

// TextNumberPair is one (local, global) mapping entry.
type TextNumberPair struct {
	LocalNumber  int32
	GlobalNumber int32
}

// BlockType distinguishes the two wire encodings of a local-to-global
// mapping reply.
type BlockType int

const (
	BlockSparse BlockType = 0
	BlockDense  BlockType = 1
)

// TextMapping is the result of local-to-global / map-created-texts:
// a [RangeBegin, RangeEnd) range of local numbers, whether later
// texts exist beyond RangeEnd, and the realized (local,global) pairs
// either as a sparse list or a dense block starting at DenseFirst.
type TextMapping struct {
	RangeBegin        int32
	RangeEnd          int32
	LaterTextsExists  bool
	BlockType         BlockType
	DenseFirst        int32
	DenseTexts        []int32
	SparsePairs       []TextNumberPair
}

// Pairs realizes the mapping as an ordered list of (local, global)
// pairs regardless of the wire block type.
func (tm TextMapping) Pairs() []TextNumberPair {
	if tm.BlockType == BlockDense {
		out := make([]TextNumberPair, len(tm.DenseTexts))
		for i, g := range tm.DenseTexts {
			out[i] = TextNumberPair{LocalNumber: tm.DenseFirst + int32(i), GlobalNumber: g}
		}
		return out
	}
	return tm.SparsePairs
}

// Dict realizes the mapping as a local->global map, skipping holes
// (global number 0).
func (tm TextMapping) Dict() map[int32]int32 {
	out := make(map[int32]int32)
	for _, p := range tm.Pairs() {
		if p.GlobalNumber != 0 {
			out[p.LocalNumber] = p.GlobalNumber
		}
	}
	return out
}

func ParseTextMapping(r *wire.Reader) (TextMapping, error) {
	var tm TextMapping
	var err error
	if tm.RangeBegin, err = r.Int(); err != nil {
		return tm, err
	}
	if tm.RangeEnd, err = r.Int(); err != nil {
		return tm, err
	}
	later, err := r.Int()
	if err != nil {
		return tm, err
	}
	tm.LaterTextsExists = later != 0
	bt, err := r.Int()
	if err != nil {
		return tm, err
	}
	tm.BlockType = BlockType(bt)
	switch tm.BlockType {
	case BlockDense:
		if tm.DenseFirst, err = r.Int(); err != nil {
			return tm, err
		}
		if tm.DenseTexts, err = wire.ReadInt32Array(r); err != nil {
			return tm, err
		}
	case BlockSparse:
		tm.SparsePairs, err = wire.ReadArray(r, func(r *wire.Reader) (TextNumberPair, error) {
			var p TextNumberPair
			var err error
			if p.LocalNumber, err = r.Int(); err != nil {
				return p, err
			}
			if p.GlobalNumber, err = r.Int(); err != nil {
				return p, err
			}
			return p, nil
		})
		if err != nil {
			return tm, err
		}
	default:
		return tm, fmt.Errorf("%w: unexpected text-mapping block type %d", ErrProtocol, bt)
	}
	return tm, nil
}
