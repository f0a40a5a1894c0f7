/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import (
	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/wire"
)

// Int-response requests: the reply body is a single integer.

type WhoAmI struct{}

func (WhoAmI) Opcode() int32           { return OpWhoAmI }
func (WhoAmI) WriteArgs(f *wire.Frame) {}

type GetLastText struct{ Before kom.Time }

func (r GetLastText) Opcode() int32 { return OpGetLastText }
func (r GetLastText) WriteArgs(f *wire.Frame) {
	r.Before.Write(f)
}

type FindNextTextNo struct{ Start int32 }

func (r FindNextTextNo) Opcode() int32           { return OpFindNextTextNo }
func (r FindNextTextNo) WriteArgs(f *wire.Frame) { f.Int(r.Start) }

type FindPreviousTextNo struct{ Start int32 }

func (r FindPreviousTextNo) Opcode() int32           { return OpFindPreviousTextNo }
func (r FindPreviousTextNo) WriteArgs(f *wire.Frame) { f.Int(r.Start) }

// CreateText creates a text. Text is the raw byte payload (already
// encoded by the caller in whatever charset the content-type aux-item
// declares — the Hollerith length is the byte length, not any
// character count).
type CreateText struct {
	Text     []byte
	MiscInfo kom.CookedMiscInfo
	AuxItems []kom.AuxItem
}

func (r CreateText) Opcode() int32 { return OpCreateText }
func (r CreateText) WriteArgs(f *wire.Frame) {
	f.Hollerith(r.Text)
	kom.WriteMiscInfoInput(f, r.MiscInfo)
	kom.WriteAuxItemInputList(f, r.AuxItems)
}

type CreateAnonymousText struct {
	Text     []byte
	MiscInfo kom.CookedMiscInfo
	AuxItems []kom.AuxItem
}

func (r CreateAnonymousText) Opcode() int32 { return OpCreateAnonymousText }
func (r CreateAnonymousText) WriteArgs(f *wire.Frame) {
	f.Hollerith(r.Text)
	kom.WriteMiscInfoInput(f, r.MiscInfo)
	kom.WriteAuxItemInputList(f, r.AuxItems)
}

type CreateConf struct {
	Name     string
	Type     kom.ConfType
	AuxItems []kom.AuxItem
}

func (r CreateConf) Opcode() int32 { return OpCreateConf }
func (r CreateConf) WriteArgs(f *wire.Frame) {
	f.HollerithString(r.Name)
	r.Type.Write(f)
	kom.WriteAuxItemInputList(f, r.AuxItems)
}

type CreatePerson struct {
	Name     string
	Passwd   string
	Flags    kom.PersonalFlags
	AuxItems []kom.AuxItem
}

func (r CreatePerson) Opcode() int32 { return OpCreatePerson }
func (r CreatePerson) WriteArgs(f *wire.Frame) {
	f.HollerithString(r.Name).HollerithString(r.Passwd)
	r.Flags.Write(f)
	kom.WriteAuxItemInputList(f, r.AuxItems)
}

type FirstUnusedConfNo struct{}

func (FirstUnusedConfNo) Opcode() int32           { return OpFirstUnusedConfNo }
func (FirstUnusedConfNo) WriteArgs(f *wire.Frame) {}

type FirstUnusedTextNo struct{}

func (FirstUnusedTextNo) Opcode() int32           { return OpFirstUnusedTextNo }
func (FirstUnusedTextNo) WriteArgs(f *wire.Frame) {}

type FindNextConfNo struct{ Start int32 }

func (r FindNextConfNo) Opcode() int32           { return OpFindNextConfNo }
func (r FindNextConfNo) WriteArgs(f *wire.Frame) { f.Int(r.Start) }

type FindPreviousConfNo struct{ Start int32 }

func (r FindPreviousConfNo) Opcode() int32           { return OpFindPreviousConfNo }
func (r FindPreviousConfNo) WriteArgs(f *wire.Frame) { f.Int(r.Start) }
