/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import "github.com/rindlow/pykomgrep/wire"

// ConfType is either the old 4-flag or new 8-flag form; both decode
// into the same struct, with the last four flags (AllowAnonymous,
// ForbidSecret and the two reserved ones) left false for the 4-flag
// wire form.
type ConfType struct {
	RdProt        bool
	Original      bool
	Secret        bool
	Letterbox     bool
	AllowAnonymous bool
	ForbidSecret  bool
	Reserved1     bool
	Reserved2     bool
}

func ParseConfType(r *wire.Reader) (ConfType, error) {
	bits, err := r.Bitstring(4)
	if err != nil {
		return ConfType{}, err
	}
	ct := ConfType{
		RdProt:    bits[0],
		Original:  bits[1],
		Secret:    bits[2],
		Letterbox: bits[3],
	}
	return ct, nil
}

func ParseConfType8(r *wire.Reader) (ConfType, error) {
	bits, err := r.Bitstring(8)
	if err != nil {
		return ConfType{}, err
	}
	return ConfType{
		RdProt:         bits[0],
		Original:       bits[1],
		Secret:         bits[2],
		Letterbox:      bits[3],
		AllowAnonymous: bits[4],
		ForbidSecret:   bits[5],
		Reserved1:      bits[6],
		Reserved2:      bits[7],
	}, nil
}

func (ct ConfType) bits8() []bool {
	return []bool{ct.RdProt, ct.Original, ct.Secret, ct.Letterbox,
		ct.AllowAnonymous, ct.ForbidSecret, ct.Reserved1, ct.Reserved2}
}

func (ct ConfType) Write(f *wire.Frame) *wire.Frame { return f.Bitstring(ct.bits8()) }

// PrivBits is the 16-flag privilege bitstring.
type PrivBits struct {
	Wheel       bool
	Admin       bool
	Statistic   bool
	CreatePers  bool
	CreateConf  bool
	ChangeName  bool
	Reserved    [10]bool
}

func ParsePrivBits(r *wire.Reader) (PrivBits, error) {
	bits, err := r.Bitstring(16)
	if err != nil {
		return PrivBits{}, err
	}
	pb := PrivBits{
		Wheel:      bits[0],
		Admin:      bits[1],
		Statistic:  bits[2],
		CreatePers: bits[3],
		CreateConf: bits[4],
		ChangeName: bits[5],
	}
	copy(pb.Reserved[:], bits[6:16])
	return pb, nil
}

func (pb PrivBits) Write(f *wire.Frame) *wire.Frame {
	bits := []bool{pb.Wheel, pb.Admin, pb.Statistic, pb.CreatePers, pb.CreateConf, pb.ChangeName}
	bits = append(bits, pb.Reserved[:]...)
	return f.Bitstring(bits)
}

// PersonalFlags is an 8-flag bitstring attached to Person.
type PersonalFlags struct {
	UnreadIsSecret bool
	Flags          [7]bool
}

func ParsePersonalFlags(r *wire.Reader) (PersonalFlags, error) {
	bits, err := r.Bitstring(8)
	if err != nil {
		return PersonalFlags{}, err
	}
	pf := PersonalFlags{UnreadIsSecret: bits[0]}
	copy(pf.Flags[:], bits[1:8])
	return pf, nil
}

func (pf PersonalFlags) Write(f *wire.Frame) *wire.Frame {
	bits := append([]bool{pf.UnreadIsSecret}, pf.Flags[:]...)
	return f.Bitstring(bits)
}

// SessionFlags is the 8-flag bitstring describing a dynamic session.
type SessionFlags struct {
	Invisible       bool
	UserActiveUsed  bool
	UserAbsent      bool
	Reserved        [5]bool
}

func ParseSessionFlags(r *wire.Reader) (SessionFlags, error) {
	bits, err := r.Bitstring(8)
	if err != nil {
		return SessionFlags{}, err
	}
	sf := SessionFlags{Invisible: bits[0], UserActiveUsed: bits[1], UserAbsent: bits[2]}
	copy(sf.Reserved[:], bits[3:8])
	return sf, nil
}

// MembershipType is the 8-flag bitstring on a membership record.
type MembershipType struct {
	Invitation bool
	Passive    bool
	Secret     bool
	PassiveMessageInvert bool
	Reserved   [4]bool
}

func ParseMembershipType(r *wire.Reader) (MembershipType, error) {
	bits, err := r.Bitstring(8)
	if err != nil {
		return MembershipType{}, err
	}
	mt := MembershipType{
		Invitation:           bits[0],
		Passive:              bits[1],
		Secret:               bits[2],
		PassiveMessageInvert: bits[3],
	}
	copy(mt.Reserved[:], bits[4:8])
	return mt, nil
}

func (mt MembershipType) Write(f *wire.Frame) *wire.Frame {
	bits := []bool{mt.Invitation, mt.Passive, mt.Secret, mt.PassiveMessageInvert}
	bits = append(bits, mt.Reserved[:]...)
	return f.Bitstring(bits)
}

// AuxItemFlags is the 8-flag bitstring on an AuxItem.
type AuxItemFlags struct {
	Deleted      bool
	Inherit      bool
	Secret       bool
	HideCreator  bool
	DontGarb     bool
	Reserved     [3]bool
}

func ParseAuxItemFlags(r *wire.Reader) (AuxItemFlags, error) {
	bits, err := r.Bitstring(8)
	if err != nil {
		return AuxItemFlags{}, err
	}
	af := AuxItemFlags{
		Deleted:     bits[0],
		Inherit:     bits[1],
		Secret:      bits[2],
		HideCreator: bits[3],
		DontGarb:    bits[4],
	}
	copy(af.Reserved[:], bits[5:8])
	return af, nil
}

func (af AuxItemFlags) Write(f *wire.Frame) *wire.Frame {
	bits := []bool{af.Deleted, af.Inherit, af.Secret, af.HideCreator, af.DontGarb}
	bits = append(bits, af.Reserved[:]...)
	return f.Bitstring(bits)
}
