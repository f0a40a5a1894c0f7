/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import "github.com/rindlow/pykomgrep/wire"

// UConference is the compact subset of conference info: name, type,
// highest local text number, and garb-nice.
type UConference struct {
	Name         string
	Type         ConfType
	HighestLocalNo int32
	NiceFlag     int32
}

func ParseUConference(r *wire.Reader) (UConference, error) {
	var c UConference
	var err error
	if c.Name, err = r.HollerithString(); err != nil {
		return c, err
	}
	if c.Type, err = ParseConfType8(r); err != nil {
		return c, err
	}
	if c.HighestLocalNo, err = r.Int(); err != nil {
		return c, err
	}
	if c.NiceFlag, err = r.Int(); err != nil {
		return c, err
	}
	return c, nil
}

// Conference is the full conference record.
type Conference struct {
	Name             string
	Type             ConfType
	CreationTime     Time
	LastWritten      Time
	Creator          int32
	Presentation     int32
	Supervisor       int32
	PermittedSubmitters int32
	SuperConf        int32
	MsgOfDay         int32
	Nice             int32
	Keep             int32
	NoOfMembers      int32
	FirstLocalNo     int32
	NoOfTexts        int32
	Expire           int32
	AuxItems         []AuxItem
}

func ParseConference(r *wire.Reader) (Conference, error) {
	var c Conference
	var err error
	if c.Name, err = r.HollerithString(); err != nil {
		return c, err
	}
	if c.Type, err = ParseConfType8(r); err != nil {
		return c, err
	}
	if c.CreationTime, err = ParseTime(r); err != nil {
		return c, err
	}
	if c.LastWritten, err = ParseTime(r); err != nil {
		return c, err
	}
	ints := make([]int32, 11)
	for i := range ints {
		if ints[i], err = r.Int(); err != nil {
			return c, err
		}
	}
	c.Creator, c.Presentation, c.Supervisor, c.PermittedSubmitters = ints[0], ints[1], ints[2], ints[3]
	c.SuperConf, c.MsgOfDay, c.Nice, c.Keep = ints[4], ints[5], ints[6], ints[7]
	c.NoOfMembers, c.FirstLocalNo, c.NoOfTexts = ints[8], ints[9], ints[10]
	if c.Expire, err = r.Int(); err != nil {
		return c, err
	}
	if c.AuxItems, err = ParseAuxItemList(r); err != nil {
		return c, err
	}
	return c, nil
}

// Person is the full person record.
type Person struct {
	Username        string
	Privileges      PrivBits
	Flags           PersonalFlags
	LastLogin       Time
	UserArea        int32
	TotalTimePresent int32
	Sessions        int32
	CreatedLines    int32
	CreatedBytes    int32
	ReadTexts       int32
	NoOfTextFetches int32
	CreatedPersons  int32
	CreatedConfs    int32
	FirstCreatedLocalNo int32
	NoOfCreatedTexts int32
	NoOfMarks       int32
	NoOfConfs       int32
}

func ParsePerson(r *wire.Reader) (Person, error) {
	var p Person
	var err error
	if p.Username, err = r.HollerithString(); err != nil {
		return p, err
	}
	if p.Privileges, err = ParsePrivBits(r); err != nil {
		return p, err
	}
	if p.Flags, err = ParsePersonalFlags(r); err != nil {
		return p, err
	}
	if p.LastLogin, err = ParseTime(r); err != nil {
		return p, err
	}
	ints := make([]int32, 13)
	for i := range ints {
		if ints[i], err = r.Int(); err != nil {
			return p, err
		}
	}
	p.UserArea, p.TotalTimePresent, p.Sessions = ints[0], ints[1], ints[2]
	p.CreatedLines, p.CreatedBytes, p.ReadTexts = ints[3], ints[4], ints[5]
	p.NoOfTextFetches, p.CreatedPersons, p.CreatedConfs = ints[6], ints[7], ints[8]
	p.FirstCreatedLocalNo, p.NoOfCreatedTexts, p.NoOfMarks, p.NoOfConfs = ints[9], ints[10], ints[11], ints[12]
	return p, nil
}

// TextStat is a text's metadata: creation info, size, cooked misc-info
// and aux-items.
type TextStat struct {
	CreationTime Time
	Author       int32
	NoOfLines    int32
	NoOfChars    int32
	NoOfMarks    int32
	MiscInfo     CookedMiscInfo
	AuxItems     []AuxItem
}

func ParseTextStat(r *wire.Reader) (TextStat, error) {
	var t TextStat
	var err error
	if t.CreationTime, err = ParseTime(r); err != nil {
		return t, err
	}
	if t.Author, err = r.Int(); err != nil {
		return t, err
	}
	if t.NoOfLines, err = r.Int(); err != nil {
		return t, err
	}
	if t.NoOfChars, err = r.Int(); err != nil {
		return t, err
	}
	if t.NoOfMarks, err = r.Int(); err != nil {
		return t, err
	}
	if t.MiscInfo, err = ParseCookedMiscInfo(r); err != nil {
		return t, err
	}
	if t.AuxItems, err = ParseAuxItemList(r); err != nil {
		return t, err
	}
	return t, nil
}

// ConfZInfo is the compact result of a name lookup: a conference
// number paired with its type.
type ConfZInfo struct {
	Name   string
	Type   ConfType
	ConfNo int32
}

func ParseConfZInfo(r *wire.Reader) (ConfZInfo, error) {
	var c ConfZInfo
	var err error
	if c.Name, err = r.HollerithString(); err != nil {
		return c, err
	}
	if c.Type, err = ParseConfType(r); err != nil {
		return c, err
	}
	if c.ConfNo, err = r.Int(); err != nil {
		return c, err
	}
	return c, nil
}

func ParseConfZInfoList(r *wire.Reader) ([]ConfZInfo, error) {
	return wire.ReadArray(r, ParseConfZInfo)
}
