/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import "github.com/rindlow/pykomgrep/wire"

// Mark is one entry of get-marks: a text number and the mark type the
// caller assigned it.
type Mark struct {
	TextNo int32
	Type   int32
}

func ParseMark(r *wire.Reader) (Mark, error) {
	var m Mark
	var err error
	if m.TextNo, err = r.Int(); err != nil {
		return m, err
	}
	if m.Type, err = r.Int(); err != nil {
		return m, err
	}
	return m, nil
}

// Info is the server's global info record (get-info).
type Info struct {
	Version           int32
	ConfPres          int32
	PersPres          int32
	MotdConf          int32
	KOMNews           int32
	MotdOfLysKOM      int32
}

func ParseInfo(r *wire.Reader) (Info, error) {
	var i Info
	var err error
	if i.Version, err = r.Int(); err != nil {
		return i, err
	}
	if i.ConfPres, err = r.Int(); err != nil {
		return i, err
	}
	if i.PersPres, err = r.Int(); err != nil {
		return i, err
	}
	if i.MotdConf, err = r.Int(); err != nil {
		return i, err
	}
	if i.KOMNews, err = r.Int(); err != nil {
		return i, err
	}
	if i.MotdOfLysKOM, err = r.Int(); err != nil {
		return i, err
	}
	return i, nil
}

// VersionInfo describes the server software.
type VersionInfo struct {
	ProtocolVersion int32
	ServerSoftware  string
	SoftwareVersion string
}

func ParseVersionInfo(r *wire.Reader) (VersionInfo, error) {
	var v VersionInfo
	var err error
	if v.ProtocolVersion, err = r.Int(); err != nil {
		return v, err
	}
	if v.ServerSoftware, err = r.HollerithString(); err != nil {
		return v, err
	}
	if v.SoftwareVersion, err = r.HollerithString(); err != nil {
		return v, err
	}
	return v, nil
}

// StaticServerInfo is the result of get-boottime-info.
type StaticServerInfo struct {
	BootTime       Time
	SaveTime       Time
	DBStatus       string
	ExistingTexts  int32
	ExistingPersons int32
	ExistingConfs  int32
}

func ParseStaticServerInfo(r *wire.Reader) (StaticServerInfo, error) {
	var s StaticServerInfo
	var err error
	if s.BootTime, err = ParseTime(r); err != nil {
		return s, err
	}
	if s.SaveTime, err = ParseTime(r); err != nil {
		return s, err
	}
	if s.DBStatus, err = r.HollerithString(); err != nil {
		return s, err
	}
	if s.ExistingTexts, err = r.Int(); err != nil {
		return s, err
	}
	if s.ExistingPersons, err = r.Int(); err != nil {
		return s, err
	}
	if s.ExistingConfs, err = r.Int(); err != nil {
		return s, err
	}
	return s, nil
}

// SchedulingInfo is the result of get-scheduling / set-scheduling input.
type SchedulingInfo struct {
	Priority int32
	Weight   int32
}

func ParseSchedulingInfo(r *wire.Reader) (SchedulingInfo, error) {
	var s SchedulingInfo
	var err error
	if s.Priority, err = r.Int(); err != nil {
		return s, err
	}
	if s.Weight, err = r.Int(); err != nil {
		return s, err
	}
	return s, nil
}

func (s SchedulingInfo) Write(f *wire.Frame) *wire.Frame {
	return f.Int(s.Priority).Int(s.Weight)
}

// DynamicSessionInfo is one entry of who-is-on-dynamic.
type DynamicSessionInfo struct {
	Person       int32
	WorkingConf  int32
	Session      int32
	WhatAmIDoing string
	Username     string
}

func ParseDynamicSessionInfo(r *wire.Reader) (DynamicSessionInfo, error) {
	var d DynamicSessionInfo
	var err error
	if d.Person, err = r.Int(); err != nil {
		return d, err
	}
	if d.WorkingConf, err = r.Int(); err != nil {
		return d, err
	}
	if d.Session, err = r.Int(); err != nil {
		return d, err
	}
	if d.WhatAmIDoing, err = r.HollerithString(); err != nil {
		return d, err
	}
	if d.Username, err = r.HollerithString(); err != nil {
		return d, err
	}
	return d, nil
}

// StaticSessionInfo is the result of get-static-session-info.
type StaticSessionInfo struct {
	Username   string
	Hostname   string
	IdentUser  string
	ConnectionTime Time
}

func ParseStaticSessionInfo(r *wire.Reader) (StaticSessionInfo, error) {
	var s StaticSessionInfo
	var err error
	if s.Username, err = r.HollerithString(); err != nil {
		return s, err
	}
	if s.Hostname, err = r.HollerithString(); err != nil {
		return s, err
	}
	if s.IdentUser, err = r.HollerithString(); err != nil {
		return s, err
	}
	if s.ConnectionTime, err = ParseTime(r); err != nil {
		return s, err
	}
	return s, nil
}

// WhoInfo bundles dynamic + static session info for convenience
// callers that join the two requests, grounded on the original
// client's habit of presenting who-is-on results alongside session
// details in one record.
type WhoInfo struct {
	Dynamic DynamicSessionInfo
	Static  StaticSessionInfo
}

// StatsDescription is one entry of get-stats-description.
type StatsDescription struct {
	What []string
	When []int32
}

func ParseStatsDescription(r *wire.Reader) (StatsDescription, error) {
	var s StatsDescription
	var err error
	if s.What, err = wire.ReadArray(r, func(r *wire.Reader) (string, error) { return r.HollerithString() }); err != nil {
		return s, err
	}
	if s.When, err = wire.ReadInt32Array(r); err != nil {
		return s, err
	}
	return s, nil
}

// Stats is one entry of get-stats.
type Stats struct {
	Average float64
	Ascent  float64
	Descent float64
}

func ParseStats(r *wire.Reader) (Stats, error) {
	var s Stats
	var err error
	if s.Average, err = r.Float(); err != nil {
		return s, err
	}
	if s.Ascent, err = r.Float(); err != nil {
		return s, err
	}
	if s.Descent, err = r.Float(); err != nil {
		return s, err
	}
	return s, nil
}

func ParseStatsList(r *wire.Reader) ([]Stats, error) {
	return wire.ReadArray(r, ParseStats)
}
