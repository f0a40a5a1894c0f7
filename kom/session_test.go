/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import (
	"strings"
	"testing"

	"github.com/rindlow/pykomgrep/wire"
)

func TestParseVersionInfo(t *testing.T) {
	f := wire.NewFrame().Int(11).HollerithString("lyskomd").HollerithString("2.1.2")
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	v, err := ParseVersionInfo(r)
	if err != nil {
		t.Fatalf("ParseVersionInfo: %v", err)
	}
	if v.ProtocolVersion != 11 || v.ServerSoftware != "lyskomd" || v.SoftwareVersion != "2.1.2" {
		t.Errorf("VersionInfo = %+v, unexpected", v)
	}
}

func TestParseDynamicSessionInfo(t *testing.T) {
	f := wire.NewFrame().Int(5).Int(10).Int(3).HollerithString("reading").HollerithString("alice")
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	d, err := ParseDynamicSessionInfo(r)
	if err != nil {
		t.Fatalf("ParseDynamicSessionInfo: %v", err)
	}
	if d.Person != 5 || d.WorkingConf != 10 || d.Session != 3 || d.WhatAmIDoing != "reading" || d.Username != "alice" {
		t.Errorf("DynamicSessionInfo = %+v, unexpected", d)
	}
}

func TestParseStatsDescription(t *testing.T) {
	f := wire.NewFrame()
	f.Array(2, func(f *wire.Frame) {
		f.HollerithString("nusers")
		f.HollerithString("idle")
	})
	f.Array(2, func(f *wire.Frame) {
		f.Int(60).Int(3600)
	})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	s, err := ParseStatsDescription(r)
	if err != nil {
		t.Fatalf("ParseStatsDescription: %v", err)
	}
	if len(s.What) != 2 || s.What[0] != "nusers" || len(s.When) != 2 || s.When[1] != 3600 {
		t.Errorf("StatsDescription = %+v, unexpected", s)
	}
}

func TestParseStatsList(t *testing.T) {
	f := wire.NewFrame().Array(1, func(f *wire.Frame) {
		f.Raw([]byte("1.5 2.0 0.5"))
	})
	r := wire.NewReader(strings.NewReader(string(f.Bytes())+" "), 0)
	got, err := ParseStatsList(r)
	if err != nil {
		t.Fatalf("ParseStatsList: %v", err)
	}
	if len(got) != 1 || got[0].Average != 1.5 || got[0].Ascent != 2.0 || got[0].Descent != 0.5 {
		t.Errorf("StatsList = %+v, unexpected", got)
	}
}
