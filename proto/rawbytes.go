/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import "github.com/rindlow/pykomgrep/wire"

// Raw-bytes-response requests: the reply body is a single Hollerith
// string, returned to the caller as undecoded bytes (the text's own
// content-type aux-item, not the protocol default, governs how to
// decode it — see cache.Connection.TextEncoding).

type GetText struct {
	TextNo    int32
	StartChar int32
	MaxChars  int32
}

func (r GetText) Opcode() int32 { return OpGetText }
func (r GetText) WriteArgs(f *wire.Frame) {
	f.Int(r.TextNo).Int(r.StartChar).Int(r.MaxChars)
}

type GetClientName struct{ SessionNo int32 }

func (r GetClientName) Opcode() int32           { return OpGetClientName }
func (r GetClientName) WriteArgs(f *wire.Frame) { f.Int(r.SessionNo) }

type GetClientVersion struct{ SessionNo int32 }

func (r GetClientVersion) Opcode() int32           { return OpGetClientVersion }
func (r GetClientVersion) WriteArgs(f *wire.Frame) { f.Int(r.SessionNo) }

type GetCollateTable struct{}

func (GetCollateTable) Opcode() int32           { return OpGetCollateTable }
func (GetCollateTable) WriteArgs(f *wire.Frame) {}
