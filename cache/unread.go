/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package cache

import (
	"errors"

	"github.com/rindlow/pykomgrep/client"
	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/proto"
)

// maxLocalToGlobal is the largest batch local-to-global is queried
// with at a time.
const maxLocalToGlobal = 255

// UnreadTexts returns the global text numbers unread by person in
// conf: the v11 read-ranges are fetched first, then every gap between
// ranges and the tail beyond the last range is paged through
// local-to-global in batches of up to 255. A no-such-local-text
// reply — the conference simply has no more texts past where we
// asked — ends the walk cleanly with whatever has been collected so
// far rather than surfacing as an error.
func (c *Connection) UnreadTexts(person, conf int32) ([]int32, error) {
	mship, err := client.Call(c.Conn, proto.QueryReadTexts11{
		Person: person, ConfNo: conf, WantReadRanges: true, MaxReadRanges: 0,
	}, kom.ParseMembership11)
	if err != nil {
		return nil, err
	}

	gaps, last := kom.ReadRangesToGapsAndLast(mship.ReadRanges)
	var unread []int32

	emit := func(first, count int32) error {
		for count > 0 {
			batch := count
			if batch > maxLocalToGlobal {
				batch = maxLocalToGlobal
			}
			mapping, err := client.Call(c.Conn, proto.LocalToGlobal{
				ConfNo: conf, FirstLocal: first, NoOfTexts: batch,
			}, kom.ParseTextMapping)
			if err != nil {
				if errors.Is(err, kom.ErrNoSuchLocalText) {
					return nil
				}
				return err
			}
			for _, p := range mapping.Pairs() {
				if p.GlobalNumber != 0 && kom.IsUnread(mship.ReadRanges, p.LocalNumber) {
					unread = append(unread, p.GlobalNumber)
				}
			}
			advanced := mapping.RangeEnd - first
			if advanced <= 0 {
				break
			}
			first += advanced
			count -= advanced
		}
		return nil
	}

	for _, g := range gaps {
		if err := emit(g.First, g.Count); err != nil {
			return unread, err
		}
	}

	first := last
	for {
		mapping, err := client.Call(c.Conn, proto.LocalToGlobal{
			ConfNo: conf, FirstLocal: first, NoOfTexts: maxLocalToGlobal,
		}, kom.ParseTextMapping)
		if err != nil {
			if errors.Is(err, kom.ErrNoSuchLocalText) {
				break
			}
			return unread, err
		}
		for _, p := range mapping.Pairs() {
			if p.GlobalNumber != 0 && kom.IsUnread(mship.ReadRanges, p.LocalNumber) {
				unread = append(unread, p.GlobalNumber)
			}
		}
		if !mapping.LaterTextsExists {
			break
		}
		advanced := mapping.RangeEnd - first
		if advanced <= 0 {
			break
		}
		first += advanced
	}

	return unread, nil
}
