/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package usercache extends package cache with caches bound to a
// single logged-in person: per-conference membership records and
// per-conference unread counts, kept current by a tighter set of
// async handlers layered on top of the base object cache's.
package usercache

import (
	"sync"

	"github.com/rindlow/pykomgrep/cache"
	"github.com/rindlow/pykomgrep/client"
	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/proto"
)

// Connection wraps a cache.Connection with the per-user caches: one
// Membership11 per conference the user belongs to, one unread count
// per conference, and the set of conferences with a non-passive
// membership (memberConfs) that the tighter handlers below consult to
// decide whether an async event is relevant to this user at all.
type Connection struct {
	*cache.Connection
	Person int32

	Memberships *cache.Store[int32, kom.Membership11]

	mtx        sync.Mutex
	noUnread   map[int32]int32
	memberConfs map[int32]bool
}

// New binds a cache.Connection to person and installs the tighter
// membership/unread-count invalidation handlers on top of base's own.
func New(base *cache.Connection, person int32) (*Connection, error) {
	c := &Connection{
		Connection: base,
		Person:     person,
		noUnread:   make(map[int32]int32),
		memberConfs: make(map[int32]bool),
	}
	c.Memberships = cache.NewStore("memberships", c.fetchMembership)
	if err := c.loadMemberConfs(); err != nil {
		return nil, err
	}
	c.installHandlers()
	return c, nil
}

func (c *Connection) fetchMembership(conf int32) (kom.Membership11, error) {
	return client.Call(c.Conn, proto.QueryReadTexts11{
		Person: c.Person, ConfNo: conf, WantReadRanges: true, MaxReadRanges: 0,
	}, kom.ParseMembership11)
}

// loadMemberConfs populates memberConfs from the full membership list,
// in pages of up to 255, skipping passive memberships — matching the
// "active (non-passive) conference list" memberConfs is defined as.
func (c *Connection) loadMemberConfs() error {
	const batch = 255
	first := int32(0)
	for {
		mships, err := client.Call(c.Conn, proto.GetMembership11{
			Person: c.Person, First: first, NoOfConfs: batch, WantReadRanges: true,
		}, kom.ParseMembership11List)
		if err != nil {
			return err
		}
		for _, m := range mships {
			c.Memberships.Set(m.Conference, m)
			if !m.Type.Passive {
				c.addMemberConf(m.Conference)
			}
		}
		if int32(len(mships)) < batch {
			break
		}
		first += int32(len(mships))
	}
	return nil
}

// NoUnread returns the cached unread-text count for conf, computing it
// via the base connection's read-range/local-to-global walk on first
// use.
func (c *Connection) NoUnread(conf int32) (int32, error) {
	c.mtx.Lock()
	n, ok := c.noUnread[conf]
	c.mtx.Unlock()
	if ok {
		return n, nil
	}
	texts, err := c.Connection.UnreadTexts(c.Person, conf)
	if err != nil {
		return 0, err
	}
	n = int32(len(texts))
	c.mtx.Lock()
	c.noUnread[conf] = n
	c.mtx.Unlock()
	return n, nil
}

func (c *Connection) isMemberConf(conf int32) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.memberConfs[conf]
}

func (c *Connection) addMemberConf(conf int32) {
	c.mtx.Lock()
	c.memberConfs[conf] = true
	c.mtx.Unlock()
}

func (c *Connection) removeMemberConf(conf int32) {
	c.mtx.Lock()
	delete(c.memberConfs, conf)
	delete(c.noUnread, conf)
	c.mtx.Unlock()
	c.Memberships.Invalidate(conf)
}

func (c *Connection) bumpUnread(conf int32, delta int32) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if n, ok := c.noUnread[conf]; ok {
		nn := n + delta
		if nn < 0 {
			nn = 0
		}
		c.noUnread[conf] = nn
	}
}

func (c *Connection) invalidateUnread(conf int32) {
	c.mtx.Lock()
	delete(c.noUnread, conf)
	c.mtx.Unlock()
}

// installHandlers layers the tighter per-user rules on top of
// whatever base handlers cache.Connection already installed: base
// invalidates conference/uconference/text-stat, these additionally
// track memberConfs and keep noUnread incrementally correct where
// possible.
func (c *Connection) installHandlers() {
	c.Conn.AddAsyncHandler(kom.AsyncDeletedText, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncDeletedTextMsg)
		for _, rcpt := range m.TextStat.MiscInfo.Recipients {
			if !c.isMemberConf(rcpt.Recpt) {
				continue
			}
			// Only decrement when the cached membership record shows
			// the deleted text's local number was unread; an
			// uncached membership can't be resolved here without a
			// blocking round trip on the connection's own read
			// goroutine, so the count is left alone (stale until the
			// next NoUnread recomputes it from scratch).
			if mship, ok := c.Memberships.Peek(rcpt.Recpt); ok && kom.IsUnread(mship.ReadRanges, rcpt.LocNo) {
				c.bumpUnread(rcpt.Recpt, -1)
			}
		}
	})
	c.Conn.AddAsyncHandler(kom.AsyncNewText, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncNewTextMsg)
		for _, rcpt := range m.TextStat.MiscInfo.Recipients {
			if c.isMemberConf(rcpt.Recpt) {
				c.bumpUnread(rcpt.Recpt, 1)
			}
		}
	})
	c.Conn.AddAsyncHandler(kom.AsyncLeaveConf, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncLeaveConfMsg)
		c.removeMemberConf(m.ConfNo)
	})
	c.Conn.AddAsyncHandler(kom.AsyncNewRecipient, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncNewRecipientMsg)
		if c.isMemberConf(m.ConfNo) {
			c.bumpUnread(m.ConfNo, 1)
		}
	})
	c.Conn.AddAsyncHandler(kom.AsyncSubRecipient, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncSubRecipientMsg)
		if c.isMemberConf(m.ConfNo) {
			c.invalidateUnread(m.ConfNo)
		}
	})
	c.Conn.AddAsyncHandler(kom.AsyncNewMembership, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncNewMembershipMsg)
		if m.Person == c.Person {
			c.addMemberConf(m.ConfNo)
		}
	})
}
