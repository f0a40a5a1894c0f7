/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package cache

import (
	"github.com/rindlow/pykomgrep/client"
	"github.com/rindlow/pykomgrep/kom"
)

// installHandlers wires the seven async invalidation rules the object
// cache layer is responsible for. Each handler receives the
// already-decoded async message and the underlying *client.Conn; they
// run synchronously in the dispatch path, so by the time the Call
// that observed the triggering async resumes, every invalidation
// below has already happened.
func (c *Connection) installHandlers() {
	c.Conn.AddAsyncHandler(kom.AsyncNewName, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncNewNameMsg)
		c.UConferences.Invalidate(m.ConfNo)
		c.Conferences.Invalidate(m.ConfNo)
	})
	c.Conn.AddAsyncHandler(kom.AsyncLeaveConf, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncLeaveConfMsg)
		c.Conferences.Invalidate(m.ConfNo)
	})
	c.Conn.AddAsyncHandler(kom.AsyncDeletedText, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncDeletedTextMsg)
		for _, rcpt := range m.TextStat.MiscInfo.Recipients {
			c.Conferences.Invalidate(rcpt.Recpt)
		}
	})
	c.Conn.AddAsyncHandler(kom.AsyncNewText, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncNewTextMsg)
		for _, rcpt := range m.TextStat.MiscInfo.Recipients {
			c.Conferences.Invalidate(rcpt.Recpt)
			c.UConferences.Invalidate(rcpt.Recpt)
		}
	})
	c.Conn.AddAsyncHandler(kom.AsyncNewRecipient, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncNewRecipientMsg)
		c.Conferences.Invalidate(m.ConfNo)
		c.UConferences.Invalidate(m.ConfNo)
		c.TextStats.Invalidate(m.TextNo)
	})
	c.Conn.AddAsyncHandler(kom.AsyncSubRecipient, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncSubRecipientMsg)
		c.Conferences.Invalidate(m.ConfNo)
		c.TextStats.Invalidate(m.TextNo)
	})
	c.Conn.AddAsyncHandler(kom.AsyncNewMembership, func(msg kom.AsyncMessage, _ *client.Conn) {
		m := msg.(kom.AsyncNewMembershipMsg)
		c.Conferences.Invalidate(m.ConfNo)
	})
}
