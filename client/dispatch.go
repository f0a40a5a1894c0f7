/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package client

import (
	"fmt"

	"github.com/rindlow/pykomgrep/kom"
)

// readOne skips leading whitespace (such as the newline ending the
// previous message), then reads and fully processes exactly one server
// message: a reply ("="), an error ("%"), or an async message (":").
// Replies and errors are filed into the response/error tables; async
// messages are dispatched to their registered handlers before this
// returns, so a cache invalidation triggered by an async always
// completes before the Call that observed it resumes.
func (c *Conn) readOne() error {
	b, err := c.r.ReadByte()
	for err == nil && (b == ' ' || b == '\t' || b == '\r' || b == '\n') {
		b, err = c.r.ReadByte()
	}
	if err != nil {
		c.fail(err)
		return err
	}
	switch b {
	case '=':
		return c.readReply()
	case '%':
		return c.readError()
	case ':':
		return c.readAsync()
	default:
		err := fmt.Errorf("%w: unexpected discriminator %q", kom.ErrProtocol, b)
		c.fail(err)
		return err
	}
}

func (c *Conn) readReply() error {
	id, err := c.r.Int()
	if err != nil {
		c.fail(err)
		return err
	}
	c.mtx.Lock()
	parser, ok := c.pending[id]
	c.mtx.Unlock()
	if !ok {
		err := fmt.Errorf("%w: id %d", kom.ErrBadRequestID, id)
		c.fail(err)
		return err
	}
	val, err := parser(c.r)
	if err != nil {
		c.fail(err)
		return err
	}
	c.mtx.Lock()
	delete(c.pending, id)
	c.responses[id] = val
	c.mtx.Unlock()
	return nil
}

func (c *Conn) readError() error {
	id, err := c.r.Int()
	if err != nil {
		c.fail(err)
		return err
	}
	code, err := c.r.Int()
	if err != nil {
		c.fail(err)
		return err
	}
	status, err := c.r.Int()
	if err != nil {
		c.fail(err)
		return err
	}
	c.mtx.Lock()
	_, ok := c.pending[id]
	delete(c.pending, id)
	c.errs[id] = kom.NewServerError(code, status)
	c.mtx.Unlock()
	if !ok {
		err := fmt.Errorf("%w: id %d", kom.ErrBadRequestID, id)
		c.fail(err)
		return err
	}
	return nil
}

func (c *Conn) readAsync() error {
	if _, err := c.r.Int(); err != nil { // nargs, advisory, discarded
		c.fail(err)
		return err
	}
	tag, err := c.r.Int()
	if err != nil {
		c.fail(err)
		return err
	}
	parse, ok := kom.AsyncParsers[tag]
	if !ok {
		err := fmt.Errorf("%w: tag %d", kom.ErrUnimplementedAsync, tag)
		c.fail(err)
		return err
	}
	msg, err := parse(c.r)
	if err != nil {
		c.fail(err)
		return err
	}
	c.asyncMtx.Lock()
	hs := append([]AsyncHandler(nil), c.handlers[tag]...)
	c.asyncMtx.Unlock()
	for _, h := range hs {
		h(msg, c)
	}
	return nil
}

// fail marks the connection as dead: any local error observed while
// draining the socket (receive failure, malformed frame, unknown
// request id, unimplemented async tag, unparsable body) is fatal, so
// later calls fail immediately rather than deadlock.
func (c *Conn) fail(err error) {
	c.mtx.Lock()
	if c.fatal == nil {
		c.fatal = err
	}
	c.mtx.Unlock()
}

// await blocks until the reply or error for id has arrived, reading
// and fully processing any interleaved server messages (including
// their cache-invalidation side effects) along the way. It returns the
// type-erased response value handed back by the parser that was
// registered alongside id.
func (c *Conn) await(id int32) (any, error) {
	for {
		c.mtx.Lock()
		if fatal := c.fatal; fatal != nil {
			c.mtx.Unlock()
			return nil, fatal
		}
		if v, ok := c.responses[id]; ok {
			delete(c.responses, id)
			c.mtx.Unlock()
			return v, nil
		}
		if e, ok := c.errs[id]; ok {
			delete(c.errs, id)
			c.mtx.Unlock()
			return nil, e
		}
		c.mtx.Unlock()
		if err := c.readOne(); err != nil {
			return nil, err
		}
	}
}

// PollAvailable processes server messages while the reader's buffer
// holds unread bytes, and returns as soon as the buffer is empty. It
// does not check the socket for data that has not been buffered yet,
// so with an empty buffer it returns at once. While the buffer holds
// anything (even only the whitespace ending the previous message), the
// next message is read in full, blocking on the socket until it
// arrives.
func (c *Conn) PollAvailable() error {
	for c.r.Buffered() > 0 {
		if err := c.readOne(); err != nil {
			return err
		}
	}
	return nil
}
