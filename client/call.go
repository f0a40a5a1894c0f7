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
	"reflect"

	"github.com/rindlow/pykomgrep/proto"
	"github.com/rindlow/pykomgrep/wire"
)

// Call submits req and blocks for its reply, decoding the body with
// parse. This is the single entry point request types are invoked
// through; void requests pass a parse that reads nothing, e.g.
//
//	client.Call(c, proto.Logout{}, client.NoBody)
func Call[T any](c *Conn, req proto.Request, parse func(*wire.Reader) (T, error)) (T, error) {
	var zero T
	id, err := c.submit(req, func(r *wire.Reader) (any, error) { return parse(r) })
	if err != nil {
		return zero, err
	}
	v, err := c.await(id)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("client: response type mismatch for opcode %d: got %T", req.Opcode(), v)
	}
	return t, nil
}

// NoBody is the response parser for void requests: the wire carries no
// body at all after "=<id>", so this reads nothing and always
// succeeds.
func NoBody(r *wire.Reader) (struct{}, error) { return struct{}{}, nil }

// submit writes req's frame under a freshly registered ID and returns
// it; the caller is responsible for awaiting that ID.
func (c *Conn) submit(req proto.Request, parser pendingParser) (int32, error) {
	id := c.register(parser)
	c.bumpHistogram(requestClass(req))
	f := wire.NewFrame()
	req.WriteArgs(f)
	if err := c.w.Send(id, req.Opcode(), f); err != nil {
		c.fail(err)
		return 0, err
	}
	return id, nil
}

// requestClass names a request by its concrete Go type, used as the
// histogram key (e.g. "GetTextStat").
func requestClass(req proto.Request) string {
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
