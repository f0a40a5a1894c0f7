/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package client implements the request multiplexer, async dispatcher
// and handshake for a single LysKOM Protocol A connection. It has no
// notion of conferences or caching — see package cache for the object
// cache layered on top.
package client

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/rindlow/pykomgrep/internal/komlog"
	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/proto"
	"github.com/rindlow/pykomgrep/wire"
)

// AsyncHandler is invoked, in registration order, for every decoded
// async message of the tag it was registered against. Handlers run
// synchronously on whatever goroutine is currently draining the
// socket (inside Call or PollAvailable).
type AsyncHandler func(msg kom.AsyncMessage, c *Conn)

// pendingParser decodes a reply body for one outstanding request; it
// is type-erased so the pending table can hold requests of differing
// response shapes uniformly.
type pendingParser func(r *wire.Reader) (any, error)

// Conn is one multiplexed LysKOM connection: one TCP socket, one
// correlation-ID space, one async-handler registry. It is not safe
// for concurrent callers to both be blocked in Call/PollAvailable at once —
// per the protocol's concurrency model, only one goroutine may be
// actively draining the socket at a time; callers must serialize
// their own access (e.g. with an external mutex) if they share a Conn
// across goroutines.
type Conn struct {
	id   uuid.UUID
	conn net.Conn
	r    *wire.Reader
	w    *wire.Writer
	log  *komlog.Logger

	mtx      sync.Mutex
	nextID   int32
	pending  map[int32]pendingParser
	responses map[int32]any
	errs     map[int32]*kom.ServerError
	fatal    error

	asyncMtx sync.Mutex
	handlers map[int32][]AsyncHandler

	histoMtx sync.Mutex
	histo    map[string]int64
	histoOn  bool

	metrics *metrics
}

// Options configures a new Conn. It intentionally has no notion of
// where Host/User/Password come from (flags, environment, a prompt) —
// acquiring those values is the caller's job.
type Options struct {
	// LocalAddr optionally binds the outgoing connection to a specific
	// local address, mirroring net.Dialer.LocalAddr.
	LocalAddr net.Addr
	// User is the free-form identification string sent with the
	// initial "A<len>H<user>" greeting.
	User string
	// Logger receives connection lifecycle and (if Trace is set)
	// every wire-level send/receive. Defaults to a discarding logger.
	Logger *komlog.Logger
	// Trace enables byte-level send/recv logging.
	Trace bool
	// Metrics, when true, builds a Prometheus counter of requests by
	// class; Conn.Collectors returns it unregistered. It counts every
	// request whether or not EnableRequestHistogram was called.
	Metrics bool
}

// Dial opens a TCP connection to addr (host:port, e.g.
// "kom.example.org:4894"), performs the protocol handshake, and
// returns a ready-to-use Conn. The multiplexer loop only runs while a
// caller is blocked in Call or PollAvailable; Dial itself does not start a
// background goroutine.
func Dial(ctx context.Context, addr string, opts Options) (*Conn, error) {
	var d net.Dialer
	if opts.LocalAddr != nil {
		d.LocalAddr = opts.LocalAddr
	}
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return newConn(nc, opts)
}

func newConn(nc net.Conn, opts Options) (*Conn, error) {
	lg := opts.Logger
	if lg == nil {
		lg = komlog.Discard()
	}
	c := &Conn{
		id:        uuid.New(),
		conn:      nc,
		r:         wire.NewReader(nc, 0),
		w:         wire.NewWriter(nc, 0),
		log:       lg,
		pending:   make(map[int32]pendingParser),
		responses: make(map[int32]any),
		errs:      make(map[int32]*kom.ServerError),
		handlers:  make(map[int32][]AsyncHandler),
		histo:     make(map[string]int64),
	}
	if opts.Trace {
		c.r.SetTrace(func(s string) { c.log.Debug("<- %s", s) })
		c.w.SetTrace(func(s string) { c.log.Debug("%s", s) })
	}
	if opts.Metrics {
		c.metrics = newMetrics()
	}
	if err := c.handshake(opts.User); err != nil {
		nc.Close()
		return nil, err
	}
	return c, nil
}

// handshake sends "A<len>H<user>\n" and validates the server's
// "LysKOM\n" reply; anything else is ErrBadInitialResponse.
func (c *Conn) handshake(user string) error {
	if err := c.w.SendGreeting(user); err != nil {
		return err
	}
	buf := make([]byte, 7)
	for i := range buf {
		b, err := c.r.ReadByte()
		if err != nil {
			return fmt.Errorf("%w: %v", kom.ErrBadInitialResponse, err)
		}
		buf[i] = b
	}
	if string(buf) != "LysKOM\n" {
		return fmt.Errorf("%w: got %q", kom.ErrBadInitialResponse, buf)
	}
	c.log.Info("handshake ok, session %s", c.id)
	return nil
}

// ID returns the UUID tagging this connection, useful in logs when a
// process holds several.
func (c *Conn) ID() uuid.UUID { return c.id }

// Close closes the underlying socket. Any Call currently blocked will
// observe a receive error.
func (c *Conn) Close() error { return c.conn.Close() }

// EnableRequestHistogram turns on the optional request-class counter
// described by the protocol's multiplexer component; disabled by
// default since it adds a map write per request.
func (c *Conn) EnableRequestHistogram() {
	c.histoMtx.Lock()
	defer c.histoMtx.Unlock()
	c.histoOn = true
}

// RequestHistogram returns a snapshot of the request-class -> count
// table. Empty if EnableRequestHistogram was never called.
func (c *Conn) RequestHistogram() map[string]int64 {
	c.histoMtx.Lock()
	defer c.histoMtx.Unlock()
	out := make(map[string]int64, len(c.histo))
	for k, v := range c.histo {
		out[k] = v
	}
	return out
}

func (c *Conn) bumpHistogram(class string) {
	c.histoMtx.Lock()
	on := c.histoOn
	if on {
		c.histo[class]++
	}
	c.histoMtx.Unlock()
	if c.metrics != nil {
		c.metrics.requests.WithLabelValues(class).Inc()
	}
}

// register assigns a fresh correlation ID (1, 2, 3, ... per
// connection, never reused) and files parser under the pending table.
func (c *Conn) register(parser pendingParser) int32 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.nextID++
	id := c.nextID
	c.pending[id] = parser
	return id
}

// AddAsyncHandler registers fn to run, in registration order, whenever
// an async message with the given tag is dispatched.
func (c *Conn) AddAsyncHandler(tag int32, fn AsyncHandler) {
	c.asyncMtx.Lock()
	defer c.asyncMtx.Unlock()
	c.handlers[tag] = append(c.handlers[tag], fn)
}
