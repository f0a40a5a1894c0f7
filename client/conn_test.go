/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package client

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/proto"
	"github.com/rindlow/pykomgrep/wire"
)

// fakeServer answers the handshake and then hands line-by-line control
// to the caller, mimicking just enough of the wire protocol to drive
// Conn without a real LysKOM server.
func fakeServer(t *testing.T, nc net.Conn) *bufio.Reader {
	t.Helper()
	br := bufio.NewReader(nc)
	if _, err := br.ReadString('\n'); err != nil {
		t.Fatalf("server handshake read: %v", err)
	}
	if _, err := nc.Write([]byte("LysKOM\n")); err != nil {
		t.Fatalf("server handshake write: %v", err)
	}
	return br
}

func dialTestConn(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		fakeServer(t, server)
		close(done)
	}()
	c, err := newConn(client, Options{User: "test"})
	if err != nil {
		t.Fatalf("newConn: %v", err)
	}
	<-done
	return c, server
}

func TestHandshakeAndWhoAmI(t *testing.T) {
	c, server := dialTestConn(t)
	defer c.Close()
	defer server.Close()

	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		r := bufio.NewReader(server)
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		_ = line // "1 56", the WhoAmI request line
		server.Write([]byte("=1 42\n"))
	}()

	n, err := Call(c, proto.WhoAmI{}, func(r *wire.Reader) (int32, error) { return r.Int() })
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if n != 42 {
		t.Errorf("WhoAmI() = %d, want 42", n)
	}
	<-serverDone
}

func TestServerErrorSurfacesToCaller(t *testing.T) {
	c, server := dialTestConn(t)
	defer c.Close()
	defer server.Close()

	go func() {
		r := bufio.NewReader(server)
		r.ReadString('\n')
		server.Write([]byte("%1 14 0\n")) // ErrNoSuchText
	}()

	_, err := Call(c, proto.WhoAmI{}, func(r *wire.Reader) (int32, error) { return r.Int() })
	if err == nil {
		t.Fatal("expected server error")
	}
	se, ok := err.(*kom.ServerError)
	if !ok {
		t.Fatalf("err = %T, want *kom.ServerError", err)
	}
	if se.Code != 14 {
		t.Errorf("Code = %d, want 14", se.Code)
	}
}

func TestAsyncHandlerRunsBeforeAwaitReturns(t *testing.T) {
	c, server := dialTestConn(t)
	defer c.Close()
	defer server.Close()

	invoked := make(chan int32, 1)
	c.AddAsyncHandler(kom.AsyncLeaveConf, func(msg kom.AsyncMessage, _ *Conn) {
		invoked <- msg.(kom.AsyncLeaveConfMsg).ConfNo
	})

	go func() {
		r := bufio.NewReader(server)
		r.ReadString('\n')
		server.Write([]byte(":2 8 7\n")) // async leave-conf for conf 7
		server.Write([]byte("=1 42\n"))
	}()

	_, err := Call(c, proto.WhoAmI{}, func(r *wire.Reader) (int32, error) { return r.Int() })
	if err != nil {
		t.Fatalf("Call: %v", err)
	}

	select {
	case conf := <-invoked:
		if conf != 7 {
			t.Errorf("handler saw ConfNo = %d, want 7", conf)
		}
	case <-time.After(time.Second):
		t.Fatal("async handler never ran")
	}
}
