/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package komlog provides the leveled logger used throughout the client
// and cache packages. Callers that don't care about logging can use
// Discard(); callers embedding the client in a larger service can supply
// their own io.WriteCloser sink via New.
package komlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/crewjam/rfc5424"
)

type Level int

const (
	OFF Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	CRITICAL
)

func (l Level) String() string {
	switch l {
	case OFF:
		return "OFF"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case CRITICAL:
		return "CRITICAL"
	}
	return "UNKNOWN"
}

var ErrNotOpen = errors.New("logger is not open")

// Logger is a minimal leveled logger that emits RFC5424 syslog lines.
// The zero value is not usable; construct with New or Discard.
type Logger struct {
	mtx  sync.Mutex
	wtr  io.WriteCloser
	lvl  Level
	hot  bool
	app  string
	host string
}

// New builds a Logger writing to wtr at level INFO.
func New(wtr io.WriteCloser) *Logger {
	host, _ := os.Hostname()
	return &Logger{wtr: wtr, lvl: INFO, hot: true, app: "komclient", host: host}
}

// Discard builds a Logger that drops everything; the default for a
// Connection that wasn't given a Logger explicitly.
func Discard() *Logger {
	return New(discardCloser{})
}

func (l *Logger) SetLevel(lvl Level) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.lvl = lvl
}

func (l *Logger) Close() error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if !l.hot {
		return ErrNotOpen
	}
	l.hot = false
	return l.wtr.Close()
}

func (l *Logger) log(sev rfc5424.Priority, lvl Level, format string, args ...any) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if !l.hot || lvl < l.lvl || l.lvl == OFF {
		return
	}
	msg := rfc5424.Message{
		Priority:  sev,
		Timestamp: time.Now(),
		Hostname:  l.host,
		AppName:   l.app,
		Message:   []byte(fmt.Sprintf(format, args...)),
	}
	b, err := msg.MarshalBinary()
	if err != nil {
		return
	}
	b = append(b, '\n')
	l.wtr.Write(b)
}

func (l *Logger) Debug(format string, args ...any)    { l.log(rfc5424.Debug, DEBUG, format, args...) }
func (l *Logger) Info(format string, args ...any)     { l.log(rfc5424.Info, INFO, format, args...) }
func (l *Logger) Warn(format string, args ...any)     { l.log(rfc5424.Warning, WARN, format, args...) }
func (l *Logger) Error(format string, args ...any)    { l.log(rfc5424.Err, ERROR, format, args...) }
func (l *Logger) Critical(format string, args ...any) { l.log(rfc5424.Crit, CRITICAL, format, args...) }

type discardCloser struct{}

func (discardCloser) Write(p []byte) (int, error) { return len(p), nil }
func (discardCloser) Close() error                { return nil }
