/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package cache

import (
	"strings"
	"sync"

	"github.com/rindlow/pykomgrep/client"
	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/proto"
	"github.com/rindlow/pykomgrep/wire"
)

// Connection layers the five object caches over a *client.Conn:
// uconferences, conferences, persons, textstats and subjects. New
// installs the async invalidation handlers on the *client.Conn every
// time it is called, so two Connections sharing one *client.Conn would
// double-invalidate; share one Connection instead.
type Connection struct {
	Conn *client.Conn

	UConferences *Store[int32, kom.UConference]
	Conferences  *Store[int32, kom.Conference]
	Persons      *Store[int32, kom.Person]
	TextStats    *Store[int32, kom.TextStat]
	Subjects     *Store[int32, string]

	collateMtx     sync.Mutex
	collateTable   []byte
	collateFetched bool
}

// New wraps conn with the object cache layer and installs its
// invalidation handlers.
func New(conn *client.Conn) *Connection {
	c := &Connection{Conn: conn}
	c.UConferences = NewStore("uconferences", c.fetchUConference)
	c.Conferences = NewStore("conferences", c.fetchConference)
	c.Persons = NewStore("persons", c.fetchPerson)
	c.TextStats = NewStore("textstats", c.fetchTextStat)
	c.Subjects = NewStore("subjects", c.fetchSubject)
	c.installHandlers()
	return c
}

func (c *Connection) fetchUConference(no int32) (kom.UConference, error) {
	return client.Call(c.Conn, proto.GetUconfStat{ConfNo: no}, kom.ParseUConference)
}

func (c *Connection) fetchConference(no int32) (kom.Conference, error) {
	return client.Call(c.Conn, proto.GetConfStat{ConfNo: no}, kom.ParseConference)
}

func (c *Connection) fetchPerson(no int32) (kom.Person, error) {
	return client.Call(c.Conn, proto.GetPersonStat{Person: no}, kom.ParsePerson)
}

func (c *Connection) fetchTextStat(no int32) (kom.TextStat, error) {
	return client.Call(c.Conn, proto.GetTextStat{TextNo: no}, kom.ParseTextStat)
}

// fetchSubject requests the first 200 bytes of the text, decodes
// using TextEncoding, and truncates at the first newline.
func (c *Connection) fetchSubject(textNo int32) (string, error) {
	enc, err := c.TextEncoding(textNo)
	if err != nil {
		return "", err
	}
	b, err := client.Call(c.Conn, proto.GetText{TextNo: textNo, StartChar: 0, MaxChars: 200},
		func(r *wire.Reader) ([]byte, error) { return r.Hollerith() })
	if err != nil {
		return "", err
	}
	s := decodeBytes(b, enc)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s, nil
}

// TextEncoding reads the text's text-stat, finds the first aux-item
// tagged content-type, and parses its data as query-string parameters
// to return the charset value; ISO-8859-1 is the default when absent.
func (c *Connection) TextEncoding(textNo int32) (string, error) {
	ts, err := c.TextStats.Get(textNo)
	if err != nil {
		return "", err
	}
	for _, ai := range ts.AuxItems {
		if ai.Tag == kom.AIContentType {
			if cs := charsetParam(string(ai.Data)); cs != "" {
				return cs, nil
			}
		}
	}
	return "ISO-8859-1", nil
}

// charsetParam extracts the charset= parameter from a content-type
// aux-item's data, e.g. "text/plain; charset=utf-8" -> "utf-8".
func charsetParam(data string) string {
	parts := strings.Split(data, ";")
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(strings.ToLower(p), "charset=") {
			return strings.Trim(p[len("charset="):], `"`)
		}
	}
	return ""
}

func decodeBytes(b []byte, encoding string) string {
	if strings.EqualFold(encoding, "ISO-8859-1") || strings.EqualFold(encoding, "latin1") {
		return wire.Latin1ToUTF8(b)
	}
	// Unrecognized/overridden charsets are passed through as raw
	// bytes reinterpreted as UTF-8; a full charset registry is outside
	// this package's scope.
	return string(b)
}

// ConfName returns a human-readable name for confNo: the uconference
// name, optionally suffixed with " (#<no>)", falling back to def if
// the conference can't be fetched.
func (c *Connection) ConfName(confNo int32, def string, includeNo bool) string {
	uc, err := c.UConferences.Get(confNo)
	if err != nil {
		return def
	}
	if includeNo {
		return uc.Name + " (#" + itoa(confNo) + ")"
	}
	return uc.Name
}

func itoa(v int32) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
