/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package cache

import (
	"strconv"
	"strings"

	"github.com/rindlow/pykomgrep/client"
	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/proto"
	"github.com/rindlow/pykomgrep/wire"
)

// CollateTable returns the server's collate table, fetching it once and
// caching it for the lifetime of the Connection. The original client
// left this fetch uncached on every regexp lookup; here it is fetched
// at most once per Connection.
func (c *Connection) CollateTable() ([]byte, error) {
	c.collateMtx.Lock()
	defer c.collateMtx.Unlock()
	if c.collateFetched {
		return c.collateTable, nil
	}
	b, err := client.Call(c.Conn, proto.GetCollateTable{}, func(r *wire.Reader) ([]byte, error) {
		return r.Hollerith()
	})
	if err != nil {
		return nil, err
	}
	c.collateTable = b
	c.collateFetched = true
	return c.collateTable, nil
}

// LookupName resolves name to a list of matching conferences/persons.
// A leading '#' followed by digits is a direct numeric reference,
// answered locally via a get-uconf-stat without a round trip to
// lookup-z-name; everything else is delegated to lookup-z-name
// verbatim.
func (c *Connection) LookupName(name string, wantPers, wantConfs bool) ([]kom.ConfZInfo, error) {
	if strings.HasPrefix(name, "#") {
		n, err := strconv.Atoi(name[1:])
		if err != nil {
			return nil, nil
		}
		uc, err := c.UConferences.Get(int32(n))
		if err != nil {
			return nil, err
		}
		isPers := uc.Type.Letterbox
		if (isPers && !wantPers) || (!isPers && !wantConfs) {
			return nil, nil
		}
		return []kom.ConfZInfo{{ConfNo: int32(n), Name: uc.Name, Type: uc.Type}}, nil
	}
	return client.Call(c.Conn, proto.LookupZName{Name: name, WantPers: wantPers, WantConfs: wantConfs},
		kom.ParseConfZInfoList)
}

// RegexpLookup resolves pattern to a list of matching
// conferences/persons via re-z-lookup. A leading '#' is delegated to
// LookupName, matching the reference client's behavior. When
// caseSensitive is false the pattern is rewritten using the server's
// collate table: every character outside a bracket expression is
// replaced by a character class covering every byte the collate table
// folds to the same value, listed in ascending byte order, so e.g. "a"
// becomes "[Aa\xc4\xe4]" on a table that folds 'a'/'A'/ä/Ä together.
// Bracket-expression contents
// pass through untouched.
func (c *Connection) RegexpLookup(pattern string, wantPers, wantConfs, caseSensitive bool) ([]kom.ConfZInfo, error) {
	if strings.HasPrefix(pattern, "#") {
		return c.LookupName(pattern, wantPers, wantConfs)
	}
	p := pattern
	if !caseSensitive {
		table, err := c.CollateTable()
		if err != nil {
			return nil, err
		}
		p = rewriteCaseInsensitive(pattern, table)
	}
	return client.Call(c.Conn, proto.ReZLookup{Pattern: p, WantPers: wantPers, WantConfs: wantConfs},
		kom.ParseConfZInfoList)
}

// rewriteCaseInsensitive expands every character outside a bracket
// expression into a class of the bytes the collate table folds to the
// same normalized value; a character whose class would contain only
// itself is left untouched.
func rewriteCaseInsensitive(pattern string, table []byte) string {
	classes := buildFoldClasses(table)
	var out strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch == '\\' && i+1 < len(pattern) {
			out.WriteByte(ch)
			i++
			out.WriteByte(pattern[i])
			continue
		}
		if ch == '[' {
			inClass = true
			out.WriteByte(ch)
			continue
		}
		if ch == ']' {
			inClass = false
			out.WriteByte(ch)
			continue
		}
		if inClass {
			out.WriteByte(ch)
			continue
		}
		members := classes[ch]
		if len(members) <= 1 {
			out.WriteByte(ch)
			continue
		}
		out.WriteByte('[')
		for _, m := range members {
			if m == '^' || m == ']' || m == '\\' || m == '-' {
				out.WriteByte('\\')
			}
			out.WriteByte(m)
		}
		out.WriteByte(']')
	}
	return out.String()
}

// buildFoldClasses groups every byte 0-255 by its normalized value per
// table (table[b] is the normalized form of byte b), so two bytes
// sharing a normalized value land in the same class.
func buildFoldClasses(table []byte) map[byte][]byte {
	groups := make(map[byte][]byte)
	for b := 0; b < 256; b++ {
		norm := byte(b)
		if b < len(table) {
			norm = table[b]
		}
		groups[norm] = append(groups[norm], byte(b))
	}
	classes := make(map[byte][]byte, 256)
	for _, members := range groups {
		for _, b := range members {
			classes[b] = members
		}
	}
	return classes
}
