/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package kom holds the LysKOM protocol data model: records, bitflag
// types, the server error taxonomy and the aux-item tag table. Nothing
// here touches the network; see package client for the connection and
// package wire for the byte codec.
package kom

import (
	"errors"
	"fmt"
)

// ServerError is the typed failure surfaced by a client.Call when the
// server replies with "%<id> <code> <status>". Code identifies the
// error kind (see the Err* sentinels below); Status is the server's
// extra status integer, meaning depends on the request.
type ServerError struct {
	Code   int32
	Status int32
}

func (e *ServerError) Error() string {
	if name, ok := errorNames[e.Code]; ok {
		return fmt.Sprintf("kom: %s (code %d, status %d)", name, e.Code, e.Status)
	}
	return fmt.Sprintf("kom: unknown server error (code %d, status %d)", e.Code, e.Status)
}

// Is reports whether target names the same error kind, so callers can
// write errors.Is(err, kom.ErrNoSuchText) without caring about Status.
func (e *ServerError) Is(target error) bool {
	other, ok := target.(*ServerError)
	if !ok {
		return false
	}
	return other.Status == 0 && other.Code == e.Code
}

// NewServerError builds the *ServerError for a given wire code/status,
// used by the multiplexer when it parses a "%" reply line.
func NewServerError(code, status int32) *ServerError {
	return &ServerError{Code: code, Status: status}
}

// sentinel builds a *ServerError usable with errors.Is (Status is
// ignored by Is when it's 0, per the Is method above).
func sentinel(code int32) *ServerError { return &ServerError{Code: code} }

// Error codes 2-61, the full wire taxonomy from the protocol's error
// enumeration. Each is a distinct error kind; servers return the
// numeric code, the client turns it back into one of these for
// errors.Is comparisons.
var (
	ErrNotImplemented        = sentinel(2)
	ErrObsoleteCall          = sentinel(3)
	ErrInvalidPassword       = sentinel(4)
	ErrStringTooLong         = sentinel(5)
	ErrLoginFirst            = sentinel(6)
	ErrLoginDisallowed       = sentinel(7)
	ErrConferenceZero        = sentinel(8)
	ErrUndefinedConference   = sentinel(9)
	ErrUndefinedPerson       = sentinel(10)
	ErrAccessDenied          = sentinel(11)
	ErrPermissionDenied      = sentinel(12)
	ErrNotMember             = sentinel(13)
	ErrNoSuchText            = sentinel(14)
	ErrTextZero              = sentinel(15)
	ErrNoSuchLocalText       = sentinel(16)
	ErrLocalTextZero         = sentinel(17)
	ErrBadName               = sentinel(18)
	ErrIndexOutOfRange       = sentinel(19)
	ErrConferenceExists      = sentinel(20)
	ErrPersonExists          = sentinel(21)
	ErrSecretPublic          = sentinel(22)
	ErrLetterbox             = sentinel(23)
	ErrLdbError              = sentinel(24)
	ErrIllegalMisc           = sentinel(25)
	ErrIllegalInfoType       = sentinel(26)
	ErrAlreadyRecipient      = sentinel(27)
	ErrAlreadyComment        = sentinel(28)
	ErrAlreadyFootnote       = sentinel(29)
	ErrNotRecipient          = sentinel(30)
	ErrNotComment            = sentinel(31)
	ErrNotFootnote           = sentinel(32)
	ErrRecipientLimit        = sentinel(33)
	ErrCommentLimit          = sentinel(34)
	ErrFootnoteLimit         = sentinel(35)
	ErrMarkLimit             = sentinel(36)
	ErrNotAuthor             = sentinel(37)
	ErrNoConnect             = sentinel(38)
	ErrOutOfMemory           = sentinel(39)
	ErrServerIsCrazy         = sentinel(40)
	ErrClientIsCrazy         = sentinel(41)
	ErrUndefinedSession      = sentinel(42)
	ErrRegexpError           = sentinel(43)
	ErrNotMarked             = sentinel(44)
	ErrTemporaryFailure      = sentinel(45)
	ErrLongArray             = sentinel(46)
	ErrAnonymousRejected     = sentinel(47)
	ErrIllegalAuxItem        = sentinel(48)
	ErrAuxItemPermission     = sentinel(49)
	ErrUnknownAsync          = sentinel(50)
	ErrInternalError         = sentinel(51)
	ErrFeatureDisabled       = sentinel(52)
	ErrMessageNotSent        = sentinel(53)
	ErrInvalidMembershipType = sentinel(54)
	ErrInvalidRange          = sentinel(55)
	ErrInvalidRangeList      = sentinel(56)
	ErrUndefinedMeasurement  = sentinel(57)
	ErrPriorityDenied        = sentinel(58)
	ErrWeightDenied          = sentinel(59)
	ErrWeightZero            = sentinel(60)
	ErrBadBool               = sentinel(61)
)

var errorNames = map[int32]string{
	2:  "not-implemented",
	3:  "obsolete-call",
	4:  "invalid-password",
	5:  "string-too-long",
	6:  "login-first",
	7:  "login-disallowed",
	8:  "conference-zero",
	9:  "undefined-conference",
	10: "undefined-person",
	11: "access-denied",
	12: "permission-denied",
	13: "not-member",
	14: "no-such-text",
	15: "text-zero",
	16: "no-such-local-text",
	17: "local-text-zero",
	18: "bad-name",
	19: "index-out-of-range",
	20: "conference-exists",
	21: "person-exists",
	22: "secret-public",
	23: "letterbox",
	24: "ldb-error",
	25: "illegal-misc",
	26: "illegal-info-type",
	27: "already-recipient",
	28: "already-comment",
	29: "already-footnote",
	30: "not-recipient",
	31: "not-comment",
	32: "not-footnote",
	33: "recipient-limit",
	34: "comment-limit",
	35: "footnote-limit",
	36: "mark-limit",
	37: "not-author",
	38: "no-connect",
	39: "out-of-memory",
	40: "server-is-crazy",
	41: "client-is-crazy",
	42: "undefined-session",
	43: "regexp-error",
	44: "not-marked",
	45: "temporary-failure",
	46: "long-array",
	47: "anonymous-rejected",
	48: "illegal-aux-item",
	49: "aux-item-permission",
	50: "unknown-async",
	51: "internal-error",
	52: "feature-disabled",
	53: "message-not-sent",
	54: "invalid-membership-type",
	55: "invalid-range",
	56: "invalid-range-list",
	57: "undefined-measurement",
	58: "priority-denied",
	59: "weight-denied",
	60: "weight-zero",
	61: "bad-bool",
}

// Local errors: malformed framing or connection-level failures. Any of
// these is fatal for the connection that raised it — later calls
// should fail immediately rather than deadlock waiting on a socket
// that will never produce the expected reply.
var (
	ErrBadInitialResponse = errors.New("kom: bad initial response from server")
	ErrBadRequestID       = errors.New("kom: reply referenced an unknown request id")
	ErrProtocol           = errors.New("kom: protocol error")
	ErrUnimplementedAsync = errors.New("kom: unimplemented async message tag")
	ErrReceive            = errors.New("kom: receive error")
)
