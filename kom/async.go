/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import "github.com/rindlow/pykomgrep/wire"

// Async message tags, numbers are wire-compatible with the server.
const (
	AsyncNewTextOld       int32 = 0
	AsyncNewName          int32 = 5
	AsyncIAmOn            int32 = 6
	AsyncSyncDB           int32 = 7
	AsyncLeaveConf        int32 = 8
	AsyncLogin            int32 = 9
	AsyncRejectedConnection int32 = 11
	AsyncSendMessage      int32 = 12
	AsyncLogout           int32 = 13
	AsyncDeletedText      int32 = 14
	AsyncNewText          int32 = 15
	AsyncNewRecipient     int32 = 16
	AsyncSubRecipient     int32 = 17
	AsyncNewMembership    int32 = 18
	AsyncNewUserArea      int32 = 19
	AsyncNewPresentation  int32 = 20
	AsyncNewMotd          int32 = 21
	AsyncTextAuxChanged   int32 = 22
)

// AsyncMessage is implemented by every decoded async-message payload.
// AsyncTag returns the wire tag so a generic dispatcher can log/trace
// without a type switch.
type AsyncMessage interface {
	AsyncTag() int32
}

type AsyncNewTextOldMsg struct {
	TextNo int32
}

func (AsyncNewTextOldMsg) AsyncTag() int32 { return AsyncNewTextOld }

func ParseAsyncNewTextOld(r *wire.Reader) (AsyncMessage, error) {
	n, err := r.Int()
	if err != nil {
		return nil, err
	}
	return AsyncNewTextOldMsg{TextNo: n}, nil
}

type AsyncNewNameMsg struct {
	ConfNo  int32
	OldName string
	NewName string
}

func (AsyncNewNameMsg) AsyncTag() int32 { return AsyncNewName }

func ParseAsyncNewName(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncNewNameMsg
	var err error
	if m.ConfNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.OldName, err = r.HollerithString(); err != nil {
		return nil, err
	}
	if m.NewName, err = r.HollerithString(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncIAmOnMsg struct {
	Info DynamicSessionInfo
}

func (AsyncIAmOnMsg) AsyncTag() int32 { return AsyncIAmOn }

func ParseAsyncIAmOn(r *wire.Reader) (AsyncMessage, error) {
	info, err := ParseDynamicSessionInfo(r)
	if err != nil {
		return nil, err
	}
	return AsyncIAmOnMsg{Info: info}, nil
}

type AsyncSyncDBMsg struct{}

func (AsyncSyncDBMsg) AsyncTag() int32 { return AsyncSyncDB }

func ParseAsyncSyncDB(r *wire.Reader) (AsyncMessage, error) { return AsyncSyncDBMsg{}, nil }

type AsyncLeaveConfMsg struct {
	ConfNo int32
}

func (AsyncLeaveConfMsg) AsyncTag() int32 { return AsyncLeaveConf }

func ParseAsyncLeaveConf(r *wire.Reader) (AsyncMessage, error) {
	n, err := r.Int()
	if err != nil {
		return nil, err
	}
	return AsyncLeaveConfMsg{ConfNo: n}, nil
}

type AsyncLoginMsg struct {
	Person  int32
	Session int32
}

func (AsyncLoginMsg) AsyncTag() int32 { return AsyncLogin }

func ParseAsyncLogin(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncLoginMsg
	var err error
	if m.Person, err = r.Int(); err != nil {
		return nil, err
	}
	if m.Session, err = r.Int(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncRejectedConnectionMsg struct{}

func (AsyncRejectedConnectionMsg) AsyncTag() int32 { return AsyncRejectedConnection }

func ParseAsyncRejectedConnection(r *wire.Reader) (AsyncMessage, error) {
	return AsyncRejectedConnectionMsg{}, nil
}

type AsyncSendMessageMsg struct {
	Recipient int32
	Sender    int32
	Message   string
}

func (AsyncSendMessageMsg) AsyncTag() int32 { return AsyncSendMessage }

func ParseAsyncSendMessage(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncSendMessageMsg
	var err error
	if m.Recipient, err = r.Int(); err != nil {
		return nil, err
	}
	if m.Sender, err = r.Int(); err != nil {
		return nil, err
	}
	if m.Message, err = r.HollerithString(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncLogoutMsg struct {
	Person  int32
	Session int32
}

func (AsyncLogoutMsg) AsyncTag() int32 { return AsyncLogout }

func ParseAsyncLogout(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncLogoutMsg
	var err error
	if m.Person, err = r.Int(); err != nil {
		return nil, err
	}
	if m.Session, err = r.Int(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncDeletedTextMsg struct {
	TextNo   int32
	TextStat TextStat
}

func (AsyncDeletedTextMsg) AsyncTag() int32 { return AsyncDeletedText }

func ParseAsyncDeletedText(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncDeletedTextMsg
	var err error
	if m.TextNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.TextStat, err = ParseTextStat(r); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncNewTextMsg struct {
	TextNo   int32
	TextStat TextStat
}

func (AsyncNewTextMsg) AsyncTag() int32 { return AsyncNewText }

func ParseAsyncNewText(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncNewTextMsg
	var err error
	if m.TextNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.TextStat, err = ParseTextStat(r); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncNewRecipientMsg struct {
	TextNo   int32
	ConfNo   int32
	Type     RecipientKind
}

func (AsyncNewRecipientMsg) AsyncTag() int32 { return AsyncNewRecipient }

func ParseAsyncNewRecipient(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncNewRecipientMsg
	var err error
	if m.TextNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.ConfNo, err = r.Int(); err != nil {
		return nil, err
	}
	kind, err := r.Int()
	if err != nil {
		return nil, err
	}
	m.Type = RecipientKind(kind)
	return m, nil
}

type AsyncSubRecipientMsg struct {
	TextNo int32
	ConfNo int32
	Type   RecipientKind
}

func (AsyncSubRecipientMsg) AsyncTag() int32 { return AsyncSubRecipient }

func ParseAsyncSubRecipient(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncSubRecipientMsg
	var err error
	if m.TextNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.ConfNo, err = r.Int(); err != nil {
		return nil, err
	}
	kind, err := r.Int()
	if err != nil {
		return nil, err
	}
	m.Type = RecipientKind(kind)
	return m, nil
}

type AsyncNewMembershipMsg struct {
	Person int32
	ConfNo int32
}

func (AsyncNewMembershipMsg) AsyncTag() int32 { return AsyncNewMembership }

func ParseAsyncNewMembership(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncNewMembershipMsg
	var err error
	if m.Person, err = r.Int(); err != nil {
		return nil, err
	}
	if m.ConfNo, err = r.Int(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncNewUserAreaMsg struct {
	Person     int32
	UserAreaNo int32
}

func (AsyncNewUserAreaMsg) AsyncTag() int32 { return AsyncNewUserArea }

func ParseAsyncNewUserArea(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncNewUserAreaMsg
	var err error
	if m.Person, err = r.Int(); err != nil {
		return nil, err
	}
	if m.UserAreaNo, err = r.Int(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncNewPresentationMsg struct {
	ConfNo         int32
	PresentationNo int32
}

func (AsyncNewPresentationMsg) AsyncTag() int32 { return AsyncNewPresentation }

func ParseAsyncNewPresentation(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncNewPresentationMsg
	var err error
	if m.ConfNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.PresentationNo, err = r.Int(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncNewMotdMsg struct {
	ConfNo int32
	MotdNo int32
}

func (AsyncNewMotdMsg) AsyncTag() int32 { return AsyncNewMotd }

func ParseAsyncNewMotd(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncNewMotdMsg
	var err error
	if m.ConfNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.MotdNo, err = r.Int(); err != nil {
		return nil, err
	}
	return m, nil
}

type AsyncTextAuxChangedMsg struct {
	TextNo  int32
	Deleted []AuxItem
	Added   []AuxItem
}

func (AsyncTextAuxChangedMsg) AsyncTag() int32 { return AsyncTextAuxChanged }

func ParseAsyncTextAuxChanged(r *wire.Reader) (AsyncMessage, error) {
	var m AsyncTextAuxChangedMsg
	var err error
	if m.TextNo, err = r.Int(); err != nil {
		return nil, err
	}
	if m.Deleted, err = ParseAuxItemList(r); err != nil {
		return nil, err
	}
	if m.Added, err = ParseAuxItemList(r); err != nil {
		return nil, err
	}
	return m, nil
}

// AsyncParser decodes one async message's body, given the reader
// positioned right after the tag.
type AsyncParser func(r *wire.Reader) (AsyncMessage, error)

// AsyncParsers maps every known tag to its body parser; a dispatcher
// encountering a tag missing from this table must raise
// ErrUnimplementedAsync.
var AsyncParsers = map[int32]AsyncParser{
	AsyncNewTextOld:         ParseAsyncNewTextOld,
	AsyncNewName:            ParseAsyncNewName,
	AsyncIAmOn:              ParseAsyncIAmOn,
	AsyncSyncDB:             ParseAsyncSyncDB,
	AsyncLeaveConf:          ParseAsyncLeaveConf,
	AsyncLogin:              ParseAsyncLogin,
	AsyncRejectedConnection: ParseAsyncRejectedConnection,
	AsyncSendMessage:        ParseAsyncSendMessage,
	AsyncLogout:             ParseAsyncLogout,
	AsyncDeletedText:        ParseAsyncDeletedText,
	AsyncNewText:            ParseAsyncNewText,
	AsyncNewRecipient:       ParseAsyncNewRecipient,
	AsyncSubRecipient:       ParseAsyncSubRecipient,
	AsyncNewMembership:      ParseAsyncNewMembership,
	AsyncNewUserArea:        ParseAsyncNewUserArea,
	AsyncNewPresentation:    ParseAsyncNewPresentation,
	AsyncNewMotd:            ParseAsyncNewMotd,
	AsyncTextAuxChanged:     ParseAsyncTextAuxChanged,
}
