/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import (
	"github.com/rindlow/pykomgrep/kom"
	"github.com/rindlow/pykomgrep/wire"
)

// Void requests carry no response body; the multiplexer's response
// parser for them is a no-op that just confirms the "=<id>\n" frame.

type Logout struct{}

func (Logout) Opcode() int32                 { return OpLogout }
func (Logout) WriteArgs(f *wire.Frame)       {}

type ChangeConference struct{ ConfNo int32 }

func (r ChangeConference) Opcode() int32           { return OpChangeConference }
func (r ChangeConference) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo) }

type ChangeName struct {
	ConfNo  int32
	NewName string
}

func (r ChangeName) Opcode() int32 { return OpChangeName }
func (r ChangeName) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).HollerithString(r.NewName)
}

type ChangeWhatIAmDoing struct{ What string }

func (r ChangeWhatIAmDoing) Opcode() int32           { return OpChangeWhatIAmDoing }
func (r ChangeWhatIAmDoing) WriteArgs(f *wire.Frame) { f.HollerithString(r.What) }

type SetPrivBits struct {
	Person     int32
	Privileges kom.PrivBits
}

func (r SetPrivBits) Opcode() int32 { return OpSetPrivBits }
func (r SetPrivBits) WriteArgs(f *wire.Frame) {
	f.Int(r.Person)
	r.Privileges.Write(f)
}

type SetPasswd struct {
	Person      int32
	OldPwd      string
	NewPwd      string
}

func (r SetPasswd) Opcode() int32 { return OpSetPasswd }
func (r SetPasswd) WriteArgs(f *wire.Frame) {
	f.Int(r.Person).HollerithString(r.OldPwd).HollerithString(r.NewPwd)
}

type DeleteConf struct{ ConfNo int32 }

func (r DeleteConf) Opcode() int32           { return OpDeleteConf }
func (r DeleteConf) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo) }

type SubMember struct {
	ConfNo   int32
	PersonNo int32
}

func (r SubMember) Opcode() int32           { return OpSubMember }
func (r SubMember) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.PersonNo) }

type SetPresentation struct {
	ConfNo int32
	TextNo int32
}

func (r SetPresentation) Opcode() int32           { return OpSetPresentation }
func (r SetPresentation) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.TextNo) }

type SetEtcMotd struct {
	ConfNo int32
	TextNo int32
}

func (r SetEtcMotd) Opcode() int32           { return OpSetEtcMotd }
func (r SetEtcMotd) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.TextNo) }

type SetSupervisor struct {
	ConfNo int32
	AdminC int32
}

func (r SetSupervisor) Opcode() int32           { return OpSetSupervisor }
func (r SetSupervisor) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.AdminC) }

type SetPermittedSubmitters struct {
	ConfNo     int32
	PermSubmit int32
}

func (r SetPermittedSubmitters) Opcode() int32 { return OpSetPermittedSubmitters }
func (r SetPermittedSubmitters) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).Int(r.PermSubmit)
}

type SetSuperConf struct {
	ConfNo      int32
	SuperConf   int32
}

func (r SetSuperConf) Opcode() int32           { return OpSetSuperConf }
func (r SetSuperConf) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.SuperConf) }

type SetConfType struct {
	ConfNo int32
	Type   kom.ConfType
}

func (r SetConfType) Opcode() int32 { return OpSetConfType }
func (r SetConfType) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo)
	r.Type.Write(f)
}

type SetGarbNice struct {
	ConfNo   int32
	NiceDays int32
}

func (r SetGarbNice) Opcode() int32           { return OpSetGarbNice }
func (r SetGarbNice) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.NiceDays) }

type MarkAsRead struct {
	ConfNo int32
	Texts  []int32
}

func (r MarkAsRead) Opcode() int32 { return OpMarkAsRead }
func (r MarkAsRead) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo)
	f.Array(len(r.Texts), func(f *wire.Frame) {
		for _, t := range r.Texts {
			f.Int(t)
		}
	})
}

type DeleteText struct{ TextNo int32 }

func (r DeleteText) Opcode() int32           { return OpDeleteText }
func (r DeleteText) WriteArgs(f *wire.Frame) { f.Int(r.TextNo) }

type AddRecipient struct {
	TextNo int32
	ConfNo int32
	Type   kom.RecipientKind
}

func (r AddRecipient) Opcode() int32 { return OpAddRecipient }
func (r AddRecipient) WriteArgs(f *wire.Frame) {
	f.Int(r.TextNo).Int(r.ConfNo).Int(int32(r.Type))
}

type SubRecipient struct {
	TextNo int32
	ConfNo int32
}

func (r SubRecipient) Opcode() int32           { return OpSubRecipient }
func (r SubRecipient) WriteArgs(f *wire.Frame) { f.Int(r.TextNo).Int(r.ConfNo) }

type AddComment struct {
	TextNo    int32
	CommentTo int32
}

func (r AddComment) Opcode() int32           { return OpAddComment }
func (r AddComment) WriteArgs(f *wire.Frame) { f.Int(r.TextNo).Int(r.CommentTo) }

type SubComment struct {
	TextNo    int32
	CommentTo int32
}

func (r SubComment) Opcode() int32           { return OpSubComment }
func (r SubComment) WriteArgs(f *wire.Frame) { f.Int(r.TextNo).Int(r.CommentTo) }

type AddFootnote struct {
	TextNo    int32
	FootnoteTo int32
}

func (r AddFootnote) Opcode() int32           { return OpAddFootnote }
func (r AddFootnote) WriteArgs(f *wire.Frame) { f.Int(r.TextNo).Int(r.FootnoteTo) }

type SubFootnote struct {
	TextNo     int32
	FootnoteTo int32
}

func (r SubFootnote) Opcode() int32           { return OpSubFootnote }
func (r SubFootnote) WriteArgs(f *wire.Frame) { f.Int(r.TextNo).Int(r.FootnoteTo) }

type SetUnread struct {
	ConfNo int32
	NoOfUnread int32
}

func (r SetUnread) Opcode() int32           { return OpSetUnread }
func (r SetUnread) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.NoOfUnread) }

type SetMotdOfLysKOM struct{ TextNo int32 }

func (r SetMotdOfLysKOM) Opcode() int32           { return OpSetMotdOfLysKOM }
func (r SetMotdOfLysKOM) WriteArgs(f *wire.Frame) { f.Int(r.TextNo) }

type Enable struct{ Level int32 }

func (r Enable) Opcode() int32           { return OpEnable }
func (r Enable) WriteArgs(f *wire.Frame) { f.Int(r.Level) }

type SyncKOM struct{}

func (SyncKOM) Opcode() int32           { return OpSyncKOM }
func (SyncKOM) WriteArgs(f *wire.Frame) {}

type ShutdownKOM struct{ ExitVal int32 }

func (r ShutdownKOM) Opcode() int32           { return OpShutdownKOM }
func (r ShutdownKOM) WriteArgs(f *wire.Frame) { f.Int(r.ExitVal) }

type SendMessage struct {
	ConfNo  int32
	Message string
}

func (r SendMessage) Opcode() int32 { return OpSendMessage }
func (r SendMessage) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).HollerithString(r.Message)
}

type Disconnect struct{ SessionNo int32 }

func (r Disconnect) Opcode() int32           { return OpDisconnect }
func (r Disconnect) WriteArgs(f *wire.Frame) { f.Int(r.SessionNo) }

type SetUserArea struct {
	Person     int32
	UserAreaNo int32
}

func (r SetUserArea) Opcode() int32           { return OpSetUserArea }
func (r SetUserArea) WriteArgs(f *wire.Frame) { f.Int(r.Person).Int(r.UserAreaNo) }

type Login struct {
	Person    int32
	Password  string
	Invisible bool
}

func (r Login) Opcode() int32 { return OpLogin }
func (r Login) WriteArgs(f *wire.Frame) {
	inv := int32(0)
	if r.Invisible {
		inv = 1
	}
	f.Int(r.Person).HollerithString(r.Password).Int(inv)
}

type SetClientVersion struct {
	ClientName    string
	ClientVersion string
}

func (r SetClientVersion) Opcode() int32 { return OpSetClientVersion }
func (r SetClientVersion) WriteArgs(f *wire.Frame) {
	f.HollerithString(r.ClientName).HollerithString(r.ClientVersion)
}

type MarkText struct {
	TextNo   int32
	MarkType int32
}

func (r MarkText) Opcode() int32           { return OpMarkText }
func (r MarkText) WriteArgs(f *wire.Frame) { f.Int(r.TextNo).Int(r.MarkType) }

type UnmarkText struct{ TextNo int32 }

func (r UnmarkText) Opcode() int32           { return OpUnmarkText }
func (r UnmarkText) WriteArgs(f *wire.Frame) { f.Int(r.TextNo) }

type SetLastRead struct {
	ConfNo       int32
	LastTextRead int32
}

func (r SetLastRead) Opcode() int32           { return OpSetLastRead }
func (r SetLastRead) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.LastTextRead) }

type SetInfo struct{ Info kom.Info }

func (r SetInfo) Opcode() int32 { return OpSetInfo }
func (r SetInfo) WriteArgs(f *wire.Frame) {
	f.Int(r.Info.ConfPres).Int(r.Info.PersPres).Int(r.Info.MotdConf).
		Int(r.Info.KOMNews).Int(r.Info.MotdOfLysKOM)
}

type AcceptAsync struct{ Tags []int32 }

func (r AcceptAsync) Opcode() int32 { return OpAcceptAsync }
func (r AcceptAsync) WriteArgs(f *wire.Frame) {
	f.Array(len(r.Tags), func(f *wire.Frame) {
		for _, t := range r.Tags {
			f.Int(t)
		}
	})
}

type UserActive struct{}

func (UserActive) Opcode() int32           { return OpUserActive }
func (UserActive) WriteArgs(f *wire.Frame) {}

type ModifyTextInfo struct {
	TextNo  int32
	Delete  []kom.RawMiscInfo
	Add     kom.CookedMiscInfo
}

func (r ModifyTextInfo) Opcode() int32 { return OpModifyTextInfo }
func (r ModifyTextInfo) WriteArgs(f *wire.Frame) {
	f.Int(r.TextNo)
	f.Array(len(r.Delete), func(f *wire.Frame) {
		for _, d := range r.Delete {
			f.Int(d.Tag)
		}
	})
	kom.WriteMiscInfoInput(f, r.Add)
}

type ModifyConfInfo struct {
	ConfNo int32
	Delete []int32
	Add    []kom.AuxItem
}

func (r ModifyConfInfo) Opcode() int32 { return OpModifyConfInfo }
func (r ModifyConfInfo) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo)
	f.Array(len(r.Delete), func(f *wire.Frame) {
		for _, d := range r.Delete {
			f.Int(d)
		}
	})
	kom.WriteAuxItemInputList(f, r.Add)
}

type ModifySystemInfo struct {
	Delete []int32
	Add    []kom.AuxItem
}

func (r ModifySystemInfo) Opcode() int32 { return OpModifySystemInfo }
func (r ModifySystemInfo) WriteArgs(f *wire.Frame) {
	f.Array(len(r.Delete), func(f *wire.Frame) {
		for _, d := range r.Delete {
			f.Int(d)
		}
	})
	kom.WriteAuxItemInputList(f, r.Add)
}

type SetExpire struct {
	ConfNo     int32
	ExpireDays int32
}

func (r SetExpire) Opcode() int32           { return OpSetExpire }
func (r SetExpire) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.ExpireDays) }

type AddMember struct {
	ConfNo   int32
	PersonNo int32
	Priority int32
	WhereNo  int32
	Type     kom.MembershipType
}

func (r AddMember) Opcode() int32 { return OpAddMember }
func (r AddMember) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo).Int(r.PersonNo).Int(r.Priority).Int(r.WhereNo)
	r.Type.Write(f)
}

type SetMembershipType struct {
	PersonNo int32
	ConfNo   int32
	Type     kom.MembershipType
}

func (r SetMembershipType) Opcode() int32 { return OpSetMembershipType }
func (r SetMembershipType) WriteArgs(f *wire.Frame) {
	f.Int(r.PersonNo).Int(r.ConfNo)
	r.Type.Write(f)
}

type SetKeepCommented struct {
	ConfNo     int32
	KeepDays   int32
}

func (r SetKeepCommented) Opcode() int32           { return OpSetKeepCommented }
func (r SetKeepCommented) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.KeepDays) }

type SetPersFlags struct {
	Person int32
	Flags  kom.PersonalFlags
}

func (r SetPersFlags) Opcode() int32 { return OpSetPersFlags }
func (r SetPersFlags) WriteArgs(f *wire.Frame) {
	f.Int(r.Person)
	r.Flags.Write(f)
}

type MarkAsUnread struct {
	ConfNo int32
	TextNo int32
}

func (r MarkAsUnread) Opcode() int32           { return OpMarkAsUnread }
func (r MarkAsUnread) WriteArgs(f *wire.Frame) { f.Int(r.ConfNo).Int(r.TextNo) }

type SetReadRanges struct {
	ConfNo     int32
	ReadRanges []kom.ReadRange
}

func (r SetReadRanges) Opcode() int32 { return OpSetReadRanges }
func (r SetReadRanges) WriteArgs(f *wire.Frame) {
	f.Int(r.ConfNo)
	f.Array(len(r.ReadRanges), func(f *wire.Frame) {
		for _, rr := range r.ReadRanges {
			rr.Write(f)
		}
	})
}

type SetScheduling struct {
	SessionNo int32
	Sched     kom.SchedulingInfo
}

func (r SetScheduling) Opcode() int32 { return OpSetScheduling }
func (r SetScheduling) WriteArgs(f *wire.Frame) {
	f.Int(r.SessionNo)
	r.Sched.Write(f)
}

type SetConnectionTimeFormat struct{ UseUTC bool }

func (r SetConnectionTimeFormat) Opcode() int32 { return OpSetConnectionTimeFormat }
func (r SetConnectionTimeFormat) WriteArgs(f *wire.Frame) {
	v := int32(0)
	if r.UseUTC {
		v = 1
	}
	f.Int(v)
}
