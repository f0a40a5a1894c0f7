/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package proto holds one Go type per LysKOM Protocol A request,
// opcodes 1-122. Each type knows its opcode and how to serialize its
// own arguments; pairing a request with its response shape (void,
// int32, a structured record, an array, or raw Hollerith bytes) is the
// job of client.Call's type parameter, not of the request type
// itself.
package proto

import "github.com/rindlow/pykomgrep/wire"

// Request is implemented by every request type in this package.
type Request interface {
	Opcode() int32
	WriteArgs(f *wire.Frame)
}

// Opcodes, numbered per the protocol's request catalog.
const (
	OpLogout                  int32 = 1
	OpChangeConference        int32 = 2
	OpChangeName              int32 = 3
	OpChangeWhatIAmDoing      int32 = 4
	OpSetPrivBits             int32 = 7
	OpSetPasswd               int32 = 8
	OpDeleteConf              int32 = 11
	OpSubMember               int32 = 15
	OpSetPresentation         int32 = 16
	OpSetEtcMotd              int32 = 17
	OpSetSupervisor           int32 = 18
	OpSetPermittedSubmitters  int32 = 19
	OpSetSuperConf            int32 = 20
	OpSetConfType             int32 = 21
	OpSetGarbNice             int32 = 22
	OpGetMarks                int32 = 23
	OpGetText                 int32 = 25
	OpMarkAsRead              int32 = 27
	OpDeleteText              int32 = 29
	OpAddRecipient            int32 = 30
	OpSubRecipient            int32 = 31
	OpAddComment              int32 = 32
	OpSubComment              int32 = 33
	OpGetMap                  int32 = 34
	OpGetTime                 int32 = 35
	OpAddFootnote             int32 = 37
	OpSubFootnote             int32 = 38
	OpSetUnread               int32 = 40
	OpSetMotdOfLysKOM         int32 = 41
	OpEnable                  int32 = 42
	OpSyncKOM                 int32 = 43
	OpShutdownKOM             int32 = 44
	OpGetPersonStat           int32 = 49
	OpGetUnreadConfs          int32 = 52
	OpSendMessage             int32 = 53
	OpDisconnect              int32 = 55
	OpWhoAmI                  int32 = 56
	OpSetUserArea             int32 = 57
	OpGetLastText             int32 = 58
	OpFindNextTextNo          int32 = 60
	OpFindPreviousTextNo      int32 = 61
	OpLogin                   int32 = 62
	OpSetClientVersion        int32 = 69
	OpGetClientName           int32 = 70
	OpGetClientVersion        int32 = 71
	OpMarkText                int32 = 72
	OpUnmarkText              int32 = 73
	OpReZLookup               int32 = 74
	OpGetVersionInfo          int32 = 75
	OpLookupZName             int32 = 76
	OpSetLastRead             int32 = 77
	OpGetUconfStat            int32 = 78
	OpSetInfo                 int32 = 79
	OpAcceptAsync             int32 = 80
	OpQueryAsync              int32 = 81
	OpUserActive              int32 = 82
	OpWhoIsOnDynamic          int32 = 83
	OpGetStaticSessionInfo    int32 = 84
	OpGetCollateTable         int32 = 85
	OpCreateText              int32 = 86
	OpCreateAnonymousText     int32 = 87
	OpCreateConf              int32 = 88
	OpCreatePerson            int32 = 89
	OpGetTextStat             int32 = 90
	OpGetConfStat             int32 = 91
	OpModifyTextInfo          int32 = 92
	OpModifyConfInfo          int32 = 93
	OpGetInfo                 int32 = 94
	OpModifySystemInfo        int32 = 95
	OpQueryPredefinedAuxItems int32 = 96
	OpSetExpire               int32 = 97
	OpQueryReadTexts10        int32 = 98
	OpGetMembership10         int32 = 99
	OpAddMember               int32 = 100
	OpGetMembers              int32 = 101
	OpSetMembershipType       int32 = 102
	OpLocalToGlobal           int32 = 103
	OpMapCreatedTexts         int32 = 104
	OpSetKeepCommented        int32 = 105
	OpSetPersFlags            int32 = 106
	OpQueryReadTexts11        int32 = 107
	OpGetMembership11         int32 = 108
	OpMarkAsUnread            int32 = 109
	OpSetReadRanges           int32 = 110
	OpGetStatsDescription     int32 = 111
	OpGetStats                int32 = 112
	OpGetBoottimeInfo         int32 = 113
	OpFirstUnusedConfNo       int32 = 114
	OpFirstUnusedTextNo       int32 = 115
	OpFindNextConfNo          int32 = 116
	OpFindPreviousConfNo      int32 = 117
	OpGetScheduling           int32 = 118
	OpSetScheduling           int32 = 119
	OpSetConnectionTimeFormat int32 = 120
	OpLocalToGlobalReverse    int32 = 121
	OpMapCreatedTextsReverse  int32 = 122
)
