/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package kom

import "github.com/rindlow/pykomgrep/wire"

// Well-known aux-item tag numbers, 1-35, plus the client-specific
// extension range starting at 10000. Name<->number mapping is fixed by
// the protocol.
const (
	AIContentType            int32 = 1
	AIFastReply              int32 = 2
	AICrossReference         int32 = 3
	AINoComments             int32 = 4
	AIPersonalComment        int32 = 5
	AIRequestConfirmation    int32 = 6
	AIReadConfirmRequested   int32 = 7
	AIRedirect               int32 = 8
	AIXFace                  int32 = 9
	AIAlternateName          int32 = 10
	AIPGPSignature           int32 = 11
	AIPGPPublicKey           int32 = 12
	AIEmailAddress           int32 = 13
	AIFAQText                int32 = 14
	AICreatingSoftware       int32 = 15
	AIMXAuthor               int32 = 16
	AIMXTime                 int32 = 17
	AIMXFrom                 int32 = 18
	AIMXReplyTo              int32 = 19
	AIMXToCC                 int32 = 20
	AIMXMisc                 int32 = 21
	AIFAQForConf             int32 = 22
	AIRecommendedConf        int32 = 23
	AIAllowedContentType     int32 = 24
	AICanonicalReplyTo       int32 = 25
	AICanonicalMessageID     int32 = 26
	AIMXList                 int32 = 27
	AIMXOriginalDomain       int32 = 28
	AINoNotices              int32 = 29
	AIFastReplyOverride      int32 = 30
	AINotice                 int32 = 31
	AIRecommendedConf2       int32 = 32
	AIFAQForConf2            int32 = 33
	AIAllowedContentType2    int32 = 34
	AIMXRefuseImport         int32 = 35

	AIElispClientReadFAQ    int32 = 10000
)

// AuxItemTagNames maps tag numbers to the protocol's canonical
// kebab-case name, used for diagnostics. Text-encoding lookup matches
// content-type by its tag number (AIContentType), not by name.
var AuxItemTagNames = map[int32]string{
	AIContentType:          "content-type",
	AIFastReply:            "fast-reply",
	AICrossReference:       "cross-reference",
	AINoComments:           "no-comments",
	AIPersonalComment:      "personal-comment",
	AIRequestConfirmation:  "request-confirmation",
	AIReadConfirmRequested: "read-confirm-requested",
	AIRedirect:             "redirect",
	AIXFace:                "x-face",
	AIAlternateName:        "alternate-name",
	AIPGPSignature:         "pgp-signature",
	AIPGPPublicKey:         "pgp-public-key",
	AIEmailAddress:         "email-address",
	AIFAQText:              "faq-text",
	AICreatingSoftware:     "creating-software",
	AIMXAuthor:             "mx-author",
	AIMXTime:               "mx-time",
	AIMXFrom:               "mx-from",
	AIMXReplyTo:            "mx-reply-to",
	AIMXToCC:               "mx-to-cc",
	AIMXMisc:               "mx-misc",
	AIFAQForConf:           "faq-for-conf",
	AIRecommendedConf:      "recommended-conf",
	AIAllowedContentType:   "allowed-content-type",
	AICanonicalReplyTo:     "canonical-reply-to",
	AICanonicalMessageID:   "canonical-message-id",
	AIMXList:               "mx-list",
	AIMXOriginalDomain:     "mx-original-domain",
	AINoNotices:            "no-notices",
	AIFastReplyOverride:    "fast-reply-override",
	AINotice:               "notice",
	AIRecommendedConf2:     "recommended-conf",
	AIFAQForConf2:          "faq-for-conf",
	AIAllowedContentType2:  "allowed-content-type",
	AIMXRefuseImport:       "mx-refuse-import",
	AIElispClientReadFAQ:   "elisp-client-read-faq",
}

// AuxItem is the extensible tagged record attached to texts,
// conferences, letterboxes or the server. AuxNo/Creator/CreatedAt are
// server-assigned and omitted on requests that create one.
type AuxItem struct {
	AuxNo       int32
	Tag         int32
	Creator     int32
	CreatedAt   Time
	Flags       AuxItemFlags
	InheritLimit int32
	Data        []byte
}

func ParseAuxItem(r *wire.Reader) (AuxItem, error) {
	var a AuxItem
	var err error
	if a.AuxNo, err = r.Int(); err != nil {
		return a, err
	}
	if a.Tag, err = r.Int(); err != nil {
		return a, err
	}
	if a.Creator, err = r.Int(); err != nil {
		return a, err
	}
	if a.CreatedAt, err = ParseTime(r); err != nil {
		return a, err
	}
	if a.Flags, err = ParseAuxItemFlags(r); err != nil {
		return a, err
	}
	if a.InheritLimit, err = r.Int(); err != nil {
		return a, err
	}
	if a.Data, err = r.Hollerith(); err != nil {
		return a, err
	}
	return a, nil
}

func ParseAuxItemList(r *wire.Reader) ([]AuxItem, error) {
	return wire.ReadArray(r, ParseAuxItem)
}

// WriteInput serializes an AuxItem the way the protocol wants it on
// input: aux-no/creator/created-at are omitted (the server assigns
// them), so this writes tag, flags, inherit-limit and data only,
// wrapped as the 4-field input form of an Aux-Item-Input record.
func (a AuxItem) WriteInput(f *wire.Frame) *wire.Frame {
	f.Int(a.Tag)
	a.Flags.Write(f)
	f.Int(a.InheritLimit)
	return f.HollerithString(string(a.Data))
}

func WriteAuxItemInputList(f *wire.Frame, items []AuxItem) *wire.Frame {
	return f.Array(len(items), func(f *wire.Frame) {
		for _, it := range items {
			it.WriteInput(f)
		}
	})
}
