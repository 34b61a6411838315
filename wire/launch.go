// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// LaunchNamespace is launch-1.0, the Launch Phase Mapping used during
// sunrise/landrush/claims periods (RFC 8334).
const LaunchNamespace = "urn:ietf:params:xml:ns:launch-1.0"

// MarkNamespace and SignedMarkNamespace carry the trademark data embedded
// in launch create commands during sunrise.
const (
	MarkNamespace       = "urn:ietf:params:xml:ns:mark-1.0"
	SignedMarkNamespace = "urn:ietf:params:xml:ns:signedMark-1.0"
	TMNoticeNamespace   = "urn:ietf:params:xml:ns:tmNotice-1.0"
)

func init() {
	RegisterExtension(ExtensionKey{LaunchNamespace, "create"}, func() any { return &LaunchCreate{} })
	RegisterExtension(ExtensionKey{LaunchNamespace, "infData"}, func() any { return &LaunchInfData{} })
	RegisterExtension(ExtensionKey{LaunchNamespace, "chkData"}, func() any { return &LaunchChkData{} })
	RegisterExtension(ExtensionKey{LaunchNamespace, "mixedChkData"}, func() any { return &LaunchMixedChkData{} })
	RegisterExtension(ExtensionKey{LaunchNamespace, "panData"}, func() any { return &LaunchPanData{} })
}

// LaunchPhase is RFC 8334 §3.1: name is one of idn-release, sunrise,
// landrush, claims, open, custom (with realtime set on the latter).
type LaunchPhase struct {
	Name    string `xml:"name,attr,omitempty"`
	Phase   string `xml:",chardata"`
}

// LaunchCreate is <launch:create>, attached to a domain-create command
// during sunrise or claims.
type LaunchCreate struct {
	XMLName    xml.Name      `xml:"urn:ietf:params:xml:ns:launch-1.0 create"`
	Type       string        `xml:"type,attr,omitempty"`
	Phase      LaunchPhase   `xml:"phase"`
	CodeMarks  []LaunchCodeMark `xml:"codeMark"`
	Notices    []LaunchNotice   `xml:"notice"`
	Signed     []RawElement     `xml:"signedMark"`
}

// LaunchCodeMark pairs an optional claims/sunrise code with a raw
// encoded-mark block (the mark-1.0/signedMark-1.0 payload is carried
// undecoded since its internal structure is outside router scope).
type LaunchCodeMark struct {
	Code         string      `xml:"code"`
	ValidatorID  string      `xml:"code>validatorID,attr,omitempty"`
	Mark         *RawElement `xml:"mark"`
}

// LaunchNotice is RFC 8334 §3.2.1's trademark claims notice
// acknowledgement.
type LaunchNotice struct {
	NoticeID    string `xml:"noticeID"`
	ValidatorID string `xml:"validatorID,attr,omitempty"`
	NotAfter    string `xml:"notAfter"`
	AcceptedDate string `xml:"acceptedDate"`
}

// LaunchInfData is <launch:infData> on a domain-info response.
type LaunchInfData struct {
	XMLName xml.Name    `xml:"urn:ietf:params:xml:ns:launch-1.0 infData"`
	Phase   LaunchPhase `xml:"phase"`
	ApplicationID string `xml:"applicationID,omitempty"`
	Status  []string    `xml:"status>s,attr"`
}

// LaunchChkData is <launch:chkData> on a domain-check response: one entry
// per checked name.
type LaunchChkData struct {
	XMLName xml.Name         `xml:"urn:ietf:params:xml:ns:launch-1.0 chkData"`
	Phase   LaunchPhase      `xml:"phase"`
	Check   []LaunchCheckResult `xml:"cd"`
}

// LaunchCheckResult is one <launch:cd> block.
type LaunchCheckResult struct {
	Name          string `xml:"name"`
	Exists        bool   `xml:"name>exists,attr"`
	ApplicationID string `xml:"applicationID,omitempty"`
	Status        string `xml:"status,omitempty"`
}

// LaunchMixedChkData is the claims-and-trademark combined check response
// some registries (Donuts, Verisign) return instead of plain chkData.
type LaunchMixedChkData struct {
	XMLName xml.Name            `xml:"urn:ietf:params:xml:ns:launch-1.0 mixedChkData"`
	Check   []LaunchCheckResult `xml:"cd"`
}

// LaunchPanData is <launch:panData>, delivered via poll when a pending
// sunrise/landrush application resolves.
type LaunchPanData struct {
	XMLName       xml.Name `xml:"urn:ietf:params:xml:ns:launch-1.0 panData"`
	Name          string   `xml:"name"`
	ApplicationID string   `xml:"applicationID"`
	Result        bool     `xml:"name>paResult,attr"`
	ActionTRID    TRID     `xml:"paTRID"`
	ActionDate    string   `xml:"paDate"`
}
