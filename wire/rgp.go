// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// RGPNamespace is rgp-1.0, the Registry Grace Period extension (RFC 3915).
const RGPNamespace = "urn:ietf:params:xml:ns:rgp-1.0"

func init() {
	RegisterExtension(ExtensionKey{RGPNamespace, "infData"}, func() any { return &RGPInfData{} })
	RegisterExtension(ExtensionKey{RGPNamespace, "update"}, func() any { return &RGPUpdate{} })
	RegisterExtension(ExtensionKey{RGPNamespace, "panData"}, func() any { return &RGPPanData{} })
}

// RGPStatus names one of the grace-period/status values defined in RFC
// 3915 §3 (addPeriod, autoRenewPeriod, renewPeriod, transferPeriod,
// pendingDelete, pendingRestore, redemptionPeriod).
type RGPStatus struct {
	Status string `xml:"s,attr"`
}

// RGPInfData is <rgp:infData> on a domain-info response.
type RGPInfData struct {
	XMLName xml.Name    `xml:"urn:ietf:params:xml:ns:rgp-1.0 infData"`
	RGPStatus []RGPStatus `xml:"rgpStatus"`
}

// RGPUpdate is <rgp:update>, carrying a <restore> request or report.
type RGPUpdate struct {
	XMLName xml.Name    `xml:"urn:ietf:params:xml:ns:rgp-1.0 update"`
	Restore RGPRestore  `xml:"restore"`
}

// RGPRestore is RFC 3915 §3.3: op="request" for the initial restore, or
// op="report" with a full <report> block.
type RGPRestore struct {
	Op     string         `xml:"op,attr"`
	Report *RGPRestoreReport `xml:"report"`
}

// RGPRestoreReport is the mandatory report accompanying op="report" (RFC
// 3915 §3.3.2).
type RGPRestoreReport struct {
	PreData     string `xml:"preData"`
	PostData    string `xml:"postData"`
	DeleteTime  string `xml:"delTime"`
	RestoreTime string `xml:"resTime"`
	Reason      string `xml:"resReason"`
	Statement   []string `xml:"statement"`
	Other       string `xml:"other,omitempty"`
}

// RGPPanData is <rgp:panData>, delivered via poll when a pending restore
// is approved or rejected.
type RGPPanData struct {
	XMLName   xml.Name `xml:"urn:ietf:params:xml:ns:rgp-1.0 panData"`
	Name      string   `xml:"name"`
	Result    bool     `xml:"result,attr"`
	ActionTRID TRID    `xml:"paTRID"`
	ActionDate string  `xml:"paDate"`
}
