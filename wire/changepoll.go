// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// ChangePollNamespace is changePoll-1.0 (RFC 8590), which annotates poll
// messages with the registry operator action that produced them.
const ChangePollNamespace = "urn:ietf:params:xml:ns:changePoll-1.0"

func init() {
	RegisterExtension(ExtensionKey{ChangePollNamespace, "changeData"}, func() any { return &ChangePollData{} })
}

// ChangePollData is <changePoll:changeData> (RFC 8590 §3).
type ChangePollData struct {
	XMLName        xml.Name `xml:"urn:ietf:params:xml:ns:changePoll-1.0 changeData"`
	State          string   `xml:"state"`
	Operation      ChangePollOperation `xml:"operation"`
	Date           string   `xml:"date"`
	ServerTRID     string   `xml:"svTRID,omitempty"`
	Who            string   `xml:"who,omitempty"`
	CaseID         *ChangePollCaseID `xml:"caseId"`
	Reason         string   `xml:"reason,omitempty"`
}

// ChangePollOperation is <changePoll:operation op="...">, naming the
// action (e.g. "create", "update", "registry:autorenew").
type ChangePollOperation struct {
	Op   string `xml:"op,attr,omitempty"`
	Name string `xml:",chardata"`
}

// ChangePollCaseID cross-references a UDRP/URS/court case when the change
// was compelled by one.
type ChangePollCaseID struct {
	Type string `xml:"type,attr,omitempty"`
	Name string `xml:"name,attr,omitempty"`
	ID   string `xml:",chardata"`
}
