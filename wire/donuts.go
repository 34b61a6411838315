// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// DonutsIDNNamespace is Donuts' pre-standard IDN variant-blocking
// extension, distinct from the standard idn-1.0 EURid uses.
const DonutsIDNNamespace = "urn:ietf:params:xml:ns:idnDomain-1.0"

func init() {
	RegisterExtension(ExtensionKey{DonutsIDNNamespace, "infData"}, func() any { return &DonutsIDNInfData{} })
}

// DonutsIDNInfData reports the IDN table and variant set applied to a
// domain.
type DonutsIDNInfData struct {
	XMLName  xml.Name `xml:"urn:ietf:params:xml:ns:idnDomain-1.0 infData"`
	Table    string   `xml:"table,omitempty"`
	Variants []string `xml:"variant"`
}
