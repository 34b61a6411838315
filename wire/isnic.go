// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// ISNICNamespace is ISNIC's (.is) domain/contact extension.
const ISNICNamespace = "urn:is:params:xml:ns:isnic-1.0"

func init() {
	RegisterExtension(ExtensionKey{ISNICNamespace, "infData"}, func() any { return &ISNICInfData{} })
}

// ISNICInfData is ISNIC's national-ID and paper-application-reference
// domain/contact extension.
type ISNICInfData struct {
	XMLName  xml.Name `xml:"urn:is:params:xml:ns:isnic-1.0 infData"`
	NationalID string `xml:"nationalId,omitempty"`
	PaperApplication string `xml:"paperApplication,omitempty"`
}
