// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// Nominet's contact, data-quality and std-notification extension
// namespaces.
const (
	NominetContactNamespace  = "http://www.nominet.org.uk/epp/xml/contact-nom-ext-1.0"
	NominetNotifNamespace    = "http://www.nominet.org.uk/epp/xml/std-notifications-1.2"
	NominetDataQualNamespace = "http://www.nominet.org.uk/epp/xml/data-quality-1.0"
)

func init() {
	RegisterExtension(ExtensionKey{NominetContactNamespace, "infData"}, func() any { return &NominetContactInfData{} })
	RegisterExtension(ExtensionKey{NominetNotifNamespace, "notification"}, func() any { return &NominetNotification{} })
	RegisterExtension(ExtensionKey{NominetDataQualNamespace, "infData"}, func() any { return &NominetDataQualInfData{} })
}

// NominetContactInfData is Nominet's contact type/trading-name extension.
type NominetContactInfData struct {
	XMLName  xml.Name `xml:"http://www.nominet.org.uk/epp/xml/contact-nom-ext-1.0 infData"`
	Type     string   `xml:"type"`
	TradingName string `xml:"trad-name,omitempty"`
	CompanyID string  `xml:"co-no,omitempty"`
}

// NominetNotification is a generic Nominet poll notification (domain
// cancelled, registrar-change, etc.), distinguished by Type.
type NominetNotification struct {
	XMLName xml.Name `xml:"http://www.nominet.org.uk/epp/xml/std-notifications-1.2 notification"`
	Type    string   `xml:"type,attr"`
	Domains []string `xml:"domainName"`
	RegistrarTag string `xml:"registrarTag,omitempty"`
	ActionDate string `xml:"actionDate,omitempty"`
}

// NominetDataQualInfData reports the data-quality reminder state attached
// to a contact.
type NominetDataQualInfData struct {
	XMLName xml.Name `xml:"http://www.nominet.org.uk/epp/xml/data-quality-1.0 infData"`
	State   string   `xml:"state"`
	ReminderSent bool `xml:"reminderSent,omitempty"`
	Domains []string `xml:"domainName"`
}
