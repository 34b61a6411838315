// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// IT-NIC's qualified-lawyer and personal-registration contact extensions,
// required for certain .it registrant categories.
const (
	QualifiedLawyerNamespace = "http://www.nic.it/ITNIC-EPP/qualifiedLawyer-1.0"
	PersonalRegNamespace     = "http://www.nic.it/ITNIC-EPP/personalRegistration-1.0"
)

func init() {
	RegisterExtension(ExtensionKey{QualifiedLawyerNamespace, "infData"}, func() any { return &QualifiedLawyerInfData{} })
	RegisterExtension(ExtensionKey{PersonalRegNamespace, "infData"}, func() any { return &PersonalRegInfData{} })
}

// QualifiedLawyerInfData carries an Italian bar-registration reference.
type QualifiedLawyerInfData struct {
	XMLName  xml.Name `xml:"http://www.nic.it/ITNIC-EPP/qualifiedLawyer-1.0 infData"`
	BarNumber string  `xml:"barNumber"`
	Court     string  `xml:"court,omitempty"`
}

// PersonalRegInfData marks a domain as registered under the natural-person
// category, carrying the registrant's consent-for-publishing flag.
type PersonalRegInfData struct {
	XMLName  xml.Name `xml:"http://www.nic.it/ITNIC-EPP/personalRegistration-1.0 infData"`
	Consent  bool     `xml:"consentForPublishing,omitempty"`
}
