// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// EURid domain, contact and poll extension namespaces, grounded on
// AS207960/epp-proxy's proto/eurid.rs.
const (
	EuridDomainNamespace      = "http://www.eurid.eu/xml/epp/domain-ext-1.0"
	EuridContactNamespace     = "http://www.eurid.eu/xml/epp/contact-ext-1.0"
	EuridIDNNamespace         = "http://www.eurid.eu/xml/epp/idn-1.0"
	EuridDNSQualityNamespace  = "http://www.eurid.eu/xml/epp/dnsQuality-1.2"
	EuridHitPointsNamespace   = "http://www.eurid.eu/xml/epp/registrarHitPoints-1.1"
	EuridRegistrationLimitNS  = "http://www.eurid.eu/xml/epp/registrationLimit-1.1"
	EuridRegistrarFinanceNS   = "http://www.eurid.eu/xml/epp/registrarFinance-1.0"
)

func init() {
	RegisterExtension(ExtensionKey{EuridDomainNamespace, "infData"}, func() any { return &EuridDomainInfData{} })
	RegisterExtension(ExtensionKey{EuridContactNamespace, "infData"}, func() any { return &EuridContactInfData{} })
	RegisterExtension(ExtensionKey{EuridDNSQualityNamespace, "infData"}, func() any { return &EuridDNSQualityInfData{} })
	RegisterExtension(ExtensionKey{EuridHitPointsNamespace, "infData"}, func() any { return &EuridHitPointsInfData{} })
	RegisterExtension(ExtensionKey{EuridRegistrationLimitNS, "infData"}, func() any { return &EuridRegistrationLimitInfData{} })
	RegisterExtension(ExtensionKey{EuridRegistrarFinanceNS, "pollData"}, func() any { return &EuridRegistrarFinancePollData{} })
}

// EuridDomainInfData is EURid's domain-info extension: on-hold,
// quarantined, on-site and deletable flags plus reason codes.
type EuridDomainInfData struct {
	XMLName     xml.Name `xml:"http://www.eurid.eu/xml/epp/domain-ext-1.0 infData"`
	OnHold      bool     `xml:"onHold,omitempty"`
	Quarantined bool     `xml:"quarantined,omitempty"`
	OnSite      bool     `xml:"onSite,omitempty"`
	Deletable   bool     `xml:"deletable,omitempty"`
	Reason      []string `xml:"reason"`
}

// EuridContactInfData is EURid's contact-info extension: contact type
// (natural person/organisation) and VAT/citizen-number identifiers.
type EuridContactInfData struct {
	XMLName xml.Name `xml:"http://www.eurid.eu/xml/epp/contact-ext-1.0 infData"`
	Type    string   `xml:"type"`
	VAT     string   `xml:"vat,omitempty"`
	CitizenID string `xml:"citizenID,omitempty"`
	WhoisEmail string `xml:"whoisEmail,omitempty"`
}

// EuridDNSQualityInfData reports EURid's DNS quality score for a domain.
type EuridDNSQualityInfData struct {
	XMLName xml.Name `xml:"http://www.eurid.eu/xml/epp/dnsQuality-1.2 infData"`
	Score   int      `xml:"score"`
	Comments []string `xml:"comment"`
}

// EuridHitPointsInfData reports the registrar's current hit-point balance
// (EURid's anti-abuse query-rate-limiting mechanism).
type EuridHitPointsInfData struct {
	XMLName  xml.Name `xml:"http://www.eurid.eu/xml/epp/registrarHitPoints-1.1 infData"`
	HitPoints int     `xml:"hitPoints"`
	MaxHitPoints int  `xml:"maxHitPoints"`
	Blocked   bool     `xml:"blocked,omitempty"`
}

// EuridRegistrationLimitInfData reports the registrar's remaining
// same-day domain registration allowance.
type EuridRegistrationLimitInfData struct {
	XMLName xml.Name `xml:"http://www.eurid.eu/xml/epp/registrationLimit-1.1 infData"`
	Remaining int    `xml:"remaining"`
	Limit     int    `xml:"limit"`
}

// EuridRegistrarFinancePollData is a registrar-finance poll notification
// (monthly invoice/statement availability).
type EuridRegistrarFinancePollData struct {
	XMLName xml.Name `xml:"http://www.eurid.eu/xml/epp/registrarFinance-1.0 pollData"`
	Type    string   `xml:"type,attr,omitempty"`
	Amount  string   `xml:"amount,omitempty"`
	Date    string   `xml:"date,omitempty"`
}

// EuridHitPointsInfoCmd is EURid's bare registrar hit-points query: a
// standalone <info> command with no domain, host or contact object (the
// upstream client's handle_hit_points issues exactly this, empty body).
type EuridHitPointsInfoCmd struct {
	XMLName xml.Name `xml:"http://www.eurid.eu/xml/epp/registrarHitPoints-1.1 info"`
}

// EuridRegistrationLimitInfoCmd is EURid's bare same-day registration
// allowance query, mirroring EuridHitPointsInfoCmd.
type EuridRegistrationLimitInfoCmd struct {
	XMLName xml.Name `xml:"http://www.eurid.eu/xml/epp/registrationLimit-1.1 info"`
}

// EuridDNSQualityInfoCmd queries one domain's DNS quality score.
type EuridDNSQualityInfoCmd struct {
	XMLName xml.Name `xml:"http://www.eurid.eu/xml/epp/dnsQuality-1.2 info"`
	Name    string   `xml:"name"`
}
