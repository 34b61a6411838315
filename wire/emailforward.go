// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// EmailForwardNamespace is Nominet's non-standard email-forward object,
// unique to .uk: a registrable forwarding address rather than a domain.
const EmailForwardNamespace = "http://www.nominet.org.uk/epp/xml/email-forward-1.0"

// EmailForwardCheck is <email-fwd:check>.
type EmailForwardCheck struct {
	XMLName xml.Name `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 check"`
	Names   []string `xml:"name"`
}

// EmailForwardCheckData is <email-fwd:chkData>.
type EmailForwardCheckData struct {
	XMLName xml.Name                `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 chkData"`
	Results []EmailForwardCheckResult `xml:"cd"`
}

// EmailForwardCheckResult is one <email-fwd:cd> entry.
type EmailForwardCheckResult struct {
	Name   string `xml:"name"`
	Avail  bool   `xml:"name>avail,attr"`
	Reason string `xml:"reason,omitempty"`
}

// EmailForwardInfo is <email-fwd:info>.
type EmailForwardInfo struct {
	XMLName  xml.Name        `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 info"`
	Name     string          `xml:"name"`
	AuthInfo *DomainAuthInfo `xml:"authInfo"`
}

// EmailForwardInfoData is <email-fwd:infData>.
type EmailForwardInfoData struct {
	XMLName    xml.Name        `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 infData"`
	Name       string          `xml:"name"`
	RoID       string          `xml:"roid"`
	Forward    string          `xml:"forwardTo"`
	Status     []DomainStatus  `xml:"status"`
	Registrant string          `xml:"registrant,omitempty"`
	Contacts   []DomainContact `xml:"contact"`
	ClientID   string          `xml:"clID"`
	CreateID   string          `xml:"crID,omitempty"`
	CreateDate string          `xml:"crDate,omitempty"`
	ExpireDate string          `xml:"exDate,omitempty"`
	UpdateID   string          `xml:"upID,omitempty"`
	UpdateDate string          `xml:"upDate,omitempty"`
	AuthInfo   *DomainAuthInfo `xml:"authInfo"`
}

// EmailForwardCreate is <email-fwd:create>. The registrant field is
// omitted entirely under the verisign-{com,net,cc,tv} erratum (§4.3); the
// router enforces that, not this type.
type EmailForwardCreate struct {
	XMLName    xml.Name       `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 create"`
	Name       string         `xml:"name"`
	Period     *EPPPeriod     `xml:"period"`
	Forward    string         `xml:"forwardTo"`
	Registrant string         `xml:"registrant,omitempty"`
	Contacts   []DomainContact `xml:"contact"`
	AuthInfo   DomainAuthInfo `xml:"authInfo"`
}

// EmailForwardCreateData is <email-fwd:creData>.
type EmailForwardCreateData struct {
	XMLName    xml.Name `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 creData"`
	Name       string   `xml:"name"`
	CreateDate string   `xml:"crDate"`
	ExpireDate string   `xml:"exDate,omitempty"`
}

// EmailForwardUpdate is <email-fwd:update>.
type EmailForwardUpdate struct {
	XMLName xml.Name                   `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 update"`
	Name    string                     `xml:"name"`
	Add     *DomainUpdateAddRem        `xml:"add"`
	Remove  *DomainUpdateAddRem        `xml:"rem"`
	Change  *EmailForwardUpdateChange  `xml:"chg"`
}

// EmailForwardUpdateChange is <email-fwd:chg>.
type EmailForwardUpdateChange struct {
	Forward    string          `xml:"forwardTo,omitempty"`
	Registrant string          `xml:"registrant,omitempty"`
	AuthInfo   *DomainAuthInfo `xml:"authInfo"`
}

// EmailForwardRenew is <email-fwd:renew>.
type EmailForwardRenew struct {
	XMLName       xml.Name   `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 renew"`
	Name          string     `xml:"name"`
	CurrentExpiry string     `xml:"curExpDate"`
	Period        *EPPPeriod `xml:"period"`
}

// EmailForwardRenewData is <email-fwd:renData>.
type EmailForwardRenewData struct {
	XMLName    xml.Name `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 renData"`
	Name       string   `xml:"name"`
	ExpireDate string   `xml:"exDate"`
}

// EmailForwardDelete is <email-fwd:delete>.
type EmailForwardDelete struct {
	XMLName xml.Name `xml:"http://www.nominet.org.uk/epp/xml/email-forward-1.0 delete"`
	Name    string   `xml:"name"`
}
