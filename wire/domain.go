// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// DomainNamespace is domain-1.0 (RFC 5731).
const DomainNamespace = "urn:ietf:params:xml:ns:domain-1.0"

// DomainCheck is <domain:check> (RFC 5731 §3.1.1).
type DomainCheck struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 check"`
	Names   []string `xml:"name"`
}

// DomainCheckData is <domain:chkData>.
type DomainCheckData struct {
	XMLName xml.Name            `xml:"urn:ietf:params:xml:ns:domain-1.0 chkData"`
	Results []DomainCheckResult `xml:"cd"`
}

// DomainCheckResult is one <domain:cd> entry.
type DomainCheckResult struct {
	Name   string `xml:"name"`
	Avail  bool   `xml:"name>avail,attr"`
	Reason string `xml:"reason,omitempty"`
}

// DomainInfo is <domain:info> (RFC 5731 §3.1.2).
type DomainInfo struct {
	XMLName xml.Name        `xml:"urn:ietf:params:xml:ns:domain-1.0 info"`
	Name    string          `xml:"name"`
	Hosts   string          `xml:"name>hosts,attr,omitempty"`
	AuthInfo *DomainAuthInfo `xml:"authInfo"`
}

// DomainAuthInfo is the shared <domain:authInfo>/<domain:pw> element.
type DomainAuthInfo struct {
	Password string `xml:"pw"`
	RoID     string `xml:"pw>roid,attr,omitempty"`
}

// DomainInfoData is <domain:infData>.
type DomainInfoData struct {
	XMLName     xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 infData"`
	Name        string   `xml:"name"`
	RoID        string   `xml:"roid"`
	Status      []DomainStatus `xml:"status"`
	Registrant  string   `xml:"registrant,omitempty"`
	Contacts    []DomainContact `xml:"contact"`
	Nameservers []DomainNameserverRef `xml:"ns>hostObj"`
	HostAttrs   []DomainHostAttr `xml:"ns>hostAttr"`
	Hosts       []string `xml:"host"`
	ClientID    string   `xml:"clID"`
	CreateID    string   `xml:"crID,omitempty"`
	CreateDate  string   `xml:"crDate,omitempty"`
	ExpireDate  string   `xml:"exDate,omitempty"`
	UpdateID    string   `xml:"upID,omitempty"`
	UpdateDate  string   `xml:"upDate,omitempty"`
	TransferDate string  `xml:"trDate,omitempty"`
	AuthInfo    *DomainAuthInfo `xml:"authInfo"`
}

// DomainStatus is one <domain:status s="..."/> entry (RFC 5731 §2.3).
type DomainStatus struct {
	Status string `xml:"s,attr"`
	Lang   string `xml:"lang,attr,omitempty"`
	Text   string `xml:",chardata"`
}

// DomainContact is <domain:contact type="...">id</domain:contact>.
type DomainContact struct {
	Type string `xml:"type,attr"`
	ID   string `xml:",chardata"`
}

// DomainNameserverRef is a delegated nameserver referenced by host object
// (hostObj form).
type DomainNameserverRef struct {
	Name string `xml:",chardata"`
}

// DomainHostAttr is a glue nameserver supplied inline (hostAttr form, used
// by registries that do not maintain a shared host object table).
type DomainHostAttr struct {
	Name string   `xml:"hostName"`
	Addrs []DomainHostAddr `xml:"hostAddr"`
}

// DomainHostAddr is <domain:hostAddr ip="v4|v6">.
type DomainHostAddr struct {
	IPVersion string `xml:"ip,attr,omitempty"`
	Address   string `xml:",chardata"`
}

// DomainCreate is <domain:create> (RFC 5731 §3.2.1).
type DomainCreate struct {
	XMLName     xml.Name  `xml:"urn:ietf:params:xml:ns:domain-1.0 create"`
	Name        string    `xml:"name"`
	Period      *EPPPeriod `xml:"period"`
	Nameservers []DomainNameserverRef `xml:"ns>hostObj"`
	HostAttrs   []DomainHostAttr      `xml:"ns>hostAttr"`
	Registrant  string    `xml:"registrant,omitempty"`
	Contacts    []DomainContact `xml:"contact"`
	AuthInfo    DomainAuthInfo `xml:"authInfo"`
}

// DomainCreateData is <domain:creData>.
type DomainCreateData struct {
	XMLName    xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 creData"`
	Name       string   `xml:"name"`
	CreateDate string   `xml:"crDate"`
	ExpireDate string   `xml:"exDate,omitempty"`
}

// DomainUpdate is <domain:update> (RFC 5731 §3.2.4).
type DomainUpdate struct {
	XMLName  xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 update"`
	Name     string   `xml:"name"`
	Add      *DomainUpdateAddRem `xml:"add"`
	Remove   *DomainUpdateAddRem `xml:"rem"`
	Change   *DomainUpdateChange `xml:"chg"`
}

// DomainUpdateAddRem is the shared shape of <domain:add>/<domain:rem>.
type DomainUpdateAddRem struct {
	Nameservers []DomainNameserverRef `xml:"ns>hostObj"`
	HostAttrs   []DomainHostAttr      `xml:"ns>hostAttr"`
	Contacts    []DomainContact       `xml:"contact"`
	Status      []DomainStatus        `xml:"status"`
}

// DomainUpdateChange is <domain:chg>.
type DomainUpdateChange struct {
	Registrant string          `xml:"registrant,omitempty"`
	AuthInfo   *DomainAuthInfo `xml:"authInfo"`
}

// DomainRenew is <domain:renew> (RFC 5731 §3.2.5).
type DomainRenew struct {
	XMLName        xml.Name  `xml:"urn:ietf:params:xml:ns:domain-1.0 renew"`
	Name           string    `xml:"name"`
	CurrentExpiry  string    `xml:"curExpDate"`
	Period         *EPPPeriod `xml:"period"`
}

// DomainRenewData is <domain:renData>.
type DomainRenewData struct {
	XMLName    xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 renData"`
	Name       string   `xml:"name"`
	ExpireDate string   `xml:"exDate"`
}

// DomainTransfer is <domain:transfer>, the object-specific payload inside
// the shared <transfer op="..."> command.
type DomainTransfer struct {
	XMLName  xml.Name       `xml:"urn:ietf:params:xml:ns:domain-1.0 transfer"`
	Name     string         `xml:"name"`
	Period   *EPPPeriod     `xml:"period"`
	AuthInfo *DomainAuthInfo `xml:"authInfo"`
}

// DomainTransferData is <domain:trnData>.
type DomainTransferData struct {
	XMLName        xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 trnData"`
	Name           string   `xml:"name"`
	TransferStatus string   `xml:"trStatus"`
	RequestClient  string   `xml:"reID"`
	RequestDate    string   `xml:"reDate"`
	ActionClient   string   `xml:"acID"`
	ActionDate     string   `xml:"acDate"`
	ExpireDate     string   `xml:"exDate,omitempty"`
}

// DomainDelete is <domain:delete> (RFC 5731 §3.2.2).
type DomainDelete struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 delete"`
	Name    string   `xml:"name"`
}
