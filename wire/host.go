// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// HostNamespace is host-1.0 (RFC 5732).
const HostNamespace = "urn:ietf:params:xml:ns:host-1.0"

// HostCheck is <host:check>.
type HostCheck struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:host-1.0 check"`
	Names   []string `xml:"name"`
}

// HostCheckData is <host:chkData>.
type HostCheckData struct {
	XMLName xml.Name          `xml:"urn:ietf:params:xml:ns:host-1.0 chkData"`
	Results []HostCheckResult `xml:"cd"`
}

// HostCheckResult is one <host:cd> entry.
type HostCheckResult struct {
	Name   string `xml:"name"`
	Avail  bool   `xml:"name>avail,attr"`
	Reason string `xml:"reason,omitempty"`
}

// HostInfo is <host:info>.
type HostInfo struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:host-1.0 info"`
	Name    string   `xml:"name"`
}

// HostAddr is <host:addr ip="v4|v6">.
type HostAddr struct {
	IPVersion string `xml:"ip,attr,omitempty"`
	Address   string `xml:",chardata"`
}

// HostInfoData is <host:infData>.
type HostInfoData struct {
	XMLName    xml.Name   `xml:"urn:ietf:params:xml:ns:host-1.0 infData"`
	Name       string     `xml:"name"`
	RoID       string     `xml:"roid"`
	Status     []DomainStatus `xml:"status"`
	Addrs      []HostAddr `xml:"addr"`
	ClientID   string     `xml:"clID"`
	CreateID   string     `xml:"crID,omitempty"`
	CreateDate string     `xml:"crDate,omitempty"`
	UpdateID   string     `xml:"upID,omitempty"`
	UpdateDate string     `xml:"upDate,omitempty"`
}

// HostCreate is <host:create>.
type HostCreate struct {
	XMLName xml.Name   `xml:"urn:ietf:params:xml:ns:host-1.0 create"`
	Name    string     `xml:"name"`
	Addrs   []HostAddr `xml:"addr"`
}

// HostCreateData is <host:creData>.
type HostCreateData struct {
	XMLName    xml.Name `xml:"urn:ietf:params:xml:ns:host-1.0 creData"`
	Name       string   `xml:"name"`
	CreateDate string   `xml:"crDate"`
}

// HostUpdate is <host:update>.
type HostUpdate struct {
	XMLName xml.Name         `xml:"urn:ietf:params:xml:ns:host-1.0 update"`
	Name    string           `xml:"name"`
	Add     *HostUpdateAddRem `xml:"add"`
	Remove  *HostUpdateAddRem `xml:"rem"`
	Change  *HostUpdateChange `xml:"chg"`
}

// HostUpdateAddRem is the shared shape of <host:add>/<host:rem>.
type HostUpdateAddRem struct {
	Addrs  []HostAddr     `xml:"addr"`
	Status []DomainStatus `xml:"status"`
}

// HostUpdateChange is <host:chg>.
type HostUpdateChange struct {
	Name string `xml:"name,omitempty"`
}

// HostDelete is <host:delete>.
type HostDelete struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:host-1.0 delete"`
	Name    string   `xml:"name"`
}
