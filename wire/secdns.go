// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// SecDNSNamespace is secDNS-1.1 (RFC 5910).
const SecDNSNamespace = "urn:ietf:params:xml:ns:secDNS-1.1"

func init() {
	RegisterExtension(ExtensionKey{SecDNSNamespace, "infData"}, func() any { return &SecDNSInfData{} })
	RegisterExtension(ExtensionKey{SecDNSNamespace, "create"}, func() any { return &SecDNSCreate{} })
	RegisterExtension(ExtensionKey{SecDNSNamespace, "update"}, func() any { return &SecDNSUpdate{} })
}

// DSDataOrKeyData is one <dsData> or <keyData> child, mutually exclusive
// within a single secDNS payload (a registry advertises one or the other
// via the urgent flag on <maxSigLife>, never both within one command).
type DSDataOrKeyData struct {
	DSData  []DSDatum  `xml:"dsData"`
	KeyData []KeyDatum `xml:"keyData"`
}

// DSDatum is secDNS <dsData>.
type DSDatum struct {
	KeyTag     int    `xml:"keyTag"`
	Algorithm  int    `xml:"alg"`
	DigestType int    `xml:"digestType"`
	Digest     string `xml:"digest"`
	KeyData    *KeyDatum `xml:"keyData"`
}

// KeyDatum is secDNS <keyData>, also embeddable inside <dsData>.
type KeyDatum struct {
	Flags     int    `xml:"flags"`
	Protocol  int    `xml:"protocol"`
	Algorithm int    `xml:"alg"`
	PublicKey string `xml:"pubKey"`
}

// SecDNSInfData is the <secDNS:infData> domain-info response extension.
type SecDNSInfData struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:secDNS-1.1 infData"`
	DSDataOrKeyData
}

// SecDNSCreate is the <secDNS:create> domain-create command extension.
type SecDNSCreate struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:secDNS-1.1 create"`
	DSDataOrKeyData
}

// SecDNSUpdate is the <secDNS:update> domain-update command extension:
// urgent re-signing plus add/rem sets of DS or key data.
type SecDNSUpdate struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:secDNS-1.1 update"`
	Urgent  bool      `xml:"urgent,attr,omitempty"`
	Rem     *SecDNSRemoveAll `xml:"rem"`
	Add     *DSDataOrKeyData `xml:"add"`
	Chg     *DSDataOrKeyData `xml:"chg"`
}

// SecDNSRemoveAll is <secDNS:rem>: either an explicit DS/key data set, or
// the bare <all>true</all> removing every signature (RFC 5910 §4.1.2).
type SecDNSRemoveAll struct {
	All     bool      `xml:"all,omitempty"`
	DSData  []DSDatum `xml:"dsData"`
	KeyData []KeyDatum `xml:"keyData"`
}
