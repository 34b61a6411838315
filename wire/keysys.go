// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// KeysysNamespace is Key-Systems' registrar-specific extension, grounded
// on AS207960/epp-proxy's proto/keysys.rs.
const KeysysNamespace = "http://www.key-systems.net/epp/keysys-1.0"

func init() {
	RegisterExtension(ExtensionKey{KeysysNamespace, "infData"}, func() any { return &KeysysInfData{} })
}

// KeysysInfData carries Key-Systems' non-standard domain flags (e.g.
// trustee service enrollment, ID protection).
type KeysysInfData struct {
	XMLName  xml.Name `xml:"http://www.key-systems.net/epp/keysys-1.0 infData"`
	TrusteeService bool `xml:"trusteeService,omitempty"`
	IDProtection bool `xml:"idProtection,omitempty"`
	AdditionalPeriod string `xml:"additionalPeriod,omitempty"`
}
