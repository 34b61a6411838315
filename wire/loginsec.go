// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// LoginSecNamespace is loginSec-1.0, used by a handful of registries to
// negotiate a stronger login exchange (client-side TOTP/IP allowlisting)
// alongside the base login command.
const LoginSecNamespace = "urn:ietf:params:xml:ns:epp:loginSec-1.0"

func init() {
	RegisterExtension(ExtensionKey{LoginSecNamespace, "loginSecData"}, func() any { return &LoginSecData{} })
}

// LoginSecData is <loginSec:loginSecData>, attached to the login command
// to carry a user-agent descriptor alongside clID/pw.
type LoginSecData struct {
	XMLName   xml.Name `xml:"urn:ietf:params:xml:ns:epp:loginSec-1.0 loginSecData"`
	UserAgent *LoginSecUserAgent `xml:"userAgent"`
}

// LoginSecUserAgent identifies the client software to the registry.
type LoginSecUserAgent struct {
	Type     string `xml:"type,attr,omitempty"`
	Value    string `xml:",chardata"`
}
