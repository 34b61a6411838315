// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "github.com/AS207960/eppcore/wire"

// feeNamespaceForVersion maps a [eppcore.ServerFeatures.FeeVersion] result
// to the wire namespace used to tag every fee:* element built for it.
// One table, consulted by every fee-aware command builder, instead of a
// namespace switch duplicated per command (§4.3, §9 Design Notes).
func feeNamespaceForVersion(version string) string {
	return version
}

// isModernFee reports whether version uses the 0.11/1.0 wire shape
// (fee:command name attribute, no fee:object wrapper) rather than the
// legacy 0.5-0.9/Donuts shape.
func isModernFee(version string) bool {
	return version == wire.FeeNamespace011 || version == wire.FeeNamespace10
}

// namestoreSubProduct maps a TLD to the subProduct string Verisign's
// namestoreExt-1.1 requires on every domain/host command once negotiated
// (§4.3 Namestore). Unknown TLDs fall back to "dotCOM", matching
// Verisign's own registrar-toolkit default.
func namestoreSubProduct(tld string) string {
	switch tld {
	case "net":
		return "dotNET"
	case "cc":
		return "dotCC"
	case "tv":
		return "dotTV"
	case "name":
		return "dotNAME"
	default:
		return "dotCOM"
	}
}
