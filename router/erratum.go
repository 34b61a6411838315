// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "github.com/AS207960/eppcore"

// erratumTLD maps each Verisign erratum bundle (the bundles that suppress
// the email-forward registrant field) to its TLD. [namestoreSubProduct]
// does not consult it: the namestore subProduct is derived from the TLD
// of the command's own domain or host name.
var erratumTLD = map[string]string{
	eppcore.ErratumVerisignCom: "com",
	eppcore.ErratumVerisignNet: "net",
	eppcore.ErratumVerisignCC:  "cc",
	eppcore.ErratumVerisignTV:  "tv",
}

// suppressEmailForwardRegistrant reports whether erratum requires
// omitting the <email-fwd:registrant> element entirely (§4.3): Verisign's
// email-forward service pre-dates the registrant field and several of its
// legacy endpoints reject commands that include it.
func suppressEmailForwardRegistrant(erratum string) bool {
	return eppcore.VerisignEmailForwardErratum(erratum)
}

// traficomRequiresIdentifier reports whether erratum requires a Finnish
// business/personal identity code on every contact create/update (§4.3):
// Traficom rejects contact commands lacking the traficom-1.1 extension.
func traficomRequiresIdentifier(erratum string) bool {
	return erratum == eppcore.ErratumTraficom
}

// pirUsesLegacyRGP reports whether erratum targets PIR (.org/.ngo/.ong),
// whose RGP restore reports historically omitted the <other> element PIR
// itself never populates.
func pirUsesLegacyRGP(erratum string) bool {
	return erratum == eppcore.ErratumPIR
}
