// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

// Well-known EPP object and extension URIs. Not exhaustive — the feature
// set tolerates and retains any URI the greeting advertises, known or not.
const (
	ObjectURIDomain        = "urn:ietf:params:xml:ns:domain-1.0"
	ObjectURIHost          = "urn:ietf:params:xml:ns:host-1.0"
	ObjectURIContact       = "urn:ietf:params:xml:ns:contact-1.0"
	ObjectURIEmailForward  = "http://www.nominet.org.uk/epp/xml/email-forward-1.0"

	ExtURISecDNS      = "urn:ietf:params:xml:ns:secDNS-1.1"
	ExtURIRGP         = "urn:ietf:params:xml:ns:rgp-1.0"
	ExtURILaunch      = "urn:ietf:params:xml:ns:launch-1.0"
	ExtURIFee05       = "urn:ietf:params:xml:ns:fee-0.5"
	ExtURIFee07       = "urn:ietf:params:xml:ns:fee-0.7"
	ExtURIFee08       = "urn:ietf:params:xml:ns:fee-0.8"
	ExtURIFee09       = "urn:ietf:params:xml:ns:fee-0.9"
	ExtURIFee011      = "urn:ietf:params:xml:ns:epp:fee-0.11"
	ExtURIFee10       = "urn:ietf:params:xml:ns:epp:fee-1.0"
	ExtURIDonutsFee    = "urn:ietf:params:xml:ns:fee"
	ExtURIChangePoll  = "urn:ietf:params:xml:ns:changePoll-1.0"
	ExtURIMaintenance = "urn:ietf:params:xml:ns:epp:maintenance-1.0"
	ExtURILoginSec    = "urn:ietf:params:xml:ns:epp:loginSec-1.0"

	ExtURIEuridDomain          = "http://www.eurid.eu/xml/epp/domain-ext-1.0"
	ExtURIEuridContact         = "http://www.eurid.eu/xml/epp/contact-ext-1.0"
	ExtURIEuridIDN             = "http://www.eurid.eu/xml/epp/idn-1.0"
	ExtURIEuridAuthInfo        = "http://www.eurid.eu/xml/epp/authInfo-1.1"
	ExtURIEuridDNSQuality      = "http://www.eurid.eu/xml/epp/dnsQuality-1.2"
	ExtURIEuridDNSSECEligible  = "http://www.eurid.eu/xml/epp/dnssecEligibility-1.0"
	ExtURIEuridPoll            = "http://www.eurid.eu/xml/epp/poll-1.2"
	ExtURIEuridRegistrarFin    = "http://www.eurid.eu/xml/epp/registrarFinance-1.0"
	ExtURIEuridHitPoints       = "http://www.eurid.eu/xml/epp/registrarHitPoints-1.1"
	ExtURIEuridRegistrationLim = "http://www.eurid.eu/xml/epp/registrationLimit-1.1"

	ExtURINominetContact  = "http://www.nominet.org.uk/epp/xml/contact-nom-ext-1.0"
	ExtURINominetNotif    = "http://www.nominet.org.uk/epp/xml/std-notifications-1.2"
	ExtURINominetDataQual = "http://www.nominet.org.uk/epp/xml/data-quality-1.0"

	ExtURIVerisignNamestore  = "http://www.verisign.com/epp/namestoreExt-1.1"
	ExtURIVerisignSync       = "http://www.verisign.com/epp/sync-1.0"
	ExtURIVerisignWhoisInf   = "http://www.verisign.com/epp/whoisInf-1.0"
	ExtURIVerisignLowBalance = "http://www.verisign-grs.com/epp/lowbalance-poll-1.0"
	ExtURIVerisignPremium    = "http://www.verisign.com/epp/premiumdomain-1.0"

	ExtURIISNIC            = "urn:is:params:xml:ns:isnic-1.0"
	ExtURIKeysys           = "http://www.key-systems.net/epp/keysys-1.0"
	ExtURIQualifiedLawyer  = "http://www.nic.it/ITNIC-EPP/qualifiedLawyer-1.0"
	ExtURIPersonalReg      = "http://www.nic.it/ITNIC-EPP/personalRegistration-1.0"
	ExtURITraficomContact  = "urn:ietf:params:xml:ns:traficom-1.1"
	ExtURITMNotice         = "urn:ietf:params:xml:ns:tmNotice-1.0"
	ExtURIMark             = "urn:ietf:params:xml:ns:mark-1.0"
	ExtURISignedMark       = "urn:ietf:params:xml:ns:signedMark-1.0"
)

// ServerFeatures is the immutable snapshot built from the greeting at
// login time (§3, §4.2). Two constructions over the same URI set are
// always equal: all derivations are pure functions of the URI sets.
type ServerFeatures struct {
	// Objects is the set of object URIs advertised in <svcMenu>.
	Objects map[string]bool

	// Extensions is the set of extension URIs advertised in
	// <svcExtension> and present in the account's desired extension
	// list (the intersection, per §4.2). When the desired list is empty,
	// every advertised extension is kept.
	Extensions map[string]bool

	// Erratum is the configured named workaround bundle, or "" if none.
	Erratum string
}

// NewServerFeatures builds a [ServerFeatures] from the greeting's
// advertised object and extension URIs, intersected with the account's
// desired extension list; an empty desired list keeps every advertised
// extension. No round-trip to the registry is performed.
func NewServerFeatures(objectURIs, advertisedExtURIs, desiredExtURIs []string, erratum string) *ServerFeatures {
	desired := make(map[string]bool, len(desiredExtURIs))
	for _, uri := range desiredExtURIs {
		desired[uri] = true
	}

	objects := make(map[string]bool, len(objectURIs))
	for _, uri := range objectURIs {
		objects[uri] = true
	}

	extensions := make(map[string]bool, len(advertisedExtURIs))
	for _, uri := range advertisedExtURIs {
		if len(desired) == 0 || desired[uri] {
			extensions[uri] = true
		}
	}

	return &ServerFeatures{Objects: objects, Extensions: extensions, Erratum: erratum}
}

// ContainsURI reports whether uri was advertised (as an object or an
// extension) and, for extensions, also desired by the account config (or
// the account config lists no desired extensions).
func (f *ServerFeatures) ContainsURI(uri string) bool {
	return f.Objects[uri] || f.Extensions[uri]
}

// HasErratum reports whether the named workaround bundle is configured.
// This is the sole mechanism by which the router bends behavior
// per-registry (§4.3).
func (f *ServerFeatures) HasErratum(name string) bool {
	return f.Erratum == name
}

// SupportsDomain, SupportsHost, SupportsContact and SupportsEmailForward
// report whether the corresponding object type was advertised.
func (f *ServerFeatures) SupportsDomain() bool       { return f.Objects[ObjectURIDomain] }
func (f *ServerFeatures) SupportsHost() bool         { return f.Objects[ObjectURIHost] }
func (f *ServerFeatures) SupportsContact() bool       { return f.Objects[ObjectURIContact] }
func (f *ServerFeatures) SupportsEmailForward() bool { return f.Objects[ObjectURIEmailForward] }

// RGPSupported reports whether the rgp-1.0 extension was negotiated.
func (f *ServerFeatures) RGPSupported() bool { return f.Extensions[ExtURIRGP] }

// SecDNSSupported reports whether the secDNS-1.1 extension was negotiated.
func (f *ServerFeatures) SecDNSSupported() bool { return f.Extensions[ExtURISecDNS] }

// LaunchSupported reports whether the launch-1.0 extension was negotiated.
func (f *ServerFeatures) LaunchSupported() bool { return f.Extensions[ExtURILaunch] }

// Fee05Supported through Fee10Supported report per-version fee extension
// support. FeeVersion resolves the router's precedence over these.
func (f *ServerFeatures) Fee05Supported() bool  { return f.Extensions[ExtURIFee05] }
func (f *ServerFeatures) Fee07Supported() bool  { return f.Extensions[ExtURIFee07] }
func (f *ServerFeatures) Fee08Supported() bool  { return f.Extensions[ExtURIFee08] }
func (f *ServerFeatures) Fee09Supported() bool  { return f.Extensions[ExtURIFee09] }
func (f *ServerFeatures) Fee011Supported() bool { return f.Extensions[ExtURIFee011] }
func (f *ServerFeatures) Fee10Supported() bool  { return f.Extensions[ExtURIFee10] }
func (f *ServerFeatures) DonutsFeeSupported() bool { return f.Extensions[ExtURIDonutsFee] }

// NominetContactExt reports whether Nominet's contact extension was
// negotiated.
func (f *ServerFeatures) NominetContactExt() bool { return f.Extensions[ExtURINominetContact] }

// EuridContactSupport reports whether EURid's contact extension was
// negotiated.
func (f *ServerFeatures) EuridContactSupport() bool { return f.Extensions[ExtURIEuridContact] }

// KeysysSupported reports whether the Keysys extension was negotiated.
func (f *ServerFeatures) KeysysSupported() bool { return f.Extensions[ExtURIKeysys] }

// VerisignWhoisInfo reports whether Verisign's whoisInf extension was
// negotiated.
func (f *ServerFeatures) VerisignWhoisInfo() bool { return f.Extensions[ExtURIVerisignWhoisInf] }

// VerisignNamestore reports whether Verisign's namestore extension was
// negotiated; when true every domain/host operation must add a
// namestoreExt subProduct tag (§4.3 Namestore).
func (f *ServerFeatures) VerisignNamestore() bool { return f.Extensions[ExtURIVerisignNamestore] }

// FeeVersion returns the highest-precedence fee extension version the
// router should build, and false if none is negotiated. Precedence:
// 1.0, then 0.11, 0.9, 0.8, 0.7, 0.5, then the Donuts fee extension
// (§4.3).
func (f *ServerFeatures) FeeVersion() (string, bool) {
	switch {
	case f.Fee10Supported():
		return ExtURIFee10, true
	case f.Fee011Supported():
		return ExtURIFee011, true
	case f.Fee09Supported():
		return ExtURIFee09, true
	case f.Fee08Supported():
		return ExtURIFee08, true
	case f.Fee07Supported():
		return ExtURIFee07, true
	case f.Fee05Supported():
		return ExtURIFee05, true
	case f.DonutsFeeSupported():
		return ExtURIDonutsFee, true
	default:
		return "", false
	}
}

// Erratum constants name the workaround bundles the router knows how to
// apply (§4.3, §9 Design Notes — kept in one table, never hard-coded
// against a registry hostname).
const (
	ErratumTraficom    = "traficom"
	ErratumVerisignCom = "verisign-com"
	ErratumVerisignNet = "verisign-net"
	ErratumVerisignCC  = "verisign-cc"
	ErratumVerisignTV  = "verisign-tv"
	ErratumPIR         = "pir"
)

// KnownErrata lists every erratum name the router understands. A config
// with an Erratum value not in this list is still accepted (HasErratum
// simply never matches), since new bundles are added by updating this
// table, not by rejecting unknown configuration.
var KnownErrata = []string{
	ErratumTraficom,
	ErratumVerisignCom,
	ErratumVerisignNet,
	ErratumVerisignCC,
	ErratumVerisignTV,
	ErratumPIR,
}

// VerisignEmailForwardErratum reports whether erratum is one of the
// verisign-{com,net,cc,tv} bundles that suppress the registrant field in
// email-forward create/update (§4.3).
func VerisignEmailForwardErratum(erratum string) bool {
	switch erratum {
	case ErratumVerisignCom, ErratumVerisignNet, ErratumVerisignCC, ErratumVerisignTV:
		return true
	default:
		return false
	}
}
