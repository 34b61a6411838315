// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"

	"github.com/AS207960/eppcore"
	"github.com/AS207960/eppcore/wire"
)

// buildExtension marshals each non-nil element and concatenates them into
// one <extension> payload. Each element is expected to carry its own
// XMLName so the registry can tell them apart (the registry pattern in
// [wire.RegisterExtension] relies on this).
func buildExtension(elements ...any) (*wire.Extension, error) {
	var inner []byte
	for _, el := range elements {
		if isNilElement(el) {
			continue
		}
		body, err := xml.Marshal(el)
		if err != nil {
			return nil, err
		}
		inner = append(inner, body...)
	}
	if len(inner) == 0 {
		return nil, nil
	}
	return &wire.Extension{Inner: inner}, nil
}

func isNilElement(el any) bool {
	switch v := el.(type) {
	case *wire.SecDNSCreate:
		return v == nil
	case *wire.SecDNSUpdate:
		return v == nil
	case *wire.RGPUpdate:
		return v == nil
	case *wire.VerisignNamestoreExt:
		return v == nil
	default:
		return el == nil
	}
}

// secDNSCreateExtension builds <secDNS:create> from the DS data supplied
// on a domain-create input, or nil if none was supplied (secDNS is
// opt-in per command, not implied by negotiation alone).
func secDNSCreateExtension(dsData []DSDatum) *wire.SecDNSCreate {
	if len(dsData) == 0 {
		return nil
	}
	ext := &wire.SecDNSCreate{}
	for _, ds := range dsData {
		ext.DSData = append(ext.DSData, wire.DSDatum{
			KeyTag: ds.KeyTag, Algorithm: ds.Algorithm,
			DigestType: ds.DigestType, Digest: ds.Digest,
		})
	}
	return ext
}

// secDNSUpdateExtension builds <secDNS:update> from a domain-update
// input's add/remove DS sets, or nil if the update touches no DS data.
func secDNSUpdateExtension(input DomainUpdateInput) *wire.SecDNSUpdate {
	if len(input.DSDataAdd) == 0 && len(input.DSDataRemove) == 0 && !input.DSDataClearAll {
		return nil
	}
	ext := &wire.SecDNSUpdate{}
	if input.DSDataClearAll {
		ext.Rem = &wire.SecDNSRemoveAll{All: true}
	} else if len(input.DSDataRemove) > 0 {
		rem := &wire.SecDNSRemoveAll{}
		for _, ds := range input.DSDataRemove {
			rem.DSData = append(rem.DSData, wire.DSDatum{
				KeyTag: ds.KeyTag, Algorithm: ds.Algorithm,
				DigestType: ds.DigestType, Digest: ds.Digest,
			})
		}
		ext.Rem = rem
	}
	if len(input.DSDataAdd) > 0 {
		add := &wire.DSDataOrKeyData{}
		for _, ds := range input.DSDataAdd {
			add.DSData = append(add.DSData, wire.DSDatum{
				KeyTag: ds.KeyTag, Algorithm: ds.Algorithm,
				DigestType: ds.DigestType, Digest: ds.Digest,
			})
		}
		ext.Add = add
	}
	return ext
}

// namestoreExtension builds <namestoreExt:namestoreExt> for a domain's
// TLD, when Verisign's namestore extension was negotiated (§4.3
// Namestore).
func namestoreExtension(domainName string, features *eppcore.ServerFeatures) *wire.VerisignNamestoreExt {
	if features == nil || !features.VerisignNamestore() {
		return nil
	}
	return &wire.VerisignNamestoreExt{SubProduct: namestoreSubProduct(tldOf(domainName))}
}

// namestoreExtensionForNames is [namestoreExtension] for a check or
// transfer command carrying several object names at once: namestoreExt
// tags the whole command by sub-registry, so the first name's TLD
// governs (registrars check/transfer one TLD at a time in practice).
func namestoreExtensionForNames(names []string, features *eppcore.ServerFeatures) *wire.VerisignNamestoreExt {
	if len(names) == 0 {
		return nil
	}
	return namestoreExtension(names[0], features)
}

func tldOf(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
