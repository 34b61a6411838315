// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"

	"github.com/AS207960/eppcore"
	"github.com/AS207960/eppcore/wire"
)

// domainFeeCommandExtension builds the fee:<cmdName> command element for
// a create/renew/transfer command, using whichever fee extension version
// [eppcore.ServerFeatures.FeeVersion] negotiated (§4.3 Fee). It returns
// nil — an untyped nil interface, never a typed nil pointer — when no
// version was negotiated or the caller quoted no fee, so callers can pass
// the result straight to buildExtension without a typed-nil check.
func domainFeeCommandExtension(cmdName, currency string, fees []FeeCharge, features *eppcore.ServerFeatures) any {
	if features == nil || len(fees) == 0 {
		return nil
	}
	version, ok := features.FeeVersion()
	if !ok {
		return nil
	}
	ns := feeNamespaceForVersion(version)
	name := xml.Name{Space: ns, Local: cmdName}
	values := feeChargesToValues(fees)
	if isModernFee(version) {
		return &wire.FeeModernTransformCommand{XMLName: name, Currency: currency, Fee: values}
	}
	return &wire.FeeLegacyTransformCommand{XMLName: name, Currency: currency, Fee: values}
}

// decodeDomainFeeData extracts the registry's charged-fee echo from a
// transform response's decoded extension elements, returning nil if the
// response carried none (the fee extension is opt-in per command, not
// every registry echoes it on every transform).
func decodeDomainFeeData(exts []any) []FeeCharge {
	for _, ext := range exts {
		switch v := ext.(type) {
		case *wire.FeeLegacyTransformData:
			return feeValuesToCharges(v.Fee)
		case *wire.FeeModernTransformData:
			return feeValuesToCharges(v.Fee)
		}
	}
	return nil
}

// domainFeeCheckExtension builds the fee:check command element for a
// domain-check command, quoting feeCommand's expected price for every
// name being checked (spec scenario "domain::check_with_fee"). Returns
// nil when no fee version was negotiated or the caller asked for no fee
// command.
func domainFeeCheckExtension(names []string, feeCommand, currency string, features *eppcore.ServerFeatures) any {
	if features == nil || feeCommand == "" || len(names) == 0 {
		return nil
	}
	version, ok := features.FeeVersion()
	if !ok {
		return nil
	}
	ns := feeNamespaceForVersion(version)
	name := xml.Name{Space: ns, Local: "check"}
	if isModernFee(version) {
		commands := make([]wire.FeeModernCommandRef, 0, len(names))
		for range names {
			commands = append(commands, wire.FeeModernCommandRef{Name: feeCommand})
		}
		return &wire.FeeModernCheckCommand{XMLName: name, Currency: currency, Commands: commands}
	}
	objects := make([]wire.FeeLegacyObjectCheck, 0, len(names))
	for _, objName := range names {
		objects = append(objects, wire.FeeLegacyObjectCheck{
			ObjURI:  "urn:ietf:params:xml:ns:domain-1.0",
			Name:    objName,
			Command: wire.FeeLegacyCommandRef{Name: feeCommand},
		})
	}
	return &wire.FeeLegacyCheckCommand{XMLName: name, Objects: objects}
}

// decodeDomainCheckFeeData extracts per-name fee quotes from a check
// response's decoded extension elements. names is the registry's own
// echoed check result order, used to pair modern fee:command entries
// (which carry no object name) back to the name they priced.
func decodeDomainCheckFeeData(names []string, exts []any) []FeeCheckResult {
	for _, ext := range exts {
		switch v := ext.(type) {
		case *wire.FeeLegacyCheckData:
			out := make([]FeeCheckResult, 0, len(v.Objects))
			for _, o := range v.Objects {
				out = append(out, FeeCheckResult{
					Name:    o.Name,
					Command: o.Command.Name,
					Fee:     feeValuesToCharges(o.Fee),
					Class:   o.Class,
					Reason:  o.Reason,
				})
			}
			return out
		case *wire.FeeModernCheckData:
			out := make([]FeeCheckResult, 0, len(v.Commands))
			for i, c := range v.Commands {
				name := ""
				if i < len(names) {
					name = names[i]
				}
				out = append(out, FeeCheckResult{
					Name:     name,
					Command:  c.Name,
					Currency: v.Currency,
					Fee:      feeValuesToCharges(c.Fee),
					Class:    c.Class,
					Reason:   c.Reason,
				})
			}
			return out
		}
	}
	return nil
}

func feeChargesToValues(charges []FeeCharge) []wire.FeeValue {
	out := make([]wire.FeeValue, 0, len(charges))
	for _, c := range charges {
		out = append(out, wire.FeeValue{Currency: c.Currency, Value: c.Value})
	}
	return out
}

func feeValuesToCharges(values []wire.FeeValue) []FeeCharge {
	if len(values) == 0 {
		return nil
	}
	out := make([]FeeCharge, 0, len(values))
	for _, v := range values {
		out = append(out, FeeCharge{Currency: v.Currency, Value: v.Value})
	}
	return out
}
