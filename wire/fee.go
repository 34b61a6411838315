// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// Fee extension namespaces. 0.5 through 0.9 share one wire shape
// (fee:object/fee:name keyed by registered object, fee:period separate
// from fee:command); 0.11 and 1.0 share a second shape (fee:command
// carries a name attribute directly, no separate fee:object wrapper).
// Donuts' pre-standard "fee" namespace mirrors the 0.9 shape.
const (
	FeeNamespace05    = "urn:ietf:params:xml:ns:fee-0.5"
	FeeNamespace07    = "urn:ietf:params:xml:ns:fee-0.7"
	FeeNamespace08    = "urn:ietf:params:xml:ns:fee-0.8"
	FeeNamespace09    = "urn:ietf:params:xml:ns:fee-0.9"
	FeeNamespace011   = "urn:ietf:params:xml:ns:epp:fee-0.11"
	FeeNamespace10    = "urn:ietf:params:xml:ns:epp:fee-1.0"
	FeeNamespaceDonuts = "urn:ietf:params:xml:ns:fee"
)

func init() {
	for _, ns := range []string{FeeNamespace05, FeeNamespace07, FeeNamespace08, FeeNamespace09, FeeNamespaceDonuts} {
		ns := ns
		RegisterExtension(ExtensionKey{ns, "chkData"}, func() any { return &FeeLegacyCheckData{} })
		RegisterExtension(ExtensionKey{ns, "creData"}, func() any { return &FeeLegacyTransformData{} })
		RegisterExtension(ExtensionKey{ns, "renData"}, func() any { return &FeeLegacyTransformData{} })
		RegisterExtension(ExtensionKey{ns, "trnData"}, func() any { return &FeeLegacyTransformData{} })
		RegisterExtension(ExtensionKey{ns, "updData"}, func() any { return &FeeLegacyTransformData{} })
	}
	for _, ns := range []string{FeeNamespace011, FeeNamespace10} {
		ns := ns
		RegisterExtension(ExtensionKey{ns, "chkData"}, func() any { return &FeeModernCheckData{} })
		RegisterExtension(ExtensionKey{ns, "creData"}, func() any { return &FeeModernTransformData{} })
		RegisterExtension(ExtensionKey{ns, "renData"}, func() any { return &FeeModernTransformData{} })
		RegisterExtension(ExtensionKey{ns, "trnData"}, func() any { return &FeeModernTransformData{} })
		RegisterExtension(ExtensionKey{ns, "updData"}, func() any { return &FeeModernTransformData{} })
	}
}

// FeeValue is a decimal fee amount; carried as a string to avoid
// float-rounding surprises on the wire, parsed by the router only when
// the caller needs an arithmetic value.
type FeeValue struct {
	Currency string `xml:"currency,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// FeeLegacyCheckCommand is the 0.5-0.9/Donuts <fee:check> command
// extension: one <fee:object> block per checked domain.
type FeeLegacyCheckCommand struct {
	XMLName xml.Name            `xml:"check"`
	Objects []FeeLegacyObjectCheck `xml:"object"`
}

// FeeLegacyObjectCheck is one <fee:object> entry. ObjURI identifies the
// object type being checked (e.g. urn:ietf:params:xml:ns:domain-1.0);
// required by registries that support fee-checking more than one object
// type through the same extension.
type FeeLegacyObjectCheck struct {
	ObjURI  string     `xml:"objURI,attr,omitempty"`
	Name    string     `xml:"name"`
	Period  *EPPPeriod `xml:"period"`
	Command FeeLegacyCommandRef `xml:"command"`
}

// FeeLegacyCommandRef is <fee:command name="create" .../>.
type FeeLegacyCommandRef struct {
	Name    string `xml:"name,attr"`
	Phase   string `xml:"phase,attr,omitempty"`
	SubPhase string `xml:"subphase,attr,omitempty"`
}

// FeeLegacyCheckData is the 0.5-0.9/Donuts <fee:chkData> response.
type FeeLegacyCheckData struct {
	XMLName xml.Name              `xml:"chkData"`
	Objects []FeeLegacyObjectCheckResult `xml:"cd"`
}

// FeeLegacyObjectCheckResult is one <fee:cd> response entry.
type FeeLegacyObjectCheckResult struct {
	Name      string      `xml:"object>name"`
	Class     string      `xml:"class,omitempty"`
	Command   FeeLegacyCommandRef `xml:"command"`
	Period    *EPPPeriod  `xml:"period"`
	Fee       []FeeValue  `xml:"fee"`
	Reason    string      `xml:"reason,omitempty"`
}

// FeeLegacyTransformCommand attaches to create/renew/transfer/update
// commands for fee versions 0.5-0.9/Donuts.
type FeeLegacyTransformCommand struct {
	XMLName xml.Name   `xml:""`
	Currency string    `xml:"currency,omitempty"`
	Fee      []FeeValue `xml:"fee"`
}

// FeeLegacyTransformData is the response counterpart, echoed back by the
// registry to confirm the charged fee.
type FeeLegacyTransformData struct {
	XMLName  xml.Name   `xml:""`
	Currency string     `xml:"currency,omitempty"`
	Fee      []FeeValue `xml:"fee"`
	Balance  string     `xml:"balance,omitempty"`
	CreditLimit string  `xml:"creditLimit,omitempty"`
}

// FeeModernCheckCommand is the 0.11/1.0 <fee:check> command extension:
// each fee:command's name attribute is the priced command (e.g. "create");
// there is no separate fee:object wrapper and no object name.
type FeeModernCheckCommand struct {
	XMLName  xml.Name `xml:"check"`
	Currency string   `xml:"currency,omitempty"`
	Commands []FeeModernCommandRef `xml:"command"`
}

// FeeModernCommandRef is <fee:command name="create"><fee:period .../></fee:command>.
type FeeModernCommandRef struct {
	Name   string     `xml:"name,attr"`
	Period *EPPPeriod `xml:"period"`
}

// FeeModernCheckData is the 0.11/1.0 <fee:chkData> response.
type FeeModernCheckData struct {
	XMLName  xml.Name `xml:"chkData"`
	Currency string   `xml:"currency,omitempty"`
	Commands []FeeModernCommandResult `xml:"command"`
}

// FeeModernCommandResult is one <fee:command> response entry.
type FeeModernCommandResult struct {
	Name      string     `xml:"name,attr"`
	Standard  bool       `xml:"standard,attr,omitempty"`
	Period    *EPPPeriod `xml:"period"`
	Fee       []FeeValue `xml:"fee"`
	Class     string     `xml:"class,omitempty"`
	Reason    string     `xml:"reason,omitempty"`
}

// FeeModernTransformCommand attaches to create/renew/transfer/update
// commands for fee versions 0.11/1.0.
type FeeModernTransformCommand struct {
	XMLName  xml.Name   `xml:""`
	Currency string     `xml:"currency,omitempty"`
	Fee      []FeeValue `xml:"fee"`
}

// FeeModernTransformData mirrors FeeLegacyTransformData for 0.11/1.0.
type FeeModernTransformData struct {
	XMLName     xml.Name   `xml:""`
	Currency    string     `xml:"currency,omitempty"`
	Fee         []FeeValue `xml:"fee"`
	Balance     string     `xml:"balance,omitempty"`
	CreditLimit string     `xml:"creditLimit,omitempty"`
}

// EPPPeriod is the shared domain-1.0 <period unit="y">N</period> shape
// reused by the fee extension's own period echo.
type EPPPeriod struct {
	Unit  string `xml:"unit,attr"`
	Value int    `xml:",chardata"`
}
