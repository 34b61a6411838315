// SPDX-License-Identifier: GPL-3.0-or-later

// Package router translates logical [eppcore.Request] values to and from
// EPP wire envelopes ([eppcore/wire]). It is the only package that knows
// how a [eppcore.RequestKind] maps to a concrete command shape, how
// extensions are selected and applied, and how per-registry errata bend
// that mapping (§4.3).
package router

import "time"

// DomainCheckInput is [eppcore.KindDomainCheck]'s input. FeeCommand and
// Currency are optional: when FeeCommand is set and the account
// negotiated a fee extension, the check carries a fee:check element
// quoting the expected price of that command (e.g. "create", "renew")
// for every checked name.
type DomainCheckInput struct {
	Names       []string
	FeeCommand  string
	Currency    string
}

// DomainAvailability is one name's availability result.
type DomainAvailability struct {
	Name      string
	Available bool
	Reason    string
}

// DomainCheckResult is the decoded check response: per-name availability,
// plus per-name fee quotes when the command carried a fee:check element.
type DomainCheckResult struct {
	Availability []DomainAvailability
	Fee          []FeeCheckResult
}

// FeeCheckResult is one name's fee:check response entry.
type FeeCheckResult struct {
	Name     string
	Command  string
	Currency string
	Fee      []FeeCharge
	Class    string
	Reason   string
}

// DomainInfoInput is [eppcore.KindDomainInfo]'s input.
type DomainInfoInput struct {
	Name     string
	AuthInfo string
}

// DomainInfo is the decoded result of a domain-info command.
type DomainInfo struct {
	Name         string
	RoID         string
	Statuses     []string
	Registrant   string
	Contacts     map[string]string // contact type -> contact ID
	Nameservers  []string
	ClientID     string
	CreateDate   time.Time
	ExpireDate   time.Time
	UpdateDate   time.Time
	AuthInfo     string
	RGPStatuses  []string
	DSData       []DSDatum
}

// DSDatum mirrors wire.DSDatum at the router's public boundary so callers
// never need to import package wire directly.
type DSDatum struct {
	KeyTag     int
	Algorithm  int
	DigestType int
	Digest     string
}

// DomainCreateInput is [eppcore.KindDomainCreate]'s input.
type DomainCreateInput struct {
	Name        string
	Years       int
	Nameservers []string
	Registrant  string
	Contacts    map[string]string
	AuthInfo    string
	DSData      []DSDatum
	LaunchPhase string
	LaunchCode  string

	// Currency and Fee populate the negotiated fee extension's
	// fee:create command element (§4.3 Fee), when the account
	// expects the registry to charge a non-standard price. Both are
	// ignored if the registry never advertised a fee extension.
	Currency string
	Fee      []FeeCharge
}

// FeeCharge is one currency/amount pair, either quoted by the caller on
// a create/renew/transfer command or echoed back by the registry on the
// matching response, per whichever fee extension version was negotiated
// (§4.3 Fee).
type FeeCharge struct {
	Currency string
	Value    string
}

// DomainCreateResult is the decoded create response.
type DomainCreateResult struct {
	Name       string
	CreateDate time.Time
	ExpireDate time.Time
	Fee        []FeeCharge
}

// DomainUpdateInput is [eppcore.KindDomainUpdate]'s input.
type DomainUpdateInput struct {
	Name              string
	AddNameservers    []string
	RemoveNameservers []string
	AddContacts       map[string]string
	RemoveContacts    map[string]string
	AddStatuses       []string
	RemoveStatuses    []string
	NewRegistrant     string
	NewAuthInfo       string
	DSDataAdd         []DSDatum
	DSDataRemove      []DSDatum
	DSDataClearAll    bool
}

// DomainDeleteInput is [eppcore.KindDomainDelete]'s input.
type DomainDeleteInput struct {
	Name string
}

// DomainRenewInput is [eppcore.KindDomainRenew]'s input.
type DomainRenewInput struct {
	Name          string
	CurrentExpiry time.Time
	Years         int
	Currency      string
	Fee           []FeeCharge
}

// DomainRenewResult is the decoded renew response.
type DomainRenewResult struct {
	Name       string
	ExpireDate time.Time
	Fee        []FeeCharge
}

// DomainTransferInput is shared by all domain-transfer operations
// ([eppcore.KindDomainTransferQuery] through
// [eppcore.KindDomainTransferCancel]). The request's Kind selects the
// sub-command; the router does not read Op.
type DomainTransferInput struct {
	Op       string // "query", "request", "cancel", "reject", "approve"
	Name     string
	AuthInfo string
	Years    int
	Currency string
	Fee      []FeeCharge
}

// DomainTransferResult is the decoded transfer response/poll payload.
type DomainTransferResult struct {
	Name           string
	TransferStatus TransferStatus
	RequestClient  string
	RequestDate    time.Time
	ActionClient   string
	ActionDate     time.Time
	ExpireDate     time.Time
	Fee            []FeeCharge
}

// DomainRestoreInput is [eppcore.KindDomainRestore]'s input (RGP restore
// request, RFC 3915 §3.3.1).
type DomainRestoreInput struct {
	Name string
}

// DomainRestoreReportInput is [eppcore.KindDomainRestoreReport]'s input
// (RGP restore report, RFC 3915 §3.3.2).
type DomainRestoreReportInput struct {
	Name        string
	PreData     string
	PostData    string
	DeleteTime  time.Time
	RestoreTime time.Time
	Reason      string
	Statements  []string
	Other       string
}

// HostCheckInput is [eppcore.KindHostCheck]'s input.
type HostCheckInput struct {
	Names []string
}

// HostAvailability mirrors DomainAvailability for host objects.
type HostAvailability struct {
	Name      string
	Available bool
	Reason    string
}

// HostInfoInput is [eppcore.KindHostInfo]'s input.
type HostInfoInput struct {
	Name string
}

// HostInfo is the decoded result of a host-info command.
type HostInfo struct {
	Name       string
	RoID       string
	Statuses   []string
	Addrs      []string
	ClientID   string
	CreateDate time.Time
	UpdateDate time.Time
}

// HostCreateInput is [eppcore.KindHostCreate]'s input.
type HostCreateInput struct {
	Name  string
	Addrs []string
}

// HostCreateResult is the decoded create response.
type HostCreateResult struct {
	Name       string
	CreateDate time.Time
}

// HostUpdateInput is [eppcore.KindHostUpdate]'s input.
type HostUpdateInput struct {
	Name           string
	NewName        string
	AddAddrs       []string
	RemoveAddrs    []string
	AddStatuses    []string
	RemoveStatuses []string
}

// HostDeleteInput is [eppcore.KindHostDelete]'s input.
type HostDeleteInput struct {
	Name string
}

// ContactCheckInput is [eppcore.KindContactCheck]'s input.
type ContactCheckInput struct {
	IDs []string
}

// ContactAvailability mirrors DomainAvailability for contact objects.
type ContactAvailability struct {
	ID        string
	Available bool
	Reason    string
}

// PostalInfo is one postal address, present once (loc) or twice (int and
// loc) per contact.
type PostalInfo struct {
	Type        string // "int" or "loc"
	Name        string
	Org         string
	Street      []string
	City        string
	Province    string
	PostalCode  string
	CountryCode string
}

// ContactInfoInput is [eppcore.KindContactInfo]'s input.
type ContactInfoInput struct {
	ID       string
	AuthInfo string
}

// ContactInfo is the decoded result of a contact-info command.
type ContactInfo struct {
	ID         string
	RoID       string
	Statuses   []string
	PostalInfo []PostalInfo
	Voice      string
	Fax        string
	Email      string
	ClientID   string
	CreateDate time.Time
	UpdateDate time.Time
	AuthInfo   string
	Disclose   map[string]bool
}

// ContactCreateInput is [eppcore.KindContactCreate]'s input.
type ContactCreateInput struct {
	ID         string
	PostalInfo []PostalInfo
	Voice      string
	Fax        string
	Email      string
	AuthInfo   string
	Disclose   map[string]bool
}

// ContactCreateResult is the decoded create response.
type ContactCreateResult struct {
	ID         string
	CreateDate time.Time
}

// ContactUpdateInput is [eppcore.KindContactUpdate]'s input.
type ContactUpdateInput struct {
	ID             string
	AddStatuses    []string
	RemoveStatuses []string
	PostalInfo     []PostalInfo
	Voice          string
	Fax            string
	Email          string
	NewAuthInfo    string
	Disclose       map[string]bool
}

// ContactDeleteInput is [eppcore.KindContactDelete]'s input.
type ContactDeleteInput struct {
	ID string
}

// ContactTransferInput mirrors DomainTransferInput for contact objects
// (where supported; most registries only support domain transfers).
type ContactTransferInput struct {
	Op       string
	ID       string
	AuthInfo string
}

// ContactTransferResult mirrors DomainTransferResult for contact objects.
type ContactTransferResult struct {
	ID             string
	TransferStatus TransferStatus
	RequestClient  string
	RequestDate    time.Time
	ActionClient   string
	ActionDate     time.Time
}

// EmailForwardCheckInput is [eppcore.KindEmailForwardCheck]'s input.
type EmailForwardCheckInput struct {
	Names []string
}

// EmailForwardAvailability mirrors DomainAvailability for email-forward
// objects.
type EmailForwardAvailability struct {
	Name      string
	Available bool
	Reason    string
}

// EmailForwardInfoInput is [eppcore.KindEmailForwardInfo]'s input.
type EmailForwardInfoInput struct {
	Name     string
	AuthInfo string
}

// EmailForwardInfo is the decoded result of an email-forward-info
// command.
type EmailForwardInfo struct {
	Name       string
	RoID       string
	Forward    string
	Statuses   []string
	Registrant string
	Contacts   map[string]string
	ClientID   string
	CreateDate time.Time
	ExpireDate time.Time
	UpdateDate time.Time
	AuthInfo   string
}

// EmailForwardCreateInput is [eppcore.KindEmailForwardCreate]'s input.
type EmailForwardCreateInput struct {
	Name       string
	Years      int
	Forward    string
	Registrant string
	Contacts   map[string]string
	AuthInfo   string
}

// EmailForwardCreateResult is the decoded create response.
type EmailForwardCreateResult struct {
	Name       string
	CreateDate time.Time
	ExpireDate time.Time
}

// EmailForwardUpdateInput is [eppcore.KindEmailForwardUpdate]'s input.
type EmailForwardUpdateInput struct {
	Name              string
	AddStatuses       []string
	RemoveStatuses    []string
	NewForward        string
	NewRegistrant     string
	NewAuthInfo       string
}

// EmailForwardDeleteInput is [eppcore.KindEmailForwardDelete]'s input.
type EmailForwardDeleteInput struct {
	Name string
}

// EmailForwardRenewInput is [eppcore.KindEmailForwardRenew]'s input.
type EmailForwardRenewInput struct {
	Name          string
	CurrentExpiry time.Time
	Years         int
}

// EmailForwardRenewResult is the decoded renew response.
type EmailForwardRenewResult struct {
	Name       string
	ExpireDate time.Time
}

// PollAckInput is [eppcore.KindPollAck]'s input.
type PollAckInput struct {
	MessageID string
}

// PollAckResult confirms the server dequeued the acknowledged message.
type PollAckResult struct {
	MessageID    string
	MessageCount int
}

// EuridHitPointsResult decodes EURid's registrar hit-points query.
type EuridHitPointsResult struct {
	HitPoints    int
	MaxHitPoints int
	Blocked      bool
}

// EuridDNSQualityResult decodes EURid's per-domain DNS quality score.
type EuridDNSQualityResult struct {
	Score    int
	Comments []string
}

// EuridRegistrationLimitResult decodes EURid's same-day registration
// allowance query.
type EuridRegistrationLimitResult struct {
	Remaining int
	Limit     int
}

// EuridDNSQualityInput is [eppcore.KindEuridDNSQuality]'s input: the
// dnsQuality extension's info command is scoped to one domain name.
type EuridDNSQualityInput struct {
	Name string
}

// RawBalanceQueryInput is [eppcore.KindRawBalanceQuery]'s input. The
// registry-specific balance/info extension schema isn't standardized
// across registries, so callers supply the already-serialized <info>
// command body themselves.
type RawBalanceQueryInput struct {
	Body []byte
}

// RawBalanceQueryResult is the undecoded <resData>/<extension> payload
// from a raw balance query, left for the caller to parse against
// whichever registry-specific schema it expects.
type RawBalanceQueryResult struct {
	ResultData []byte
	Extension  []byte
}
