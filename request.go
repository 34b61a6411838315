// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import "context"

// RequestKind tags the ~40 logical operation variants a caller may issue
// (§3 LogicalRequest). Each kind pairs with one [RequestEncoder]/
// [ResponseDecoder] case and one input/output shape, both declared in
// package router.
type RequestKind int

const (
	KindDomainCheck RequestKind = iota
	KindDomainInfo
	KindDomainCreate
	KindDomainUpdate
	KindDomainDelete
	KindDomainRenew
	KindDomainTransferQuery
	KindDomainTransferRequest
	KindDomainTransferAccept
	KindDomainTransferReject
	KindDomainTransferCancel
	KindDomainRestore
	KindDomainRestoreReport

	KindHostCheck
	KindHostInfo
	KindHostCreate
	KindHostUpdate
	KindHostDelete

	KindContactCheck
	KindContactInfo
	KindContactCreate
	KindContactUpdate
	KindContactDelete
	KindContactTransferQuery
	KindContactTransferRequest
	KindContactTransferAccept
	KindContactTransferReject
	KindContactTransferCancel

	KindEmailForwardCheck
	KindEmailForwardInfo
	KindEmailForwardCreate
	KindEmailForwardUpdate
	KindEmailForwardDelete
	KindEmailForwardRenew

	KindPollRequest
	KindPollAck

	KindHello
	KindLogout

	KindEuridHitPoints
	KindEuridDNSQuality
	KindEuridRegistrationLimit

	KindRawBalanceQuery
)

// requestKindNames backs RequestKind.String for logging; it is never used
// to dispatch behavior.
var requestKindNames = map[RequestKind]string{
	KindDomainCheck:             "domain.check",
	KindDomainInfo:              "domain.info",
	KindDomainCreate:            "domain.create",
	KindDomainUpdate:            "domain.update",
	KindDomainDelete:            "domain.delete",
	KindDomainRenew:             "domain.renew",
	KindDomainTransferQuery:     "domain.transfer.query",
	KindDomainTransferRequest:   "domain.transfer.request",
	KindDomainTransferAccept:    "domain.transfer.accept",
	KindDomainTransferReject:    "domain.transfer.reject",
	KindDomainTransferCancel:    "domain.transfer.cancel",
	KindDomainRestore:           "domain.restore",
	KindDomainRestoreReport:     "domain.restore_report",
	KindHostCheck:               "host.check",
	KindHostInfo:                "host.info",
	KindHostCreate:              "host.create",
	KindHostUpdate:              "host.update",
	KindHostDelete:              "host.delete",
	KindContactCheck:            "contact.check",
	KindContactInfo:             "contact.info",
	KindContactCreate:           "contact.create",
	KindContactUpdate:           "contact.update",
	KindContactDelete:           "contact.delete",
	KindContactTransferQuery:    "contact.transfer.query",
	KindContactTransferRequest:  "contact.transfer.request",
	KindContactTransferAccept:   "contact.transfer.accept",
	KindContactTransferReject:   "contact.transfer.reject",
	KindContactTransferCancel:   "contact.transfer.cancel",
	KindEmailForwardCheck:       "email_forward.check",
	KindEmailForwardInfo:        "email_forward.info",
	KindEmailForwardCreate:      "email_forward.create",
	KindEmailForwardUpdate:      "email_forward.update",
	KindEmailForwardDelete:      "email_forward.delete",
	KindEmailForwardRenew:       "email_forward.renew",
	KindPollRequest:             "poll.request",
	KindPollAck:                 "poll.ack",
	KindHello:                   "hello",
	KindLogout:                  "logout",
	KindEuridHitPoints:          "eurid.hit_points",
	KindEuridDNSQuality:         "eurid.dns_quality",
	KindEuridRegistrationLimit:  "eurid.registration_limit",
	KindRawBalanceQuery:         "raw.balance",
}

// String implements [fmt.Stringer].
func (k RequestKind) String() string {
	if name, ok := requestKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Result is what a [Request]'s reply channel carries: exactly one of Value
// (on success) or Err (on failure), never both.
type Result struct {
	Value any
	Err   error
}

// Request is a [RequestKind] tagged variant carrying typed Input (one of
// the input structs declared in package router) and a one-shot reply
// channel (§3 LogicalRequest, §4.5).
//
// Requests are immutable once enqueued: the dispatcher and router only
// read them.
type Request struct {
	Kind  RequestKind
	Input any
	Reply chan Result
}

// NewRequest builds a [*Request] with a buffered, one-shot reply channel.
func NewRequest(kind RequestKind, input any) *Request {
	return &Request{Kind: kind, Input: input, Reply: make(chan Result, 1)}
}

// Await blocks until the request's reply arrives or ctx is done. Dropping
// the reply channel without calling Await does not cancel the in-flight
// command (§4.5 Cancellation): the dispatcher still reads, decodes, and
// discards the response.
func (r *Request) Await(ctx context.Context) (any, error) {
	select {
	case res := <-r.Reply:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fulfill completes the request's reply channel exactly once. The
// dispatcher calls this for every request it pops, whether the reply came
// from an early router response or from a decoded wire response.
func (r *Request) fulfill(value any, err error) {
	select {
	case r.Reply <- Result{Value: value, Err: err}:
	default:
		// Reply channel already fulfilled or the caller never reads it;
		// per §4.5 this is not an error, the dispatcher must not block.
	}
}
