// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import "strconv"

// ResultCode is an EPP <result code="..."/> value (RFC 5730 §3).
type ResultCode int

// Well-known result codes (§6). Values not listed here still round-trip
// through [ResultCode] as themselves; use [ResultCode.String] for display.
const (
	Success                           ResultCode = 1000
	SuccessActionPending               ResultCode = 1001
	SuccessNoMessages                  ResultCode = 1300
	SuccessAckToDequeue                ResultCode = 1301
	SuccessEndingSession               ResultCode = 1500
	CommandSyntaxError                 ResultCode = 2001
	CommandUseError                    ResultCode = 2002
	RequiredParameterMissing           ResultCode = 2003
	ParameterValueRangeError           ResultCode = 2004
	ParameterValueSyntaxError          ResultCode = 2005
	UnimplementedProtocolVersion       ResultCode = 2100
	UnimplementedCommand               ResultCode = 2101
	UnimplementedOption                ResultCode = 2102
	UnimplementedExtension             ResultCode = 2103
	BillingFailure                     ResultCode = 2104
	ObjectNotEligibleForRenewal        ResultCode = 2105
	ObjectNotEligibleForTransfer       ResultCode = 2106
	AuthenticationError                ResultCode = 2200
	AuthorizationError                 ResultCode = 2201
	InvalidAuthInfo                    ResultCode = 2202
	ObjectPendingTransfer              ResultCode = 2300
	ObjectNotPendingTransfer           ResultCode = 2301
	ObjectExists                       ResultCode = 2302
	ObjectDoesNotExist                 ResultCode = 2303
	ObjectStatusProhibitsOperation     ResultCode = 2304
	ObjectAssociationProhibitsOperation ResultCode = 2305
	ParameterValuePolicyError          ResultCode = 2306
	UnimplementedObjectService         ResultCode = 2307
	DataManagementPolicyViolation      ResultCode = 2308
	CommandFailed                      ResultCode = 2400
	CommandFailedClosing               ResultCode = 2500
	AuthenticationErrorClosing         ResultCode = 2501
	SessionLimitExceededClosing        ResultCode = 2502
)

// Success reports whether the code indicates a completed-or-pending
// success (1xxx), as opposed to a server error (2xxx).
func (c ResultCode) Success() bool {
	return c >= 1000 && c < 2000
}

// String renders the code as its decimal digits, matching the wire form.
func (c ResultCode) String() string {
	return strconv.Itoa(int(c))
}
