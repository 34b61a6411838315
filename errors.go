// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import "fmt"

// ErrKind classifies why an EPP operation failed.
//
// See the package-level design for the propagation policy: Transport and
// Protocol errors tear the session down; Server errors are surfaced to the
// one caller that issued the command; ClientValidation and Unsupported
// never reach the socket.
type ErrKind int

const (
	// ErrKindTransport covers TCP/TLS failures, framing violations, and
	// truncated frames. Fatal to the session.
	ErrKindTransport ErrKind = iota

	// ErrKindProtocol covers an unexpected root element, an unknown
	// namespace when one is required, or a schema violation. Fatal to
	// the session.
	ErrKindProtocol

	// ErrKindServer covers any EPP 2xxx result code. Surfaced to the
	// caller; never tears the session down.
	ErrKindServer

	// ErrKindClientValidation covers a pre-send validation failure
	// (§4.3). Never reaches the socket.
	ErrKindClientValidation

	// ErrKindUnsupported covers a request that needs a feature the
	// registry did not advertise. Never reaches the socket.
	ErrKindUnsupported

	// ErrKindInternal marks a programmer error; should never appear in
	// production.
	ErrKindInternal
)

// String implements [fmt.Stringer].
func (k ErrKind) String() string {
	switch k {
	case ErrKindTransport:
		return "transport"
	case ErrKindProtocol:
		return "protocol"
	case ErrKindServer:
		return "server"
	case ErrKindClientValidation:
		return "client_validation"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the sum error type returned by every fallible operation in this
// package and in [eppcore/router] and [eppcore/wire].
//
// Callers distinguish kinds via [Error.Kind] or [errors.As]. Server errors
// carry the registry's numeric result code, its human message, and any
// extValue elements it attached; ClientValidation errors carry only a
// detail string; Transport errors carry the classified error class.
type Error struct {
	// Kind identifies the error category.
	Kind ErrKind

	// Code is the EPP result code, valid when Kind is ErrKindServer.
	Code ResultCode

	// Message is a human-readable description: the registry's <msg> for
	// server errors, or a description of the violated rule otherwise.
	Message string

	// ExtraValues holds any <extValue> elements the registry attached to
	// a server-error result, verbatim.
	ExtraValues []string

	// ErrClass is the classified transport error string (e.g.
	// "ETIMEDOUT"), valid when Kind is ErrKindTransport.
	ErrClass string

	// Cause is the underlying error, if any (e.g. the *net.OpError).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrKindServer:
		return fmt.Sprintf("epp: server error %d: %s", e.Code, e.Message)
	case ErrKindTransport:
		if e.Cause != nil {
			return fmt.Sprintf("epp: transport error (%s): %v", e.ErrClass, e.Cause)
		}
		return fmt.Sprintf("epp: transport error (%s): %s", e.ErrClass, e.Message)
	case ErrKindProtocol:
		return fmt.Sprintf("epp: protocol error: %s", e.Message)
	case ErrKindClientValidation:
		return fmt.Sprintf("epp: client validation failed: %s", e.Message)
	case ErrKindUnsupported:
		return fmt.Sprintf("epp: unsupported: %s", e.Message)
	default:
		return fmt.Sprintf("epp: internal error: %s", e.Message)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewServerError builds an [*Error] of kind [ErrKindServer].
func NewServerError(code ResultCode, message string, extraValues []string) *Error {
	return &Error{Kind: ErrKindServer, Code: code, Message: message, ExtraValues: extraValues}
}

// NewClientValidationError builds an [*Error] of kind [ErrKindClientValidation].
func NewClientValidationError(detail string) *Error {
	return &Error{Kind: ErrKindClientValidation, Message: detail}
}

// NewUnsupportedError builds an [*Error] of kind [ErrKindUnsupported].
func NewUnsupportedError(detail string) *Error {
	return &Error{Kind: ErrKindUnsupported, Message: detail}
}

// NewTransportError builds an [*Error] of kind [ErrKindTransport].
func NewTransportError(errClass string, cause error) *Error {
	return &Error{Kind: ErrKindTransport, ErrClass: errClass, Cause: cause}
}

// NewProtocolError builds an [*Error] of kind [ErrKindProtocol].
func NewProtocolError(detail string) *Error {
	return &Error{Kind: ErrKindProtocol, Message: detail}
}

// NewInternalError builds an [*Error] of kind [ErrKindInternal].
func NewInternalError(detail string) *Error {
	return &Error{Kind: ErrKindInternal, Message: detail}
}
