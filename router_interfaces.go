// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import "github.com/AS207960/eppcore/wire"

// RequestEncoder turns a logical [*Request] into the wire envelope to
// send, given the negotiated [*ServerFeatures] and the account's erratum
// and namestore configuration. Implemented by [eppcore/router.Router];
// kept as an interface here so the session/dispatcher machinery never
// imports package router (which itself imports this package).
type RequestEncoder interface {
	Encode(req *Request, clTRID string, account *AccountConfig, features *ServerFeatures) (*wire.Envelope, error)
}

// ResponseDecoder turns a decoded wire response back into the logical
// result a [*Request]'s caller expects, or decodes an unsolicited poll
// message into a [PollData].
type ResponseDecoder interface {
	Decode(kind RequestKind, resp *wire.Response, features *ServerFeatures) (any, error)
	DecodePoll(resp *wire.Response, features *ServerFeatures) (PollData, error)
}
