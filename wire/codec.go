// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import (
	"encoding/xml"
	"fmt"
)

// xmlProlog is prepended to every outgoing frame; RFC 5730 requires a
// UTF-8 XML declaration.
const xmlProlog = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"

// Encode marshals env and prepends the XML declaration, producing the
// exact bytes to hand to [FrameConn.WriteFrame].
func Encode(env *Envelope) ([]byte, error) {
	body, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("wire: encoding envelope: %w", err)
	}
	out := make([]byte, 0, len(xmlProlog)+len(body))
	out = append(out, xmlProlog...)
	out = append(out, body...)
	return out, nil
}

// Decode unmarshals a frame payload into an [*Envelope].
func Decode(payload []byte) (*Envelope, error) {
	var env Envelope
	if err := xml.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("wire: decoding envelope: %w", err)
	}
	return &env, nil
}

// NewLoginCommand builds the <command><login> envelope for RFC 5730
// §2.9.1.1.
func NewLoginCommand(clientID, password, newPassword, version, language string,
	objectURIs, extURIs []string, clTRID string) *Envelope {

	login := &LoginCommand{
		ClientID:    clientID,
		Password:    password,
		NewPassword: newPassword,
	}
	login.Options.Version = version
	login.Options.Language = language
	login.ServiceMenu.ObjectURIs = objectURIs
	login.ServiceMenu.Extensions.ExtURIs = extURIs

	return &Envelope{Command: &Command{Login: login, ClientTRID: clTRID}}
}

// NewLogoutCommand builds the <command><logout> envelope.
func NewLogoutCommand(clTRID string) *Envelope {
	return &Envelope{Command: &Command{Logout: &struct{}{}, ClientTRID: clTRID}}
}

// NewHelloEnvelope builds the bare <hello> envelope used for keep-alives.
func NewHelloEnvelope() *Envelope {
	return &Envelope{Hello: &struct{}{}}
}

// NewPollRequestCommand builds <command><poll op="req">.
func NewPollRequestCommand(clTRID string) *Envelope {
	return &Envelope{Command: &Command{Poll: &PollCommand{Op: "req"}, ClientTRID: clTRID}}
}

// NewPollAckCommand builds <command><poll op="ack" msgID="...">.
func NewPollAckCommand(messageID, clTRID string) *Envelope {
	return &Envelope{Command: &Command{
		Poll:       &PollCommand{Op: "ack", MessageID: messageID},
		ClientTRID: clTRID,
	}}
}

// FirstResult returns the response's first <result>, or a zero [Result]
// and false if the response carried none (malformed per RFC 5730, but the
// caller should not panic on a misbehaving server).
func (r *Response) FirstResult() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	return r.Results[0], true
}

// Success reports whether every <result> in the response indicates
// success (code in [1000, 2000)).
func (r *Response) Success() bool {
	if len(r.Results) == 0 {
		return false
	}
	for _, res := range r.Results {
		if res.Code < 1000 || res.Code >= 2000 {
			return false
		}
	}
	return true
}
