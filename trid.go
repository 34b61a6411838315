// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"crypto/rand"
	"math/big"

	"github.com/bassosimone/runtimex"
)

// clientTRIDAlphabet is the base-62 alphabet used for client transaction
// IDs. EPP client-TRIDs must be 3-64 printable, non-whitespace characters
// (RFC 5730 §2.8); base-62 keeps the nonce compact and unambiguous across
// registries that reject certain punctuation.
const clientTRIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// clientTRIDLength is the length of the generated nonce portion. Combined
// with a short fixed prefix this stays well under the 64-character ceiling
// while giving ample entropy to keep client-TRIDs unique for the lifetime
// of a session.
const clientTRIDLength = 16

// NewClientTRID returns a new client transaction ID of the form
// "eppcore-<16 base62 chars>".
//
// This function panics if the system random number generator fails, which
// should only happen under extraordinary circumstances (mirrors the
// panic-on-entropy-failure convention of [NewSpanID]).
func NewClientTRID() string {
	buf := make([]byte, clientTRIDLength)
	alphabetLen := big.NewInt(int64(len(clientTRIDAlphabet)))
	for i := range buf {
		n := runtimex.PanicOnError1(rand.Int(rand.Reader, alphabetLen))
		buf[i] = clientTRIDAlphabet[n.Int64()]
	}
	return "eppcore-" + string(buf)
}
