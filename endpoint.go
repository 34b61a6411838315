// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

// NewEndpointFunc returns a [Func] that always returns the given "host:port"
// address.
//
// This is a convenience wrapper around [ConstFunc] for the common case of
// injecting a registry endpoint into a connect pipeline.
func NewEndpointFunc(address string) Func[Unit, string] {
	return ConstFunc(address)
}
