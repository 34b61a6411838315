// SPDX-License-Identifier: GPL-3.0-or-later

package router

// TransferStatus is the decoded form of RFC 5730 §2.3's trStatus values.
// The router holds no transfer state itself (§4.3 "the router does not
// hold state"); this mapping is applied purely at decode time, on every
// transfer response and on every transfer poll notification.
type TransferStatus string

const (
	TransferStatusUnknown         TransferStatus = ""
	TransferStatusPending         TransferStatus = "pending"
	TransferStatusClientApproved  TransferStatus = "clientApproved"
	TransferStatusClientRejected  TransferStatus = "clientRejected"
	TransferStatusClientCancelled TransferStatus = "clientCancelled"
	TransferStatusServerApproved  TransferStatus = "serverApproved"
	TransferStatusServerCancelled TransferStatus = "serverCancelled"
)

// parseTransferStatus maps a raw <trStatus> string to its [TransferStatus]
// constant, per §4.3's state table. An unrecognized value (a registry
// deviation from RFC 5730 §2.3's enumeration) is preserved verbatim
// rather than collapsed to "unknown", so callers can still see what the
// wire actually said.
func parseTransferStatus(raw string) TransferStatus {
	return TransferStatus(raw)
}
