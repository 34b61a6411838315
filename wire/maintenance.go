// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import "encoding/xml"

// MaintenanceNamespace is the maintenance-1.0 extension some registries
// (CentralNic, Nominet) use to advertise scheduled downtime via poll.
const MaintenanceNamespace = "urn:ietf:params:xml:ns:epp:maintenance-1.0"

func init() {
	RegisterExtension(ExtensionKey{MaintenanceNamespace, "pollData"}, func() any { return &MaintenancePollData{} })
}

// MaintenancePollData is the maintenance notice delivered via poll.
type MaintenancePollData struct {
	XMLName     xml.Name `xml:"urn:ietf:params:xml:ns:epp:maintenance-1.0 pollData"`
	ID          string   `xml:"id"`
	Intervals   []MaintenanceInterval `xml:"interval"`
	Systems     []string `xml:"system"`
	Reason      string   `xml:"reason,omitempty"`
	Detail      string   `xml:"detail,omitempty"`
	Intensity   string   `xml:"intensity,omitempty"`
	Polled      bool     `xml:"pollType,attr,omitempty"`
}

// MaintenanceInterval is one <interval> start/end pair.
type MaintenanceInterval struct {
	Start string `xml:"start"`
	End   string `xml:"end"`
}
