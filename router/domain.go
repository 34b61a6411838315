// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/AS207960/eppcore/wire"
)

func encodeDomainCheck(input DomainCheckInput) (*wire.RawElement, error) {
	for _, name := range input.Names {
		if err := ValidateDomainName(name); err != nil {
			return nil, err
		}
	}
	raw, err := xml.Marshal(&wire.DomainCheck{Names: input.Names})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeDomainCheckData(raw *wire.RawElement, exts []any) (*DomainCheckResult, error) {
	var data wire.DomainCheckData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(data.Results))
	avail := make([]DomainAvailability, 0, len(data.Results))
	for _, r := range data.Results {
		names = append(names, r.Name)
		avail = append(avail, DomainAvailability{Name: r.Name, Available: r.Avail, Reason: r.Reason})
	}
	return &DomainCheckResult{
		Availability: avail,
		Fee:          decodeDomainCheckFeeData(names, exts),
	}, nil
}

func encodeDomainInfo(input DomainInfoInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	info := &wire.DomainInfo{Name: input.Name}
	if input.AuthInfo != "" {
		info.AuthInfo = &wire.DomainAuthInfo{Password: input.AuthInfo}
	}
	raw, err := xml.Marshal(info)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeDomainInfoData(raw *wire.RawElement, exts []any) (*DomainInfo, error) {
	var data wire.DomainInfoData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}

	contacts := make(map[string]string, len(data.Contacts))
	for _, c := range data.Contacts {
		contacts[c.Type] = c.ID
	}
	nameservers := make([]string, 0, len(data.Nameservers))
	for _, ns := range data.Nameservers {
		nameservers = append(nameservers, ns.Name)
	}
	statuses := make([]string, 0, len(data.Status))
	for _, s := range data.Status {
		statuses = append(statuses, s.Status)
	}

	info := &DomainInfo{
		Name:        data.Name,
		RoID:        data.RoID,
		Statuses:    statuses,
		Registrant:  data.Registrant,
		Contacts:    contacts,
		Nameservers: nameservers,
		ClientID:    data.ClientID,
		CreateDate:  parseEPPTime(data.CreateDate),
		ExpireDate:  parseEPPTime(data.ExpireDate),
		UpdateDate:  parseEPPTime(data.UpdateDate),
	}
	if data.AuthInfo != nil {
		info.AuthInfo = data.AuthInfo.Password
	}

	for _, ext := range exts {
		switch v := ext.(type) {
		case *wire.RGPInfData:
			for _, s := range v.RGPStatus {
				info.RGPStatuses = append(info.RGPStatuses, s.Status)
			}
		case *wire.SecDNSInfData:
			for _, ds := range v.DSData {
				info.DSData = append(info.DSData, DSDatum{
					KeyTag: ds.KeyTag, Algorithm: ds.Algorithm,
					DigestType: ds.DigestType, Digest: ds.Digest,
				})
			}
		}
	}

	return info, nil
}

func encodeDomainCreate(input DomainCreateInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	if input.AuthInfo != "" {
		if err := ValidatePassword(input.AuthInfo); err != nil {
			return nil, err
		}
	}

	create := &wire.DomainCreate{
		Name:       input.Name,
		Period:     &wire.EPPPeriod{Unit: "y", Value: years(input.Years)},
		Registrant: input.Registrant,
		AuthInfo:   wire.DomainAuthInfo{Password: input.AuthInfo},
	}
	for _, ns := range input.Nameservers {
		create.Nameservers = append(create.Nameservers, wire.DomainNameserverRef{Name: ns})
	}
	for typ, id := range input.Contacts {
		create.Contacts = append(create.Contacts, wire.DomainContact{Type: typ, ID: id})
	}

	raw, err := xml.Marshal(create)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeDomainCreateData(raw *wire.RawElement, exts []any) (*DomainCreateResult, error) {
	var data wire.DomainCreateData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &DomainCreateResult{
		Name:       data.Name,
		CreateDate: parseEPPTime(data.CreateDate),
		ExpireDate: parseEPPTime(data.ExpireDate),
		Fee:        decodeDomainFeeData(exts),
	}, nil
}

func encodeDomainUpdate(input DomainUpdateInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}

	update := &wire.DomainUpdate{Name: input.Name}
	if len(input.AddNameservers) > 0 || len(input.AddContacts) > 0 || len(input.AddStatuses) > 0 {
		update.Add = &wire.DomainUpdateAddRem{}
		for _, ns := range input.AddNameservers {
			update.Add.Nameservers = append(update.Add.Nameservers, wire.DomainNameserverRef{Name: ns})
		}
		for typ, id := range input.AddContacts {
			update.Add.Contacts = append(update.Add.Contacts, wire.DomainContact{Type: typ, ID: id})
		}
		for _, s := range input.AddStatuses {
			update.Add.Status = append(update.Add.Status, wire.DomainStatus{Status: s})
		}
	}
	if len(input.RemoveNameservers) > 0 || len(input.RemoveContacts) > 0 || len(input.RemoveStatuses) > 0 {
		update.Remove = &wire.DomainUpdateAddRem{}
		for _, ns := range input.RemoveNameservers {
			update.Remove.Nameservers = append(update.Remove.Nameservers, wire.DomainNameserverRef{Name: ns})
		}
		for typ, id := range input.RemoveContacts {
			update.Remove.Contacts = append(update.Remove.Contacts, wire.DomainContact{Type: typ, ID: id})
		}
		for _, s := range input.RemoveStatuses {
			update.Remove.Status = append(update.Remove.Status, wire.DomainStatus{Status: s})
		}
	}
	if input.NewRegistrant != "" || input.NewAuthInfo != "" {
		update.Change = &wire.DomainUpdateChange{Registrant: input.NewRegistrant}
		if input.NewAuthInfo != "" {
			update.Change.AuthInfo = &wire.DomainAuthInfo{Password: input.NewAuthInfo}
		}
	}

	raw, err := xml.Marshal(update)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func encodeDomainDelete(input DomainDeleteInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	raw, err := xml.Marshal(&wire.DomainDelete{Name: input.Name})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func encodeDomainRenew(input DomainRenewInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	renew := &wire.DomainRenew{
		Name:          input.Name,
		CurrentExpiry: input.CurrentExpiry.Format("2006-01-02"),
		Period:        &wire.EPPPeriod{Unit: "y", Value: years(input.Years)},
	}
	raw, err := xml.Marshal(renew)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeDomainRenewData(raw *wire.RawElement, exts []any) (*DomainRenewResult, error) {
	var data wire.DomainRenewData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &DomainRenewResult{
		Name:       data.Name,
		ExpireDate: parseEPPTime(data.ExpireDate),
		Fee:        decodeDomainFeeData(exts),
	}, nil
}

func encodeDomainTransfer(input DomainTransferInput) (*wire.DomainTransfer, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	transfer := &wire.DomainTransfer{Name: input.Name}
	if input.AuthInfo != "" {
		transfer.AuthInfo = &wire.DomainAuthInfo{Password: input.AuthInfo}
	}
	if input.Years > 0 {
		transfer.Period = &wire.EPPPeriod{Unit: "y", Value: input.Years}
	}
	return transfer, nil
}

func decodeDomainTransferData(raw *wire.RawElement, exts []any) (*DomainTransferResult, error) {
	var data wire.DomainTransferData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &DomainTransferResult{
		Name:           data.Name,
		TransferStatus: parseTransferStatus(data.TransferStatus),
		RequestClient:  data.RequestClient,
		RequestDate:    parseEPPTime(data.RequestDate),
		ActionClient:   data.ActionClient,
		ActionDate:     parseEPPTime(data.ActionDate),
		ExpireDate:     parseEPPTime(data.ExpireDate),
		Fee:            decodeDomainFeeData(exts),
	}, nil
}

// encodeDomainRestoreUpdate builds the bare <domain:update> body RFC 3915
// §3.3 requires alongside the <rgp:update> extension: an empty update,
// the restore request itself lives entirely in the extension.
func encodeDomainRestoreUpdate(name string) (*wire.RawElement, error) {
	raw, err := xml.Marshal(&wire.DomainUpdate{Name: name})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func encodeDomainRestoreExtension() *wire.RGPUpdate {
	return &wire.RGPUpdate{Restore: wire.RGPRestore{Op: "request"}}
}

// encodeDomainRestoreReportExtension builds the <rgp:update> restore
// report; under the "pir" erratum it drops the <other> element PIR never
// populates (§4.3).
func encodeDomainRestoreReportExtension(input DomainRestoreReportInput, erratum string) *wire.RGPUpdate {
	report := &wire.RGPRestoreReport{
		PreData:     input.PreData,
		PostData:    input.PostData,
		DeleteTime:  input.DeleteTime.Format(time.RFC3339),
		RestoreTime: input.RestoreTime.Format(time.RFC3339),
		Reason:      input.Reason,
		Statement:   input.Statements,
	}
	if !pirUsesLegacyRGP(erratum) {
		report.Other = input.Other
	}
	return &wire.RGPUpdate{Restore: wire.RGPRestore{Op: "report", Report: report}}
}

func years(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func parseEPPTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func unmarshalRaw(raw *wire.RawElement, v any) error {
	if raw == nil {
		return fmt.Errorf("router: expected <resData>, got none")
	}
	return xml.Unmarshal(raw.Inner, v)
}
