// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"

	"github.com/AS207960/eppcore/wire"
)

func toWirePostalInfo(p PostalInfo) wire.ContactPostalInfo {
	return wire.ContactPostalInfo{
		Type: p.Type,
		Name: p.Name,
		Org:  p.Org,
		Addr: wire.ContactAddress{
			Street:      p.Street,
			City:        p.City,
			Province:    p.Province,
			PostalCode:  p.PostalCode,
			CountryCode: p.CountryCode,
		},
	}
}

func fromWirePostalInfo(p wire.ContactPostalInfo) PostalInfo {
	return PostalInfo{
		Type:        p.Type,
		Name:        p.Name,
		Org:         p.Org,
		Street:      p.Addr.Street,
		City:        p.Addr.City,
		Province:    p.Addr.Province,
		PostalCode:  p.Addr.PostalCode,
		CountryCode: p.Addr.CountryCode,
	}
}

func toWireDisclose(disclose map[string]bool) *wire.ContactDisclose {
	if len(disclose) == 0 {
		return nil
	}
	flag := "0"
	if disclose["flag"] {
		flag = "1"
	}
	d := &wire.ContactDisclose{Flag: flag}
	d.Voice = disclose["voice"]
	d.Fax = disclose["fax"]
	d.Email = disclose["email"]
	return d
}

func fromWireDisclose(d *wire.ContactDisclose) map[string]bool {
	if d == nil {
		return nil
	}
	out := map[string]bool{"flag": d.Flag == "1", "voice": d.Voice, "fax": d.Fax, "email": d.Email}
	return out
}

func encodeContactCheck(input ContactCheckInput) (*wire.RawElement, error) {
	for _, id := range input.IDs {
		if err := ValidateContactID(id); err != nil {
			return nil, err
		}
	}
	raw, err := xml.Marshal(&wire.ContactCheck{IDs: input.IDs})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeContactCheckData(raw *wire.RawElement) ([]ContactAvailability, error) {
	var data wire.ContactCheckData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	out := make([]ContactAvailability, 0, len(data.Results))
	for _, r := range data.Results {
		out = append(out, ContactAvailability{ID: r.ID, Available: r.Avail, Reason: r.Reason})
	}
	return out, nil
}

func encodeContactInfo(input ContactInfoInput) (*wire.RawElement, error) {
	if err := ValidateContactID(input.ID); err != nil {
		return nil, err
	}
	info := &wire.ContactInfo{ID: input.ID}
	if input.AuthInfo != "" {
		info.AuthInfo = &wire.DomainAuthInfo{Password: input.AuthInfo}
	}
	raw, err := xml.Marshal(info)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeContactInfoData(raw *wire.RawElement) (*ContactInfo, error) {
	var data wire.ContactInfoData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	statuses := make([]string, 0, len(data.Status))
	for _, s := range data.Status {
		statuses = append(statuses, s.Status)
	}
	postal := make([]PostalInfo, 0, len(data.PostalInfo))
	for _, p := range data.PostalInfo {
		postal = append(postal, fromWirePostalInfo(p))
	}
	info := &ContactInfo{
		ID:         data.ID,
		RoID:       data.RoID,
		Statuses:   statuses,
		PostalInfo: postal,
		Voice:      data.Voice,
		Fax:        data.Fax,
		Email:      data.Email,
		ClientID:   data.ClientID,
		CreateDate: parseEPPTime(data.CreateDate),
		UpdateDate: parseEPPTime(data.UpdateDate),
		Disclose:   fromWireDisclose(data.Disclose),
	}
	if data.AuthInfo != nil {
		info.AuthInfo = data.AuthInfo.Password
	}
	return info, nil
}

func encodeContactCreate(input ContactCreateInput) (*wire.RawElement, error) {
	if err := ValidateContactID(input.ID); err != nil {
		return nil, err
	}
	if err := ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if input.Voice != "" {
		if err := ValidatePhone(input.Voice); err != nil {
			return nil, err
		}
	}

	create := &wire.ContactCreate{
		ID:       input.ID,
		Voice:    input.Voice,
		Fax:      input.Fax,
		Email:    input.Email,
		AuthInfo: wire.DomainAuthInfo{Password: input.AuthInfo},
		Disclose: toWireDisclose(input.Disclose),
	}
	for _, p := range input.PostalInfo {
		create.PostalInfo = append(create.PostalInfo, toWirePostalInfo(p))
	}

	raw, err := xml.Marshal(create)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeContactCreateData(raw *wire.RawElement) (*ContactCreateResult, error) {
	var data wire.ContactCreateData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &ContactCreateResult{ID: data.ID, CreateDate: parseEPPTime(data.CreateDate)}, nil
}

func encodeContactUpdate(input ContactUpdateInput) (*wire.RawElement, error) {
	if err := ValidateContactID(input.ID); err != nil {
		return nil, err
	}
	update := &wire.ContactUpdate{ID: input.ID}
	if len(input.AddStatuses) > 0 {
		update.Add = &wire.ContactUpdateStatus{}
		for _, s := range input.AddStatuses {
			update.Add.Status = append(update.Add.Status, wire.DomainStatus{Status: s})
		}
	}
	if len(input.RemoveStatuses) > 0 {
		update.Remove = &wire.ContactUpdateStatus{}
		for _, s := range input.RemoveStatuses {
			update.Remove.Status = append(update.Remove.Status, wire.DomainStatus{Status: s})
		}
	}
	if len(input.PostalInfo) > 0 || input.Voice != "" || input.Fax != "" || input.Email != "" ||
		input.NewAuthInfo != "" || input.Disclose != nil {
		change := &wire.ContactUpdateChange{
			Voice:    input.Voice,
			Fax:      input.Fax,
			Email:    input.Email,
			Disclose: toWireDisclose(input.Disclose),
		}
		for _, p := range input.PostalInfo {
			change.PostalInfo = append(change.PostalInfo, toWirePostalInfo(p))
		}
		if input.NewAuthInfo != "" {
			change.AuthInfo = &wire.DomainAuthInfo{Password: input.NewAuthInfo}
		}
		update.Change = change
	}
	raw, err := xml.Marshal(update)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func encodeContactDelete(input ContactDeleteInput) (*wire.RawElement, error) {
	if err := ValidateContactID(input.ID); err != nil {
		return nil, err
	}
	raw, err := xml.Marshal(&wire.ContactDelete{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func encodeContactTransfer(input ContactTransferInput) (*wire.ContactTransfer, error) {
	if err := ValidateContactID(input.ID); err != nil {
		return nil, err
	}
	transfer := &wire.ContactTransfer{ID: input.ID}
	if input.AuthInfo != "" {
		transfer.AuthInfo = &wire.DomainAuthInfo{Password: input.AuthInfo}
	}
	return transfer, nil
}

func decodeContactTransferData(raw *wire.RawElement) (*ContactTransferResult, error) {
	var data wire.ContactTransferData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &ContactTransferResult{
		ID:             data.ID,
		TransferStatus: parseTransferStatus(data.TransferStatus),
		RequestClient:  data.RequestClient,
		RequestDate:    parseEPPTime(data.RequestDate),
		ActionClient:   data.ActionClient,
		ActionDate:     parseEPPTime(data.ActionDate),
	}, nil
}
