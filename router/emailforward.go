// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"

	"github.com/AS207960/eppcore/wire"
)

func encodeEmailForwardCheck(input EmailForwardCheckInput) (*wire.RawElement, error) {
	for _, name := range input.Names {
		if err := ValidateDomainName(name); err != nil {
			return nil, err
		}
	}
	raw, err := xml.Marshal(&wire.EmailForwardCheck{Names: input.Names})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeEmailForwardCheckData(raw *wire.RawElement) ([]EmailForwardAvailability, error) {
	var data wire.EmailForwardCheckData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	out := make([]EmailForwardAvailability, 0, len(data.Results))
	for _, r := range data.Results {
		out = append(out, EmailForwardAvailability{Name: r.Name, Available: r.Avail, Reason: r.Reason})
	}
	return out, nil
}

func encodeEmailForwardInfo(input EmailForwardInfoInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	info := &wire.EmailForwardInfo{Name: input.Name}
	if input.AuthInfo != "" {
		info.AuthInfo = &wire.DomainAuthInfo{Password: input.AuthInfo}
	}
	raw, err := xml.Marshal(info)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeEmailForwardInfoData(raw *wire.RawElement) (*EmailForwardInfo, error) {
	var data wire.EmailForwardInfoData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	contacts := make(map[string]string, len(data.Contacts))
	for _, c := range data.Contacts {
		contacts[c.Type] = c.ID
	}
	statuses := make([]string, 0, len(data.Status))
	for _, s := range data.Status {
		statuses = append(statuses, s.Status)
	}
	info := &EmailForwardInfo{
		Name:       data.Name,
		RoID:       data.RoID,
		Forward:    data.Forward,
		Statuses:   statuses,
		Registrant: data.Registrant,
		Contacts:   contacts,
		ClientID:   data.ClientID,
		CreateDate: parseEPPTime(data.CreateDate),
		ExpireDate: parseEPPTime(data.ExpireDate),
		UpdateDate: parseEPPTime(data.UpdateDate),
	}
	if data.AuthInfo != nil {
		info.AuthInfo = data.AuthInfo.Password
	}
	return info, nil
}

// encodeEmailForwardCreate builds <email-fwd:create>. Under the
// verisign-{com,net,cc,tv} erratum the registrant field is omitted
// entirely (§4.3): those endpoints predate it and reject commands that
// include it.
func encodeEmailForwardCreate(input EmailForwardCreateInput, erratum string) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	create := &wire.EmailForwardCreate{
		Name:     input.Name,
		Period:   &wire.EPPPeriod{Unit: "y", Value: years(input.Years)},
		Forward:  input.Forward,
		AuthInfo: wire.DomainAuthInfo{Password: input.AuthInfo},
	}
	if !suppressEmailForwardRegistrant(erratum) {
		create.Registrant = input.Registrant
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

func decodeEmailForwardCreateData(raw *wire.RawElement) (*EmailForwardCreateResult, error) {
	var data wire.EmailForwardCreateData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &EmailForwardCreateResult{
		Name:       data.Name,
		CreateDate: parseEPPTime(data.CreateDate),
		ExpireDate: parseEPPTime(data.ExpireDate),
	}, nil
}

func encodeEmailForwardUpdate(input EmailForwardUpdateInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	update := &wire.EmailForwardUpdate{Name: input.Name}
	if len(input.AddStatuses) > 0 {
		update.Add = &wire.DomainUpdateAddRem{}
		for _, s := range input.AddStatuses {
			update.Add.Status = append(update.Add.Status, wire.DomainStatus{Status: s})
		}
	}
	if len(input.RemoveStatuses) > 0 {
		update.Remove = &wire.DomainUpdateAddRem{}
		for _, s := range input.RemoveStatuses {
			update.Remove.Status = append(update.Remove.Status, wire.DomainStatus{Status: s})
		}
	}
	if input.NewForward != "" || input.NewRegistrant != "" || input.NewAuthInfo != "" {
		change := &wire.EmailForwardUpdateChange{
			Forward:    input.NewForward,
			Registrant: input.NewRegistrant,
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

func encodeEmailForwardDelete(input EmailForwardDeleteInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	raw, err := xml.Marshal(&wire.EmailForwardDelete{Name: input.Name})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func encodeEmailForwardRenew(input EmailForwardRenewInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	renew := &wire.EmailForwardRenew{
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

func decodeEmailForwardRenewData(raw *wire.RawElement) (*EmailForwardRenewResult, error) {
	var data wire.EmailForwardRenewData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &EmailForwardRenewResult{Name: data.Name, ExpireDate: parseEPPTime(data.ExpireDate)}, nil
}
