// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"

	"github.com/AS207960/eppcore/wire"
)

func encodeHostCheck(input HostCheckInput) (*wire.RawElement, error) {
	for _, name := range input.Names {
		if err := ValidateHostname(name); err != nil {
			return nil, err
		}
	}
	raw, err := xml.Marshal(&wire.HostCheck{Names: input.Names})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeHostCheckData(raw *wire.RawElement) ([]HostAvailability, error) {
	var data wire.HostCheckData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	out := make([]HostAvailability, 0, len(data.Results))
	for _, r := range data.Results {
		out = append(out, HostAvailability{Name: r.Name, Available: r.Avail, Reason: r.Reason})
	}
	return out, nil
}

func encodeHostInfo(input HostInfoInput) (*wire.RawElement, error) {
	if err := ValidateHostname(input.Name); err != nil {
		return nil, err
	}
	raw, err := xml.Marshal(&wire.HostInfo{Name: input.Name})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeHostInfoData(raw *wire.RawElement) (*HostInfo, error) {
	var data wire.HostInfoData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	addrs := make([]string, 0, len(data.Addrs))
	for _, a := range data.Addrs {
		addrs = append(addrs, a.Address)
	}
	statuses := make([]string, 0, len(data.Status))
	for _, s := range data.Status {
		statuses = append(statuses, s.Status)
	}
	return &HostInfo{
		Name:       data.Name,
		RoID:       data.RoID,
		Statuses:   statuses,
		Addrs:      addrs,
		ClientID:   data.ClientID,
		CreateDate: parseEPPTime(data.CreateDate),
		UpdateDate: parseEPPTime(data.UpdateDate),
	}, nil
}

func encodeHostCreate(input HostCreateInput) (*wire.RawElement, error) {
	if err := ValidateHostname(input.Name); err != nil {
		return nil, err
	}
	create := &wire.HostCreate{Name: input.Name}
	for _, addr := range input.Addrs {
		canonical, v6, err := ValidateIPAddress(addr)
		if err != nil {
			return nil, err
		}
		ipVersion := "v4"
		if v6 {
			ipVersion = "v6"
		}
		create.Addrs = append(create.Addrs, wire.HostAddr{IPVersion: ipVersion, Address: canonical})
	}
	raw, err := xml.Marshal(create)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func decodeHostCreateData(raw *wire.RawElement) (*HostCreateResult, error) {
	var data wire.HostCreateData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &HostCreateResult{Name: data.Name, CreateDate: parseEPPTime(data.CreateDate)}, nil
}

func encodeHostUpdate(input HostUpdateInput) (*wire.RawElement, error) {
	if err := ValidateHostname(input.Name); err != nil {
		return nil, err
	}
	update := &wire.HostUpdate{Name: input.Name}
	if len(input.AddAddrs) > 0 || len(input.AddStatuses) > 0 {
		update.Add = &wire.HostUpdateAddRem{}
		for _, addr := range input.AddAddrs {
			canonical, v6, err := ValidateIPAddress(addr)
			if err != nil {
				return nil, err
			}
			ipVersion := "v4"
			if v6 {
				ipVersion = "v6"
			}
			update.Add.Addrs = append(update.Add.Addrs, wire.HostAddr{IPVersion: ipVersion, Address: canonical})
		}
		for _, s := range input.AddStatuses {
			update.Add.Status = append(update.Add.Status, wire.DomainStatus{Status: s})
		}
	}
	if len(input.RemoveAddrs) > 0 || len(input.RemoveStatuses) > 0 {
		update.Remove = &wire.HostUpdateAddRem{}
		for _, addr := range input.RemoveAddrs {
			canonical, v6, err := ValidateIPAddress(addr)
			if err != nil {
				return nil, err
			}
			ipVersion := "v4"
			if v6 {
				ipVersion = "v6"
			}
			update.Remove.Addrs = append(update.Remove.Addrs, wire.HostAddr{IPVersion: ipVersion, Address: canonical})
		}
		for _, s := range input.RemoveStatuses {
			update.Remove.Status = append(update.Remove.Status, wire.DomainStatus{Status: s})
		}
	}
	if input.NewName != "" {
		update.Change = &wire.HostUpdateChange{Name: input.NewName}
	}
	raw, err := xml.Marshal(update)
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

func encodeHostDelete(input HostDeleteInput) (*wire.RawElement, error) {
	if err := ValidateHostname(input.Name); err != nil {
		return nil, err
	}
	raw, err := xml.Marshal(&wire.HostDelete{Name: input.Name})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}
