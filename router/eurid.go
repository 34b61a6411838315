// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"

	"github.com/AS207960/eppcore/wire"
)

// encodeEuridHitPointsInfo builds EURid's bare registrar hit-points query
// (no input required).
func encodeEuridHitPointsInfo() (*wire.RawElement, error) {
	raw, err := xml.Marshal(&wire.EuridHitPointsInfoCmd{})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

// decodeEuridHitPointsData decodes the matching <resData>.
func decodeEuridHitPointsData(raw *wire.RawElement) (*EuridHitPointsResult, error) {
	var data wire.EuridHitPointsInfData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &EuridHitPointsResult{
		HitPoints:    data.HitPoints,
		MaxHitPoints: data.MaxHitPoints,
		Blocked:      data.Blocked,
	}, nil
}

// encodeEuridRegistrationLimitInfo builds EURid's bare same-day
// registration allowance query (no input required).
func encodeEuridRegistrationLimitInfo() (*wire.RawElement, error) {
	raw, err := xml.Marshal(&wire.EuridRegistrationLimitInfoCmd{})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

// decodeEuridRegistrationLimitData decodes the matching <resData>.
func decodeEuridRegistrationLimitData(raw *wire.RawElement) (*EuridRegistrationLimitResult, error) {
	var data wire.EuridRegistrationLimitInfData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &EuridRegistrationLimitResult{Remaining: data.Remaining, Limit: data.Limit}, nil
}

// encodeEuridDNSQualityInfo builds EURid's per-domain DNS quality query.
func encodeEuridDNSQualityInfo(input EuridDNSQualityInput) (*wire.RawElement, error) {
	if err := ValidateDomainName(input.Name); err != nil {
		return nil, err
	}
	raw, err := xml.Marshal(&wire.EuridDNSQualityInfoCmd{Name: input.Name})
	if err != nil {
		return nil, err
	}
	return &wire.RawElement{Inner: raw}, nil
}

// decodeEuridDNSQualityData decodes the matching <resData>.
func decodeEuridDNSQualityData(raw *wire.RawElement) (*EuridDNSQualityResult, error) {
	var data wire.EuridDNSQualityInfData
	if err := unmarshalRaw(raw, &data); err != nil {
		return nil, err
	}
	return &EuridDNSQualityResult{Score: data.Score, Comments: data.Comments}, nil
}

// encodeRawBalanceQuery passes the caller's pre-serialized <info> command
// body straight through: no registry-independent balance/info schema
// exists across the pack, so callers own the wire shape.
func encodeRawBalanceQuery(input RawBalanceQueryInput) (*wire.RawElement, error) {
	return &wire.RawElement{Inner: input.Body}, nil
}

// decodeRawBalanceQuery returns the response's resData/extension as raw,
// undecoded bytes for the caller to parse.
func decodeRawBalanceQuery(resp *wire.Response) (*RawBalanceQueryResult, error) {
	result := &RawBalanceQueryResult{}
	if resp.ResultData != nil {
		result.ResultData = resp.ResultData.Inner
	}
	if resp.Extension != nil {
		result.Extension = resp.Extension.Inner
	}
	return result, nil
}
