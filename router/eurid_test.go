// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AS207960/eppcore/wire"
)

func TestEncodeEuridDNSQualityInfoValidatesDomainName(t *testing.T) {
	_, err := encodeEuridDNSQualityInfo(EuridDNSQualityInput{Name: "not a domain"})
	assert.Error(t, err)

	raw, err := encodeEuridDNSQualityInfo(EuridDNSQualityInput{Name: "example.eu"})
	require.NoError(t, err)
	assert.Contains(t, string(raw.Inner), "example.eu")
}

func TestDecodeEuridDNSQualityData(t *testing.T) {
	data := &wire.EuridDNSQualityInfData{Score: 87, Comments: []string{"missing DNSSEC"}}
	raw, err := xml.Marshal(data)
	require.NoError(t, err)

	result, err := decodeEuridDNSQualityData(&wire.RawElement{Inner: raw})
	require.NoError(t, err)
	assert.Equal(t, 87, result.Score)
	assert.Equal(t, []string{"missing DNSSEC"}, result.Comments)
}

func TestDecodeEuridRegistrationLimitData(t *testing.T) {
	data := &wire.EuridRegistrationLimitInfData{Remaining: 4, Limit: 50}
	raw, err := xml.Marshal(data)
	require.NoError(t, err)

	result, err := decodeEuridRegistrationLimitData(&wire.RawElement{Inner: raw})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Remaining)
	assert.Equal(t, 50, result.Limit)
}

func TestRawBalanceQueryPassesThroughCallerBody(t *testing.T) {
	body := []byte(`<test:info xmlns:test="urn:test:balance-1.0"/>`)
	raw, err := encodeRawBalanceQuery(RawBalanceQueryInput{Body: body})
	require.NoError(t, err)
	assert.Equal(t, body, raw.Inner)

	resp := &wire.Response{
		Results:    []wire.Result{{Code: 1000, Message: "Command completed successfully"}},
		ResultData: &wire.RawElement{Inner: []byte("<test:balance>42</test:balance>")},
		Extension:  &wire.Extension{Inner: []byte("<test:ext/>")},
	}
	result, err := decodeRawBalanceQuery(resp)
	require.NoError(t, err)
	assert.Equal(t, []byte("<test:balance>42</test:balance>"), result.ResultData)
	assert.Equal(t, []byte("<test:ext/>"), result.Extension)
}
