// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AS207960/eppcore/wire"
)

func TestDecodeDomainTransferDataStatus(t *testing.T) {
	data := &wire.DomainTransferData{
		Name:           "example.test",
		TransferStatus: "pending",
		RequestClient:  "ACME",
		ActionClient:   "REGISTRY",
	}
	raw, err := xml.Marshal(data)
	require.NoError(t, err)

	result, err := decodeDomainTransferData(&wire.RawElement{Inner: raw}, nil)
	require.NoError(t, err)
	assert.Equal(t, TransferStatusPending, result.TransferStatus)
	assert.Equal(t, "example.test", result.Name)
}

func TestEncodeDomainCheckValidatesNames(t *testing.T) {
	_, err := encodeDomainCheck(DomainCheckInput{Names: []string{"not a domain"}})
	assert.Error(t, err)

	raw, err := encodeDomainCheck(DomainCheckInput{Names: []string{"example.test"}})
	require.NoError(t, err)
	assert.Contains(t, string(raw.Inner), "example.test")
}

func TestYearsDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, years(0))
	assert.Equal(t, 1, years(-1))
	assert.Equal(t, 2, years(2))
}
