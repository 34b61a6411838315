// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AS207960/eppcore"
	"github.com/AS207960/eppcore/wire"
)

func newAccount(erratum string) *eppcore.AccountConfig {
	return &eppcore.AccountConfig{ID: "acme", Erratum: erratum}
}

func TestRouterDomainCheck(t *testing.T) {
	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindDomainCheck, DomainCheckInput{Names: []string{"example.test"}})

	env, err := rt.Encode(req, "eppcore-1", newAccount(""), nil)
	require.NoError(t, err)
	require.NotNil(t, env.Command)
	require.NotNil(t, env.Command.Check)
	assert.Nil(t, env.Command.Extension)
	assert.Contains(t, string(env.Command.Check.Inner), "example.test")

	data := &wire.DomainCheckData{Results: []wire.DomainCheckResult{
		{Name: "example.test", Avail: true},
	}}
	raw, err := xml.Marshal(data)
	require.NoError(t, err)
	resp := &wire.Response{
		Results:    []wire.Result{{Code: 1000, Message: "Command completed successfully"}},
		ResultData: &wire.RawElement{Inner: raw},
	}

	decoded, err := rt.Decode(eppcore.KindDomainCheck, resp, nil)
	require.NoError(t, err)
	result, ok := decoded.(*DomainCheckResult)
	require.True(t, ok)
	require.Len(t, result.Availability, 1)
	assert.Equal(t, "example.test", result.Availability[0].Name)
	assert.True(t, result.Availability[0].Available)
}

func TestRouterDomainCheckServerError(t *testing.T) {
	rt := NewRouter(nil)
	resp := &wire.Response{Results: []wire.Result{{Code: 2303, Message: "Object does not exist"}}}

	_, err := rt.Decode(eppcore.KindDomainCheck, resp, nil)
	require.Error(t, err)
	var eppErr *eppcore.Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, eppcore.ErrKindServer, eppErr.Kind)
	assert.Equal(t, eppcore.ResultCode(2303), eppErr.Code)
}

func TestRouterFeeVersionSelection(t *testing.T) {
	features := eppcore.NewServerFeatures(
		[]string{eppcore.ObjectURIDomain},
		[]string{eppcore.ExtURIFee09},
		nil,
		"",
	)

	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindDomainCreate, DomainCreateInput{
		Name:     "example.test",
		Years:    1,
		Currency: "USD",
		Fee:      []FeeCharge{{Currency: "USD", Value: "10.00"}},
	})

	env, err := rt.Encode(req, "eppcore-2", newAccount(""), features)
	require.NoError(t, err)
	require.NotNil(t, env.Command.Extension)

	body := string(env.Command.Extension.Inner)
	assert.Contains(t, body, wire.FeeNamespace09)
	assert.NotContains(t, body, wire.FeeNamespace10)
	assert.NotContains(t, body, wire.FeeNamespace011)
	assert.NotContains(t, body, wire.FeeNamespace08)
}

func TestRouterFeeVersionPrecedence(t *testing.T) {
	// Both 0.9 and 1.0 negotiated: 1.0 wins (§4.3 precedence).
	features := eppcore.NewServerFeatures(
		[]string{eppcore.ObjectURIDomain},
		[]string{eppcore.ExtURIFee09, eppcore.ExtURIFee10},
		nil,
		"",
	)
	version, ok := features.FeeVersion()
	require.True(t, ok)
	assert.Equal(t, eppcore.ExtURIFee10, version)
}

func TestRouterNamestoreSubProductByTLD(t *testing.T) {
	features := eppcore.NewServerFeatures(
		[]string{eppcore.ObjectURIDomain},
		[]string{eppcore.ExtURIVerisignNamestore},
		nil,
		"",
	)

	cases := []struct {
		name string
		tld  string
	}{
		{"example.com", "dotCOM"},
		{"example.net", "dotNET"},
		{"example.cc", "dotCC"},
		{"example.tv", "dotTV"},
		{"example.name", "dotNAME"},
		{"example.xyz", "dotCOM"}, // unknown TLD falls back to dotCOM
	}

	rt := NewRouter(nil)
	for _, tc := range cases {
		req := eppcore.NewRequest(eppcore.KindDomainCheck, DomainCheckInput{Names: []string{tc.name}})
		env, err := rt.Encode(req, "eppcore-3", newAccount(""), features)
		require.NoError(t, err)
		require.NotNil(t, env.Command.Extension)
		assert.Contains(t, string(env.Command.Extension.Inner), tc.tld)
	}
}

func TestRouterNamestoreAppliesToHostOperations(t *testing.T) {
	features := eppcore.NewServerFeatures(
		[]string{eppcore.ObjectURIHost},
		[]string{eppcore.ExtURIVerisignNamestore},
		nil,
		"",
	)

	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindHostInfo, HostInfoInput{Name: "ns1.example.net"})
	env, err := rt.Encode(req, "eppcore-4", newAccount(""), features)
	require.NoError(t, err)
	require.NotNil(t, env.Command.Extension)
	assert.Contains(t, string(env.Command.Extension.Inner), "dotNET")
}

func TestRouterNamestoreAbsentWithoutNegotiation(t *testing.T) {
	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindHostCheck, HostCheckInput{Names: []string{"ns1.example.net"}})
	env, err := rt.Encode(req, "eppcore-5", newAccount(""), nil)
	require.NoError(t, err)
	assert.Nil(t, env.Command.Extension)
}

func TestRouterPIRErratumDropsRestoreReportOther(t *testing.T) {
	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindDomainRestoreReport, DomainRestoreReportInput{
		Name:  "example.org",
		Other: "miscellaneous notes",
	})
	env, err := rt.Encode(req, "eppcore-6", newAccount(eppcore.ErratumPIR), nil)
	require.NoError(t, err)
	require.NotNil(t, env.Command.Extension)
	assert.NotContains(t, string(env.Command.Extension.Inner), "miscellaneous notes")
}

func TestRouterNonPIRKeepsRestoreReportOther(t *testing.T) {
	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindDomainRestoreReport, DomainRestoreReportInput{
		Name:  "example.com",
		Other: "miscellaneous notes",
	})
	env, err := rt.Encode(req, "eppcore-7", newAccount(""), nil)
	require.NoError(t, err)
	require.NotNil(t, env.Command.Extension)
	assert.Contains(t, string(env.Command.Extension.Inner), "miscellaneous notes")
}

func TestRouterUnhandledKind(t *testing.T) {
	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.RequestKind(-1), nil)
	_, err := rt.Encode(req, "eppcore-8", newAccount(""), nil)
	require.Error(t, err)
	var eppErr *eppcore.Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, eppcore.ErrKindInternal, eppErr.Kind)
}

func TestRouterEuridHitPoints(t *testing.T) {
	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindEuridHitPoints, nil)
	env, err := rt.Encode(req, "eppcore-10", newAccount(""), nil)
	require.NoError(t, err)
	require.NotNil(t, env.Command.Info)
	assert.Contains(t, string(env.Command.Info.Inner), "registrarHitPoints")

	data := &wire.EuridHitPointsInfData{HitPoints: 3, MaxHitPoints: 10, Blocked: false}
	raw, err := xml.Marshal(data)
	require.NoError(t, err)
	resp := &wire.Response{
		Results:    []wire.Result{{Code: 1000, Message: "Command completed successfully"}},
		ResultData: &wire.RawElement{Inner: raw},
	}

	decoded, err := rt.Decode(eppcore.KindEuridHitPoints, resp, nil)
	require.NoError(t, err)
	result, ok := decoded.(*EuridHitPointsResult)
	require.True(t, ok)
	assert.Equal(t, 3, result.HitPoints)
	assert.Equal(t, 10, result.MaxHitPoints)
}

func TestRouterDomainCheckWithFee(t *testing.T) {
	features := eppcore.NewServerFeatures(
		[]string{eppcore.ObjectURIDomain},
		[]string{eppcore.ExtURIFee09},
		nil,
		"",
	)

	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindDomainCheck, DomainCheckInput{
		Names:      []string{"example.test"},
		FeeCommand: "create",
		Currency:   "USD",
	})

	env, err := rt.Encode(req, "eppcore-11", newAccount(""), features)
	require.NoError(t, err)
	require.NotNil(t, env.Command.Extension)
	body := string(env.Command.Extension.Inner)
	assert.Contains(t, body, "objURI=\"urn:ietf:params:xml:ns:domain-1.0\"")
	assert.Contains(t, body, wire.FeeNamespace09)
}

func TestRouterInputTypeMismatch(t *testing.T) {
	rt := NewRouter(nil)
	req := eppcore.NewRequest(eppcore.KindDomainCheck, "not-the-right-type")
	_, err := rt.Encode(req, "eppcore-9", newAccount(""), nil)
	require.Error(t, err)
	var eppErr *eppcore.Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, eppcore.ErrKindInternal, eppErr.Kind)
}
