// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndpointFunc(t *testing.T) {
	endpoint := "epp.registry.test:700"

	fn := NewEndpointFunc(endpoint)
	result, err := fn.Call(context.Background(), Unit{})

	require.NoError(t, err)
	assert.Equal(t, endpoint, result)
}

func TestNewEndpointFuncIPv6(t *testing.T) {
	endpoint := "[2001:db8::1]:700"

	fn := NewEndpointFunc(endpoint)
	result, err := fn.Call(context.Background(), Unit{})

	require.NoError(t, err)
	assert.Equal(t, endpoint, result)
}
