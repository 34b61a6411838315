// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameConnRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	clientConn := NewFrameConn(client, 0)
	serverConn := NewFrameConn(server, 0)

	payload := []byte(`<?xml version="1.0"?><epp/>`)

	go func() {
		_ = clientConn.WriteFrame(context.Background(), payload)
	}()

	got, err := serverConn.ReadFrame(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFrameConnRejectsOversizedFrame(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	clientConn := NewFrameConn(client, 0)
	serverConn := NewFrameConn(server, 1024*1024)

	oversized := make([]byte, 2*1024*1024)

	go func() {
		_ = clientConn.WriteFrame(context.Background(), oversized)
	}()

	_, err := serverConn.ReadFrame(context.Background())
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestNewFrameConnEnforcesFloor(t *testing.T) {
	client, _ := net.Pipe()
	defer client.Close()

	conn := NewFrameConn(client, 10)
	assert.GreaterOrEqual(t, conn.maxFrame, 1*1024*1024)
}
