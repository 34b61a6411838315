// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState_String(t *testing.T) {
	cases := map[SessionState]string{
		StateClosed:      "closed",
		StateTLSUp:       "tls_up",
		StateGreeted:      "greeted",
		StateReady:        "ready",
		StateClosing:      "closing",
		SessionState(99):  "unknown",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
}

func TestSession_SubmitBeforeReadyFails(t *testing.T) {
	account := &AccountConfig{ID: "acct-1", Host: "registry.example", Port: 700}
	s := NewSession(account, nil, fakeCodec{}, fakeCodec{}, nil)

	err := s.Submit(context.Background(), NewRequest(KindLogout, nil))
	require.Error(t, err)
	eppErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrKindTransport, eppErr.Kind)
}

func TestSession_ShutdownIsNoopBeforeReady(t *testing.T) {
	account := &AccountConfig{ID: "acct-1", Host: "registry.example", Port: 700}
	s := NewSession(account, nil, fakeCodec{}, fakeCodec{}, nil)

	// Must return immediately without blocking or panicking: there is no
	// dispatcher to submit a logout to yet.
	s.Shutdown(context.Background())
}
