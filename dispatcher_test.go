// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AS207960/eppcore/wire"
)

// fakeCodec is a minimal [RequestEncoder]/[ResponseDecoder] pair for
// dispatcher tests: it only knows KindLogout, KindPollRequest and
// KindPollAck, enough
// to exercise the pending-table, archiving, and pump machinery without
// depending on package router (which imports this package).
type fakeCodec struct{}

func (fakeCodec) Encode(req *Request, clTRID string, account *AccountConfig, features *ServerFeatures) (*wire.Envelope, error) {
	switch req.Kind {
	case KindLogout:
		return wire.NewLogoutCommand(clTRID), nil
	case KindPollRequest:
		return wire.NewPollRequestCommand(clTRID), nil
	case KindPollAck:
		messageID, _ := req.Input.(string)
		return wire.NewPollAckCommand(messageID, clTRID), nil
	default:
		return nil, NewInternalError("fakeCodec: unhandled kind")
	}
}

func (fakeCodec) Decode(kind RequestKind, resp *wire.Response, features *ServerFeatures) (any, error) {
	if kind == KindPollRequest {
		data := PollData{Kind: PollKindUnknown}
		if resp.MessageQueue != nil {
			data.MessageID = resp.MessageQueue.ID
			data.MessageCount = resp.MessageQueue.Count
		}
		return &data, nil
	}
	return nil, nil
}

func (fakeCodec) DecodePoll(resp *wire.Response, features *ServerFeatures) (PollData, error) {
	data := PollData{Kind: PollKindUnknown}
	if resp.MessageQueue != nil {
		data.MessageID = resp.MessageQueue.ID
		data.MessageCount = resp.MessageQueue.Count
	}
	return data, nil
}

func newTestDispatcher(t *testing.T, account *AccountConfig) (*Dispatcher, *wire.FrameConn) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { clientConn.Close(); serverConn.Close() })

	frameConn := wire.NewFrameConn(clientConn, 0)
	serverFrame := wire.NewFrameConn(serverConn, 0)

	if account == nil {
		account = &AccountConfig{ID: "test-account"}
	}
	features := NewServerFeatures(nil, nil, nil, "")
	pollSink := NewPollSink(8)

	d := NewDispatcher(frameConn, fakeCodec{}, fakeCodec{}, account, features, pollSink,
		nil, DefaultErrClassifier, nil)
	return d, serverFrame
}

// readEnvelope reads and decodes one frame from the server side.
func readEnvelope(t *testing.T, server *wire.FrameConn) *wire.Envelope {
	t.Helper()
	payload, err := server.ReadFrame(context.Background())
	require.NoError(t, err)
	env, err := wire.Decode(payload)
	require.NoError(t, err)
	return env
}

func writeSuccessResponse(t *testing.T, server *wire.FrameConn, clTRID string) {
	t.Helper()
	env := &wire.Envelope{Response: &wire.Response{
		Results: []wire.Result{{Code: 1000, Message: "Command completed successfully"}},
		TRID:    wire.TRID{ClientTRID: clTRID},
	}}
	payload, err := wire.Encode(env)
	require.NoError(t, err)
	require.NoError(t, server.WriteFrame(context.Background(), payload))
}

func TestDispatcher_RoundTripSuccess(t *testing.T) {
	d, server := newTestDispatcher(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- d.Run(ctx) }()

	req := NewRequest(KindLogout, nil)
	require.NoError(t, d.Submit(ctx, req))

	env := readEnvelope(t, server)
	require.NotNil(t, env.Command)
	require.NotNil(t, env.Command.Logout)
	writeSuccessResponse(t, server, env.Command.ClientTRID)

	_, err := req.Await(ctx)
	assert.NoError(t, err)

	cancel()
	<-runErr
}

func TestDispatcher_ServerErrorDoesNotTearDownSession(t *testing.T) {
	d, server := newTestDispatcher(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- d.Run(ctx) }()

	req := NewRequest(KindLogout, nil)
	require.NoError(t, d.Submit(ctx, req))

	env := readEnvelope(t, server)
	failEnv := &wire.Envelope{Response: &wire.Response{
		Results: []wire.Result{{Code: 2201, Message: "Authorization error"}},
		TRID:    wire.TRID{ClientTRID: env.Command.ClientTRID},
	}}
	payload, err := wire.Encode(failEnv)
	require.NoError(t, err)
	require.NoError(t, server.WriteFrame(context.Background(), payload))

	_, err = req.Await(ctx)
	require.Error(t, err)
	eppErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrKindServer, eppErr.Kind)

	// A second request on the same, still-healthy session must still
	// succeed: a server error never tears the session down (§4.5).
	req2 := NewRequest(KindLogout, nil)
	require.NoError(t, d.Submit(ctx, req2))
	env2 := readEnvelope(t, server)
	writeSuccessResponse(t, server, env2.Command.ClientTRID)
	_, err = req2.Await(ctx)
	assert.NoError(t, err)

	cancel()
	<-runErr
}

func TestDispatcher_UnsolicitedResponseGoesToPollSink(t *testing.T) {
	d, server := newTestDispatcher(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- d.Run(ctx) }()

	qdate := time.Now().UTC()
	env := &wire.Envelope{Response: &wire.Response{
		Results:      []wire.Result{{Code: 1301, Message: "Command completed successfully; ack to dequeue"}},
		MessageQueue: &wire.MessageQueue{Count: 1, ID: "12345", QueueDate: &qdate},
	}}
	payload, err := wire.Encode(env)
	require.NoError(t, err)
	require.NoError(t, server.WriteFrame(context.Background(), payload))

	select {
	case msg := <-d.pollSink.Messages():
		assert.Equal(t, "12345", msg.MessageID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for unsolicited poll message")
	}

	cancel()
	<-runErr
}

func TestDispatcher_CommandTimeoutTearsDownSession(t *testing.T) {
	account := &AccountConfig{ID: "test-account", CommandTimeout: 50 * time.Millisecond}
	d, server := newTestDispatcher(t, account)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- d.Run(ctx) }()

	// Drain the fake server's inbound frames so WriteFrame never blocks,
	// but never answer: the request must time out on its own deadline.
	go func() {
		for {
			if _, err := server.ReadFrame(context.Background()); err != nil {
				return
			}
		}
	}()

	req := NewRequest(KindLogout, nil)
	require.NoError(t, d.Submit(ctx, req))

	// The fake server never answers: the per-command deadline fires,
	// failing the request and tearing the whole session down (§4.5).
	_, err := req.Await(ctx)
	require.Error(t, err)
	eppErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrKindTransport, eppErr.Kind)

	select {
	case err := <-runErr:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after a command timeout")
	}
}
