// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/AS207960/eppcore/store"
	"github.com/AS207960/eppcore/wire"
)

// SessionState is the connection lifecycle (§4.1): Closed -> TlsUp ->
// Greeted -> Ready -> Closing -> Closed.
type SessionState int

const (
	StateClosed SessionState = iota
	StateTLSUp
	StateGreeted
	StateReady
	StateClosing
)

// String implements [fmt.Stringer].
func (s SessionState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateTLSUp:
		return "tls_up"
	case StateGreeted:
		return "greeted"
	case StateReady:
		return "ready"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Session manages one account's connection lifecycle: dial, TLS
// handshake, greeting, login, handing off to a [Dispatcher] for steady
// state, keep-alive, and reconnection with backoff (§4).
type Session struct {
	account     *AccountConfig
	pipelineCfg *PipelineConfig
	tlsConfig   *tls.Config
	encoder     RequestEncoder
	decoder     ResponseDecoder
	logger      SLogger

	maxFrameSize int

	mu          sync.RWMutex
	state       SessionState
	features    *ServerFeatures
	dispatcher  *Dispatcher
	pollSink    *PollSink
	password    string
	newPassword string

	backoff *Backoff
}

// NewSession constructs a [*Session] for one account. The returned
// session is [StateClosed] until Run is called.
func NewSession(account *AccountConfig, pipelineCfg *PipelineConfig,
	encoder RequestEncoder, decoder ResponseDecoder, logger SLogger) *Session {

	if pipelineCfg == nil {
		pipelineCfg = NewPipelineConfig()
	}
	if logger == nil {
		logger = DefaultSLogger()
	}

	tlsConfig := &tls.Config{
		ServerName: account.SNIName(),
		RootCAs:    account.TrustedRoots,
		MinVersion: tls.VersionTLS12,
	}
	if account.Signer != nil {
		tlsConfig.GetClientCertificate = func(*tls.CertificateRequestInfo) (*tls.Certificate, error) {
			cert, err := account.Signer.ClientCertificate()
			if err != nil {
				return nil, err
			}
			return &cert, nil
		}
	}

	return &Session{
		account:     account,
		pipelineCfg: pipelineCfg,
		tlsConfig:   tlsConfig,
		encoder:     encoder,
		decoder:     decoder,
		logger:      logger,
		backoff:     NewBackoff(),
		password:    account.Password,
		newPassword: account.NewPassword,
	}
}

// State returns the session's current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Features returns the negotiated [*ServerFeatures], or nil before the
// first successful login.
func (s *Session) Features() *ServerFeatures {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.features
}

// Poll returns the channel of unsolicited poll messages, valid once Run
// has reached [StateReady] at least once.
func (s *Session) Poll() <-chan PollData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pollSink == nil {
		return nil
	}
	return s.pollSink.Messages()
}

// Submit hands req to the active dispatcher. Returns an error immediately
// if the session is not [StateReady].
func (s *Session) Submit(ctx context.Context, req *Request) error {
	s.mu.RLock()
	dispatcher := s.dispatcher
	state := s.state
	s.mu.RUnlock()

	if state != StateReady || dispatcher == nil {
		return NewTransportError("", fmt.Errorf("eppcore: session not ready (state=%s)", state))
	}
	return dispatcher.Submit(ctx, req)
}

// Shutdown issues a best-effort <logout> on the active dispatcher before
// the caller cancels Run's context (§4.4 "Logout"). The registry's
// response code is ignored per spec; shutdownCtx should carry a short
// deadline since the socket is about to be torn down regardless of
// whether this completes. A no-op if the session is not currently Ready.
func (s *Session) Shutdown(shutdownCtx context.Context) {
	s.mu.RLock()
	dispatcher := s.dispatcher
	state := s.state
	s.mu.RUnlock()

	if state != StateReady || dispatcher == nil {
		return
	}

	req := NewRequest(KindLogout, nil)
	if err := dispatcher.Submit(shutdownCtx, req); err != nil {
		return
	}
	_, _ = req.Await(shutdownCtx)
}

// Run drives the session's connect -> login -> serve -> reconnect loop
// until ctx is canceled. Each iteration after the first waits out the
// session's [Backoff] before redialing (§4.6).
func (s *Session) Run(ctx context.Context) error {
	for {
		err := s.runOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.logger.Warn("eppSessionLost", slog.Any("err", err), slog.String("accountID", s.account.ID))
		s.setState(StateClosed)

		delay := s.backoff.Next()
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

// runOnce performs one full connect-through-serve cycle, returning when
// the connection is lost or the context is canceled.
func (s *Session) runOnce(ctx context.Context) error {
	pipeline := Compose5(
		NewConnectFunc(s.pipelineCfg),
		NewTLSHandshakeFunc(s.pipelineCfg, s.tlsConfig, s.logger),
		FuncAdapter[TLSConn, net.Conn](func(_ context.Context, conn TLSConn) (net.Conn, error) { return conn, nil }),
		NewObserveConnFunc(s.pipelineCfg, s.logger),
		NewCancelWatchFunc(),
	)

	conn, err := pipeline.Call(ctx, s.account.Address())
	if err != nil {
		return fmt.Errorf("eppcore: connecting: %w", err)
	}
	defer conn.Close()

	s.setState(StateTLSUp)

	frameConn := wire.NewFrameConn(conn, s.maxFrameSize)

	greeting, err := s.readGreeting(ctx, frameConn)
	if err != nil {
		return fmt.Errorf("eppcore: reading greeting: %w", err)
	}
	s.setState(StateGreeted)

	features, err := s.login(ctx, frameConn, greeting)
	if err != nil {
		return fmt.Errorf("eppcore: logging in: %w", err)
	}

	s.backoff.Reset()

	pollSink := NewPollSink(64)
	dispatcher := NewDispatcher(frameConn, s.encoder, s.decoder, s.account, features, pollSink,
		s.logger, s.pipelineCfg.ErrClassifier, s.pipelineCfg.TimeNow)

	s.mu.Lock()
	s.features = features
	s.dispatcher = dispatcher
	s.pollSink = pollSink
	s.state = StateReady
	s.mu.Unlock()

	keepAlive := NewKeepAlive(dispatcher, s.account, greeting, s.pipelineCfg.TimeNow)
	go keepAlive.Run(ctx)

	return dispatcher.Run(ctx)
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Session) readGreeting(ctx context.Context, conn *wire.FrameConn) (*wire.Greeting, error) {
	payload, err := conn.ReadFrame(ctx)
	if err != nil {
		return nil, err
	}
	env, err := wire.Decode(payload)
	if err != nil {
		return nil, err
	}
	if env.Greeting == nil {
		return nil, NewProtocolError("expected <greeting> as the first frame")
	}
	return env.Greeting, nil
}

func (s *Session) login(ctx context.Context, conn *wire.FrameConn, greeting *wire.Greeting) (*ServerFeatures, error) {
	objectURIs := greeting.ServiceMenu.ObjectURIs
	advertisedExt := greeting.ServiceMenu.Extensions.ExtURIs

	s.mu.RLock()
	password := s.password
	newPassword := s.newPassword
	s.mu.RUnlock()

	env := wire.NewLoginCommand(
		s.account.ClientID, password, newPassword,
		"1.0", s.account.effectiveLanguage(),
		objectURIs, advertisedExt, NewClientTRID(),
	)

	payload, err := wire.Encode(env)
	if err != nil {
		return nil, err
	}
	if err := conn.WriteFrame(ctx, payload); err != nil {
		return nil, err
	}

	respPayload, err := conn.ReadFrame(ctx)
	if err != nil {
		return nil, err
	}
	respEnv, err := wire.Decode(respPayload)
	if err != nil {
		return nil, err
	}
	if respEnv.Response == nil {
		return nil, NewProtocolError("expected <response> to login command")
	}
	if !respEnv.Response.Success() {
		result, _ := respEnv.Response.FirstResult()
		return nil, NewServerError(ResultCode(result.Code), result.Message, result.ExtraValues)
	}

	if newPassword != "" {
		s.mu.Lock()
		s.password = newPassword
		s.newPassword = ""
		s.mu.Unlock()

		// Persist the changed password so the next reconnect (and the
		// next process start) uses it instead of the stale one (§4.4,
		// §6: "<log-dir>/<account-id>/password" mode 0600).
		persistStore := s.account.effectiveStore()
		var err error
		if secret, ok := persistStore.(store.SecretStore); ok {
			err = secret.PutSecret(ctx, "password", []byte(newPassword))
		} else {
			err = persistStore.Put(ctx, "password", []byte(newPassword))
		}
		if err != nil {
			s.logger.Warn("eppPasswordPersistError", slog.Any("err", err), slog.String("accountID", s.account.ID))
		}
	}

	return NewServerFeatures(objectURIs, advertisedExt, s.account.DesiredExtensionURIs, s.account.Erratum), nil
}
