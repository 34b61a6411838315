//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/x/netcore/tlsdialer.go
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/measurexlite/tls.go
//

package eppcore

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/bassosimone/runtimex"
	"github.com/bassosimone/safeconn"
)

// TLSEngine is the engine to create a new [TLSConn].
type TLSEngine interface {
	// Client builds a new client [TLSConn].
	Client(conn net.Conn, config *tls.Config) TLSConn

	// Name returns the engine name.
	Name() string

	// Parrot returns the configured parrot or an empty string.
	Parrot() string
}

// TLSEngineStdlib implements [TLSEngine] for the standard library.
//
// The zero value is ready to use.
type TLSEngineStdlib struct{}

var _ TLSEngine = TLSEngineStdlib{}

// Client implements [TLSEngine].
//
// This function uses [tls.Client] to build a new [*tls.Conn].
func (TLSEngineStdlib) Client(conn net.Conn, config *tls.Config) TLSConn {
	return tls.Client(conn, config)
}

// Name implements [TLSEngine].
//
// This function returns "stdlib".
func (TLSEngineStdlib) Name() string {
	return "stdlib"
}

// Parrot implements [TLSEngine].
//
// This function returns "".
func (s TLSEngineStdlib) Parrot() string {
	return ""
}

// TLSConn abstracts over [*tls.Conn].
//
// By using an abstraction we allow for alternative TLS implementations.
type TLSConn interface {
	// ConnectionState returns the connection state.
	ConnectionState() tls.ConnectionState

	// HandshakeContext performs the handshake unless interrupted by the context.
	HandshakeContext(ctx context.Context) error

	// Embedding Conn means we can use this type as a [net.Conn].
	net.Conn
}

// NewTLSHandshakeFunc returns a new [*TLSHandshakeFunc] using the given [*tls.Config].
//
// The cfg argument contains the common configuration for the connect/TLS/observe pipeline.
//
// The tlsConfig argument is the TLS configuration to use.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewTLSHandshakeFunc(cfg *PipelineConfig, tlsConfig *tls.Config, logger SLogger) *TLSHandshakeFunc {
	runtimex.Assert(tlsConfig != nil)
	return &TLSHandshakeFunc{
		Config:        tlsConfig,
		Engine:        TLSEngineStdlib{},
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// TLSHandshakeFunc performs a TLS handshake over an existing [net.Conn].
//
// The input is a [net.Conn].
//
// The [*tls.Config] is configured using [NewTLSHandshakeFunc].
//
// Returns either a valid [TLSConn] or an error, never both.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type TLSHandshakeFunc struct {
	// Config contains the [*tls.Config] configuration to use.
	//
	// Set by [NewTLSHandshakeFunc] to the user-provided [*tls.Config] pointer.
	Config *tls.Config

	// Engine is the [TLSEngine] to use to handshake.
	//
	// Set by [NewTLSHandshakeFunc] to [TLSEngineStdlib].
	Engine TLSEngine

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewTLSHandshakeFunc] from [PipelineConfig.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewTLSHandshakeFunc] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewTLSHandshakeFunc] from [PipelineConfig.TimeNow].
	TimeNow func() time.Time
}

var _ Func[net.Conn, TLSConn] = &TLSHandshakeFunc{}

// Call invokes the [*TLSHandshakeFunc] to create a [TLSConn] from a [net.Conn].
func (op *TLSHandshakeFunc) Call(ctx context.Context, conn net.Conn) (TLSConn, error) {
	config := op.tlsConfig()
	tconn := op.Engine.Client(conn, config)
	t0 := op.TimeNow()
	deadline, _ := ctx.Deadline()
	op.logHandshakeStart(op.Engine, conn, t0, deadline, config)
	err := tconn.HandshakeContext(ctx)
	state := tconn.ConnectionState()
	op.logHandshakeDone(op.Engine, conn, t0, deadline, config, err, state)
	return op.finish(tconn, err)
}

func (op *TLSHandshakeFunc) finish(conn TLSConn, err error) (TLSConn, error) {
	if err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func (op *TLSHandshakeFunc) tlsConfig() *tls.Config {
	runtimex.Assert(op.Config != nil)
	config := op.Config.Clone()
	config.Time = op.TimeNow
	return config
}

func (op *TLSHandshakeFunc) logHandshakeStart(engine TLSEngine,
	conn net.Conn, t0 time.Time, deadline time.Time, config *tls.Config) {
	op.Logger.Info(
		"tlsHandshakeStart",
		slog.Time("deadline", deadline),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", safeconn.Network(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t", t0),
		slog.String("tlsEngineName", engine.Name()),
		slog.String("tlsParrot", engine.Parrot()),
		slog.Any("tlsOfferedProtocols", config.NextProtos),
		slog.String("tlsServerName", config.ServerName),
		slog.Bool("tlsSkipVerify", config.InsecureSkipVerify),
	)
}

func (op *TLSHandshakeFunc) logHandshakeDone(engine TLSEngine,
	conn net.Conn, t0 time.Time, deadline time.Time, config *tls.Config, err error, state tls.ConnectionState) {
	op.Logger.Info(
		"tlsHandshakeDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", safeconn.Network(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
		slog.String("tlsCipherSuite", tls.CipherSuiteName(state.CipherSuite)),
		slog.String("tlsEngineName", engine.Name()),
		slog.String("tlsParrot", engine.Parrot()),
		slog.String("tlsNegotiatedProtocol", state.NegotiatedProtocol),
		slog.Any("tlsOfferedProtocols", config.NextProtos),
		slog.Any("tlsPeerCerts", op.peerCerts(state, err)),
		slog.String("tlsServerName", config.ServerName),
		slog.Bool("tlsSkipVerify", config.InsecureSkipVerify),
		slog.String("tlsVersion", tls.VersionName(state.Version)),
	)
}

func (op *TLSHandshakeFunc) peerCerts(state tls.ConnectionState, err error) (out [][]byte) {
	out = [][]byte{}

	// 1. Check whether the error is a known certificate error and extract
	// the certificate using `errors.As` for additional robustness.
	var x509HostnameError x509.HostnameError
	if errors.As(err, &x509HostnameError) {
		// Test case: https://wrong.host.badssl.com/
		out = append(out, x509HostnameError.Certificate.Raw)
		return
	}

	var x509UnknownAuthorityError x509.UnknownAuthorityError
	if errors.As(err, &x509UnknownAuthorityError) {
		// Test case: https://self-signed.badssl.com/. This error has
		// never been among the ones returned by MK.
		out = append(out, x509UnknownAuthorityError.Cert.Raw)
		return
	}

	var x509CertificateInvalidError x509.CertificateInvalidError
	if errors.As(err, &x509CertificateInvalidError) {
		// Test case: https://expired.badssl.com/
		out = append(out, x509CertificateInvalidError.Cert.Raw)
		return
	}

	// 2. Otherwise extract certificates from the connection state.
	for _, cert := range state.PeerCertificates {
		out = append(out, cert.Raw)
	}
	return
}
