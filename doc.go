// SPDX-License-Identifier: GPL-3.0-or-later

// Package eppcore implements the per-registry connection core of a
// multi-tenant EPP (Extensible Provisioning Protocol, RFC 5730 et seq.)
// proxy: one long-lived, authenticated session per registry account,
// speaking length-framed EPP XML over TLS, exposed to callers as a
// uniform request/response API.
//
// # Core Abstraction
//
// The low-level connection pipeline is built around a single interface,
// inherited from the measurement-pipeline heritage of this code:
//
//	type Func[A, B any] interface {
//		Call(ctx context.Context, input A) (B, error)
//	}
//
// Each Func represents an atomic network operation with exactly one
// success mode and one failure mode. Each (re)connect attempt of a
// [Session] composes [ConnectFunc], [TLSHandshakeFunc], a [FuncAdapter]
// that turns the [TLSConn] into a [net.Conn], [ObserveConnFunc] and
// [CancelWatchFunc] via [Compose5] into the single path that produces a
// ready-to-frame [net.Conn].
//
// # Available Primitives
//
// Connection establishment:
//   - [ConnectFunc]: dials the registry's host:port over TCP
//   - [TLSHandshakeFunc]: performs the mutual-TLS handshake, verifying the
//     server certificate against the account's configured trust roots
//   - [ObserveConnFunc]: observes the connection for structured I/O logging
//   - [CancelWatchFunc]: closes the connection on context cancellation, so a
//     session shutdown interrupts any blocked read/write immediately
//
// Composition utilities:
//   - [Compose2] through [Compose8]: chain Funcs into pipelines
//   - [FuncAdapter]: wrap a function as a Func for ad-hoc custom behavior
//   - [Apply]: bind a fixed input to a Func
//   - [ConstFunc]: lift a pure value into a Func
//   - [NewEndpointFunc]: convenience wrapper for ConstFunc with endpoints
//
// # Session, dispatcher, router
//
// [Session] drives the state machine described in the package-level design
// (Closed -> TlsUp -> Greeted -> Ready -> Closing -> Closed), including
// login, keep-alive, the poll pump, graceful logout and exponential-backoff
// reconnection. [Dispatcher] owns the single in-flight (or pipelined, when
// configured) socket for one account, assigns client transaction IDs,
// demultiplexes responses, and routes unsolicited frames to the [PollSink].
// The wire codec lives in the sibling package [eppcore/wire]; the
// per-operation request/response transforms live in [eppcore/router].
//
// # Observability
//
// All primitives support structured logging via [SLogger] (compatible with
// [log/slog]). By default, logging is disabled. Error classification is
// configurable via [ErrClassifier]; by default, [github.com/bassosimone/errclass]
// is used to map transport errors to short, analyzable class strings.
//
// Primitives emit two kinds of structured log events:
//
//   - Span events (*Start/*Done pairs): record operation lifecycle including
//     timing and success/failure.
//   - Wire observations (eppFrameSent/eppFrameReceived): capture the raw
//     framed XML for protocol debugging and artifact persistence.
//
// Use [NewSpanID] to generate a unique, time-ordered identifier (UUIDv7) for
// each session attempt, then attach it to the logger with [*slog.Logger.With].
//
// # Timeout and Context Philosophy
//
// This package is context-transparent: operations never modify the context
// they receive. The caller controls timeouts externally via
// [context.WithTimeout] or [context.WithDeadline]. [CancelWatchFunc] binds
// context cancellation to the connection so in-progress I/O fails promptly;
// every session pipeline includes it.
//
// # Design Boundaries
//
// This package is the protocol core only. Configuration-file parsing, HSM
// key loading (beyond the opaque [Signer] capability), the gRPC surface,
// artifact/log persistence beyond the [eppcore/store] interface, and the
// TMCH client are external collaborators, not part of this package.
package eppcore
