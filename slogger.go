//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/netxlite/dialer.go
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/x/netcore/dialer.go
//

package eppcore

// SLogger abstracts the [*slog.Logger] behavior.
//
// By using an abstraction we allow for unit testing and alternative implementations.
//
// This package uses four log levels:
//   - Info for lifecycle and protocol events (connect, close, TLS handshake,
//     login, logout)
//   - Debug for per-I/O events (read, write, set deadline)
//   - Warn for recoverable faults that do not tear the session down (a
//     failed artifact-store write, a failed password persist)
//   - Error for faults a caller should know about even though the
//     dispatcher already handled them (an undecodable response)
//
// The [*slog.Logger] type satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultSLogger returns the default [SLogger] to use.
//
// The default is a no-op logger that discards all output. This follows the
// library convention of not writing to stdout/stderr unless explicitly configured.
//
// Use a custom [*slog.Logger] for emitting logs.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

// discardSLogger is a no-op [SLogger] that discards all log messages.
type discardSLogger struct{}

var _ SLogger = discardSLogger{}

// Debug implements [SLogger].
func (discardSLogger) Debug(msg string, args ...any) {
	// nothing
}

// Info implements [SLogger].
func (discardSLogger) Info(msg string, args ...any) {
	// nothing
}

// Warn implements [SLogger].
func (discardSLogger) Warn(msg string, args ...any) {
	// nothing
}

// Error implements [SLogger].
func (discardSLogger) Error(msg string, args ...any) {
	// nothing
}
