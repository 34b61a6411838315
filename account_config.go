// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"crypto/tls"
	"crypto/x509"
	"strconv"
	"time"

	"github.com/AS207960/eppcore/metrics"
	"github.com/AS207960/eppcore/store"
)

// Signer is an opaque client-certificate signing capability (§3, §5).
//
// It abstracts over an in-process private key and an HSM/PKCS#11-backed
// key: both can produce a [tls.Certificate] usable for the mutual-TLS
// handshake. The core never inspects key material directly; loading
// PKCS#11 keys is an external collaborator's responsibility (out of
// scope per spec.md §1). Signer implementations must be safe to share
// across sessions and to guard their own internal concurrency; callers
// only invoke them during the TLS handshake.
type Signer interface {
	// ClientCertificate returns the certificate (and, for an in-process
	// key, the private key) to present during the TLS handshake.
	ClientCertificate() (tls.Certificate, error)
}

// staticSigner wraps an already-loaded [tls.Certificate].
type staticSigner struct {
	cert tls.Certificate
}

// NewStaticSigner returns a [Signer] for an inline PEM certificate/key
// pair, already parsed into a [tls.Certificate] (e.g. via
// [tls.X509KeyPair]).
func NewStaticSigner(cert tls.Certificate) Signer {
	return &staticSigner{cert: cert}
}

// ClientCertificate implements [Signer].
func (s *staticSigner) ClientCertificate() (tls.Certificate, error) {
	return s.cert, nil
}

// AccountConfig is the immutable, per-account configuration (§3). It is
// constructed by an external loader and never mutated for the life of a
// [Session]: after a successful password-change login the session keeps
// the new password in its own state and persists it via the artifact
// store, leaving Password and NewPassword here unchanged.
type AccountConfig struct {
	// ID identifies the account for logging, artifact persistence, and
	// metrics.
	ID string

	// Host is the registry server hostname or IP.
	Host string

	// Port is the registry server port (conventionally 700).
	Port int

	// ServerName is used for SNI and certificate verification; defaults
	// to Host when empty.
	ServerName string

	// ClientID is the registrar's EPP login identifier.
	ClientID string

	// Password is the registrar's EPP login password, read once by
	// [NewSession]. After a successful password-change login the session
	// logs in with the new password on reconnect (§4.4); this field is not
	// updated.
	Password string

	// NewPassword, when non-empty, is sent as <newPW> on the first login
	// of a [Session], triggering a password change. After success the
	// session stops sending it; this field is not cleared.
	NewPassword string

	// Signer supplies the client certificate for mutual TLS. May be nil
	// for registries that do not require a client certificate.
	Signer Signer

	// TrustedRoots is the pool of CA certificates used to verify the
	// registry's certificate. A nil pool means use the system roots.
	TrustedRoots *x509.CertPool

	// DesiredExtensionURIs lists the extension URIs the caller wishes to
	// negotiate; see [ServerFeatures].
	DesiredExtensionURIs []string

	// Erratum names a workaround bundle (see the Erratum* constants), or
	// "" for none.
	Erratum string

	// Pipelining, when true, allows the dispatcher to have more than one
	// command in flight (§4.5).
	Pipelining bool

	// MaxInFlight bounds the number of concurrent in-flight commands
	// when Pipelining is true. Zero means use [DefaultMaxInFlight].
	MaxInFlight int

	// KeepAliveInterval overrides the default keep-alive cadence (§4.4).
	// Zero means use the default: 10 minutes, or the server-advertised
	// session timeout minus 60s, whichever is smaller.
	KeepAliveInterval time.Duration

	// Language is the requested EPP session language (e.g. "en").
	// Defaults to "en" when empty.
	Language string

	// CommandTimeout overrides the per-command timeout (§4.5). Zero
	// means use [DefaultCommandTimeout].
	CommandTimeout time.Duration

	// Store archives every sent/received frame for this account (§4.6,
	// §6). Nil means archiving is disabled ([store.NopStore]). Callers
	// normally pass a [store.Scoped] wrapping a shared [store.FSStore] or
	// [store.RedisStore] so keys never collide across accounts.
	Store store.Store

	// Metrics receives this account's counters and timers (§4.6). Nil
	// means metrics are disabled ([metrics.NopMetrics]).
	Metrics metrics.Metrics

	// PollPumpInterval sets the cadence of the automatic poll-request/
	// poll-ack loop (§4.4 "Poll pump"). Zero means use
	// [DefaultPollPumpInterval]; a negative value disables the pump
	// entirely (callers must then drive `poll` manually via Submit).
	PollPumpInterval time.Duration
}

// effectiveStore returns the configured [store.Store], falling back to
// [store.NopStore].
func (c *AccountConfig) effectiveStore() store.Store {
	if c.Store != nil {
		return c.Store
	}
	return store.NopStore{}
}

// effectiveMetrics returns the configured [metrics.Metrics], falling back
// to [metrics.NopMetrics].
func (c *AccountConfig) effectiveMetrics() metrics.Metrics {
	if c.Metrics != nil {
		return c.Metrics
	}
	return metrics.NopMetrics{}
}

// DefaultPollPumpInterval is the default cadence of the automatic poll
// pump when [AccountConfig.PollPumpInterval] is unset (§4.4).
const DefaultPollPumpInterval = 5 * time.Minute

// effectivePollPumpInterval returns the configured poll pump cadence,
// falling back to [DefaultPollPumpInterval]. A negative value is returned
// unchanged, signaling "disabled" to the caller.
func (c *AccountConfig) effectivePollPumpInterval() time.Duration {
	if c.PollPumpInterval == 0 {
		return DefaultPollPumpInterval
	}
	return c.PollPumpInterval
}

// DefaultMaxInFlight is the default pipelining depth when
// [AccountConfig.Pipelining] is true and MaxInFlight is unset.
const DefaultMaxInFlight = 8

// DefaultCommandTimeout is the default per-pending-entry timeout (§4.5).
const DefaultCommandTimeout = 60 * time.Second

// DefaultKeepAliveInterval is the default hello-on-idle cadence (§4.4).
const DefaultKeepAliveInterval = 10 * time.Minute

// Address returns the "host:port" string used to dial the registry.
func (c *AccountConfig) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// SNIName returns the name to present in the TLS ClientHello.
func (c *AccountConfig) SNIName() string {
	if c.ServerName != "" {
		return c.ServerName
	}
	return c.Host
}

// effectiveKeepAliveInterval returns the configured interval, falling
// back to [DefaultKeepAliveInterval], capped against the server-advertised
// session timeout per §4.4 ("whichever is smaller").
func (c *AccountConfig) effectiveKeepAliveInterval(serverTimeout time.Duration) time.Duration {
	interval := c.KeepAliveInterval
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	if serverTimeout > 0 {
		margin := serverTimeout - 60*time.Second
		if margin > 0 && margin < interval {
			interval = margin
		}
	}
	return interval
}

// effectiveCommandTimeout returns the configured per-command timeout,
// falling back to [DefaultCommandTimeout].
func (c *AccountConfig) effectiveCommandTimeout() time.Duration {
	if c.CommandTimeout > 0 {
		return c.CommandTimeout
	}
	return DefaultCommandTimeout
}

// effectiveMaxInFlight returns the configured pipelining depth, falling
// back to [DefaultMaxInFlight], or 1 when pipelining is disabled.
func (c *AccountConfig) effectiveMaxInFlight() int {
	if !c.Pipelining {
		return 1
	}
	if c.MaxInFlight > 0 {
		return c.MaxInFlight
	}
	return DefaultMaxInFlight
}

// effectiveLanguage returns the configured session language, defaulting
// to "en".
func (c *AccountConfig) effectiveLanguage() string {
	if c.Language != "" {
		return c.Language
	}
	return "en"
}
