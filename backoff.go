// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"math/rand"
	"time"
)

// BackoffInitial is the first reconnect delay (§4.6).
const BackoffInitial = 1 * time.Second

// BackoffFactor multiplies the delay after each failed reconnect attempt.
const BackoffFactor = 2.0

// BackoffMax caps the reconnect delay (§4.6).
const BackoffMax = 60 * time.Second

// BackoffJitter is the +/- fraction applied to each computed delay to
// avoid a thundering herd of reconnecting sessions.
const BackoffJitter = 0.2

// Backoff computes exponential reconnect delays with jitter, reset after a
// successful connection (§4.6 Reconnection strategy). The zero value is
// ready to use.
type Backoff struct {
	attempt int

	// randFloat returns a value in [0, 1); overridable in tests for
	// deterministic jitter.
	randFloat func() float64
}

// NewBackoff returns a ready-to-use [*Backoff].
func NewBackoff() *Backoff {
	return &Backoff{randFloat: rand.Float64}
}

// Next returns the delay before the next reconnect attempt and advances
// the internal attempt counter.
func (b *Backoff) Next() time.Duration {
	if b.randFloat == nil {
		b.randFloat = rand.Float64
	}
	delay := float64(BackoffInitial)
	for i := 0; i < b.attempt; i++ {
		delay *= BackoffFactor
	}
	if capped := float64(BackoffMax); delay > capped {
		delay = capped
	}
	b.attempt++

	jitter := 1 + (b.randFloat()*2-1)*BackoffJitter
	delay *= jitter
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}

// Reset zeroes the attempt counter, called after a successful connection
// and login.
func (b *Backoff) Reset() {
	b.attempt = 0
}
