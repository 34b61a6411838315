// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"context"
	"time"

	"github.com/AS207960/eppcore/wire"
)

// sessionTimeoutHint returns the registry's advertised idle-session
// timeout, where zero means "use the account's configured default"
// (§4.4). It always returns zero: the greeting is not inspected, since no
// EPP greeting schema standardizes this value.
func sessionTimeoutHint(greeting *wire.Greeting) time.Duration {
	return 0
}

// KeepAlive issues a <hello> on the account's configured cadence to keep
// the session alive and to detect a dead connection before the next real
// command would (§4.4). The <hello> is sent every interval whether or not
// other commands used the connection in the meantime.
type KeepAlive struct {
	dispatcher *Dispatcher
	interval   time.Duration
	timeNow    func() time.Time
}

// NewKeepAlive builds a [*KeepAlive] for account, using the interval
// derived from its configuration and the greeting's session timeout hint,
// if any.
func NewKeepAlive(dispatcher *Dispatcher, account *AccountConfig, greeting *wire.Greeting, timeNow func() time.Time) *KeepAlive {
	if timeNow == nil {
		timeNow = time.Now
	}
	return &KeepAlive{
		dispatcher: dispatcher,
		interval:   account.effectiveKeepAliveInterval(sessionTimeoutHint(greeting)),
		timeNow:    timeNow,
	}
}

// Run sends a <hello> every interval until ctx is canceled or the
// dispatcher shuts down. A <hello> triggers the server's unsolicited
// <greeting>, which Run discards as wire.Decode correlates it to no
// pending request (its envelope has no <response> at all) and the
// dispatcher never even sees it on the frames channel, since a bare
// greeting reply has no client-TRID to route: Run relies purely on the
// TCP-level activity to keep the connection and any upstream NAT/firewall
// state alive, not on decoding the reply.
func (k *KeepAlive) Run(ctx context.Context) {
	if k.interval <= 0 {
		return
	}
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			req := NewRequest(KindHello, nil)
			if err := k.dispatcher.Submit(ctx, req); err != nil {
				return
			}
		}
	}
}
