// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollPumpState_DisabledWhenIntervalNonPositive(t *testing.T) {
	now := time.Now()
	p := newPollPumpState(0, now)
	assert.False(t, p.due(now.Add(time.Hour)))

	p = newPollPumpState(-1, now)
	assert.False(t, p.due(now.Add(time.Hour)))
}

func TestPollPumpState_FiresAfterIntervalAndReschedules(t *testing.T) {
	now := time.Now()
	p := newPollPumpState(time.Minute, now)

	assert.False(t, p.due(now.Add(30*time.Second)))
	assert.True(t, p.due(now.Add(time.Minute)))

	// Immediately after firing, it should not be due again until another
	// full interval has elapsed.
	assert.False(t, p.due(now.Add(time.Minute+30*time.Second)))
	assert.True(t, p.due(now.Add(2*time.Minute)))
}
