// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"net"
	"time"
)

// PipelineConfig holds common configuration for the low-level connect/TLS/observe pipeline.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewPipelineConfig].
type PipelineConfig struct {
	// Dialer is used by [*ConnectFunc].
	//
	// Set by [NewPipelineConfig] to [*net.Dialer].
	Dialer Dialer

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewPipelineConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewPipelineConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewPipelineConfig creates a [*PipelineConfig] with sensible defaults.
func NewPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Dialer:        &net.Dialer{},
		ErrClassifier: DefaultErrClassifier,
		TimeNow:       time.Now,
	}
}
