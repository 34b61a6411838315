// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import "github.com/bassosimone/errclass"

// ErrClassifier classifies errors into categorical strings for analysis.
//
// Implementations map errors to short, descriptive labels (e.g., "ETIMEDOUT",
// "ECONNRESET") that facilitate systematic analysis of network measurement results.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
//
// This allows using simple functions as classifiers:
//
//	op.ErrClassifier = ErrClassifierFunc(errclass.New)
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// DefaultErrClassifier classifies transport errors via
// [github.com/bassosimone/errclass], returning an empty string for a nil
// error (§4.6: [Error.ErrClass] is the value the dispatcher attaches to
// every [ErrKindTransport] error it builds).
var DefaultErrClassifier = ErrClassifierFunc(errclass.New)
