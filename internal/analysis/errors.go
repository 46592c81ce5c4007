// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package analysis

import "fmt"

// InputError reports an empty or malformed video link. It is raised before
// any network call.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// RequestFailure reports a failed analyzer call: transport error, non-2xx
// status, success=false or an open circuit. Message is what the user sees;
// it is the analyzer's own error text when one was returned.
type RequestFailure struct {
	Status  int // HTTP status, 0 when no response was received
	Message string
	Err     error
}

func (e *RequestFailure) Error() string {
	return e.Message
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// Detail returns a log-friendly description including the cause.
func (e *RequestFailure) Detail() string {
	if e.Err == nil {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("status %d: %s: %v", e.Status, e.Message, e.Err)
}
