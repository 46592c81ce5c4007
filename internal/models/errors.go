// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import "fmt"

// ValidationError reports a malformed place record.
type ValidationError struct {
	// Index is the record's position in the analyzer response.
	Index  int
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("place %d: %s %s", e.Index, e.Field, e.Reason)
}
