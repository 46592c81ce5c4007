// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import "errors"

var (
	// ErrAnalysisInProgress is returned when an analysis is requested while
	// another one for the same session is still running.
	ErrAnalysisInProgress = errors.New("analysis already in progress")

	// ErrPlaceNotFound is returned for a place id outside the collection.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrNoMarker is returned for a place that is not drawn on the map, so
	// it has no marker popup.
	ErrNoMarker = errors.New("place has no map marker")

	// ErrNotFound is returned by the store for unknown or expired sessions.
	ErrNotFound = errors.New("session not found")

	// ErrStoreFull is returned when the configured session limit is reached.
	ErrStoreFull = errors.New("session limit reached")
)
