// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package markers

import (
	"slices"
	"sync"

	"github.com/tomtom215/placemap/internal/models"
)

// Update tells the map widget how to move from the drawn set to the new one.
type Update struct {
	// Stale lists every marker that was active before this update.
	Stale   []string               `json:"stale"`
	Markers []Marker               `json:"markers"`
	Fit     *models.ViewportBounds `json:"fit,omitempty"`
	// Viewport is the camera to keep when Fit is nil.
	Viewport models.Viewport `json:"viewport"`
}

// Layer holds the marker set currently shown on the map.
// It is safe for concurrent use.
type Layer struct {
	mu       sync.RWMutex
	fallback models.Viewport
	active   []Marker
	byID     map[string]int
	fit      *models.ViewportBounds
}

// NewLayer returns an empty layer that falls back to viewport when a sync
// has nothing to fit.
func NewLayer(viewport models.Viewport) *Layer {
	return &Layer{
		fallback: viewport,
		active:   []Marker{},
		byID:     make(map[string]int),
	}
}

// Replace swaps the active set for res. Calling it twice with the same
// result leaves the layer in the same state.
func (l *Layer) Replace(res Result) Update {
	l.mu.Lock()
	defer l.mu.Unlock()

	stale := make([]string, len(l.active))
	for i := range l.active {
		stale[i] = l.active[i].PlaceID
	}

	l.active = make([]Marker, len(res.Markers))
	copy(l.active, res.Markers)
	l.byID = make(map[string]int, len(l.active))
	for i := range l.active {
		l.byID[l.active[i].PlaceID] = i
	}
	l.fit = res.Fit

	return Update{
		Stale:    stale,
		Markers:  slices.Clone(l.active),
		Fit:      res.Fit,
		Viewport: l.fallback,
	}
}

// Lookup resolves a marker click to its place id.
func (l *Layer) Lookup(placeID string) (Marker, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.byID[placeID]
	if !ok {
		return Marker{}, false
	}
	return l.active[i], true
}

// Active returns a copy of the drawn markers.
func (l *Layer) Active() []Marker {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.active)
}

// Fit returns the bounds of the last sync, or nil.
func (l *Layer) Fit() *models.ViewportBounds {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fit
}

// DefaultViewport returns the fallback camera.
func (l *Layer) DefaultViewport() models.Viewport {
	return l.fallback
}

// Len returns the number of active markers.
func (l *Layer) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.active)
}
