// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package gallery implements the per-place photo carousel state machine.
//
// The controller is either closed or open on one place with a cursor into
// its photos. Navigation saturates at both ends and never wraps.
package gallery

import (
	"fmt"
	"slices"

	"github.com/tomtom215/placemap/internal/models"
)

// Keyboard keys understood by HandleKey.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Controller is not safe for concurrent use; the owning session serializes
// access.
type Controller struct {
	open    bool
	placeID string
	name    string
	photos  []string
	cursor  int
}

// New returns a closed controller.
func New() *Controller {
	return &Controller{}
}

// Open shows the first photo of p. It does nothing and returns false when p
// has no photos. Opening while already open switches to p.
func (c *Controller) Open(p *models.Place) bool {
	if p == nil || !p.HasPhotos() {
		return false
	}
	c.open = true
	c.placeID = p.ID
	c.name = p.Name
	c.photos = slices.Clone(p.Photos)
	c.cursor = 0
	return true
}

// Next advances one photo and reports whether the cursor moved.
func (c *Controller) Next() bool {
	if !c.open || c.cursor >= len(c.photos)-1 {
		return false
	}
	c.cursor++
	return true
}

// Previous steps back one photo and reports whether the cursor moved.
func (c *Controller) Previous() bool {
	if !c.open || c.cursor == 0 {
		return false
	}
	c.cursor--
	return true
}

// Close returns to the closed state. Closing a closed gallery is a no-op.
func (c *Controller) Close() bool {
	if !c.open {
		return false
	}
	*c = Controller{}
	return true
}

// HandleKey maps a keyboard key to a transition and reports whether the
// state changed. Keys are ignored while closed.
func (c *Controller) HandleKey(key string) bool {
	if !c.open {
		return false
	}
	switch key {
	case KeyEscape:
		return c.Close()
	case KeyArrowLeft:
		return c.Previous()
	case KeyArrowRight:
		return c.Next()
	default:
		return false
	}
}

// IsOpen reports whether the gallery is showing a place.
func (c *Controller) IsOpen() bool {
	return c.open
}

// PlaceID returns the place being shown, or "" when closed.
func (c *Controller) PlaceID() string {
	return c.placeID
}

// Cursor returns the zero-based index of the displayed photo.
func (c *Controller) Cursor() int {
	return c.cursor
}

// View is the render state of the gallery modal.
type View struct {
	Open        bool     `json:"open"`
	PlaceID     string   `json:"place_id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Current     string   `json:"current,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Cursor      int      `json:"cursor"`
	Counter     string   `json:"counter,omitempty"`
	CanPrevious bool     `json:"can_previous"`
	CanNext     bool     `json:"can_next"`
}

// View returns a snapshot of the display state.
func (c *Controller) View() View {
	if !c.open {
		return View{}
	}
	return View{
		Open:        true,
		PlaceID:     c.placeID,
		Title:       c.name,
		Current:     c.photos[c.cursor],
		Photos:      slices.Clone(c.photos),
		Cursor:      c.cursor,
		Counter:     fmt.Sprintf("%d / %d", c.cursor+1, len(c.photos)),
		CanPrevious: c.cursor > 0,
		CanNext:     c.cursor < len(c.photos)-1,
	}
}
