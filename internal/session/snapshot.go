// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import (
	"slices"
	"time"

	"github.com/tomtom215/placemap/internal/gallery"
	"github.com/tomtom215/placemap/internal/markers"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/presenter"
	"github.com/tomtom215/placemap/internal/projection"
)

// MapView is the map tab: the drawn markers and where to point the camera.
type MapView struct {
	Markers []markers.Marker       `json:"markers"`
	Fit     *models.ViewportBounds `json:"fit,omitempty"`
	// Viewport is the camera to use when Fit is nil.
	Viewport models.Viewport `json:"viewport"`
}

// Counts are the header numbers: places shown by the list and the total.
type Counts struct {
	Shown int `json:"shown"`
	Total int `json:"total"`
}

// Snapshot is the complete, immutable state of a session.
type Snapshot struct {
	ID       string `json:"id"`
	Status   Status `json:"status"`
	Error    string `json:"error,omitempty"`
	VideoURL string `json:"video_url,omitempty"`

	// Empty is set when an analysis succeeded with no places; EmptyMessage
	// is the text to show instead of the results.
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"empty_message,omitempty"`

	Tab    models.Tab     `json:"tab"`
	Filter models.Filter  `json:"filter"`
	Sort   models.SortKey `json:"sort"`

	Counts  Counts                    `json:"counts"`
	Catalog []projection.CatalogEntry `json:"catalog"`
	List    presenter.ListView        `json:"list"`
	Map     MapView                   `json:"map"`
	Gallery gallery.View              `json:"gallery"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns the full current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Status returns the analysis status and the error text of the last
// failure.
func (s *Session) Status() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.errMsg
}

// snapshotLocked must be called with s.mu held.
func (s *Session) snapshotLocked() Snapshot {
	list := s.listLocked()
	empty := s.status == StatusReady && len(s.places) == 0

	snap := Snapshot{
		ID:       s.id,
		Status:   s.status,
		Error:    s.errMsg,
		VideoURL: s.videoURL,
		Empty:    empty,
		Tab:      s.tab,
		Filter:   s.filter,
		Sort:     s.sort,
		Counts: Counts{
			Shown: list.Shown,
			Total: len(s.places),
		},
		Catalog:   slices.Clone(s.catalog),
		List:      list,
		Map:       s.mapLocked(),
		Gallery:   s.gallery.View(),
		CreatedAt: s.createdAt,
		UpdatedAt: s.updated,
	}
	if empty {
		snap.EmptyMessage = s.opts.EmptyMessage
	}
	return snap
}
