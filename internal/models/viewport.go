// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

// ViewportBounds is a geographic bounding box handed to the map widget's
// fit-bounds call. West may exceed East when the box spans the antimeridian.
type ViewportBounds struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// Viewport is a centre and zoom level, used before any marker exists and
// whenever a sync produces no fit region.
type Viewport struct {
	Center Coordinates `json:"center"`
	Zoom   int         `json:"zoom"`
}
