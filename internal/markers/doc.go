// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package markers derives map marker descriptors and the viewport fit from a
place collection.

Sync is pure: it emits one Marker per place with a real location, skips
places without one (including the (0,0) sentinel), and computes the smallest
bounding box of the emitted positions with github.com/golang/geo/s2, so a set
that straddles the antimeridian is fitted the short way round.

Layer tracks the marker set currently drawn by the map widget. Every Replace
reports the full previous set as stale, so markers never accumulate across
syncs no matter how often the widget is asked to redraw.
*/
package markers
