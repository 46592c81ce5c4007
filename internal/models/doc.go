// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package models defines the place record and the view parameters shared by
every layer of the place-presentation engine.

Key Components:

  - Place: normalized point of interest (immutable once in a collection)
  - RawPlace: analyzer record before normalization
  - NormalizePlace / NormalizePlaces: validation and defaulting
  - PlaceType: closed enum with verbatim passthrough of unknown values
  - MarkerIcon, Emoji, ColorClass: total lookups with an "other" default arm
  - Tab, SortKey, Filter: session view parameters
  - ViewportBounds, Viewport: map fit region and default camera

Sentinel coordinates:

The analyzer reports (0,0) when it could not geocode a place. Normalization
turns that pair into a nil Coordinates pointer so that no later stage can
mistake it for a real point.
*/
package models
