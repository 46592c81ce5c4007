// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

// PlaceType is the category of a place. Values outside the known set are kept
// verbatim for display and grouping but presented as PlaceTypeOther.
type PlaceType string

// Known place types.
const (
	PlaceTypePark      PlaceType = "park"
	PlaceTypeMountains PlaceType = "mountains"
	PlaceTypeSea       PlaceType = "sea"
	PlaceTypeCity      PlaceType = "city"
	PlaceTypeLake      PlaceType = "lake"
	PlaceTypeMonument  PlaceType = "monument"
	PlaceTypeOther     PlaceType = "other"
)

// MarkerIconBase is the URL prefix of the per-colour map pin images.
const MarkerIconBase = "https://maps.google.com/mapfiles/ms/icons/"

// Known reports whether t is one of the enumerated types.
func (t PlaceType) Known() bool {
	switch t {
	case PlaceTypePark, PlaceTypeMountains, PlaceTypeSea, PlaceTypeCity,
		PlaceTypeLake, PlaceTypeMonument, PlaceTypeOther:
		return true
	default:
		return false
	}
}

// Kind maps t onto the closed enum; unknown values become PlaceTypeOther.
func (t PlaceType) Kind() PlaceType {
	if t.Known() {
		return t
	}
	return PlaceTypeOther
}

// MarkerColor returns the pin colour name for t.
func MarkerColor(t PlaceType) string {
	switch t.Kind() {
	case PlaceTypePark:
		return "green"
	case PlaceTypeMountains:
		return "orange"
	case PlaceTypeSea, PlaceTypeLake:
		return "blue"
	case PlaceTypeCity:
		return "red"
	case PlaceTypeMonument:
		return "yellow"
	default:
		return "gray"
	}
}

// MarkerIcon returns the map pin image URL for t.
func MarkerIcon(t PlaceType) string {
	return MarkerIconBase + MarkerColor(t) + "-dot.png"
}

// Emoji returns the list and info window glyph for t.
func Emoji(t PlaceType) string {
	switch t.Kind() {
	case PlaceTypePark:
		return "🌳"
	case PlaceTypeMountains:
		return "⛰️"
	case PlaceTypeSea:
		return "🌊"
	case PlaceTypeCity:
		return "🏙️"
	case PlaceTypeMonument:
		return "🏛️"
	case PlaceTypeLake:
		return "🏞️"
	default:
		return "📍"
	}
}

// ColorClass returns the badge CSS classes for t.
func ColorClass(t PlaceType) string {
	switch t.Kind() {
	case PlaceTypePark:
		return "bg-green-100 text-green-800"
	case PlaceTypeMountains:
		return "bg-orange-100 text-orange-800"
	case PlaceTypeSea, PlaceTypeLake:
		return "bg-blue-100 text-blue-800"
	case PlaceTypeCity:
		return "bg-red-100 text-red-800"
	case PlaceTypeMonument:
		return "bg-purple-100 text-purple-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
