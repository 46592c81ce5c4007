// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package deeplink builds the external map URL for a place.
//
// The first available identifier wins: the provider place id, then
// coordinates, then a free-text search on the name.
package deeplink

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/placemap/internal/models"
)

// Template placeholders.
const (
	PlaceholderPlaceID = "{place_id}"
	PlaceholderLat     = "{lat}"
	PlaceholderLng     = "{lng}"
	PlaceholderQuery   = "{query}"
)

// Templates holds one URL pattern per resolution strategy.
type Templates struct {
	PlaceID     string `koanf:"place_id_url"`
	Coordinates string `koanf:"coordinates_url"`
	Search      string `koanf:"search_url"`
}

// DefaultTemplates targets Google Maps.
func DefaultTemplates() Templates {
	return Templates{
		PlaceID:     "https://www.google.com/maps/place/?q=place_id:" + PlaceholderPlaceID,
		Coordinates: "https://www.google.com/maps/search/?api=1&query=" + PlaceholderLat + "," + PlaceholderLng,
		Search:      "https://www.google.com/maps/search/?api=1&query=" + PlaceholderQuery,
	}
}

// Resolver turns places into deep links. The zero value is not usable; use
// NewResolver.
type Resolver struct {
	templates Templates
}

// NewResolver returns a resolver using t. Empty patterns fall back to the
// defaults.
func NewResolver(t Templates) *Resolver {
	def := DefaultTemplates()
	if t.PlaceID == "" {
		t.PlaceID = def.PlaceID
	}
	if t.Coordinates == "" {
		t.Coordinates = def.Coordinates
	}
	if t.Search == "" {
		t.Search = def.Search
	}
	return &Resolver{templates: t}
}

var defaultResolver = NewResolver(DefaultTemplates())

// Resolve is Resolver.Resolve with the default templates.
func Resolve(p *models.Place) (string, bool) {
	return defaultResolver.Resolve(p)
}

// Resolve returns the deep link for p, or false when p carries nothing to
// link to.
func (r *Resolver) Resolve(p *models.Place) (string, bool) {
	if p == nil {
		return "", false
	}

	if id := strings.TrimSpace(p.GooglePlaceID); id != "" {
		return strings.ReplaceAll(r.templates.PlaceID, PlaceholderPlaceID, encodeComponent(id)), true
	}

	if p.HasLocation() {
		link := strings.NewReplacer(
			PlaceholderLat, formatDegrees(p.Coordinates.Lat),
			PlaceholderLng, formatDegrees(p.Coordinates.Lng),
		).Replace(r.templates.Coordinates)
		return link, true
	}

	if name := strings.TrimSpace(p.Name); name != "" {
		return strings.ReplaceAll(r.templates.Search, PlaceholderQuery, encodeComponent(name)), true
	}

	return "", false
}

// componentUnescaper undoes the escapes url.QueryEscape adds beyond what
// browsers' encodeURIComponent produces.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s for a query value the way browsers encode URI
// components: spaces as %20 and !'()* left literal.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// formatDegrees prints the shortest exact decimal form, never an exponent.
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
