// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import (
	"fmt"
	"strings"
)

// Coordinates is a WGS84 point. The pair (0,0) is the "no location" sentinel
// and is never treated as a real point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsSentinel reports whether c is the (0,0) missing-location marker.
func (c Coordinates) IsSentinel() bool {
	return c.Lat == 0 && c.Lng == 0
}

// Place is a normalized point of interest surfaced by video analysis.
// A Place is immutable once it has been placed in a session collection.
//
// Optional fields use their zero value for "absent": Coordinates and Rating
// are nil, Address/Website/GooglePlaceID are empty strings.
type Place struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Type          PlaceType    `json:"type"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Rating        *float64     `json:"rating,omitempty"`
	Address       string       `json:"address,omitempty"`
	Website       string       `json:"website,omitempty"`
	Photos        []string     `json:"photos"`
	GooglePlaceID string       `json:"google_place_id,omitempty"`
}

// HasLocation reports whether the place has a usable, non-sentinel point.
func (p *Place) HasLocation() bool {
	return p.Coordinates != nil && !p.Coordinates.IsSentinel()
}

// RatingOrZero returns the rating, or 0 when the place is unrated.
func (p *Place) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// HasPhotos reports whether the place has at least one photo.
func (p *Place) HasPhotos() bool {
	return len(p.Photos) > 0
}

// RawPlace is a place record as returned by the upstream analyzer, before
// normalization. Every field may be missing.
type RawPlace struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	Coordinates   *RawCoordinates `json:"coordinates"`
	Rating        *float64        `json:"rating"`
	Address       string          `json:"address"`
	Website       string          `json:"website"`
	Photos        []string        `json:"photos"`
	PhotoURL      string          `json:"photo_url"`
	GooglePlaceID string          `json:"google_place_id"`
}

// RawCoordinates keeps lat/lng optional so a half-filled pair is detectable.
type RawCoordinates struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// NormalizePlace converts a raw analyzer record into a Place.
//
// It fails with *ValidationError when the name is missing or blank. All other
// fields fall back to defaults: type "other", no rating, no coordinates, no
// photos. A missing id is replaced by "place_{index}". The legacy single
// photo_url field is used when the photo list is empty.
func NormalizePlace(raw RawPlace, index int) (Place, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Place{}, &ValidationError{Index: index, Field: "name", Reason: "is required"}
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = fmt.Sprintf("place_%d", index)
	}

	placeType := PlaceType(strings.TrimSpace(raw.Type))
	if placeType == "" {
		placeType = PlaceTypeOther
	}

	place := Place{
		ID:            id,
		Name:          name,
		Description:   raw.Description,
		Type:          placeType,
		Rating:        copyRating(raw.Rating),
		Address:       strings.TrimSpace(raw.Address),
		Website:       strings.TrimSpace(raw.Website),
		Photos:        normalizePhotos(raw.Photos, raw.PhotoURL),
		GooglePlaceID: strings.TrimSpace(raw.GooglePlaceID),
	}

	if raw.Coordinates != nil && raw.Coordinates.Lat != nil && raw.Coordinates.Lng != nil {
		c := Coordinates{Lat: *raw.Coordinates.Lat, Lng: *raw.Coordinates.Lng}
		if !c.IsSentinel() {
			place.Coordinates = &c
		}
	}

	return place, nil
}

// NormalizePlaces normalizes a full analyzer response in order. It stops at
// the first invalid record and rejects duplicate ids, so a returned slice is
// always a valid collection.
func NormalizePlaces(raws []RawPlace) ([]Place, error) {
	places := make([]Place, 0, len(raws))
	seen := make(map[string]int, len(raws))

	for i := range raws {
		place, err := NormalizePlace(raws[i], i)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[place.ID]; dup {
			return nil, &ValidationError{
				Index:  i,
				Field:  "id",
				Reason: fmt.Sprintf("duplicates record %d (%q)", first, place.ID),
			}
		}
		seen[place.ID] = i
		places = append(places, place)
	}

	return places, nil
}

func copyRating(r *float64) *float64 {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}

// normalizePhotos drops blank references and keeps the original order.
func normalizePhotos(photos []string, fallback string) []string {
	out := make([]string, 0, len(photos))
	for _, ref := range photos {
		ref = strings.TrimSpace(ref)
		if ref != "" {
			out = append(out, ref)
		}
	}
	if len(out) == 0 {
		if fallback = strings.TrimSpace(fallback); fallback != "" {
			out = append(out, fallback)
		}
	}
	return out
}
