// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package markers

import (
	"math"
	"slices"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s2"

	"github.com/tomtom215/placemap/internal/models"
)

// Default camera: Warsaw at country zoom.
const (
	DefaultCenterLat = 52.2297
	DefaultCenterLng = 21.0122
	DefaultZoom      = 6
)

// DefaultViewport is the camera used before any marker exists.
func DefaultViewport() models.Viewport {
	return models.Viewport{
		Center: models.Coordinates{Lat: DefaultCenterLat, Lng: DefaultCenterLng},
		Zoom:   DefaultZoom,
	}
}

// Marker is the descriptor for one map pin.
type Marker struct {
	PlaceID  string             `json:"place_id"`
	Position models.Coordinates `json:"position"`
	Label    string             `json:"label"`
	Icon     string             `json:"icon"`
	Type     models.PlaceType   `json:"type"`
}

// Result is the outcome of one synchronisation pass.
type Result struct {
	Markers []Marker               `json:"markers"`
	Fit     *models.ViewportBounds `json:"fit,omitempty"`
	// Skipped counts places left off the map for lack of a location.
	Skipped int `json:"skipped"`
}

// Sync builds markers for every located place in collection order and the
// bounds enclosing them. Fit is nil when no marker was emitted.
func Sync(places []models.Place) Result {
	res := Result{Markers: make([]Marker, 0, len(places))}
	points := make([]s2.LatLng, 0, len(places))

	for i := range places {
		p := &places[i]
		if !p.HasLocation() {
			res.Skipped++
			continue
		}
		res.Markers = append(res.Markers, Marker{
			PlaceID:  p.ID,
			Position: *p.Coordinates,
			Label:    p.Name,
			Icon:     models.MarkerIcon(p.Type),
			Type:     p.Type,
		})
		points = append(points, s2.LatLngFromDegrees(p.Coordinates.Lat, p.Coordinates.Lng).Normalized())
	}

	res.Fit = fitBounds(points)
	return res
}

// fitBounds returns the smallest box holding every point, or nil for none.
// Latitude is a plain interval. Longitude is a circle, so the box is the
// complement of the widest empty arc between neighbouring meridians; it may
// cross the antimeridian (West > East). The result does not depend on the
// order of points.
func fitBounds(points []s2.LatLng) *models.ViewportBounds {
	if len(points) == 0 {
		return nil
	}

	lat := r1.EmptyInterval()
	lngs := make([]float64, 0, len(points))
	for _, ll := range points {
		lat = lat.AddPoint(ll.Lat.Degrees())
		lngs = append(lngs, meridian(ll.Lng.Degrees()))
	}
	slices.Sort(lngs)
	lngs = slices.Compact(lngs)

	// The arc wrapping from the last meridian to the first is the default
	// gap: excluding it gives a box that does not cross 180.
	west, east := lngs[0], lngs[len(lngs)-1]
	widest := lngs[0] + 360 - lngs[len(lngs)-1]
	for i := 0; i+1 < len(lngs); i++ {
		if gap := lngs[i+1] - lngs[i]; gap > widest {
			widest = gap
			west, east = lngs[i+1], lngs[i]
		}
	}

	return &models.ViewportBounds{
		West:  west,
		South: trim(lat.Lo),
		East:  east,
		North: trim(lat.Hi),
	}
}

// meridian maps a longitude to [-180, 180) so that 180 and -180 count as one
// meridian, and drops round-trip noise.
func meridian(lng float64) float64 {
	lng = trim(lng)
	if lng >= 180 {
		lng -= 360
	}
	return lng
}

// trim drops the noise left by the degree/radian round trip.
func trim(deg float64) float64 {
	return math.Round(deg*1e9) / 1e9
}
