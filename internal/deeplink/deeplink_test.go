// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package deeplink

import (
	"testing"

	"github.com/tomtom215/placemap/internal/models"
)

func TestResolve_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		place  models.Place
		want   string
		wantOK bool
	}{
		{
			name: "place id wins over coordinates",
			place: models.Place{
				Name:          "Wawel",
				GooglePlaceID: "ChIJ123",
				Coordinates:   &models.Coordinates{Lat: 50.054, Lng: 19.935},
			},
			want:   "https://www.google.com/maps/place/?q=place_id:ChIJ123",
			wantOK: true,
		},
		{
			name: "coordinates",
			place: models.Place{
				Name:        "Morskie Oko",
				Coordinates: &models.Coordinates{Lat: 49.2, Lng: 20.07},
			},
			want:   "https://www.google.com/maps/search/?api=1&query=49.2,20.07",
			wantOK: true,
		},
		{
			name: "sentinel coordinates fall through to name",
			place: models.Place{
				Name:        "Łeba Dunes",
				Coordinates: &models.Coordinates{},
			},
			want:   "https://www.google.com/maps/search/?api=1&query=%C5%81eba%20Dunes",
			wantOK: true,
		},
		{
			name:   "name with sub-delimiters kept literal",
			place:  models.Place{Name: "Mariacki (Kraków)!"},
			want:   "https://www.google.com/maps/search/?api=1&query=Mariacki%20(Krak%C3%B3w)!",
			wantOK: true,
		},
		{
			name:   "apostrophe and asterisk",
			place:  models.Place{Name: "St. Mary's *"},
			want:   "https://www.google.com/maps/search/?api=1&query=St.%20Mary's%20*",
			wantOK: true,
		},
		{
			name:   "name with reserved characters",
			place:  models.Place{Name: "Fish & Chips"},
			want:   "https://www.google.com/maps/search/?api=1&query=Fish%20%26%20Chips",
			wantOK: true,
		},
		{
			name:   "place id is encoded",
			place:  models.Place{GooglePlaceID: "a/b c"},
			want:   "https://www.google.com/maps/place/?q=place_id:a%2Fb%20c",
			wantOK: true,
		},
		{
			name:   "nothing to link",
			place:  models.Place{Name: "   "},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Resolve(&tt.place)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolve_NilPlace(t *testing.T) {
	t.Parallel()

	if got, ok := Resolve(nil); ok || got != "" {
		t.Errorf("Resolve(nil) = %q, %v", got, ok)
	}
}

func TestResolver_CustomTemplates(t *testing.T) {
	t.Parallel()

	r := NewResolver(Templates{Coordinates: "geo:{lat},{lng}"})

	got, ok := r.Resolve(&models.Place{Name: "x", Coordinates: &models.Coordinates{Lat: -33.5, Lng: 151}})
	if !ok || got != "geo:-33.5,151" {
		t.Errorf("custom coordinates = %q, %v", got, ok)
	}

	got, _ = r.Resolve(&models.Place{Name: "Kraków"})
	if got != "https://www.google.com/maps/search/?api=1&query=Krak%C3%B3w" {
		t.Errorf("default search fallback = %q", got)
	}
}
