// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalizePlace_Defaults(t *testing.T) {
	t.Parallel()

	place, err := NormalizePlace(RawPlace{Name: "  Łazienki  "}, 3)
	if err != nil {
		t.Fatalf("NormalizePlace() error = %v", err)
	}

	if place.ID != "place_3" {
		t.Errorf("ID = %q, want place_3", place.ID)
	}
	if place.Name != "Łazienki" {
		t.Errorf("Name = %q, want trimmed name", place.Name)
	}
	if place.Type != PlaceTypeOther {
		t.Errorf("Type = %q, want other", place.Type)
	}
	if place.Coordinates != nil {
		t.Errorf("Coordinates = %+v, want nil", place.Coordinates)
	}
	if place.Rating != nil {
		t.Errorf("Rating = %v, want nil", *place.Rating)
	}
	if place.Photos == nil || len(place.Photos) != 0 {
		t.Errorf("Photos = %#v, want empty non-nil slice", place.Photos)
	}
	if place.Address != "" || place.Website != "" || place.GooglePlaceID != "" {
		t.Error("optional strings should be empty")
	}
}

func TestNormalizePlace_MissingName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NormalizePlace(RawPlace{ID: "x", Name: name}, 1)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("NormalizePlace(name=%q) error = %v, want *ValidationError", name, err)
		}
		if vErr.Field != "name" || vErr.Index != 1 {
			t.Errorf("ValidationError = %+v, want field name at index 1", vErr)
		}
	}
}

func TestNormalizePlace_Coordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coords *RawCoordinates
		want   *Coordinates
	}{
		{"absent", nil, nil},
		{"sentinel", &RawCoordinates{Lat: floatPtr(0), Lng: floatPtr(0)}, nil},
		{"half pair", &RawCoordinates{Lat: floatPtr(52.23)}, nil},
		{"valid", &RawCoordinates{Lat: floatPtr(52.23), Lng: floatPtr(21.01)}, &Coordinates{Lat: 52.23, Lng: 21.01}},
		{"equator", &RawCoordinates{Lat: floatPtr(0), Lng: floatPtr(21.01)}, &Coordinates{Lat: 0, Lng: 21.01}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			place, err := NormalizePlace(RawPlace{Name: "n", Coordinates: tt.coords}, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch {
			case tt.want == nil && place.Coordinates != nil:
				t.Errorf("Coordinates = %+v, want nil", *place.Coordinates)
			case tt.want != nil && (place.Coordinates == nil || *place.Coordinates != *tt.want):
				t.Errorf("Coordinates = %v, want %+v", place.Coordinates, *tt.want)
			}
		})
	}
}

func TestNormalizePlace_KeepsUnknownTypeVerbatim(t *testing.T) {
	t.Parallel()

	place, err := NormalizePlace(RawPlace{Name: "Zamek", Type: "castle"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if place.Type != "castle" {
		t.Errorf("Type = %q, want castle", place.Type)
	}
	if place.Type.Kind() != PlaceTypeOther {
		t.Errorf("Kind() = %q, want other", place.Type.Kind())
	}
}

func TestNormalizePlace_Photos(t *testing.T) {
	t.Parallel()

	place, _ := NormalizePlace(RawPlace{Name: "n", Photos: []string{"a.jpg", " ", "b.jpg"}}, 0)
	if strings.Join(place.Photos, ",") != "a.jpg,b.jpg" {
		t.Errorf("Photos = %v, want [a.jpg b.jpg]", place.Photos)
	}

	place, _ = NormalizePlace(RawPlace{Name: "n", PhotoURL: "main.jpg"}, 0)
	if len(place.Photos) != 1 || place.Photos[0] != "main.jpg" {
		t.Errorf("Photos = %v, want photo_url fallback", place.Photos)
	}
}

func TestNormalizePlaces_DuplicateIDs(t *testing.T) {
	t.Parallel()

	_, err := NormalizePlaces([]RawPlace{
		{ID: "a", Name: "One"},
		{ID: "b", Name: "Two"},
		{ID: "a", Name: "Three"},
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if vErr.Field != "id" || vErr.Index != 2 {
		t.Errorf("ValidationError = %+v, want id at index 2", vErr)
	}
}

func TestNormalizePlaces_FromAnalyzerJSON(t *testing.T) {
	t.Parallel()

	body := `[
		{"id":"p1","name":"Morskie Oko","type":"lake","coordinates":{"lat":49.2,"lng":20.07},"rating":4.8,"photos":["1.jpg"]},
		{"name":"Unknown spot","type":"other","coordinates":{"lat":0,"lng":0}}
	]`

	var raws []RawPlace
	if err := json.Unmarshal([]byte(body), &raws); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	places, err := NormalizePlaces(raws)
	if err != nil {
		t.Fatalf("NormalizePlaces() error = %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("len = %d, want 2", len(places))
	}
	if !places[0].HasLocation() || places[0].RatingOrZero() != 4.8 {
		t.Errorf("first place = %+v", places[0])
	}
	if places[1].ID != "place_1" || places[1].HasLocation() {
		t.Errorf("second place = %+v, want generated id and no location", places[1])
	}
}

func TestPresentationLookups_Total(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ   PlaceType
		icon  string
		emoji string
		class string
	}{
		{PlaceTypePark, "green", "🌳", "bg-green-100 text-green-800"},
		{PlaceTypeMountains, "orange", "⛰️", "bg-orange-100 text-orange-800"},
		{PlaceTypeSea, "blue", "🌊", "bg-blue-100 text-blue-800"},
		{PlaceTypeCity, "red", "🏙️", "bg-red-100 text-red-800"},
		{PlaceTypeLake, "blue", "🏞️", "bg-blue-100 text-blue-800"},
		{PlaceTypeMonument, "yellow", "🏛️", "bg-purple-100 text-purple-800"},
		{PlaceTypeOther, "gray", "📍", "bg-gray-100 text-gray-800"},
		{"castle", "gray", "📍", "bg-gray-100 text-gray-800"},
		{"", "gray", "📍", "bg-gray-100 text-gray-800"},
	}

	for _, tt := range tests {
		if got := MarkerIcon(tt.typ); got != MarkerIconBase+tt.icon+"-dot.png" {
			t.Errorf("MarkerIcon(%q) = %q", tt.typ, got)
		}
		if got := Emoji(tt.typ); got != tt.emoji {
			t.Errorf("Emoji(%q) = %q, want %q", tt.typ, got, tt.emoji)
		}
		if got := ColorClass(tt.typ); got != tt.class {
			t.Errorf("ColorClass(%q) = %q, want %q", tt.typ, got, tt.class)
		}
	}
}

func TestParseViewParameters(t *testing.T) {
	t.Parallel()

	if tab, err := ParseTab("list"); err != nil || tab != TabList {
		t.Errorf("ParseTab(list) = %q, %v", tab, err)
	}
	if _, err := ParseTab("grid"); err == nil {
		t.Error("ParseTab(grid) should fail")
	}
	if key, err := ParseSortKey("rating"); err != nil || key != SortByRating {
		t.Errorf("ParseSortKey(rating) = %q, %v", key, err)
	}
	if _, err := ParseSortKey("distance"); err == nil {
		t.Error("ParseSortKey(distance) should fail")
	}
	if f, err := ParseFilter("castle"); err != nil || f.IsAll() || !f.Matches("castle") {
		t.Errorf("ParseFilter(castle) = %q, %v", f, err)
	}
	if _, err := ParseFilter(" "); err == nil {
		t.Error("ParseFilter(blank) should fail")
	}
}
