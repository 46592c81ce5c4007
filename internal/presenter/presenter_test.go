// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package presenter

import (
	"fmt"
	"testing"

	"github.com/tomtom215/placemap/internal/deeplink"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/projection"
)

func photos(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://img.example/%d.jpg", i)
	}
	return out
}

func TestCard_ThumbnailOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		photos   int
		wantCard int
		moreCard int
		wantInfo int
		moreInfo int
	}{
		{0, 0, 0, 0, 0},
		{3, 3, 0, 3, 0},
		{4, 4, 0, 3, 1},
		{7, 4, 3, 3, 4},
	}

	pr := New(nil, "")
	for _, tt := range tests {
		p := &models.Place{ID: "p", Name: "P", Type: models.PlaceTypePark, Photos: photos(tt.photos)}

		card := pr.Card(p)
		if len(card.Thumbnails) != tt.wantCard || card.MorePhotos != tt.moreCard {
			t.Errorf("%d photos: card thumbs=%d more=%d", tt.photos, len(card.Thumbnails), card.MorePhotos)
		}
		info := pr.InfoWindow(p)
		if len(info.Thumbnails) != tt.wantInfo || info.MorePhotos != tt.moreInfo {
			t.Errorf("%d photos: info thumbs=%d more=%d", tt.photos, len(info.Thumbnails), info.MorePhotos)
		}
		if card.PhotoCount != tt.photos {
			t.Errorf("PhotoCount = %d", card.PhotoCount)
		}
	}
}

func TestCard_Presentation(t *testing.T) {
	t.Parallel()

	pr := New(deeplink.NewResolver(deeplink.DefaultTemplates()), "")
	p := &models.Place{
		ID:          "1",
		Name:        "Stary Rynek",
		Type:        "square",
		Coordinates: &models.Coordinates{Lat: 52.408, Lng: 16.934},
		Photos:      []string{},
	}

	card := pr.Card(p)
	if card.Emoji != models.Emoji(models.PlaceTypeOther) || card.ColorClass != models.ColorClass(models.PlaceTypeOther) {
		t.Errorf("unknown type presented as %q / %q", card.Emoji, card.ColorClass)
	}
	if card.Type != "square" {
		t.Errorf("Type = %q, want verbatim square", card.Type)
	}
	if card.MapLink != "https://www.google.com/maps/search/?api=1&query=52.408,16.934" {
		t.Errorf("MapLink = %q", card.MapLink)
	}
	if !card.HasLocation {
		t.Error("HasLocation = false")
	}
}

func TestList_GroupedAndNoMatches(t *testing.T) {
	t.Parallel()

	places := []models.Place{
		{ID: "1", Name: "Sopot", Type: models.PlaceTypeSea, Photos: []string{}},
		{ID: "2", Name: "Hel", Type: models.PlaceTypeSea, Photos: []string{}},
		{ID: "3", Name: "Kraków", Type: models.PlaceTypeCity, Photos: []string{}},
	}

	pr := New(nil, "nothing here")

	lv := pr.List(projection.Project(places, models.FilterAll, models.SortByName))
	if !lv.Grouped || len(lv.Groups) != 2 {
		t.Fatalf("groups = %d, grouped = %v", len(lv.Groups), lv.Grouped)
	}
	if lv.Groups[0].Type != models.PlaceTypeSea || lv.Groups[0].Count != 2 || lv.Groups[0].Emoji != "🌊" {
		t.Errorf("first group = %+v", lv.Groups[0])
	}
	if lv.Shown != 3 || lv.Total != 3 || lv.Message != "" {
		t.Errorf("counts = %d/%d message = %q", lv.Shown, lv.Total, lv.Message)
	}

	lv = pr.List(projection.Project(places, models.Filter(models.PlaceTypeLake), models.SortByName))
	if !lv.NoMatches || lv.Message != "nothing here" || lv.Grouped {
		t.Errorf("no match view = %+v", lv)
	}
	if lv.Cards == nil {
		t.Error("Cards should be an empty slice")
	}
}

func TestNew_DefaultMessage(t *testing.T) {
	t.Parallel()

	pr := New(nil, "")
	lv := pr.List(projection.Project(
		[]models.Place{{ID: "1", Name: "A", Type: models.PlaceTypePark, Photos: []string{}}},
		models.Filter(models.PlaceTypeCity), models.SortByName))

	if lv.Message != DefaultNoMatchesMessage {
		t.Errorf("Message = %q", lv.Message)
	}
}
