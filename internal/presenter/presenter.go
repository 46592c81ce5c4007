// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package presenter turns places and projections into the render models of
// list cards and map info windows.
package presenter

import (
	"github.com/tomtom215/placemap/internal/deeplink"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/projection"
)

// Thumbnail limits before the "+N" overflow badge.
const (
	CardThumbnails       = 4
	InfoWindowThumbnails = 3
)

// DefaultNoMatchesMessage is shown when a filter hides every place.
const DefaultNoMatchesMessage = "Brak miejsc do wyświetlenia dla wybranego filtra"

// Card is one place in the list view.
type Card struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Type        models.PlaceType `json:"type"`
	Emoji       string           `json:"emoji"`
	ColorClass  string           `json:"color_class"`
	Rating      *float64         `json:"rating,omitempty"`
	Address     string           `json:"address,omitempty"`
	Website     string           `json:"website,omitempty"`
	MapLink     string           `json:"map_link,omitempty"`
	Thumbnails  []string         `json:"thumbnails"`
	MorePhotos  int              `json:"more_photos"`
	PhotoCount  int              `json:"photo_count"`
	HasLocation bool             `json:"has_location"`
}

// InfoWindow is the popup shown when a map marker is clicked. It carries
// the same data as a card with a shorter thumbnail strip.
type InfoWindow Card

// GroupView is a titled run of cards sharing one type.
type GroupView struct {
	Type  models.PlaceType `json:"type"`
	Emoji string           `json:"emoji"`
	Label string           `json:"label"`
	Count int              `json:"count"`
	Cards []Card           `json:"cards"`
}

// ListView is the rendered list tab.
type ListView struct {
	Filter    models.Filter  `json:"filter"`
	Sort      models.SortKey `json:"sort"`
	Grouped   bool           `json:"grouped"`
	Groups    []GroupView    `json:"groups,omitempty"`
	Cards     []Card         `json:"cards"`
	Shown     int            `json:"shown"`
	Total     int            `json:"total"`
	NoMatches bool           `json:"no_matches"`
	Message   string         `json:"message,omitempty"`
}

// Presenter builds render models with a fixed link resolver and message set.
type Presenter struct {
	links     *deeplink.Resolver
	noMatches string
}

// New returns a presenter. A nil resolver uses the default templates and an
// empty message uses DefaultNoMatchesMessage.
func New(links *deeplink.Resolver, noMatches string) *Presenter {
	if links == nil {
		links = deeplink.NewResolver(deeplink.DefaultTemplates())
	}
	if noMatches == "" {
		noMatches = DefaultNoMatchesMessage
	}
	return &Presenter{links: links, noMatches: noMatches}
}

// Card builds the list card for p.
func (pr *Presenter) Card(p *models.Place) Card {
	return pr.build(p, CardThumbnails)
}

// InfoWindow builds the marker popup for p.
func (pr *Presenter) InfoWindow(p *models.Place) InfoWindow {
	return InfoWindow(pr.build(p, InfoWindowThumbnails))
}

// List renders a projection.
func (pr *Presenter) List(vm *projection.ViewModel) ListView {
	lv := ListView{
		Filter:    vm.Filter,
		Sort:      vm.Sort,
		Grouped:   vm.Grouped,
		Cards:     make([]Card, 0, len(vm.Places)),
		Shown:     len(vm.Places),
		Total:     vm.Total,
		NoMatches: vm.NoMatches,
	}

	for i := range vm.Places {
		lv.Cards = append(lv.Cards, pr.Card(&vm.Places[i]))
	}

	if vm.Grouped {
		lv.Groups = make([]GroupView, 0, len(vm.Groups))
		for _, g := range vm.Groups {
			gv := GroupView{
				Type:  g.Type,
				Emoji: models.Emoji(g.Type),
				Label: string(g.Type),
				Count: len(g.Places),
				Cards: make([]Card, 0, len(g.Places)),
			}
			for i := range g.Places {
				gv.Cards = append(gv.Cards, pr.Card(&g.Places[i]))
			}
			lv.Groups = append(lv.Groups, gv)
		}
	}

	if vm.NoMatches {
		lv.Message = pr.noMatches
	}
	return lv
}

// Link resolves the deep link of p.
func (pr *Presenter) Link(p *models.Place) (string, bool) {
	return pr.links.Resolve(p)
}

func (pr *Presenter) build(p *models.Place, limit int) Card {
	thumbs, more := thumbnails(p.Photos, limit)
	link, _ := pr.links.Resolve(p)

	return Card{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Emoji:       models.Emoji(p.Type),
		ColorClass:  models.ColorClass(p.Type),
		Rating:      p.Rating,
		Address:     p.Address,
		Website:     p.Website,
		MapLink:     link,
		Thumbnails:  thumbs,
		MorePhotos:  more,
		PhotoCount:  len(p.Photos),
		HasLocation: p.HasLocation(),
	}
}

// thumbnails returns at most limit photos and how many were left out.
func thumbnails(photos []string, limit int) ([]string, int) {
	n := min(len(photos), limit)
	out := make([]string, n)
	copy(out, photos[:n])
	return out, len(photos) - n
}
