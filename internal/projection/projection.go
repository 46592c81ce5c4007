// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package projection

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tomtom215/placemap/internal/models"
)

// DefaultLocale is the collation locale used by Project.
var DefaultLocale = language.Polish

// Group is a run of places sharing one verbatim type.
type Group struct {
	Type   models.PlaceType `json:"type"`
	Places []models.Place   `json:"places"`
}

// ViewModel is the list view derived from a collection and view parameters.
//
// Places always holds the filtered, sorted sequence. Groups is set only when
// the filter is "all"; the union of its groups equals Places.
type ViewModel struct {
	Filter    models.Filter  `json:"filter"`
	Sort      models.SortKey `json:"sort"`
	Places    []models.Place `json:"places"`
	Groups    []Group        `json:"groups,omitempty"`
	Grouped   bool           `json:"grouped"`
	NoMatches bool           `json:"no_matches"`
	// Total is the size of the unfiltered collection.
	Total int `json:"total"`
}

// Engine projects collections using a fixed collation locale.
// Engines are immutable and safe for concurrent use.
type Engine struct {
	locale language.Tag
}

// NewEngine returns an engine that sorts names with the rules of locale.
func NewEngine(locale language.Tag) *Engine {
	return &Engine{locale: locale}
}

var defaultEngine = NewEngine(DefaultLocale)

// Project is Engine.Project on an engine using DefaultLocale.
func Project(places []models.Place, filter models.Filter, key models.SortKey) *ViewModel {
	return defaultEngine.Project(places, filter, key)
}

// Project filters, stably sorts and (for the "all" filter) groups places.
// The input slice is never modified.
func (e *Engine) Project(places []models.Place, filter models.Filter, key models.SortKey) *ViewModel {
	filtered := make([]models.Place, 0, len(places))
	for i := range places {
		if filter.Matches(places[i].Type) {
			filtered = append(filtered, places[i])
		}
	}

	e.sortPlaces(filtered, key)

	vm := &ViewModel{
		Filter:    filter,
		Sort:      key,
		Places:    filtered,
		NoMatches: len(filtered) == 0 && len(places) > 0,
		Total:     len(places),
	}

	if filter.IsAll() && len(filtered) > 0 {
		vm.Grouped = true
		vm.Groups = groupByType(filtered)
	}

	return vm
}

// sortPlaces orders places in place. Stability keeps ties in input order.
func (e *Engine) sortPlaces(places []models.Place, key models.SortKey) {
	switch key {
	case models.SortByName:
		// Collators keep scratch buffers, so each call gets its own.
		col := collate.New(e.locale)
		slices.SortStableFunc(places, func(a, b models.Place) int {
			return col.CompareString(a.Name, b.Name)
		})
	case models.SortByType:
		slices.SortStableFunc(places, func(a, b models.Place) int {
			return cmp.Compare(a.Type, b.Type)
		})
	case models.SortByRating:
		slices.SortStableFunc(places, func(a, b models.Place) int {
			return cmp.Compare(b.RatingOrZero(), a.RatingOrZero())
		})
	}
}

// groupByType buckets sorted places by type in first-seen order.
func groupByType(sorted []models.Place) []Group {
	index := make(map[models.PlaceType]int)
	var groups []Group

	for i := range sorted {
		t := sorted[i].Type
		pos, ok := index[t]
		if !ok {
			pos = len(groups)
			index[t] = pos
			groups = append(groups, Group{Type: t})
		}
		groups[pos].Places = append(groups[pos].Places, sorted[i])
	}

	return groups
}
