// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package projection

import "github.com/tomtom215/placemap/internal/models"

// CatalogEntry is one filter choice with its occurrence count.
type CatalogEntry struct {
	Type  models.PlaceType `json:"type"`
	Count int              `json:"count"`
}

// FilterCatalog counts each distinct type of the unfiltered collection in
// first-seen order. It depends only on the collection, so callers cache the
// result until the collection is replaced.
func FilterCatalog(places []models.Place) []CatalogEntry {
	index := make(map[models.PlaceType]int)
	catalog := make([]CatalogEntry, 0)

	for i := range places {
		t := places[i].Type
		if pos, ok := index[t]; ok {
			catalog[pos].Count++
			continue
		}
		index[t] = len(catalog)
		catalog = append(catalog, CatalogEntry{Type: t, Count: 1})
	}

	return catalog
}
