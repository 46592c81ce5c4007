// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import (
	"fmt"
	"strings"
)

// Tab is the active results view.
type Tab string

// Result tabs.
const (
	TabMap  Tab = "map"
	TabList Tab = "list"
)

// SortKey selects the list ordering.
type SortKey string

// Sort keys.
const (
	SortByName   SortKey = "name"
	SortByType   SortKey = "type"
	SortByRating SortKey = "rating"
)

// Filter restricts the list view to one place type. FilterAll disables it.
type Filter string

// FilterAll shows every place, grouped by type.
const FilterAll Filter = "all"

// IsAll reports whether f passes every place through.
func (f Filter) IsAll() bool {
	return f == FilterAll
}

// Matches reports whether a place of type t passes the filter. The
// comparison is on the verbatim type string.
func (f Filter) Matches(t PlaceType) bool {
	return f.IsAll() || string(f) == string(t)
}

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.TrimSpace(s)); t {
	case TabMap, TabList:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tab %q", s)
	}
}

// ParseSortKey validates a sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortByName, SortByType, SortByRating:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// ParseFilter accepts "all" or any non-empty type string. Unknown types are
// allowed because the collection may carry them verbatim.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("filter must not be empty")
	}
	return Filter(s), nil
}
