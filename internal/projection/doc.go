// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package projection turns a place collection plus filter and sort into the
// list view model.
//
// Both Project and FilterCatalog are pure: the same arguments always produce
// an equal result, and the input collection is never reordered.
//
// Sorting rules:
//   - name: ascending, locale-aware (golang.org/x/text/collate)
//   - type: ascending, byte-wise
//   - rating: descending, unrated places count as 0
//
// All three sorts are stable. Grouping by type happens only for the "all"
// filter and follows the order in which types first appear after sorting.
package projection
