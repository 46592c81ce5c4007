// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package session owns the presentation state of one browser tab.

A Session holds the place collection, the view parameters (tab, filter,
sort), the photo gallery and the map marker layer. Every transition runs to
completion under the session mutex, so concurrent HTTP requests against one
session are serialised. The only suspension point is Analyze, which calls
the upstream analyzer without holding the lock; the in-flight flag keeps a
second analysis out and the collection is not touched until the call ends.

Transitions and their recomputations:

	ReplaceCollection   filter reset to all, gallery closed, catalog,
	                    list and markers rebuilt
	SetTab(map)         marker re-sync
	SetTab(list)        list re-projection
	SetFilter, SetSort  list re-projection
	gallery operations  gallery view

Each transition returns a Change and pushes the recomputed view to the
session's Notifier (the WebSocket hub in production).

A new analysis resets the filter to "all" and keeps the tab and sort the
user chose.

Store keeps sessions in an internal/cache TTL cache. Get slides the expiry
so active tabs stay alive; Sweep drops idle ones.
*/
package session
