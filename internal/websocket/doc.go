// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package websocket pushes recomputed session views to browsers.

The Hub implements session.Notifier: every transition of a session (new
collection, filter, sort, tab, gallery movement, analysis status) is
queued as a Message and delivered only to the clients subscribed to that
session.

	┌──────────────┐
	│     Hub      │ ← Notify(sessionID, kind, payload)
	└──────┬───────┘
	       │ routed by session id
	┌──────┴───────┬──────────────┐
	│ session A    │ session B    │
	│ Client1 C2   │ Client3      │
	└──────────────┴──────────────┘

Each client has two goroutines:
  - readPump: reads client pings, answers with pong, detects disconnects
  - writePump: writes queued messages and keepalive ping frames

Message format:

	{"type": "list", "session_id": "6f1c...", "data": {...}}

Types are session, list, markers, gallery, analysis, ping and pong.

Usage:

	hub := websocket.NewHub()
	supervisor.AddMessagingService(hub) // runs hub.Serve(ctx)

	upgrader := websocket.NewUpgrader(cfg.Security.CORSOrigins)
	r.Get("/api/v1/sessions/{id}/ws", func(w http.ResponseWriter, r *http.Request) {
	    websocket.ServeSession(hub, upgrader, w, r, chi.URLParam(r, "id"))
	})

Notify never blocks. A full hub queue drops the message, and a client
whose own queue is full is disconnected so one slow browser cannot stall
the others. Clients reconnect and fetch a fresh snapshot over REST.

CloseSession disconnects every client of a session; the session store
calls it when a session is deleted or expires.
*/
package websocket
