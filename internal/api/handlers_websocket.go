// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	ws "github.com/tomtom215/placemap/internal/websocket"
)

// WebSocket subscribes the connection to a session's view pushes.
//
// @Summary Subscribe to session updates
// @Description Upgrades to a WebSocket. Messages are {type, session_id, data} with type session, list, markers, gallery or analysis. Send {"type":"ping"} to receive a pong.
// @Tags Realtime
// @Param id path string true "Session ID"
// @Success 101 "Switching protocols"
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	if h.hub == nil {
		NewResponseWriter(w, r).ServiceUnavailable("live updates are not available")
		return
	}
	ws.ServeSession(h.hub, h.upgrader, w, r, s.ID())
}
