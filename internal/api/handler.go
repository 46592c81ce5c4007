// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	gorillaws "github.com/gorilla/websocket"

	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/session"
	ws "github.com/tomtom215/placemap/internal/websocket"
)

// Upstream is the analyser as seen by the health endpoints.
type Upstream interface {
	Health(ctx context.Context) (*analysis.HealthStatus, error)
	BreakerState() string
}

// HandlerConfig holds the collaborators of a Handler.
type HandlerConfig struct {
	Store    *session.Store
	Analyzer analysis.Analyzer

	// Upstream is optional; without it health reports the analyser as
	// unknown.
	Upstream Upstream

	Hub            *ws.Hub
	AllowedOrigins []string
	Version        string
}

// Handler serves the session REST surface.
type Handler struct {
	store     *session.Store
	analyzer  analysis.Analyzer
	upstream  Upstream
	hub       *ws.Hub
	upgrader  *gorillaws.Upgrader
	startTime time.Time
	version   string
}

// NewHandler creates a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		store:     cfg.Store,
		analyzer:  cfg.Analyzer,
		upstream:  cfg.Upstream,
		hub:       cfg.Hub,
		upgrader:  ws.NewUpgrader(cfg.AllowedOrigins),
		startTime: time.Now(),
		version:   version,
	}
}

// session resolves the {id} URL parameter. On failure it writes the 404
// and returns nil.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	id := chi.URLParam(r, "id")
	s, err := h.store.Get(id)
	if err != nil {
		writeError(w, r, err)
		return nil
	}
	return s
}

// withSessionLogging tags the request context with the session id so every
// log line of the request carries it.
func withSessionLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, "id"); id != "" {
			r = r.WithContext(logging.ContextWithSessionID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
