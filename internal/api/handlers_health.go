// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/placemap/internal/session"
)

// healthProbeTimeout bounds the upstream probe of a health request.
const healthProbeTimeout = 3 * time.Second

// Health statuses.
const (
	HealthHealthy  = "healthy"
	HealthDegraded = "degraded"
)

// AnalyzerHealth is the upstream analyser as seen from this service.
type AnalyzerHealth struct {
	Reachable    bool            `json:"reachable"`
	Status       string          `json:"status,omitempty"`
	Message      string          `json:"message,omitempty"`
	APIs         map[string]bool `json:"apis,omitempty"`
	BreakerState string          `json:"breaker_state,omitempty"`
}

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status           string             `json:"status"`
	Version          string             `json:"version"`
	UptimeSeconds    float64            `json:"uptime_seconds"`
	Sessions         int                `json:"sessions"`
	SessionStore     session.StoreStats `json:"session_store"`
	WebSocketClients int                `json:"websocket_clients"`
	Analyzer         AnalyzerHealth     `json:"analyzer"`
}

// Health reports service health including an upstream analyser probe. It
// always answers 200; an unreachable analyser makes the status degraded.
//
// @Summary Get service health
// @Description Returns uptime, live session and WebSocket counts, and the analyser's health and circuit breaker state.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        HealthHealthy,
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Sessions:      h.store.Len(),
		SessionStore:  h.store.Stats(),
		Analyzer:      h.probeAnalyzer(r.Context()),
	}
	if h.hub != nil {
		status.WebSocketClients = h.hub.GetClientCount()
	}
	if !status.Analyzer.Reachable || status.Analyzer.Status != HealthHealthy {
		status.Status = HealthDegraded
	}

	WriteSuccess(w, r, status)
}

func (h *Handler) probeAnalyzer(ctx context.Context) AnalyzerHealth {
	if h.upstream == nil {
		return AnalyzerHealth{Status: "unknown"}
	}

	result := AnalyzerHealth{BreakerState: h.upstream.BreakerState()}

	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	hs, err := h.upstream.Health(ctx)
	if err != nil {
		result.Message = err.Error()
		return result
	}

	result.Reachable = true
	result.Status = hs.Status
	result.Message = hs.Message
	result.APIs = hs.APIs
	return result
}

// HealthLive answers 200 while the process runs.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 503 while the analyser circuit is open, since no
// analysis can succeed until it closes.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Analyser circuit is open"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	state := "unknown"
	if h.upstream != nil {
		state = h.upstream.BreakerState()
	}

	if state == "open" {
		NewResponseWriter(w, r).ServiceUnavailable("analyzer circuit breaker is open")
		return
	}
	WriteSuccess(w, r, map[string]interface{}{
		"ready":         true,
		"breaker_state": state,
	})
}
