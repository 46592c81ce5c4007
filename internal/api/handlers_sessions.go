// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/logging"
)

// CreateSession starts a new, empty presentation session.
//
// @Summary Create a session
// @Description Creates a session on the map tab, showing all places sorted by name, with no collection yet.
// @Tags Sessions
// @Produce json
// @Success 201 {object} APIResponse{data=session.Snapshot} "Session created"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Failure 503 {object} APIResponse "Session limit reached"
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Create()
	if err != nil {
		writeError(w, r, err)
		return
	}

	logging.Ctx(logging.ContextWithSessionID(r.Context(), s.ID())).Info().Msg("Session created")
	NewResponseWriter(w, r).Created(s.Snapshot())
}

// GetSession returns the full state of a session.
//
// @Summary Get session snapshot
// @Description Returns status, counts, catalog, list, map and gallery views in one document.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=session.Snapshot}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	WriteSuccess(w, r, s.Snapshot())
}

// DeleteSession ends a session and disconnects its WebSocket clients.
//
// @Summary Delete a session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204 "Session deleted"
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	NewResponseWriter(w, r).NoContent()
}

// Analyze runs an analysis of a video link and installs the resulting
// places in the session.
//
// The analysis is detached from the request context: a browser that
// navigates away does not abort it, and the result still reaches the
// session and its WebSocket subscribers. The analyser client's own timeout
// bounds it.
//
// @Summary Analyze a video
// @Description Validates the link, calls the analyser and replaces the session's places. The filter resets to all; tab and sort are kept. On failure the previous places stay and the session shows the error.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body AnalyzeRequest true "Video link"
// @Success 200 {object} APIResponse{data=session.Snapshot} "Analysis finished"
// @Failure 400 {object} APIResponse "Missing or malformed link"
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Failure 409 {object} APIResponse "Another analysis is running"
// @Failure 502 {object} APIResponse "Analyser failed; message is passed through"
// @Router /sessions/{id}/analyze [post]
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req AnalyzeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	if err := s.Analyze(ctx, h.analyzer, req.VideoURL); err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, s.Snapshot())
}

// VideoCheck is the result of CheckVideo.
type VideoCheck struct {
	VideoURL string `json:"video_url"`
	VideoID  string `json:"video_id,omitempty"`
}

// CheckVideo validates a link without starting an analysis.
//
// @Summary Check a video link
// @Description Reports whether a link is an accepted YouTube video link and extracts its video id.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body CheckVideoRequest true "Video link"
// @Success 200 {object} APIResponse{data=VideoCheck}
// @Failure 400 {object} APIResponse "Missing or malformed link"
// @Router /videos/check [post]
func (h *Handler) CheckVideo(w http.ResponseWriter, r *http.Request) {
	var req CheckVideoRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	check := VideoCheck{VideoURL: strings.TrimSpace(req.VideoURL)}
	if id, ok := analysis.ExtractVideoID(check.VideoURL); ok {
		check.VideoID = id
	}
	WriteSuccess(w, r, check)
}
