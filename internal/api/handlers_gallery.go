// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/tomtom215/placemap/internal/gallery"
	"github.com/tomtom215/placemap/internal/session"
)

// Gallery returns the gallery state.
//
// @Summary Get the gallery
// @Tags Gallery
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=gallery.View}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/gallery [get]
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	WriteSuccess(w, r, s.Gallery())
}

// OpenGallery opens the photos of a place at the first photo. A place
// without photos leaves the gallery closed.
//
// @Summary Open the gallery
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body OpenGalleryRequest true "Place to show"
// @Success 200 {object} APIResponse{data=gallery.View}
// @Failure 400 {object} APIResponse "Missing place id"
// @Failure 404 {object} APIResponse "Unknown session or place"
// @Router /sessions/{id}/gallery/open [post]
func (h *Handler) OpenGallery(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req OpenGalleryRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	view, err := s.OpenGallery(req.PlaceID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, view)
}

// NextPhoto moves to the next photo; it stops at the last one.
//
// @Summary Next photo
// @Tags Gallery
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=gallery.View}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/gallery/next [post]
func (h *Handler) NextPhoto(w http.ResponseWriter, r *http.Request) {
	h.galleryStep(w, r, (*session.Session).NextPhoto)
}

// PreviousPhoto moves to the previous photo; it stops at the first one.
//
// @Summary Previous photo
// @Tags Gallery
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=gallery.View}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/gallery/previous [post]
func (h *Handler) PreviousPhoto(w http.ResponseWriter, r *http.Request) {
	h.galleryStep(w, r, (*session.Session).PreviousPhoto)
}

// CloseGallery closes the gallery.
//
// @Summary Close the gallery
// @Tags Gallery
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=gallery.View}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/gallery/close [post]
func (h *Handler) CloseGallery(w http.ResponseWriter, r *http.Request) {
	h.galleryStep(w, r, (*session.Session).CloseGallery)
}

// GalleryKey forwards a key press: Escape closes, ArrowLeft and ArrowRight
// move.
//
// @Summary Gallery key press
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body GalleryKeyRequest true "Escape, ArrowLeft or ArrowRight"
// @Success 200 {object} APIResponse{data=gallery.View}
// @Failure 400 {object} APIResponse "Unsupported key"
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/gallery/key [post]
func (h *Handler) GalleryKey(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req GalleryKeyRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	WriteSuccess(w, r, s.GalleryKey(req.Key))
}

func (h *Handler) galleryStep(w http.ResponseWriter, r *http.Request, step func(*session.Session) gallery.View) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	WriteSuccess(w, r, step(s))
}
