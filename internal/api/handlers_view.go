// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/placemap/internal/models"
)

// SetTab switches between the map and list tabs.
//
// @Summary Set the active tab
// @Description Switching to map re-syncs the markers; switching to list re-projects the list.
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body TabRequest true "map or list"
// @Success 200 {object} APIResponse{data=session.Change}
// @Failure 400 {object} APIResponse "Unknown tab"
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/tab [put]
func (h *Handler) SetTab(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req TabRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tab, err := models.ParseTab(req.Value)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return
	}
	WriteSuccess(w, r, s.SetTab(tab))
}

// SetFilter restricts the list to one place type.
//
// @Summary Set the list filter
// @Description "all" (or an empty value) shows every place grouped by type; any other value shows that type only, as a flat list.
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body FilterRequest true "all or a place type"
// @Success 200 {object} APIResponse{data=session.Change}
// @Failure 400 {object} APIResponse "Invalid filter"
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/filter [put]
func (h *Handler) SetFilter(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req FilterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	filter := models.FilterAll
	if req.Value != "" {
		f, err := models.ParseFilter(req.Value)
		if err != nil {
			NewResponseWriter(w, r).BadRequest(err.Error())
			return
		}
		filter = f
	}
	WriteSuccess(w, r, s.SetFilter(filter))
}

// SetSort changes the list ordering.
//
// @Summary Set the list ordering
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SortRequest true "name, type or rating"
// @Success 200 {object} APIResponse{data=session.Change}
// @Failure 400 {object} APIResponse "Unknown sort key"
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/sort [put]
func (h *Handler) SetSort(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req SortRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	key, err := models.ParseSortKey(req.Value)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return
	}
	WriteSuccess(w, r, s.SetSort(key))
}

// List returns the list tab.
//
// @Summary Get the list view
// @Tags Views
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=presenter.ListView}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/list [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	WriteSuccess(w, r, s.List())
}

// Markers returns the map tab.
//
// @Summary Get the map markers
// @Description Markers cover every located place regardless of the list filter. Fit is absent when there is nothing to frame.
// @Tags Views
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=session.MapView}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/markers [get]
func (h *Handler) Markers(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	WriteSuccess(w, r, s.Map())
}

// Catalog returns the filter choices for the current places.
//
// @Summary Get the filter catalog
// @Tags Views
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=[]projection.CatalogEntry}
// @Failure 404 {object} APIResponse "Unknown or expired session"
// @Router /sessions/{id}/catalog [get]
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	WriteSuccess(w, r, s.Catalog())
}

// InfoWindow returns the marker popup of a place.
//
// @Summary Get a place's info window
// @Tags Views
// @Produce json
// @Param id path string true "Session ID"
// @Param placeID path string true "Place ID"
// @Success 200 {object} APIResponse{data=presenter.InfoWindow}
// @Failure 404 {object} APIResponse "Unknown session or place, or a place without a marker"
// @Router /sessions/{id}/places/{placeID} [get]
func (h *Handler) InfoWindow(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	info, err := s.InfoWindow(chi.URLParam(r, "placeID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, info)
}

// PlaceLink is the external map link of a place.
type PlaceLink struct {
	URL string `json:"url"`
}

// Link returns the external map link of a place.
//
// @Summary Get a place's map link
// @Description Prefers the map place id, then coordinates, then a text search on the place name.
// @Tags Views
// @Produce json
// @Param id path string true "Session ID"
// @Param placeID path string true "Place ID"
// @Success 200 {object} APIResponse{data=PlaceLink}
// @Failure 404 {object} APIResponse "Unknown session or place, or nothing to link by"
// @Router /sessions/{id}/places/{placeID}/link [get]
func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	link, ok, err := s.Link(chi.URLParam(r, "placeID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		NewResponseWriter(w, r).NotFound("place has no map link")
		return
	}
	WriteSuccess(w, r, PlaceLink{URL: link})
}
