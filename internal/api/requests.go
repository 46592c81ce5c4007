// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/placemap/internal/validation"
)

// maxRequestBodySize bounds every JSON request body.
const maxRequestBodySize = 64 * 1024

// AnalyzeRequest starts an analysis. The link itself is validated by the
// session so that a bad link is shown in the session state as well.
type AnalyzeRequest struct {
	VideoURL string `json:"video_url" validate:"max=2048"`
}

// CheckVideoRequest validates a link without starting an analysis.
type CheckVideoRequest struct {
	VideoURL string `json:"video_url" validate:"required,max=2048,videourl"`
}

// TabRequest selects the active tab.
type TabRequest struct {
	Value string `json:"value" validate:"required,viewtab"`
}

// FilterRequest selects the list filter. An empty value means "all".
type FilterRequest struct {
	Value string `json:"value" validate:"omitempty,max=64,viewfilter"`
}

// SortRequest selects the list ordering.
type SortRequest struct {
	Value string `json:"value" validate:"required,viewsort"`
}

// OpenGalleryRequest opens the photo gallery for a place.
type OpenGalleryRequest struct {
	PlaceID string `json:"place_id" validate:"required,max=256"`
}

// GalleryKeyRequest forwards a key press to the gallery.
type GalleryKeyRequest struct {
	Key string `json:"key" validate:"required,gallerykey"`
}

// errEmptyBody is returned by decodeRequest for a missing body.
var errEmptyBody = errors.New("request body is empty")

// decodeRequest reads a JSON body into dst and validates it. It writes the
// 400 response itself and reports whether the handler may continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
