// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared. Besides the
// built-in tags it understands the request vocabulary of the session API:
//
//	videourl    a YouTube watch, short or embed link
//	viewtab     "map" or "list"
//	viewsort    "name", "type" or "rating"
//	viewfilter  "all" or a non-empty place type
//	gallerykey  "Escape", "ArrowLeft" or "ArrowRight"
//
// Field names in errors are taken from json tags, so a failure on
//
//	type SetSortRequest struct {
//	    Value string `json:"value" validate:"required,viewsort"`
//	}
//
// is reported against "value". RequestValidationError.ToAPIError converts
// failures to the VALIDATION_ERROR shape used by the API envelope.
package validation
