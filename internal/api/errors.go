// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/session"
)

// writeError maps domain errors onto the API envelope. Messages of input
// errors and upstream failures are passed through verbatim because they
// are the texts the user sees.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	var (
		inputErr  *analysis.InputError
		failure   *analysis.RequestFailure
		recordErr *models.ValidationError
	)

	switch {
	case errors.As(err, &inputErr):
		rw.ValidationError(inputErr.Message, map[string]interface{}{"field": "video_url"})

	case errors.As(err, &failure):
		logging.Ctx(r.Context()).Warn().
			Int("upstream_status", failure.Status).
			Str("detail", failure.Detail()).
			Msg("Analysis request failed")
		rw.ExternalServiceError(failure.Message, map[string]interface{}{"upstream_status": failure.Status})

	case errors.As(err, &recordErr):
		// The analyser answered, but with a record we cannot place.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Analyzer returned a malformed place")
		rw.ExternalServiceError(recordErr.Error(), map[string]interface{}{
			"index":  recordErr.Index,
			"field":  recordErr.Field,
			"reason": recordErr.Reason,
		})

	case errors.Is(err, session.ErrAnalysisInProgress):
		rw.Conflict(err.Error())

	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrPlaceNotFound),
		errors.Is(err, session.ErrNoMarker):
		rw.NotFound(err.Error())

	case errors.Is(err, session.ErrStoreFull):
		rw.ServiceUnavailable(err.Error())

	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Unhandled API error")
		rw.InternalError("An internal error occurred")
	}
}
