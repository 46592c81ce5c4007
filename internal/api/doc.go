// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package api provides the HTTP REST surface over presentation sessions.

Key Components:

  - Router: chi route tree and middleware stack
  - Handler: session, view, gallery, health and WebSocket handlers
  - ResponseWriter: the JSON envelope shared by every endpoint
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories

Endpoints (/api/v1):

	POST   /sessions                             create (201)
	GET    /sessions/{id}                        snapshot
	DELETE /sessions/{id}                        delete (204)
	POST   /sessions/{id}/analyze                {"video_url"}
	PUT    /sessions/{id}/tab|filter|sort        {"value"}
	GET    /sessions/{id}/list|markers|catalog
	GET    /sessions/{id}/places/{placeID}       info window
	GET    /sessions/{id}/places/{placeID}/link  external map link
	GET    /sessions/{id}/gallery
	POST   /sessions/{id}/gallery/open           {"place_id"}
	POST   /sessions/{id}/gallery/next|previous|close
	POST   /sessions/{id}/gallery/key            {"key"}
	GET    /sessions/{id}/ws                     WebSocket push
	POST   /videos/check                         {"video_url"}
	GET    /health, /health/live, /health/ready

Outside the API prefix: /metrics (Prometheus) and /swagger/* (API docs).

Response format:

	{
	  "success": false,
	  "error": {"code": "EXTERNAL_SERVICE_FAILED", "message": "...", "request_id": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 812}
	}

Error mapping:

  - missing or malformed video link: 400 VALIDATION_FAILED, configured message
  - invalid request body: 400 BAD_REQUEST or VALIDATION_FAILED
  - analyser failure: 502 EXTERNAL_SERVICE_FAILED, upstream message verbatim
  - analysis already running: 409 CONFLICT
  - unknown session or place: 404 NOT_FOUND
  - session limit reached: 503 SERVICE_UNAVAILABLE

Rate limits are per client IP: a general budget for all of /api/v1, a
strict one for analysis (each request costs an upstream model call) and a
permissive one for health probes.
*/
package api
