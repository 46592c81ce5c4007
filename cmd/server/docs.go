// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package main

// General API information for swag. Regenerate docs/ with:
//
//	swag init -g cmd/server/docs.go -o docs
//
// @title Place Map API
// @version 1.0
// @description Turns the places mentioned in a YouTube travel video into a filterable list, map markers and photo galleries, held in per-client presentation sessions.
// @description
// @description ## Sessions
// @description
// @description Create a session with `POST /sessions`, then `POST /sessions/{id}/analyze` with a video link.
// @description Sessions expire after SESSION_TTL without requests.
// @description
// @description ## Rate Limiting
// @description
// @description 100 requests per minute per IP by default. Analysis and video checks are limited to 10 per minute.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "VALIDATION_FAILED", "message": "...", "details": {}, "request_id": "..."},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T12:00:00Z", "duration_ms": 3}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/placemap/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness probes
//
// @tag.name Sessions
// @tag.description Presentation session lifecycle
//
// @tag.name Analysis
// @tag.description Video link checks and place extraction
//
// @tag.name View
// @tag.description Tab, filter and ordering of the place list and map
//
// @tag.name Gallery
// @tag.description Photo gallery navigation
//
// @tag.name Realtime
// @tag.description WebSocket view pushes
