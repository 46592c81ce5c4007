// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:3857/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Requests by method, endpoint and status_code (counter)
  - api_request_duration_seconds: Request latency by method and endpoint (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections by endpoint (counter)

Analysis Metrics:
  - analysis_requests_total: Attempts by outcome (counter)
    Outcomes: success, input_error, validation_error, request_failure, in_progress
  - analysis_duration_seconds: Upstream analyzer latency (histogram)
  - analysis_places: Places per successful analysis (histogram)

Session Metrics:
  - sessions_active: Live sessions (gauge)
  - session_transitions_total: Operations by name (counter)
  - sessions_expired_total: TTL removals (counter)
  - markers_emitted_total / markers_skipped_total: Marker synchronisation (counter)

WebSocket Metrics:
  - websocket_connections, websocket_messages_sent_total,
    websocket_messages_received_total, websocket_errors_total

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

# Usage

	start := time.Now()
	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, "/api/v1/sessions", "200", time.Since(start))

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
