// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Command server runs the place map HTTP API.

A client creates a presentation session, submits a YouTube travel video
link for analysis and then drives the views of the places the analyzer
found: a grouped or filtered list, map markers fitted to the places, info
windows with map deep links, and a photo gallery. Every view change is
also pushed to the session's WebSocket subscribers.

# Process layout

	placemap (suture root)
	├── session-layer   expired-session sweeper
	├── realtime-layer  WebSocket hub
	└── api-layer       HTTP server (chi)

Startup order:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Analyzer client: rate limited, behind a gobreaker circuit breaker
 4. Session store: TTL cache, capped by SESSION_MAX
 5. Router: chi with request ID, access log, CORS, rate limits, metrics
 6. Supervisor tree: runs until SIGINT or SIGTERM

# Configuration

	HTTP_PORT=3857                    listen port
	ANALYZER_URL=http://127.0.0.1:5000
	ANALYZER_TIMEOUT=2m
	SESSION_TTL=30m
	SESSION_LOCALE=pl                 collation for name ordering
	MAPS_COORDINATES_URL=...{lat},{lng}
	CORS_ORIGINS=https://app.example
	LOG_LEVEL=info
	LOG_FORMAT=json

A config.yaml in the working directory, /etc/placemap or the path in
CONFIG_PATH is loaded between the defaults and the environment.

# Endpoints

	/api/v1/...   REST API, see /swagger/index.html
	/metrics      Prometheus metrics

# Shutdown

On SIGINT or SIGTERM the HTTP server drains for HTTP_SHUTDOWN_TIMEOUT,
the hub closes every socket and the sweeper stops. The process exits 1
when a service outlives the timeout.
*/
package main
