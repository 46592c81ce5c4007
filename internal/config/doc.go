// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package config provides application configuration loading and validation.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The merged result is validated before
use.

# Sections

  - server: HTTP listener (HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, ENVIRONMENT)
  - analyzer: upstream video analyzer client (ANALYZER_URL, ANALYZER_TIMEOUT,
    ANALYZER_RATE_LIMIT, ANALYZER_BURST, ANALYZER_BREAKER_*)
  - maps: deep-link templates and the default map camera
  - session: presentation session TTL, sweep interval and collation locale
  - messages: user-facing strings (MSG_*)
  - security: CORS origins and API rate limiting
  - logging: LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Config File

The first existing file among CONFIG_PATH, config.yaml, config.yml,
/etc/placemap/config.yaml and /etc/placemap/config.yml is loaded:

	analyzer:
	  base_url: http://analyzer:5000
	  timeout: 3m
	session:
	  ttl: 1h
	  locale: pl
	maps:
	  default_lat: 50.0647
	  default_lng: 19.9450

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
