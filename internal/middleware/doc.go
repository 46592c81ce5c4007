// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package middleware provides chi-compatible HTTP middleware shared by the
// API router.
//
//   - RequestID: assigns X-Request-ID and seeds the logging context
//   - AccessLog: one zerolog line per request
//   - PrometheusMetrics: request count, duration and in-flight gauge,
//     labelled by route pattern
//
// Order matters: RequestID must wrap AccessLog so log lines carry the id.
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.Use(middleware.AccessLog)
//	r.Use(middleware.PrometheusMetrics)
package middleware
