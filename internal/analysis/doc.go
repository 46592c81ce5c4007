// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package analysis is the boundary to the upstream video analysis service.

The service takes a YouTube link and returns the places mentioned in the
video. This package owns everything on the near side of that call:

  - ValidateVideoURL rejects empty and malformed links with *InputError
    before any network traffic happens
  - ExtractVideoID mirrors the analyzer's own id extraction
  - Client posts the link to {base}/api/analyze and decodes the raw place
    records; every failure is reported as *RequestFailure

The client is wrapped in a sony/gobreaker circuit breaker and throttled by a
golang.org/x/time/rate limiter. It never retries: a failed analysis is
terminal for the request that triggered it, and the caller decides whether
to ask again.

Usage:

	client := analysis.NewClient(&cfg.Analyzer, cfg.Messages.AnalysisFailed)
	url, err := analysis.ValidateVideoURL(input, msgs)
	if err != nil {
	    return err // *InputError
	}
	raws, err := client.Analyze(ctx, url)

Metrics are exported through internal/metrics under the "analyzer" breaker
name.
*/
package analysis
