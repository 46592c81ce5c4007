// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package logging

import (
	"context"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// AnalysisEvent is one video analysis attempt as recorded in the audit log.
type AnalysisEvent struct {
	SessionID string
	VideoURL  string
	VideoID   string
	// Outcome is the metrics outcome label (success, input_error, ...).
	Outcome  string
	Places   int
	Duration time.Duration
	Error    string
}

// AnalysisLogger writes analysis events with submitted URLs reduced to the
// parts needed to identify the video.
type AnalysisLogger struct {
	logger zerolog.Logger
}

// NewAnalysisLogger creates an analysis logger on the global logger.
func NewAnalysisLogger() *AnalysisLogger {
	return &AnalysisLogger{logger: WithComponent("analysis")}
}

// NewAnalysisLoggerWithLogger creates an analysis logger on logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAnalysisLoggerWithLogger(logger zerolog.Logger) *AnalysisLogger {
	return &AnalysisLogger{logger: logger.With().Str("component", "analysis").Logger()}
}

// LogEvent records ev. Successes log at info, failures at warn.
func (l *AnalysisLogger) LogEvent(ctx context.Context, ev *AnalysisEvent) {
	e := l.logger.Info()
	if ev.Outcome != "success" {
		e = l.logger.Warn()
	}

	e = e.Str("event", "video_analysis").Str("outcome", ev.Outcome)

	if id := RequestIDFromContext(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	if ev.SessionID != "" {
		e = e.Str("session_id", ev.SessionID)
	}
	if ev.VideoURL != "" {
		e = e.Str("video_url", SanitizeVideoURL(ev.VideoURL))
	}
	if ev.VideoID != "" {
		e = e.Str("video_id", ev.VideoID)
	}
	if ev.Outcome == "success" {
		e = e.Int("places", ev.Places)
	}
	if ev.Duration > 0 {
		e = e.Dur("duration", ev.Duration)
	}
	if ev.Error != "" {
		e = e.Str("error", truncateString(ev.Error, 200))
	}

	e.Msg("")
}

// SanitizeVideoURL strips everything but scheme, host, path and the "v"
// query parameter. Unparseable input is truncated instead.
func SanitizeVideoURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return truncateString(raw, 100)
	}

	clean := url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}
	if v := u.Query().Get("v"); v != "" {
		clean.RawQuery = url.Values{"v": []string{v}}.Encode()
	}
	return truncateString(clean.String(), 200)
}

// truncateString cuts s to at most n runes and marks the cut.
func truncateString(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
