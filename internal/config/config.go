// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values for every setting
//  2. Config File: Optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: Override any setting
//
// Config is immutable after LoadWithKoanf and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Analyzer AnalyzerConfig `koanf:"analyzer"`
	Maps     MapsConfig     `koanf:"maps"`
	Session  SessionConfig  `koanf:"session"`
	Messages MessagesConfig `koanf:"messages"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AnalyzerConfig configures the client of the upstream video analysis
// service.
type AnalyzerConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the sustained request rate in requests per second.
	// Zero disables throttling.
	RateLimit float64 `koanf:"rate_limit"`
	Burst     int     `koanf:"burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker thresholds
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"` // concurrent probes in half-open state
	Interval     time.Duration `koanf:"interval"`     // count reset period while closed
	Timeout      time.Duration `koanf:"timeout"`      // open period before half-open
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// MapsConfig holds deep-link templates and the default map camera.
type MapsConfig struct {
	PlaceIDURL     string  `koanf:"place_id_url"`
	CoordinatesURL string  `koanf:"coordinates_url"`
	SearchURL      string  `koanf:"search_url"`
	DefaultLat     float64 `koanf:"default_lat"`
	DefaultLng     float64 `koanf:"default_lng"`
	DefaultZoom    int     `koanf:"default_zoom"`
}

// SessionConfig controls presentation session lifetime.
type SessionConfig struct {
	TTL           time.Duration `koanf:"ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
	MaxSessions   int           `koanf:"max_sessions"` // 0 = unlimited
	Locale        string        `koanf:"locale"`       // BCP 47 tag for name collation
}

// MessagesConfig holds the user-facing strings. They live in configuration
// so that deployments can translate them without code changes.
type MessagesConfig struct {
	MissingURL      string `koanf:"missing_url"`
	InvalidURL      string `koanf:"invalid_url"`
	AnalysisFailed  string `koanf:"analysis_failed"`
	NoMatches       string `koanf:"no_matches"`
	EmptyCollection string `koanf:"empty_collection"`
}

// SecurityConfig holds CORS and rate limit settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
