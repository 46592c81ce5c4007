// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAnalyzer(); err != nil {
		return err
	}

	if err := c.validateMaps(); err != nil {
		return err
	}

	if err := c.validateSession(); err != nil {
		return err
	}

	if err := c.validateMessages(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	switch c.Server.Environment {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
}

// validateAnalyzer validates the upstream analyzer client settings
func (c *Config) validateAnalyzer() error {
	if err := validateHTTPURL(c.Analyzer.BaseURL, "ANALYZER_URL"); err != nil {
		return fmt.Errorf("ANALYZER_URL is invalid: %w", err)
	}
	if c.Analyzer.Timeout <= 0 {
		return fmt.Errorf("ANALYZER_TIMEOUT must be positive")
	}
	if c.Analyzer.RateLimit < 0 {
		return fmt.Errorf("ANALYZER_RATE_LIMIT must not be negative")
	}
	if c.Analyzer.RateLimit > 0 && c.Analyzer.Burst < 1 {
		return fmt.Errorf("ANALYZER_BURST must be at least 1 when rate limiting is enabled")
	}
	return c.validateBreaker()
}

// validateBreaker validates circuit breaker thresholds
func (c *Config) validateBreaker() error {
	b := c.Analyzer.Breaker
	if b.MaxRequests == 0 {
		return fmt.Errorf("ANALYZER_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("ANALYZER_BREAKER_TIMEOUT must be positive")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("ANALYZER_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

// validateMaps validates deep-link templates and the default camera
func (c *Config) validateMaps() error {
	templates := []struct {
		name, value, placeholder string
	}{
		{"MAPS_PLACE_ID_URL", c.Maps.PlaceIDURL, "{place_id}"},
		{"MAPS_COORDINATES_URL", c.Maps.CoordinatesURL, "{lat}"},
		{"MAPS_COORDINATES_URL", c.Maps.CoordinatesURL, "{lng}"},
		{"MAPS_SEARCH_URL", c.Maps.SearchURL, "{query}"},
	}
	for _, tpl := range templates {
		if err := validateURLTemplate(tpl.value, tpl.name, tpl.placeholder); err != nil {
			return err
		}
	}

	if c.Maps.DefaultLat < -90 || c.Maps.DefaultLat > 90 {
		return fmt.Errorf("MAP_DEFAULT_LAT must be between -90 and 90")
	}
	if c.Maps.DefaultLng < -180 || c.Maps.DefaultLng > 180 {
		return fmt.Errorf("MAP_DEFAULT_LNG must be between -180 and 180")
	}
	if c.Maps.DefaultZoom < 0 || c.Maps.DefaultZoom > 22 {
		return fmt.Errorf("MAP_DEFAULT_ZOOM must be between 0 and 22")
	}
	return nil
}

// validateSession validates session lifetime settings
func (c *Config) validateSession() error {
	if c.Session.TTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least 1m")
	}
	if c.Session.SweepInterval <= 0 || c.Session.SweepInterval > c.Session.TTL {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive and not exceed SESSION_TTL")
	}
	if c.Session.MaxSessions < 0 {
		return fmt.Errorf("SESSION_MAX must not be negative")
	}
	if _, err := language.Parse(c.Session.Locale); err != nil {
		return fmt.Errorf("SESSION_LOCALE is not a valid language tag: %w", err)
	}
	return nil
}

// validateMessages rejects blank user-facing strings
func (c *Config) validateMessages() error {
	messages := map[string]string{
		"MSG_MISSING_URL":     c.Messages.MissingURL,
		"MSG_INVALID_URL":     c.Messages.InvalidURL,
		"MSG_ANALYSIS_FAILED": c.Messages.AnalysisFailed,
		"MSG_NO_MATCHES":      c.Messages.NoMatches,
	}
	for name, msg := range messages {
		if strings.TrimSpace(msg) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard origins in production
func (c *Config) validateCORS() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validateRateLimits validates rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
