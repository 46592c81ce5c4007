// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/placemap/config.yaml",
	"/etc/placemap/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3857,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Analyzer: AnalyzerConfig{
			BaseURL: "http://127.0.0.1:5000",
			// Transcript download, LLM extraction and geocoding run in one call.
			Timeout:   2 * time.Minute,
			RateLimit: 1,
			Burst:     3,
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Maps: MapsConfig{
			PlaceIDURL:     "https://www.google.com/maps/place/?q=place_id:{place_id}",
			CoordinatesURL: "https://www.google.com/maps/search/?api=1&query={lat},{lng}",
			SearchURL:      "https://www.google.com/maps/search/?api=1&query={query}",
			DefaultLat:     52.2297,
			DefaultLng:     21.0122,
			DefaultZoom:    6,
		},
		Session: SessionConfig{
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
			MaxSessions:   10000,
			Locale:        "pl",
		},
		Messages: MessagesConfig{
			MissingURL:      "Proszę podać link do filmu YouTube",
			InvalidURL:      "Nieprawidłowy link do filmu YouTube",
			AnalysisFailed:  "Wystąpił błąd podczas analizy filmu",
			NoMatches:       "Brak miejsc do wyświetlenia dla wybranego filtra",
			EmptyCollection: "Wklej link do filmu YouTube, aby zobaczyć miejsca na mapie",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// The merged result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// ANALYZER_URL -> analyzer.base_url, SESSION_TTL -> session.ttl, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps flat environment variable names to koanf config paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Analyzer mappings
	"analyzer_url":                   "analyzer.base_url",
	"analyzer_timeout":               "analyzer.timeout",
	"analyzer_rate_limit":            "analyzer.rate_limit",
	"analyzer_burst":                 "analyzer.burst",
	"analyzer_breaker_max_requests":  "analyzer.breaker.max_requests",
	"analyzer_breaker_interval":      "analyzer.breaker.interval",
	"analyzer_breaker_timeout":       "analyzer.breaker.timeout",
	"analyzer_breaker_min_requests":  "analyzer.breaker.min_requests",
	"analyzer_breaker_failure_ratio": "analyzer.breaker.failure_ratio",

	// Maps mappings
	"maps_place_id_url":    "maps.place_id_url",
	"maps_coordinates_url": "maps.coordinates_url",
	"maps_search_url":      "maps.search_url",
	"map_default_lat":      "maps.default_lat",
	"map_default_lng":      "maps.default_lng",
	"map_default_zoom":     "maps.default_zoom",

	// Session mappings
	"session_ttl":            "session.ttl",
	"session_sweep_interval": "session.sweep_interval",
	"session_max":            "session.max_sessions",
	"session_locale":         "session.locale",

	// Message mappings
	"msg_missing_url":      "messages.missing_url",
	"msg_invalid_url":      "messages.invalid_url",
	"msg_analysis_failed":  "messages.analysis_failed",
	"msg_no_matches":       "messages.no_matches",
	"msg_empty_collection": "messages.empty_collection",

	// Security mappings
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are ignored by koanf.
//
// Examples:
//   - ANALYZER_URL -> analyzer.base_url
//   - SESSION_TTL -> session.ttl
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}
