// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateHTTPURL validates that rawURL is an http(s) base URL without path
// or query.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	// Allow trailing slash but no other paths
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// validateURLTemplate checks that a deep-link template is an absolute URL
// once its placeholder is filled in.
func validateURLTemplate(tpl, fieldName, placeholder string) error {
	if !strings.Contains(tpl, placeholder) {
		return fmt.Errorf("%s must contain the %s placeholder", fieldName, placeholder)
	}

	sample := strings.NewReplacer("{place_id}", "x", "{lat}", "0", "{lng}", "0", "{query}", "x").Replace(tpl)
	parsedURL, err := url.Parse(sample)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if !parsedURL.IsAbs() {
		return fmt.Errorf("%s must be an absolute URL", fieldName)
	}
	return nil
}
