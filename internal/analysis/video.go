// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package analysis

import (
	"regexp"
	"strings"

	"github.com/tomtom215/placemap/internal/config"
)

// Messages are the user-facing texts for input and request errors.
type Messages struct {
	MissingURL    string
	InvalidURL    string
	RequestFailed string
}

// DefaultMessages returns the built-in Polish texts.
func DefaultMessages() Messages {
	return Messages{
		MissingURL:    "Proszę podać link do filmu YouTube",
		InvalidURL:    "Nieprawidłowy link do filmu YouTube",
		RequestFailed: "Wystąpił błąd podczas analizy filmu",
	}
}

// MessagesFromConfig takes the configured texts, keeping defaults for blanks.
func MessagesFromConfig(cfg *config.MessagesConfig) Messages {
	m := DefaultMessages()
	if cfg == nil {
		return m
	}
	if cfg.MissingURL != "" {
		m.MissingURL = cfg.MissingURL
	}
	if cfg.InvalidURL != "" {
		m.InvalidURL = cfg.InvalidURL
	}
	if cfg.AnalysisFailed != "" {
		m.RequestFailed = cfg.AnalysisFailed
	}
	return m
}

var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(www\.)?(youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)`),
	regexp.MustCompile(`^https?://youtube\.com/watch\?.*v=`),
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// IsVideoURL reports whether s looks like a YouTube video link.
func IsVideoURL(s string) bool {
	for _, re := range videoURLPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// ValidateVideoURL trims raw and checks it is a YouTube link. It returns the
// trimmed link or an *InputError carrying the matching message.
func ValidateVideoURL(raw string, msgs Messages) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", &InputError{Message: msgs.MissingURL}
	}
	if !IsVideoURL(url) {
		return "", &InputError{Message: msgs.InvalidURL}
	}
	return url, nil
}

// ExtractVideoID returns the video id embedded in a YouTube link.
func ExtractVideoID(raw string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	return "", false
}
