// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package analysis

import (
	"errors"
	"testing"

	"github.com/tomtom215/placemap/internal/config"
)

func TestValidateVideoURL(t *testing.T) {
	t.Parallel()

	msgs := DefaultMessages()

	tests := []struct {
		name    string
		input   string
		want    string
		wantMsg string
	}{
		{name: "watch link", input: "https://www.youtube.com/watch?v=abc123", want: "https://www.youtube.com/watch?v=abc123"},
		{name: "watch link without www", input: "http://youtube.com/watch?v=abc123", want: "http://youtube.com/watch?v=abc123"},
		{name: "short link", input: "https://youtu.be/abc123", want: "https://youtu.be/abc123"},
		{name: "embed link", input: "https://www.youtube.com/embed/abc123", want: "https://www.youtube.com/embed/abc123"},
		{name: "v not first", input: "https://youtube.com/watch?feature=share&v=abc123", want: "https://youtube.com/watch?feature=share&v=abc123"},
		{name: "trimmed", input: "  https://youtu.be/abc123\n", want: "https://youtu.be/abc123"},
		{name: "empty", input: "", wantMsg: msgs.MissingURL},
		{name: "blank", input: "   ", wantMsg: msgs.MissingURL},
		{name: "other host", input: "https://vimeo.com/12345", wantMsg: msgs.InvalidURL},
		{name: "no scheme", input: "youtube.com/watch?v=abc123", wantMsg: msgs.InvalidURL},
		{name: "channel page", input: "https://www.youtube.com/@channel", wantMsg: msgs.InvalidURL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateVideoURL(tt.input, msgs)
			if tt.wantMsg != "" {
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("ValidateVideoURL(%q) error = %v, want *InputError", tt.input, err)
				}
				if inputErr.Message != tt.wantMsg {
					t.Errorf("message = %q, want %q", inputErr.Message, tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateVideoURL(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateVideoURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ?si=x", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtube.com/watch?list=PL1&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://example.com/video", "", false},
	}

	for _, tt := range tests {
		got, ok := ExtractVideoID(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExtractVideoID(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMessagesFromConfig(t *testing.T) {
	t.Parallel()

	m := MessagesFromConfig(&config.MessagesConfig{InvalidURL: "Bad link"})
	if m.InvalidURL != "Bad link" {
		t.Errorf("InvalidURL = %q, want configured text", m.InvalidURL)
	}
	if m.MissingURL != DefaultMessages().MissingURL {
		t.Errorf("MissingURL = %q, want default", m.MissingURL)
	}
	if got := MessagesFromConfig(nil); got != DefaultMessages() {
		t.Errorf("MessagesFromConfig(nil) = %+v, want defaults", got)
	}
}
