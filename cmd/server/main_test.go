// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/placemap/internal/config"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/supervisor"
)

//nolint:gochecknoinits // quiet logs for the whole package
func init() {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
}

func testConfig(analyzerURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: 0, Host: "127.0.0.1", Timeout: 5 * time.Second, ShutdownTimeout: time.Second,
			Environment: "development",
		},
		Analyzer: config.AnalyzerConfig{
			BaseURL: analyzerURL, Timeout: 5 * time.Second, RateLimit: 100, Burst: 100,
			Breaker: config.BreakerConfig{MaxRequests: 3, Interval: time.Minute, Timeout: time.Minute, MinRequests: 10, FailureRatio: 0.6},
		},
		Maps: config.MapsConfig{
			PlaceIDURL:     "https://www.google.com/maps/place/?q=place_id:{place_id}",
			CoordinatesURL: "https://www.google.com/maps/search/?api=1&query={lat},{lng}",
			SearchURL:      "https://www.google.com/maps/search/?api=1&query={query}",
			DefaultLat:     52.2297, DefaultLng: 21.0122, DefaultZoom: 6,
		},
		Session: config.SessionConfig{TTL: time.Hour, SweepInterval: time.Minute, MaxSessions: 10, Locale: "pl"},
		Messages: config.MessagesConfig{
			MissingURL: "missing", InvalidURL: "invalid", AnalysisFailed: "failed",
			NoMatches: "no matches", EmptyCollection: "empty",
		},
		Security: config.SecurityConfig{CORSOrigins: []string{"*"}, RateLimitReqs: 100, RateLimitWindow: time.Minute},
		Logging:  config.LoggingConfig{Level: "error", Format: "json"},
	}
}

// fakeAnalyzerServer answers /api/analyze with one place and /api/health as healthy.
func fakeAnalyzerServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"places":[{"id":"p1","name":"Wawel","type":"castle","coordinates":{"lat":50.054,"lng":19.935}}]}`)
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"healthy","apis":{"youtube":true}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func request(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

func TestNewApp_EndToEnd(t *testing.T) {
	analyzer := fakeAnalyzerServer(t)
	a := newApp(testConfig(analyzer.URL))
	srv := httptest.NewServer(a.handler)
	t.Cleanup(srv.Close)

	status, body := request(t, srv, http.MethodPost, "/api/v1/sessions", "")
	if status != http.StatusCreated {
		t.Fatalf("create status = %d", status)
	}
	id := body["data"].(map[string]any)["id"].(string)

	status, body = request(t, srv, http.MethodPost, "/api/v1/sessions/"+id+"/analyze",
		`{"video_url":"https://youtu.be/dQw4w9WgXcQ"}`)
	if status != http.StatusOK {
		t.Fatalf("analyze status = %d body = %v", status, body)
	}

	status, body = request(t, srv, http.MethodGet, "/api/v1/sessions/"+id+"/places/p1/link", "")
	if status != http.StatusOK {
		t.Fatalf("link status = %d", status)
	}
	if got := body["data"].(map[string]any)["url"]; got != "https://www.google.com/maps/search/?api=1&query=50.054,19.935" {
		t.Errorf("link = %v", got)
	}

	status, body = request(t, srv, http.MethodPost, "/api/v1/sessions/"+id+"/analyze", `{"video_url":""}`)
	if status != http.StatusBadRequest {
		t.Fatalf("empty link status = %d", status)
	}
	if msg := body["error"].(map[string]any)["message"]; msg != "missing" {
		t.Errorf("configured message not used: %v", msg)
	}

	status, body = request(t, srv, http.MethodGet, "/api/v1/health", "")
	if status != http.StatusOK || body["data"].(map[string]any)["status"] != "healthy" {
		t.Errorf("health = %d %v", status, body)
	}
}

func TestNewApp_SwaggerRegistered(t *testing.T) {
	a := newApp(testConfig("http://127.0.0.1:1"))
	srv := httptest.NewServer(a.handler)
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL + "/swagger/doc.json")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Description string `json:"description"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("doc.json is not JSON: %v", err)
	}
	if doc.Info.Title != "Place Map API" {
		t.Errorf("title = %q", doc.Info.Title)
	}
	if _, ok := doc.Paths["/sessions/{id}/analyze"]; !ok {
		t.Error("analyze path missing from the swagger document")
	}
	link := doc.Paths["/sessions/{id}/places/{placeID}/link"]["get"].Description
	if !strings.Contains(link, "place name") || strings.Contains(link, "address") {
		t.Errorf("link description = %q, want a name-only text search", link)
	}
}

func TestApp_SupervisedLifecycle(t *testing.T) {
	a := newApp(testConfig("http://127.0.0.1:1"))
	a.server.Addr = "127.0.0.1:0"

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	a.supervise(tree)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-errCh:
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}
	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) != 0 {
		t.Errorf("unstopped services: %v", unstopped)
	}
}
