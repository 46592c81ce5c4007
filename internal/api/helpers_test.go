// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/session"
)

//nolint:gochecknoinits // quiet logs for the whole package
func init() {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
}

const testVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// fakeAnalyzer returns a fixed result and counts calls.
type fakeAnalyzer struct {
	mu     sync.Mutex
	places []models.RawPlace
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string) ([]models.RawPlace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.places, f.err
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeUpstream is a scripted analyser health probe.
type fakeUpstream struct {
	status *analysis.HealthStatus
	err    error
	state  string
}

func (f *fakeUpstream) Health(context.Context) (*analysis.HealthStatus, error) {
	return f.status, f.err
}

func (f *fakeUpstream) BreakerState() string {
	return f.state
}

func ptr(v float64) *float64 { return &v }

func rawPlaces() []models.RawPlace {
	return []models.RawPlace{
		{ID: "krk", Name: "Kraków", Type: "city", Rating: ptr(4.7),
			Coordinates: &models.RawCoordinates{Lat: ptr(50.06), Lng: ptr(19.94)}},
		{ID: "oko", Name: "Morskie Oko", Type: "lake", Rating: ptr(4.9),
			Coordinates: &models.RawCoordinates{Lat: ptr(49.2), Lng: ptr(20.07)},
			Photos:      []string{"a.jpg", "b.jpg", "c.jpg"}},
		{ID: "legend", Name: "Legenda", Type: "other"},
	}
}

type testEnv struct {
	server   *httptest.Server
	store    *session.Store
	analyzer *fakeAnalyzer
	upstream *fakeUpstream
}

// newTestEnv serves the full router with rate limiting disabled unless mw
// says otherwise.
func newTestEnv(t *testing.T, mw *ChiMiddlewareConfig) *testEnv {
	t.Helper()

	env := &testEnv{
		analyzer: &fakeAnalyzer{places: rawPlaces()},
		upstream: &fakeUpstream{
			status: &analysis.HealthStatus{Status: "healthy", APIs: map[string]bool{"youtube": true}},
			state:  "closed",
		},
	}
	env.store = session.NewStore(session.StoreConfig{TTL: time.Hour}, session.Options{
		EmptyMessage: "Nie znaleziono miejsc",
	})

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}

	handler := NewHandler(HandlerConfig{
		Store:    env.store,
		Analyzer: env.analyzer,
		Upstream: env.upstream,
		Version:  "test",
	})
	env.server = newServer(t, NewRouter(handler, NewChiMiddleware(mw)).SetupChi())
	return env
}

func newServer(t *testing.T, h http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server
}

// envelope mirrors APIResponse with raw data for typed decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func (env *testEnv) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, env.server.URL+path, reader)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := env.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var env2 envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env2); err != nil {
			t.Fatalf("decode %s %s (%d): %v: %s", method, path, resp.StatusCode, err, raw)
		}
	}
	return resp.StatusCode, env2
}

func decodeData[T any](t *testing.T, e envelope) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		t.Fatalf("decode data: %v: %s", err, e.Data)
	}
	return v
}

// createSession creates a session and returns its id.
func (env *testEnv) createSession(t *testing.T) string {
	t.Helper()
	status, e := env.do(t, http.MethodPost, "/api/v1/sessions", "")
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, error = %+v", status, e.Error)
	}
	return decodeData[session.Snapshot](t, e).ID
}

// analyzedSession creates a session holding rawPlaces.
func (env *testEnv) analyzedSession(t *testing.T) string {
	t.Helper()
	id := env.createSession(t)
	status, e := env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/analyze",
		`{"video_url":"`+testVideoURL+`"}`)
	if status != http.StatusOK {
		t.Fatalf("analyze status = %d, error = %+v", status, e.Error)
	}
	return id
}

func assertError(t *testing.T, status int, e envelope, wantStatus int, wantCode string) {
	t.Helper()
	if status != wantStatus {
		t.Errorf("status = %d, want %d", status, wantStatus)
	}
	if e.Success {
		t.Error("success = true on an error response")
	}
	if e.Error == nil {
		t.Fatal("error object missing")
	}
	if e.Error.Code != wantCode {
		t.Errorf("code = %q, want %q (message %q)", e.Error.Code, wantCode, e.Error.Message)
	}
}
