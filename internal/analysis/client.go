// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/placemap/internal/config"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/models"
)

const (
	analyzePath = "/api/analyze"
	healthPath  = "/api/health"

	// BreakerName labels the analyzer breaker in metrics and logs.
	BreakerName = "analyzer"

	maxErrorBodySize = 64 * 1024
	maxResponseSize  = 16 << 20
)

// Analyzer turns a video link into raw place records.
type Analyzer interface {
	Analyze(ctx context.Context, videoURL string) ([]models.RawPlace, error)
}

// Client calls the upstream analyzer over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *breaker
	fallback   string
}

type analyzeRequest struct {
	VideoURL string `json:"video_url"`
}

type analyzeResponse struct {
	Success *bool             `json:"success"`
	Places  []models.RawPlace `json:"places"`
	VideoID string            `json:"video_id"`
	Error   string            `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HealthStatus is the analyzer's own health report.
type HealthStatus struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	APIs    map[string]bool `json:"apis"`
}

// NewClient creates an analyzer client. fallback is the message used when
// the analyzer fails without an error text of its own.
func NewClient(cfg *config.AnalyzerConfig, fallback string) *Client {
	if fallback == "" {
		fallback = DefaultMessages().RequestFailed
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		breaker:    newBreaker(BreakerName, cfg.Breaker),
		fallback:   fallback,
	}
}

// Analyze posts videoURL to the analyzer and returns its raw place records.
// Every error is a *RequestFailure. Nothing is retried.
func (c *Client) Analyze(ctx context.Context, videoURL string) ([]models.RawPlace, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &RequestFailure{Message: c.fallback, Err: fmt.Errorf("analyzer rate limit: %w", err)}
		}
	}

	start := time.Now()
	resp, err := castResult[analyzeResponse](c.breaker.execute(func() (interface{}, error) {
		return c.analyze(ctx, videoURL)
	}))
	if err != nil {
		failure := c.asFailure(err)
		logging.Ctx(ctx).Warn().
			Str("detail", failure.Detail()).
			Dur("duration", time.Since(start)).
			Msg("Analyzer request failed")
		return nil, failure
	}

	logging.Ctx(ctx).Debug().
		Str("video_id", resp.VideoID).
		Int("places", len(resp.Places)).
		Dur("duration", time.Since(start)).
		Msg("Analyzer request completed")

	return resp.Places, nil
}

func (c *Client) analyze(ctx context.Context, videoURL string) (*analyzeResponse, error) {
	body, err := json.Marshal(analyzeRequest{VideoURL: videoURL})
	if err != nil {
		return nil, &RequestFailure{Message: c.fallback, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, &RequestFailure{Message: c.fallback, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestFailure{Message: c.fallback, Err: fmt.Errorf("analyzer request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.failureFromBody(resp.StatusCode, readBodyForError(resp.Body))
	}

	var out analyzeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return nil, &RequestFailure{Status: resp.StatusCode, Message: c.fallback, Err: fmt.Errorf("decode response: %w", err)}
	}
	if out.Success != nil && !*out.Success {
		return nil, &RequestFailure{Status: resp.StatusCode, Message: c.message(out.Error)}
	}

	return &out, nil
}

// Health fetches the analyzer's health report. It bypasses the breaker so
// that probes do not count against the analysis budget.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer health returned status %d: %s", resp.StatusCode, readBodyForError(resp.Body))
	}

	var status HealthStatus
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &status, nil
}

// BreakerState returns the analyzer circuit state.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

func (c *Client) failureFromBody(status int, body []byte) *RequestFailure {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		e.Error = ""
	}
	return &RequestFailure{
		Status:  status,
		Message: c.message(e.Error),
		Err:     fmt.Errorf("analyzer returned status %d", status),
	}
}

// asFailure normalizes any error from the breaker path to *RequestFailure.
func (c *Client) asFailure(err error) *RequestFailure {
	var rf *RequestFailure
	if errors.As(err, &rf) {
		return rf
	}
	if isRejection(err) {
		return &RequestFailure{Status: http.StatusServiceUnavailable, Message: c.fallback, Err: err}
	}
	return &RequestFailure{Message: c.fallback, Err: err}
}

func (c *Client) message(upstream string) string {
	if s := strings.TrimSpace(upstream); s != "" {
		return s
	}
	return c.fallback
}

// readBodyForError reads at most maxErrorBodySize bytes of an error body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}
