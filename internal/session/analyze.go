// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/metrics"
	"github.com/tomtom215/placemap/internal/models"
)

// Analysis outcomes, as recorded in metrics and the analysis log.
const (
	OutcomeSuccess         = "success"
	OutcomeInputError      = "input_error"
	OutcomeValidationError = "validation_error"
	OutcomeRequestFailure  = "request_failure"
	OutcomeInProgress      = "in_progress"
)

// AnalysisState is the payload of "analysis" notifications.
type AnalysisState struct {
	Status   Status `json:"status"`
	VideoURL string `json:"video_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BeginAnalysis validates rawURL and marks the session as loading.
//
// It fails with *analysis.InputError for an empty or malformed link (the
// session then shows that error) and with ErrAnalysisInProgress while
// another analysis runs (the session is left alone). On success the caller
// must finish with FinishAnalysis.
func (s *Session) BeginAnalysis(rawURL string) (string, error) {
	s.mu.Lock()

	if s.inFlight {
		s.mu.Unlock()
		return "", ErrAnalysisInProgress
	}

	url, err := analysis.ValidateVideoURL(rawURL, s.opts.Messages)
	if err != nil {
		s.status = StatusFailed
		s.errMsg = err.Error()
		state := AnalysisState{Status: s.status, Error: s.errMsg}
		s.touchLocked(OpAnalyze)
		s.notifyLocked(notification{KindAnalysis, state})
		s.mu.Unlock()
		return "", err
	}

	s.inFlight = true
	s.status = StatusLoading
	s.errMsg = ""
	state := AnalysisState{Status: s.status, VideoURL: url}
	s.touchLocked(OpAnalyze)
	s.notifyLocked(notification{KindAnalysis, state})
	s.mu.Unlock()
	return url, nil
}

// FinishAnalysis ends an analysis started with BeginAnalysis. On success
// the raw records are normalized and replace the collection. On any
// failure the collection and view parameters are left untouched and the
// session shows the failure message.
func (s *Session) FinishAnalysis(url string, raws []models.RawPlace, callErr error) error {
	var places []models.Place
	err := callErr
	if err == nil {
		places, err = models.NormalizePlaces(raws)
		if err != nil {
			err = fmt.Errorf("normalize analyzer response: %w", err)
		}
	}

	s.mu.Lock()
	s.inFlight = false

	if err != nil {
		s.status = StatusFailed
		s.errMsg = s.failureMessage(err)
	} else {
		s.replaceLocked(places)
		s.status = StatusReady
		s.errMsg = ""
		s.videoURL = url
	}
	s.notifyLocked(notification{KindSession, s.snapshotLocked()})
	s.mu.Unlock()
	return err
}

// Analyze runs a complete analysis: validate, begin, call the analyzer
// outside the lock, then finish. The returned error is an
// *analysis.InputError, ErrAnalysisInProgress, an *analysis.RequestFailure
// or a wrapped *models.ValidationError.
func (s *Session) Analyze(ctx context.Context, analyzer analysis.Analyzer, rawURL string) error {
	ctx = logging.ContextWithSessionID(ctx, s.id)

	url, err := s.BeginAnalysis(rawURL)
	if err != nil {
		outcome := OutcomeInputError
		if errors.Is(err, ErrAnalysisInProgress) {
			outcome = OutcomeInProgress
		}
		s.record(ctx, &logging.AnalysisEvent{VideoURL: rawURL, Outcome: outcome, Error: err.Error()})
		return err
	}

	start := time.Now()
	raws, callErr := analyzer.Analyze(ctx, url)
	duration := time.Since(start)

	err = s.FinishAnalysis(url, raws, callErr)

	ev := &logging.AnalysisEvent{VideoURL: url, Duration: duration, Outcome: OutcomeSuccess, Places: len(raws)}
	if id, ok := analysis.ExtractVideoID(url); ok {
		ev.VideoID = id
	}
	if err != nil {
		ev.Outcome = outcomeFor(err)
		ev.Error = err.Error()
		var rf *analysis.RequestFailure
		if errors.As(err, &rf) {
			ev.Error = rf.Detail()
		}
	}
	s.record(ctx, ev)

	return err
}

func (s *Session) record(ctx context.Context, ev *logging.AnalysisEvent) {
	ev.SessionID = s.id
	metrics.RecordAnalysis(ev.Outcome, ev.Duration, ev.Places)
	s.events.LogEvent(ctx, ev)
}

// failureMessage is the text shown for a failed analysis. Request failures
// carry their own; anything else gets the generic text.
func (s *Session) failureMessage(err error) string {
	var rf *analysis.RequestFailure
	if errors.As(err, &rf) && rf.Message != "" {
		return rf.Message
	}
	return s.opts.Messages.RequestFailed
}

func outcomeFor(err error) string {
	var inputErr *analysis.InputError
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &inputErr):
		return OutcomeInputError
	case errors.As(err, &validationErr):
		return OutcomeValidationError
	case errors.Is(err, ErrAnalysisInProgress):
		return OutcomeInProgress
	default:
		return OutcomeRequestFailure
	}
}
