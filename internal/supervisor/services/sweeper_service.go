// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package services

import (
	"context"
	"time"

	"github.com/tomtom215/placemap/internal/logging"
)

const defaultSweepInterval = time.Minute

// Sweeper drops expired sessions. Satisfied by *session.Store.
type Sweeper interface {
	Sweep() []string
}

// SessionSweeperService calls Sweep on a fixed interval so idle sessions
// are released even when no new session is created.
type SessionSweeperService struct {
	sweeper  Sweeper
	interval time.Duration
	name     string
}

// NewSessionSweeperService sweeps every interval. A non-positive interval
// means one minute.
func NewSessionSweeperService(sweeper Sweeper, interval time.Duration) *SessionSweeperService {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeperService{
		sweeper:  sweeper,
		interval: interval,
		name:     "session-sweeper",
	}
}

// Serve implements suture.Service.
func (s *SessionSweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger := logging.WithComponent(s.name)
	logger.Debug().Dur("interval", s.interval).Msg("Session sweeper started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.sweeper.Sweep(); len(removed) > 0 {
				logger.Debug().Strs("session_ids", removed).Msg("Swept expired sessions")
			}
		}
	}
}

func (s *SessionSweeperService) String() string {
	return s.name
}
