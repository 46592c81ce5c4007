// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	_ "github.com/tomtom215/placemap/docs" // swagger document for /swagger/*
	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/api"
	"github.com/tomtom215/placemap/internal/config"
	"github.com/tomtom215/placemap/internal/deeplink"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/models"
	"github.com/tomtom215/placemap/internal/presenter"
	"github.com/tomtom215/placemap/internal/projection"
	"github.com/tomtom215/placemap/internal/session"
	"github.com/tomtom215/placemap/internal/supervisor"
	"github.com/tomtom215/placemap/internal/supervisor/services"
	ws "github.com/tomtom215/placemap/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is the wired server before it is handed to the supervisor.
type app struct {
	cfg     *config.Config
	hub     *ws.Hub
	store   *session.Store
	handler http.Handler
	server  *http.Server
}

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("analyzer_url", cfg.Analyzer.BaseURL).
		Str("locale", cfg.Session.Locale).
		Dur("session_ttl", cfg.Session.TTL).
		Msg("Configuration loaded")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	a := newApp(cfg)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	a.supervise(tree)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", a.server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
		os.Exit(1)
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newApp wires the analyzer client, session store, hub and router from cfg.
func newApp(cfg *config.Config) *app {
	messages := analysis.MessagesFromConfig(&cfg.Messages)
	analyzer := analysis.NewClient(&cfg.Analyzer, messages.RequestFailed)

	links := deeplink.NewResolver(deeplink.Templates{
		PlaceID:     cfg.Maps.PlaceIDURL,
		Coordinates: cfg.Maps.CoordinatesURL,
		Search:      cfg.Maps.SearchURL,
	})

	// Validate already parsed the locale.
	locale, err := language.Parse(cfg.Session.Locale)
	if err != nil {
		locale = projection.DefaultLocale
	}

	hub := ws.NewHub()
	store := session.NewStore(session.StoreConfig{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
		OnRemove:    hub.CloseSession,
	}, session.Options{
		Engine:    projection.NewEngine(locale),
		Presenter: presenter.New(links, cfg.Messages.NoMatches),
		Viewport: models.Viewport{
			Center: models.Coordinates{Lat: cfg.Maps.DefaultLat, Lng: cfg.Maps.DefaultLng},
			Zoom:   cfg.Maps.DefaultZoom,
		},
		Messages:     messages,
		EmptyMessage: cfg.Messages.EmptyCollection,
		Notifier:     hub,
	})

	handler := api.NewHandler(api.HandlerConfig{
		Store:          store,
		Analyzer:       analyzer,
		Upstream:       analyzer,
		Hub:            hub,
		AllowedOrigins: cfg.Security.CORSOrigins,
		Version:        version,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)))
	mux := router.SetupChi()

	return &app{
		cfg:     cfg,
		hub:     hub,
		store:   store,
		handler: mux,
		server: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.Server.Timeout,
			// Analysis responses wait on the upstream analyzer.
			WriteTimeout: cfg.Server.Timeout + cfg.Analyzer.Timeout,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// supervise adds the app's services to their layers.
func (a *app) supervise(tree *supervisor.SupervisorTree) {
	tree.AddSessionService(services.NewSessionSweeperService(a.store, a.cfg.Session.SweepInterval))
	tree.AddRealtimeService(a.hub)
	tree.AddAPIService(services.NewHTTPServerService(a.server, a.cfg.Server.ShutdownTimeout))
}
