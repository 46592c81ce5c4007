// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/placemap/internal/middleware"
)

// Router assembles the HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global stack, applied in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.With(router.chiMiddleware.RateLimitAnalyze()).Post("/videos/check", router.handler.CheckVideo)

		r.Route("/sessions", func(r chi.Router) {
			r.With(router.chiMiddleware.RateLimitCreate()).Post("/", router.handler.CreateSession)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(withSessionLogging)

				// The socket must not go through the compressor.
				r.Get("/ws", router.handler.WebSocket)

				r.Group(func(r chi.Router) {
					r.Use(chimiddleware.Compress(5, "application/json"))

					r.Get("/", router.handler.GetSession)
					r.Delete("/", router.handler.DeleteSession)
					r.With(router.chiMiddleware.RateLimitAnalyze()).Post("/analyze", router.handler.Analyze)

					r.Put("/tab", router.handler.SetTab)
					r.Put("/filter", router.handler.SetFilter)
					r.Put("/sort", router.handler.SetSort)

					r.Get("/list", router.handler.List)
					r.Get("/markers", router.handler.Markers)
					r.Get("/catalog", router.handler.Catalog)
					r.Get("/places/{placeID}", router.handler.InfoWindow)
					r.Get("/places/{placeID}/link", router.handler.Link)

					r.Get("/gallery", router.handler.Gallery)
					r.Post("/gallery/open", router.handler.OpenGallery)
					r.Post("/gallery/next", router.handler.NextPhoto)
					r.Post("/gallery/previous", router.handler.PreviousPhoto)
					r.Post("/gallery/close", router.handler.CloseGallery)
					r.Post("/gallery/key", router.handler.GalleryKey)
				})
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
