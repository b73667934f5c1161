// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Brice601/etsydashboard-frontend/docs" // Swagger artifacts

	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/authz"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/middleware"
	"github.com/Brice601/etsydashboard-frontend/internal/web"
)

// Routes builds the full router. Middleware order: request identity and
// logging first, then recovery, headers, metrics, compression, and session
// resolution for every route.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(s.recoverer)
	r.Use(middleware.SecurityHeaders)
	if s.cfg.App.IsProduction() {
		r.Use(middleware.HSTS)
	}
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
	r.Use(s.sessions.Sessions)

	// Operational endpoints. The deployment fronts /metrics; no auth here.
	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Handle("/static/*", web.StaticHandler())

	// Public pages.
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(120, time.Minute))
		r.Use(auth.CSRF)

		r.Get("/", s.homePage)
		r.Get("/calculate-fees", s.calculatorPage)
		r.Post("/calculate-fees", s.calculatorSubmit)
		r.Get("/analytics-tool", s.analyticsToolPage)
		r.Get("/etsy-dashboard", s.dashboardLandingPage)
		r.Get("/pricing", s.pricingPage)
	})

	// Auth routes carry tight limits against credential stuffing.
	r.Route("/auth", func(r chi.Router) {
		r.Use(httprate.LimitByIP(20, time.Minute))
		r.Use(auth.CSRF)

		r.Get("/", s.authPage)
		r.With(httprate.LimitByIP(5, time.Minute)).Post("/login", s.login)
		r.Post("/signup", s.signup)
		r.Post("/logout", s.logout)
		r.Get("/sso/login", s.ssoLogin)
		r.Get("/sso/callback", s.ssoCallback)
	})

	// Authenticated pages.
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(120, time.Minute))
		r.Use(auth.RequireSession)
		r.Use(auth.CSRF)

		r.Get("/dashboard", s.dashboardHub)

		r.With(s.gate.Require(authz.SurfaceUpload, authz.ActionView)).
			Get("/upload", s.uploadPage)
		r.With(s.gate.Require(authz.SurfaceUpload, authz.ActionUse)).
			Post("/upload", s.uploadSubmit)
		r.With(s.gate.Require(authz.SurfaceUpload, authz.ActionUse)).
			Post("/upload/clear", s.uploadClear)

		r.With(s.gate.Require(authz.SurfaceFinanceDashboard, authz.ActionView)).
			Get("/dashboard/finance", s.financeDashboard)
		r.With(s.gate.Require(authz.SurfaceCustomersDashboard, authz.ActionView)).
			Get("/dashboard/customers", s.customersDashboard)
		r.With(s.gate.Require(authz.SurfaceSEODashboard, authz.ActionView)).
			Get("/dashboard/seo", s.seoDashboard)

		r.Get("/premium", s.premiumPage)
		r.Post("/premium/upgrade", s.premiumUpgrade)
		r.With(s.gate.Require(authz.SurfaceInsights, authz.ActionView)).
			Get("/premium/insights", s.premiumInsights)
	})

	// JSON API for the on-page calculators. CORS-enabled; CSRF does not
	// apply because these endpoints mutate nothing.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Use(httprate.LimitByIP(60, time.Minute))

		r.Route("/calculator", func(r chi.Router) {
			r.Post("/fees", s.apiCalculatorFees)
			r.Post("/scenarios", s.apiCalculatorScenarios)
			r.Post("/breakeven", s.apiCalculatorBreakeven)
			r.Post("/opportunities", s.apiCalculatorOpportunities)
		})

		r.Route("/benchmarks", func(r chi.Router) {
			r.Get("/category", s.apiBenchmarksCategory)
			r.Get("/elasticity", s.apiBenchmarksElasticity)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DocExpansion("list"),
	))

	r.NotFound(s.notFound)

	return r
}

// recoverer turns a handler panic into a logged 500 page.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", r.URL.Path).
					Msg("Handler panicked")
				s.render.RenderError(w, http.StatusInternalServerError,
					"Something went wrong on our side. The error has been logged.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render.RenderError(w, http.StatusNotFound, "That page does not exist.")
}
