// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"net/http"

	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/authz"
	"github.com/Brice601/etsydashboard-frontend/internal/backend"
	"github.com/Brice601/etsydashboard-frontend/internal/cache"
	"github.com/Brice601/etsydashboard-frontend/internal/collect"
	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/seo"
	"github.com/Brice601/etsydashboard-frontend/internal/usage"
	"github.com/Brice601/etsydashboard-frontend/internal/web"
)

// Server holds every dependency the handlers need. One instance serves the
// whole process.
type Server struct {
	cfg        *config.Config
	render     *web.Renderer
	presets    *seo.Presets
	sessions   *auth.Manager
	keys       *auth.KeyChecker
	sso        *auth.SSOProvider // nil when OIDC is not configured
	gate       *authz.Gate
	usage      *usage.Tracker
	collector  *collect.Collector
	backend    *backend.Client
	benchmarks *cache.Cache
}

// Deps bundles the constructor arguments. main builds these once at startup.
type Deps struct {
	Config     *config.Config
	Renderer   *web.Renderer
	Sessions   *auth.Manager
	Keys       *auth.KeyChecker
	SSO        *auth.SSOProvider
	Gate       *authz.Gate
	Usage      *usage.Tracker
	Collector  *collect.Collector
	Backend    *backend.Client
	Benchmarks *cache.Cache
}

// NewServer builds the handler set.
func NewServer(d Deps) *Server {
	return &Server{
		cfg:        d.Config,
		render:     d.Renderer,
		presets:    seo.NewPresets(d.Config.App.BaseURL),
		sessions:   d.Sessions,
		keys:       d.Keys,
		sso:        d.SSO,
		gate:       d.Gate,
		usage:      d.Usage,
		collector:  d.Collector,
		backend:    d.Backend,
		benchmarks: d.Benchmarks,
	}
}

// pageFor builds the page chrome for a request: account and CSRF token when
// a session is present, empty otherwise.
func (s *Server) pageFor(r *http.Request) web.Page {
	page := s.render.NewPage()
	if sess := auth.SessionFrom(r.Context()); sess != nil {
		account := sess.Account()
		page.Account = &account
		page.CSRF = sess.CSRFToken
	}
	return page
}
