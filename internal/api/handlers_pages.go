// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"net/http"
)

// Public landing pages. All state lives in the SEO presets and the shared
// page chrome.

func (s *Server) homePage(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r)
	page.Meta = s.presets.Home()
	s.render.Render(w, http.StatusOK, "home", page)
}

func (s *Server) analyticsToolPage(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r)
	page.Meta = s.presets.AnalyticsTool()
	s.render.Render(w, http.StatusOK, "analytics_tool", page)
}

func (s *Server) dashboardLandingPage(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r)
	page.Meta = s.presets.DashboardLanding()
	s.render.Render(w, http.StatusOK, "dashboard_landing", page)
}

func (s *Server) pricingPage(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r)
	page.Meta = s.presets.Pricing()
	s.render.Render(w, http.StatusOK, "pricing", page)
}
