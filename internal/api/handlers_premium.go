// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/backend"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

// premiumView is the premium page's view model. Status is only set right
// after an upgrade; the page renders fine without it.
type premiumView struct {
	Status *models.SubscriptionStatus
}

// insightsView is the premium insights page's view model.
type insightsView struct {
	Recommendations *models.Recommendations
}

func (s *Server) premiumPage(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r)
	page.Meta = s.presets.Premium()
	page.Data = premiumView{}
	s.render.Render(w, http.StatusOK, "premium", page)
}

func (s *Server) premiumUpgrade(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	page := s.pageFor(r)
	page.Meta = s.presets.Premium()

	_ = r.ParseForm()
	paymentMethodID := strings.TrimSpace(r.PostFormValue("payment_method_id"))
	if paymentMethodID == "" {
		page.Errors["payment_method_id"] = "Enter a payment method."
		page.Data = premiumView{}
		s.render.Render(w, http.StatusOK, "premium", page)
		return
	}

	ctx := backend.WithAccessToken(r.Context(), sess.AccessToken)
	status, err := s.backend.UpgradeSubscription(ctx, paymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			// Backend token expired; the session is stale.
			s.sessions.Destroy(w, r)
			http.Redirect(w, r, "/auth?next=/premium", http.StatusSeeOther)
		case errors.Is(err, backend.ErrRateLimited):
			page.Flash = "Too many attempts. Wait a minute and try again."
			page.Data = premiumView{}
			s.render.Render(w, http.StatusOK, "premium", page)
		default:
			logging.Err(err).Msg("Subscription upgrade failed")
			page.Flash = backendDownMessage
			page.Data = premiumView{}
			s.render.Render(w, http.StatusOK, "premium", page)
		}
		return
	}

	sess.Plan = models.PlanPremium
	if err := s.sessions.Save(sess); err != nil {
		logging.Warn().Err(err).Msg("Failed to persist plan change")
	}

	// Rebuild the page chrome so it reflects the new plan.
	account := sess.Account()
	page.Account = &account
	page.Flash = "Welcome to premium. Your analyses are now unlimited."
	page.Data = premiumView{Status: status}
	s.render.Render(w, http.StatusOK, "premium", page)
}

func (s *Server) premiumInsights(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	ctx := backend.WithAccessToken(r.Context(), sess.AccessToken)
	recs, err := s.backend.PremiumRecommendations(ctx, sess.UserID)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrPremiumRequired):
			http.Redirect(w, r, "/premium", http.StatusSeeOther)
		case errors.Is(err, backend.ErrUnauthorized):
			s.sessions.Destroy(w, r)
			http.Redirect(w, r, "/auth?next=/premium/insights", http.StatusSeeOther)
		default:
			logging.Err(err).Msg("Failed to load premium recommendations")
			s.render.RenderError(w, http.StatusServiceUnavailable, backendDownMessage)
		}
		return
	}

	page := s.pageFor(r)
	page.Meta = s.presets.App("Premium Insights", "/premium/insights")
	page.Data = insightsView{Recommendations: recs}
	s.render.Render(w, http.StatusOK, "insights", page)
}
