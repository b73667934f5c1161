// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/analysis"
	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/usage"
)

// hubView is the dashboard hub's view model.
type hubView struct {
	Kinds     []string
	Allowance usage.Allowance
}

// dashboardView wraps one dashboard's analysis report. Sample flags that the
// built-in demo dataset was rendered because nothing is uploaded yet.
type dashboardView struct {
	Sample bool
	Report any
}

// salesKindOrder is the preference when several sales exports are uploaded.
// Sold Items carries the most detail, Payments the least.
var salesKindOrder = []dataset.Kind{dataset.KindSoldItems, dataset.KindSoldOrders, dataset.KindPayments}

func (s *Server) dashboardHub(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	view := hubView{}
	kinds, err := s.sessions.DatasetKinds(sess)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to list session datasets")
	}
	for _, k := range kinds {
		view.Kinds = append(view.Kinds, k.Label())
	}

	// Peek only; nothing is consumed by visiting the hub.
	view.Allowance, err = s.usage.Check(sess.UserID, sess.Plan, "")
	if err != nil {
		logging.Err(err).Msg("Failed to check usage allowance")
	}

	page := s.pageFor(r)
	page.Meta = s.presets.App("Dashboard", "/dashboard")
	page.Data = view
	s.render.Render(w, http.StatusOK, "dashboard", page)
}

func (s *Server) financeDashboard(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	rows, raw, ok := s.salesRows(w, sess)
	if !ok {
		return
	}
	sample := raw == nil
	if sample {
		rows = sampleSales()
	} else if !s.checkQuota(w, r, sess, usage.ContentHash(raw)) {
		return
	}

	start := time.Now()
	report, err := analysis.Finance(r.Context(), rows, analysis.FinanceOptions{
		Premium: sess.Account().IsPremium(),
	})
	metrics.AnalysisDuration.WithLabelValues("finance").Observe(time.Since(start).Seconds())
	if err != nil {
		logging.Err(err).Msg("Finance analysis failed")
		s.render.RenderError(w, http.StatusInternalServerError, "The analysis failed. Try again.")
		return
	}
	if !sample {
		s.consumeQuota(sess, usage.ContentHash(raw))
	}

	page := s.pageFor(r)
	page.Meta = s.presets.App("Finance", "/dashboard/finance")
	page.Data = dashboardView{Sample: sample, Report: report}
	s.render.Render(w, http.StatusOK, "finance", page)
}

func (s *Server) customersDashboard(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	rows, raw, ok := s.salesRows(w, sess)
	if !ok {
		return
	}

	var reviews []dataset.Review
	sample := raw == nil
	if sample {
		rows = sampleSales()
		reviews = sampleReviews()
	} else {
		// Reviews enrich the dashboard but are not required for it.
		hashed := raw
		if rawReviews := s.uploadedDataset(sess, dataset.KindReviews); rawReviews != nil {
			parsed, err := dataset.ParseReviews(rawReviews)
			if err != nil {
				logging.Warn().Err(err).Msg("Stored reviews dataset no longer parses")
			} else {
				reviews = parsed
				hashed = append(append([]byte{}, raw...), rawReviews...)
			}
		}
		if !s.checkQuota(w, r, sess, usage.ContentHash(hashed)) {
			return
		}
		raw = hashed
	}

	start := time.Now()
	report, err := analysis.Customers(r.Context(), rows, reviews, lastSaleDate(rows))
	metrics.AnalysisDuration.WithLabelValues("customers").Observe(time.Since(start).Seconds())
	if err != nil {
		logging.Err(err).Msg("Customer analysis failed")
		s.render.RenderError(w, http.StatusInternalServerError, "The analysis failed. Try again.")
		return
	}
	if !sample {
		s.consumeQuota(sess, usage.ContentHash(raw))
	}

	page := s.pageFor(r)
	page.Meta = s.presets.App("Customers", "/dashboard/customers")
	page.Data = dashboardView{Sample: sample, Report: report}
	s.render.Render(w, http.StatusOK, "customers", page)
}

func (s *Server) seoDashboard(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	var (
		listings []dataset.Listing
		rows     []dataset.SaleRow
		sample   bool
	)
	raw := s.uploadedDataset(sess, dataset.KindListings)
	if raw == nil {
		sample = true
		listings = sampleListings()
		rows = sampleSales()
	} else {
		var err error
		listings, _, err = dataset.ParseListings(raw)
		if err != nil {
			logging.Warn().Err(err).Msg("Stored listings dataset no longer parses")
			s.render.RenderError(w, http.StatusInternalServerError, "Your stored upload could not be read. Upload it again.")
			return
		}
		if !s.checkQuota(w, r, sess, usage.ContentHash(raw)) {
			return
		}
		// Sales are optional here; they power the title/sales mismatch view.
		rows, _, _ = s.parsedSales(sess)
	}

	start := time.Now()
	report := analysis.SEOListings(listings, rows)
	metrics.AnalysisDuration.WithLabelValues("seo").Observe(time.Since(start).Seconds())
	if !sample {
		s.consumeQuota(sess, usage.ContentHash(raw))
	}

	page := s.pageFor(r)
	page.Meta = s.presets.App("SEO", "/dashboard/seo")
	page.Data = dashboardView{Sample: sample, Report: report}
	s.render.Render(w, http.StatusOK, "seo", page)
}

// salesRows loads and parses the preferred uploaded sales export. A nil raw
// slice with ok=true means nothing is uploaded and the caller should fall
// back to sample data. ok=false means an error page was already rendered.
func (s *Server) salesRows(w http.ResponseWriter, sess *auth.Session) ([]dataset.SaleRow, []byte, bool) {
	rows, raw, err := s.parsedSales(sess)
	if err != nil {
		logging.Warn().Err(err).Msg("Stored sales dataset no longer parses")
		s.render.RenderError(w, http.StatusInternalServerError, "Your stored upload could not be read. Upload it again.")
		return nil, nil, false
	}
	return rows, raw, true
}

func (s *Server) parsedSales(sess *auth.Session) ([]dataset.SaleRow, []byte, error) {
	for _, kind := range salesKindOrder {
		raw := s.uploadedDataset(sess, kind)
		if raw == nil {
			continue
		}
		rows, _, err := dataset.ParseSales(kind, raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parse stored %s: %w", kind, err)
		}
		return rows, raw, nil
	}
	return nil, nil, nil
}

// checkQuota verifies the user may run one more analysis. On an exhausted
// quota it renders the upgrade page instead of an error; running out of free
// analyses is a sales moment, not a failure.
func (s *Server) checkQuota(w http.ResponseWriter, r *http.Request, sess *auth.Session, contentHash string) bool {
	allowance, err := s.usage.Check(sess.UserID, sess.Plan, contentHash)
	if err != nil {
		logging.Err(err).Msg("Failed to check usage allowance")
		s.render.RenderError(w, http.StatusInternalServerError, backendDownMessage)
		return false
	}
	if allowance.Allowed {
		return true
	}

	page := s.pageFor(r)
	page.Meta = s.presets.Premium()
	page.Flash = fmt.Sprintf("You've used all %d free analyses this week. They reset %s, or upgrade for unlimited.",
		s.cfg.Usage.WeeklyLimit, allowance.ResetsAt.Format("Monday, Jan 2"))
	page.Data = premiumView{}
	s.render.Render(w, http.StatusOK, "premium", page)
	return false
}

func (s *Server) consumeQuota(sess *auth.Session, contentHash string) {
	if err := s.usage.Consume(sess.UserID, sess.Plan, contentHash); err != nil {
		logging.Warn().Err(err).Msg("Failed to record analysis credit")
	}
}

func lastSaleDate(rows []dataset.SaleRow) time.Time {
	var last time.Time
	for _, row := range rows {
		if row.Date.After(last) {
			last = row.Date
		}
	}
	if last.IsZero() {
		return time.Now()
	}
	return last
}
