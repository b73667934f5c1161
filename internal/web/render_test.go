// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package web

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Brice601/etsydashboard-frontend/internal/authz"
	"github.com/Brice601/etsydashboard-frontend/internal/calc"
	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
	"github.com/Brice601/etsydashboard-frontend/internal/seo"
	"github.com/Brice601/etsydashboard-frontend/internal/usage"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	gate, err := authz.New()
	if err != nil {
		t.Fatalf("authz.New: %v", err)
	}

	r, err := NewRenderer(&config.AppConfig{
		Name:            "Etsy Dashboard",
		BaseURL:         "https://etsydash.example.com",
		Environment:     "development",
		SupportEmail:    "support@etsydash.example.com",
		PremiumPriceUSD: 9.90,
	}, NewSnippetsForTest(), gate)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

// NewSnippetsForTest builds empty analytics snippets.
func NewSnippetsForTest() *seo.Snippets {
	return seo.NewSnippets(&config.AnalyticsConfig{})
}

// ===== Parsing =====

func TestAllPageTemplatesParse(t *testing.T) {
	r := newTestRenderer(t)

	expected := []string{
		"home", "calculator", "analytics_tool", "dashboard_landing", "pricing",
		"auth", "dashboard", "upload", "finance", "customers", "seo",
		"premium", "insights", "error",
	}
	for _, name := range expected {
		if _, ok := r.pages[name]; !ok {
			t.Errorf("page template %q not parsed", name)
		}
	}
}

// ===== Public pages =====

func TestRenderHome(t *testing.T) {
	r := newTestRenderer(t)
	presets := seo.NewPresets("https://etsydash.example.com")

	page := r.NewPage()
	page.Meta = presets.Home()

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "home", page)

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()

	markers := []string{
		"Know what your Etsy shop really earns",
		`<link rel="canonical" href="https://etsydash.example.com/">`,
		`application/ld+json`,
		"Sign In",
	}
	for _, m := range markers {
		if !strings.Contains(body, m) {
			t.Errorf("home page missing %q", m)
		}
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderCalculatorWithResults(t *testing.T) {
	r := newTestRenderer(t)
	presets := seo.NewPresets("https://etsydash.example.com")

	breakdown := calc.Fees(calc.FeeInput{
		Price:          29.99,
		ProductionCost: 12,
		ShippingCost:   4,
		MonthlySales:   50,
	})

	page := r.NewPage()
	page.Meta = presets.FeeCalculator()
	page.CSRF = "test-csrf"
	page.Data = struct {
		Countries     []string
		Breakdown     *calc.FeeBreakdown
		Scenarios     []calc.PricingScenario
		Opportunities []calc.Opportunity
	}{
		Countries: calc.RegulatoryCountries(),
		Breakdown: &breakdown,
	}

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "calculator", page)

	body := rec.Body.String()
	for _, m := range []string{"Fee Breakdown", "$3.30", "$26.69", "test-csrf"} {
		if !strings.Contains(body, m) {
			t.Errorf("calculator results missing %q", m)
		}
	}
}

// ===== Authenticated pages =====

func TestRenderDashboardHub(t *testing.T) {
	r := newTestRenderer(t)

	page := r.NewPage()
	page.Meta = seo.NewPresets("https://etsydash.example.com").App("Dashboard", "/dashboard")
	page.Account = &models.Account{DisplayName: "Marie", Plan: models.PlanFree}
	page.CSRF = "tok"
	page.Data = struct {
		Kinds     []string
		Allowance usage.Allowance
	}{
		Kinds:     []string{"Sold items"},
		Allowance: usage.Allowance{Allowed: true, Remaining: 7},
	}

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "dashboard", page)

	body := rec.Body.String()
	for _, m := range []string{"Welcome back, Marie", "7 remaining", "Premium insights", "Sold items"} {
		if !strings.Contains(body, m) {
			t.Errorf("dashboard hub missing %q", m)
		}
	}
}

func TestRenderDashboardHubPremiumHidesTeaser(t *testing.T) {
	r := newTestRenderer(t)

	page := r.NewPage()
	page.Meta = seo.NewPresets("https://etsydash.example.com").App("Dashboard", "/dashboard")
	page.Account = &models.Account{DisplayName: "Marie", Plan: models.PlanPremium}
	page.Data = struct {
		Kinds     []string
		Allowance usage.Allowance
	}{
		Allowance: usage.Allowance{Allowed: true, Remaining: -1},
	}

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "dashboard", page)

	body := rec.Body.String()
	if strings.Contains(body, "Upgrade to unlock") {
		t.Error("premium account still sees the upgrade teaser")
	}
	if !strings.Contains(body, "Unlimited on the premium plan") {
		t.Error("premium allowance copy missing")
	}
}

// ===== Error page =====

func TestRenderError(t *testing.T) {
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	r.RenderError(rec, 500, "The service is temporarily unavailable. Please try again.")

	if rec.Code != 500 {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "temporarily unavailable") {
		t.Error("error message missing from page")
	}
	if !strings.Contains(rec.Body.String(), "support@etsydash.example.com") {
		t.Error("support email missing from error page")
	}
}

// ===== Unknown template =====

func TestRenderUnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "no-such-page", r.NewPage())

	if rec.Code != 500 {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
