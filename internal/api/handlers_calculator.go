// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Brice601/etsydashboard-frontend/internal/calc"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/validation"
	"github.com/Brice601/etsydashboard-frontend/internal/web"
)

// FeesRequest is the calculator input shared by the form and the JSON API.
type FeesRequest struct {
	Price          float64 `json:"price" validate:"required,gt=0"`
	ShippingPrice  float64 `json:"shipping_price" validate:"gte=0"`
	ProductionCost float64 `json:"production_cost" validate:"gte=0"`
	ShippingCost   float64 `json:"shipping_cost" validate:"gte=0"`
	Country        string  `json:"country" validate:"omitempty,len=2"`
	OffsiteAds     bool    `json:"offsite_ads"`
	PremiumAdsTier bool    `json:"premium_ads_tier"`
	MonthlySales   int     `json:"monthly_sales" validate:"gte=0"`
}

// BreakevenRequest adds the fixed costs to amortize.
type BreakevenRequest struct {
	FeesRequest
	FixedCosts float64 `json:"fixed_costs" validate:"gte=0"`
}

// ScenariosResponse pairs the simulated scenarios with the most profitable one.
type ScenariosResponse struct {
	Scenarios []calc.PricingScenario `json:"scenarios"`
	Best      calc.PricingScenario   `json:"best"`
}

func (req FeesRequest) input() calc.FeeInput {
	return calc.FeeInput{
		Price:          req.Price,
		ShippingPrice:  req.ShippingPrice,
		ProductionCost: req.ProductionCost,
		ShippingCost:   req.ShippingCost,
		Country:        strings.ToUpper(req.Country),
		OffsiteAds:     req.OffsiteAds,
		PremiumAdsTier: req.PremiumAdsTier,
		MonthlySales:   req.MonthlySales,
	}
}

// calculatorView is the calculator page's view model.
type calculatorView struct {
	Countries     []string
	Breakdown     *calc.FeeBreakdown
	Scenarios     []calc.PricingScenario
	Best          calc.PricingScenario
	Opportunities []calc.Opportunity
}

// ===== Page handlers =====

func (s *Server) calculatorPage(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r)
	page.Meta = s.presets.FeeCalculator()
	page.Data = calculatorView{Countries: calc.RegulatoryCountries()}
	s.render.Render(w, http.StatusOK, "calculator", page)
}

func (s *Server) calculatorSubmit(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r)
	page.Meta = s.presets.FeeCalculator()
	view := calculatorView{Countries: calc.RegulatoryCountries()}

	req, ok := s.parseCalculatorForm(r, &page)
	if !ok {
		page.Data = view
		s.render.Render(w, http.StatusOK, "calculator", page)
		return
	}

	in := req.input()
	breakdown := calc.Fees(in)
	view.Breakdown = &breakdown
	if in.MonthlySales > 0 {
		view.Scenarios = calc.Scenarios(in)
		view.Best = calc.BestScenario(view.Scenarios)
		view.Opportunities = calc.Opportunities(in)
	}
	metrics.CalculatorRuns.WithLabelValues("fees").Inc()

	page.Data = view
	s.render.Render(w, http.StatusOK, "calculator", page)
}

// parseCalculatorForm reads the POSTed form into a FeesRequest, filling
// page.Form and page.Errors so the template can re-render inline.
func (s *Server) parseCalculatorForm(r *http.Request, page *web.Page) (FeesRequest, bool) {
	var req FeesRequest

	_ = r.ParseForm()
	for _, field := range []string{"price", "shipping_price", "production_cost", "shipping_cost", "country", "monthly_sales", "offsite_ads"} {
		page.Form[field] = r.PostFormValue(field)
	}

	req.Price = formFloat(r, "price", page.Errors)
	req.ShippingPrice = formFloat(r, "shipping_price", page.Errors)
	req.ProductionCost = formFloat(r, "production_cost", page.Errors)
	req.ShippingCost = formFloat(r, "shipping_cost", page.Errors)
	req.MonthlySales = formInt(r, "monthly_sales", page.Errors)
	req.Country = r.PostFormValue("country")
	req.OffsiteAds = r.PostFormValue("offsite_ads") != ""

	if len(page.Errors) > 0 {
		return req, false
	}

	if ve := validation.ValidateStruct(&req); ve != nil {
		for field, msg := range ve.FieldMessages() {
			page.Errors[formFieldName(field)] = msg
		}
		return req, false
	}
	return req, true
}

func formFloat(r *http.Request, field string, errs map[string]string) float64 {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		errs[field] = "Enter a number."
		return 0
	}
	return v
}

func formInt(r *http.Request, field string, errs map[string]string) int {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = "Enter a whole number."
		return 0
	}
	return v
}

// formFieldName maps struct field names from validator output to the form's
// snake_case input names.
func formFieldName(structField string) string {
	switch structField {
	case "Price":
		return "price"
	case "ShippingPrice":
		return "shipping_price"
	case "ProductionCost":
		return "production_cost"
	case "ShippingCost":
		return "shipping_cost"
	case "MonthlySales":
		return "monthly_sales"
	case "Country":
		return "country"
	case "FixedCosts":
		return "fixed_costs"
	}
	return structField
}

// ===== JSON API handlers =====

// apiCalculatorFees godoc
// @Summary Calculate Etsy fees for one sale
// @Description Itemizes transaction, listing, processing, Offsite Ads, and regulatory fees, with unit and monthly economics.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body FeesRequest true "Sale economics"
// @Success 200 {object} models.APIResponse{data=calc.FeeBreakdown}
// @Failure 400 {object} models.APIResponse
// @Router /calculator/fees [post]
func (s *Server) apiCalculatorFees(w http.ResponseWriter, r *http.Request) {
	var req FeesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not valid JSON.", err)
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	metrics.CalculatorRuns.WithLabelValues("fees").Inc()
	respondData(w, http.StatusOK, calc.Fees(req.input()))
}

// apiCalculatorScenarios godoc
// @Summary Simulate pricing scenarios
// @Description Recomputes fees at price adjustments around the current price using the demand elasticity model.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body FeesRequest true "Sale economics"
// @Success 200 {object} models.APIResponse{data=ScenariosResponse}
// @Failure 400 {object} models.APIResponse
// @Router /calculator/scenarios [post]
func (s *Server) apiCalculatorScenarios(w http.ResponseWriter, r *http.Request) {
	var req FeesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not valid JSON.", err)
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	scenarios := calc.Scenarios(req.input())
	metrics.CalculatorRuns.WithLabelValues("scenarios").Inc()
	respondData(w, http.StatusOK, ScenariosResponse{
		Scenarios: scenarios,
		Best:      calc.BestScenario(scenarios),
	})
}

// apiCalculatorBreakeven godoc
// @Summary Compute breakeven volume
// @Description Returns the unit count and revenue at which fixed costs are covered by the per-unit contribution margin.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body BreakevenRequest true "Sale economics plus fixed costs"
// @Success 200 {object} models.APIResponse{data=calc.BreakevenResult}
// @Failure 400 {object} models.APIResponse
// @Router /calculator/breakeven [post]
func (s *Server) apiCalculatorBreakeven(w http.ResponseWriter, r *http.Request) {
	var req BreakevenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not valid JSON.", err)
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	result, err := calc.Breakeven(calc.BreakevenInput{
		FeeInput:   req.input(),
		FixedCosts: req.FixedCosts,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"A unit sale contributes nothing at these numbers. Raise the price or cut costs.", nil)
		return
	}

	metrics.CalculatorRuns.WithLabelValues("breakeven").Inc()
	respondData(w, http.StatusOK, result)
}

// apiCalculatorOpportunities godoc
// @Summary List fee-saving opportunities
// @Description Evaluates candidate actions against the current economics and returns those with positive projected monthly impact.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body FeesRequest true "Sale economics"
// @Success 200 {object} models.APIResponse{data=[]calc.Opportunity}
// @Failure 400 {object} models.APIResponse
// @Router /calculator/opportunities [post]
func (s *Server) apiCalculatorOpportunities(w http.ResponseWriter, r *http.Request) {
	var req FeesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not valid JSON.", err)
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	metrics.CalculatorRuns.WithLabelValues("opportunities").Inc()
	respondData(w, http.StatusOK, calc.Opportunities(req.input()))
}
