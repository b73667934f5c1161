// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package models

import (
	"time"
)

// Wire types for the analytics backend API. Field names follow the backend's
// JSON contract; the frontend never invents fields the backend does not send.

// FeeRequest is the payload for POST /api/calculate-fees.
type FeeRequest struct {
	Price          float64 `json:"price"`
	ShippingPrice  float64 `json:"shipping_price"`
	ProductionCost float64 `json:"production_cost"`
	Country        string  `json:"country,omitempty"`
	OffsiteAds     bool    `json:"offsite_ads"`
	MonthlySales   int     `json:"monthly_sales,omitempty"`
}

// FeeResponse is the backend's fee breakdown.
type FeeResponse struct {
	TransactionFee float64 `json:"transaction_fee"`
	ListingFee     float64 `json:"listing_fee"`
	ProcessingFee  float64 `json:"processing_fee"`
	OffsiteAdsFee  float64 `json:"offsite_ads_fee"`
	RegulatoryFee  float64 `json:"regulatory_fee"`
	TotalFees      float64 `json:"total_fees"`
	NetRevenue     float64 `json:"net_revenue"`
	Profit         float64 `json:"profit"`
	MarginPercent  float64 `json:"margin_percent"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Username      string `json:"username"`
	ShopName      string `json:"shop_name,omitempty"`
	DataConsent   bool   `json:"data_consent"`
	AcceptedTerms bool   `json:"accepted_terms"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SSORequest establishes a session from a verified OIDC identity.
type SSORequest struct {
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Provider string `json:"provider"`
}

// AuthResponse is returned by the register, login, and SSO endpoints.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserPayload `json:"user"`
}

// UserPayload is the backend's user representation.
type UserPayload struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	ShopName         string    `json:"shop_name,omitempty"`
	SubscriptionTier string    `json:"subscription_tier"`
	DataConsent      bool      `json:"data_consent"`
	CreatedAt        time.Time `json:"created_at"`
}

// Account converts the wire user into the view model used by pages.
func (u UserPayload) Account() Account {
	return Account{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.Username,
		ShopName:    u.ShopName,
		Plan:        NormalizePlan(u.SubscriptionTier),
		DataConsent: u.DataConsent,
		CreatedAt:   u.CreatedAt,
	}
}

// AnalysisResult is returned by POST /api/analyze/sales.
type AnalysisResult struct {
	AnalysisType string             `json:"analysis_type"`
	Summary      map[string]float64 `json:"summary"`
	Insights     []string           `json:"insights"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// ProductInsights is returned by GET /api/insights/product/{id}.
type ProductInsights struct {
	ProductID    string   `json:"product_id"`
	Title        string   `json:"title"`
	TotalRevenue float64  `json:"total_revenue"`
	UnitsSold    int      `json:"units_sold"`
	Trend        string   `json:"trend"`
	Suggestions  []string `json:"suggestions"`
}

// DashboardPayload is returned by GET /api/dashboard/{user_id}.
type DashboardPayload struct {
	DashboardType string             `json:"dashboard_type"`
	Stats         map[string]float64 `json:"stats"`
	Highlights    []string           `json:"highlights"`
	GeneratedAt   time.Time          `json:"generated_at"`
}

// Recommendations is returned by GET /api/premium/recommendations/{user_id}.
type Recommendations struct {
	UserID string               `json:"user_id"`
	Items  []RecommendationItem `json:"items"`
}

// RecommendationItem is a single premium recommendation.
type RecommendationItem struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Priority         string  `json:"priority"`
	ProjectedImpact  float64 `json:"projected_impact"`
	ImpactConfidence string  `json:"impact_confidence,omitempty"`
}

// SubscriptionStatus is returned by POST /api/subscription/upgrade.
type SubscriptionStatus struct {
	Status    string    `json:"status"`
	Tier      string    `json:"tier"`
	AmountUSD float64   `json:"amount_usd"`
	RenewsAt  time.Time `json:"renews_at"`
}

// Benchmarks is returned by the GET /api/benchmarks/* endpoints.
type Benchmarks struct {
	Kind      string           `json:"kind"`
	UpdatedAt time.Time        `json:"updated_at"`
	Entries   []BenchmarkEntry `json:"entries"`
}

// BenchmarkEntry is a per-category benchmark row. Elasticity is only set for
// the elasticity benchmark kind.
type BenchmarkEntry struct {
	Category      string  `json:"category"`
	AvgPrice      float64 `json:"avg_price,omitempty"`
	AvgMarginPct  float64 `json:"avg_margin_pct,omitempty"`
	AvgFeeRatePct float64 `json:"avg_fee_rate_pct,omitempty"`
	Elasticity    float64 `json:"elasticity,omitempty"`
}

// BackendErrorBody is the backend's error payload. FastAPI-style backends
// send "detail"; older endpoints send "error".
type BackendErrorBody struct {
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Message returns whichever error field the backend populated.
func (b BackendErrorBody) Message() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Detail
}
