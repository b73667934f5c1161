// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package models

import (
	"time"
)

// Plan tiers. The backend owns the authoritative plan; these values mirror
// its subscription_tier field.
const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

// Account is the signed-in seller as seen by pages and middleware. It is
// resolved from the session store on every authenticated request and carried
// in the request context.
type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	ShopName    string    `json:"shop_name,omitempty"`
	Plan        string    `json:"plan"`
	DataConsent bool      `json:"data_consent"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsPremium reports whether the account is on the premium plan.
func (a Account) IsPremium() bool {
	return a.Plan == PlanPremium
}

// NormalizePlan maps unknown or empty plan values to the free tier so a
// backend change never locks rendering.
func NormalizePlan(plan string) string {
	if plan == PlanPremium {
		return PlanPremium
	}
	return PlanFree
}
