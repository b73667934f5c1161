// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package calc

import (
	"errors"
	"math"
)

// ErrNonPositiveMargin means each sale loses money after fees and variable
// costs, so no volume reaches breakeven.
var ErrNonPositiveMargin = errors.New("contribution margin is zero or negative")

// BreakevenInput describes unit economics plus the fixed costs to cover.
type BreakevenInput struct {
	FeeInput
	FixedCosts float64 // Monthly fixed costs: tools, rent, subscriptions
}

// BreakevenResult reports how many sales cover the fixed costs.
type BreakevenResult struct {
	ContributionMargin float64 `json:"contribution_margin"` // Per-unit profit before fixed costs
	BreakevenUnits     int     `json:"breakeven_units"`
	BreakevenRevenue   float64 `json:"breakeven_revenue"`
}

// Breakeven computes the sales volume at which fixed costs are covered.
// The contribution margin is net revenue per unit minus variable costs
// (production and shipping). Returns ErrNonPositiveMargin when a unit sale
// cannot contribute anything.
func Breakeven(in BreakevenInput) (BreakevenResult, error) {
	breakdown := Fees(in.FeeInput)

	cm := breakdown.NetRevenue - in.ProductionCost - in.ShippingCost
	if cm <= 0 {
		return BreakevenResult{ContributionMargin: cm}, ErrNonPositiveMargin
	}

	units := int(math.Ceil(in.FixedCosts / cm))
	if units < 0 {
		units = 0
	}

	return BreakevenResult{
		ContributionMargin: cm,
		BreakevenUnits:     units,
		BreakevenRevenue:   float64(units) * in.Price,
	}, nil
}
