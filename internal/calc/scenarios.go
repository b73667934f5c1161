// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package calc

import (
	"fmt"
)

// PriceElasticity models demand response to price changes: a 10% price
// increase loses 15% of volume.
const PriceElasticity = 1.5

// scenarioPriceChanges are the price adjustments simulated for every input,
// in percent.
var scenarioPriceChanges = []float64{-10, 0, 10, 15}

// PricingScenario is one simulated price point.
type PricingScenario struct {
	Label           string  `json:"label"`
	PriceChangePct  float64 `json:"price_change_pct"`
	AdjustedPrice   float64 `json:"adjusted_price"`
	UnitProfit      float64 `json:"unit_profit"`
	MarginPercent   float64 `json:"margin_percent"`
	VolumeChangePct float64 `json:"volume_change_pct"`
	MonthlyVolume   float64 `json:"monthly_volume"`
	MonthlyProfit   float64 `json:"monthly_profit"`
	Current         bool    `json:"current"`
}

// Scenarios simulates the configured price adjustments against the demand
// elasticity model. Fees are recomputed at each adjusted price; volume never
// drops below zero.
func Scenarios(in FeeInput) []PricingScenario {
	out := make([]PricingScenario, 0, len(scenarioPriceChanges))

	for _, change := range scenarioPriceChanges {
		scenario := PricingScenario{
			PriceChangePct: change,
			Current:        change == 0,
		}

		adjusted := in
		adjusted.Price = in.Price * (1 + change/100)
		scenario.AdjustedPrice = adjusted.Price

		breakdown := Fees(adjusted)
		scenario.UnitProfit = breakdown.Profit
		scenario.MarginPercent = breakdown.MarginPercent

		volumeChange := -PriceElasticity * change
		if volumeChange < -100 {
			volumeChange = -100
		}
		scenario.VolumeChangePct = volumeChange
		scenario.MonthlyVolume = float64(in.MonthlySales) * (1 + volumeChange/100)
		scenario.MonthlyProfit = scenario.UnitProfit * scenario.MonthlyVolume

		scenario.Label = scenarioLabel(change)
		out = append(out, scenario)
	}

	return out
}

// BestScenario returns the scenario with the highest monthly profit.
// An empty slice returns the zero value.
func BestScenario(scenarios []PricingScenario) PricingScenario {
	var best PricingScenario
	for i, s := range scenarios {
		if i == 0 || s.MonthlyProfit > best.MonthlyProfit {
			best = s
		}
	}
	return best
}

func scenarioLabel(change float64) string {
	if change == 0 {
		return "Current price"
	}
	if change > 0 {
		return fmt.Sprintf("+%.0f%% price", change)
	}
	return fmt.Sprintf("%.0f%% price", change)
}
