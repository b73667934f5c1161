// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package calc

import (
	"fmt"
	"sort"
)

// Assumptions behind the opportunity projections.
const (
	opportunityPriceRaisePct  = 15.0 // Price increase candidates assume this bump
	opportunityVolumeLossPct  = 10.0 // and this conservative volume loss
	opportunityShippingCutPct = 20.0 // Shipping renegotiation target
)

// Opportunity is one candidate action with its projected monthly impact.
type Opportunity struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	MonthlyImpact float64 `json:"monthly_impact"`
}

// Opportunities evaluates candidate actions against the current economics
// and returns the ones with a positive projected monthly impact, sorted by
// impact descending.
func Opportunities(in FeeInput) []Opportunity {
	baseline := Fees(in)
	baseMonthly := baseline.Profit * float64(in.MonthlySales)

	var out []Opportunity

	// Raise the price, accept some volume loss.
	raised := in
	raised.Price = in.Price * (1 + opportunityPriceRaisePct/100)
	raisedBreakdown := Fees(raised)
	raisedVolume := float64(in.MonthlySales) * (1 - opportunityVolumeLossPct/100)
	raisedMonthly := raisedBreakdown.Profit * raisedVolume
	if impact := raisedMonthly - baseMonthly; impact > 0 {
		out = append(out, Opportunity{
			Title: fmt.Sprintf("Raise your price %.0f%%", opportunityPriceRaisePct),
			Description: fmt.Sprintf(
				"Even losing %.0f%% of sales, a higher price improves your monthly profit.",
				opportunityVolumeLossPct),
			MonthlyImpact: impact,
		})
	}

	// Stop paying for Offsite Ads attribution.
	if in.OffsiteAds {
		withoutAds := in
		withoutAds.OffsiteAds = false
		adsMonthly := Fees(withoutAds).Profit * float64(in.MonthlySales)
		if impact := adsMonthly - baseMonthly; impact > 0 {
			out = append(out, Opportunity{
				Title:         "Turn off Offsite Ads",
				Description:   "Offsite Ads fees are eating this listing's margin. Compare against the sales they actually bring.",
				MonthlyImpact: impact,
			})
		}
	}

	// Renegotiate or repackage to cut shipping costs.
	if in.ShippingCost > 0 {
		saved := in.ShippingCost * opportunityShippingCutPct / 100
		if impact := saved * float64(in.MonthlySales); impact > 0 {
			out = append(out, Opportunity{
				Title: fmt.Sprintf("Cut shipping costs %.0f%%", opportunityShippingCutPct),
				Description: fmt.Sprintf(
					"Lighter packaging or a carrier change saving %.0f%% per parcel adds up across the month.",
					opportunityShippingCutPct),
				MonthlyImpact: impact,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].MonthlyImpact > out[j].MonthlyImpact
	})

	return out
}
