// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package calc

import (
	"strings"
	"testing"
)

func findOpportunity(ops []Opportunity, substr string) (Opportunity, bool) {
	for _, op := range ops {
		if strings.Contains(op.Title, substr) {
			return op, true
		}
	}
	return Opportunity{}, false
}

func TestOpportunitiesIncludesPriceRaise(t *testing.T) {
	t.Parallel()

	ops := Opportunities(FeeInput{Price: 20, ProductionCost: 5, MonthlySales: 10})

	raise, ok := findOpportunity(ops, "Raise your price")
	if !ok {
		t.Fatal("expected a price-raise opportunity")
	}
	if raise.MonthlyImpact <= 0 {
		t.Errorf("MonthlyImpact = %v, want positive", raise.MonthlyImpact)
	}

	// Baseline 12.65/unit x 10 = 126.5. Raised: $23 price,
	// profit 15.365/unit x 9 = 138.285. Impact ~11.785.
	if raise.MonthlyImpact < 11 || raise.MonthlyImpact > 12.5 {
		t.Errorf("MonthlyImpact = %v, want ~11.785", raise.MonthlyImpact)
	}
}

func TestOpportunitiesAdsOnlyWhenEnabled(t *testing.T) {
	t.Parallel()

	withAds := Opportunities(FeeInput{
		Price: 20, ProductionCost: 5, MonthlySales: 10, OffsiteAds: true,
	})
	ads, ok := findOpportunity(withAds, "Offsite Ads")
	if !ok {
		t.Fatal("expected an Offsite Ads opportunity when ads are on")
	}
	// 15% of $20 = $3/unit x 10 units.
	if !almostEqual(ads.MonthlyImpact, 30) {
		t.Errorf("ads MonthlyImpact = %v, want 30", ads.MonthlyImpact)
	}

	withoutAds := Opportunities(FeeInput{Price: 20, ProductionCost: 5, MonthlySales: 10})
	if _, ok := findOpportunity(withoutAds, "Offsite Ads"); ok {
		t.Error("ads opportunity should not appear when ads are off")
	}
}

func TestOpportunitiesShippingOnlyWhenPositive(t *testing.T) {
	t.Parallel()

	withShipping := Opportunities(FeeInput{
		Price: 20, ProductionCost: 5, ShippingCost: 4, MonthlySales: 10,
	})
	shipping, ok := findOpportunity(withShipping, "shipping")
	if !ok {
		t.Fatal("expected a shipping opportunity when shipping cost > 0")
	}
	// 20% of $4 = $0.80/unit x 10 units.
	if !almostEqual(shipping.MonthlyImpact, 8) {
		t.Errorf("shipping MonthlyImpact = %v, want 8", shipping.MonthlyImpact)
	}

	noShipping := Opportunities(FeeInput{Price: 20, ProductionCost: 5, MonthlySales: 10})
	if _, ok := findOpportunity(noShipping, "shipping"); ok {
		t.Error("shipping opportunity should not appear at zero shipping cost")
	}
}

func TestOpportunitiesSortedByImpact(t *testing.T) {
	t.Parallel()

	ops := Opportunities(FeeInput{
		Price: 20, ProductionCost: 5, ShippingCost: 4, MonthlySales: 10, OffsiteAds: true,
	})
	if len(ops) < 2 {
		t.Fatalf("expected multiple opportunities, got %d", len(ops))
	}

	for i := 1; i < len(ops); i++ {
		if ops[i].MonthlyImpact > ops[i-1].MonthlyImpact {
			t.Errorf("opportunities not sorted: %v before %v",
				ops[i-1].MonthlyImpact, ops[i].MonthlyImpact)
		}
	}
}

func TestOpportunitiesEmptyWithoutVolume(t *testing.T) {
	t.Parallel()

	// No monthly volume means no monthly impact to project.
	ops := Opportunities(FeeInput{Price: 20, ProductionCost: 5})
	if len(ops) != 0 {
		t.Errorf("Opportunities with zero volume = %d entries, want 0", len(ops))
	}
}
