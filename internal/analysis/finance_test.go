// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package analysis

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
)

func day(d int) time.Time {
	return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ===== Finance KPIs =====

func TestFinanceKPIs(t *testing.T) {
	rows := []dataset.SaleRow{
		{Date: day(1), Product: "Mug", Price: 25, Quantity: 2, Shipping: 5, Cost: 4, Country: "FR"},
		{Date: day(2), Product: "Bag", Price: 40, Quantity: 1, Shipping: 0, Cost: 30, Country: "US"},
	}

	report, err := Finance(context.Background(), rows, FinanceOptions{})
	if err != nil {
		t.Fatalf("Finance: %v", err)
	}

	kpis := report.KPIs
	if kpis.Orders != 2 || kpis.Units != 3 {
		t.Errorf("orders/units = %d/%d, want 2/3", kpis.Orders, kpis.Units)
	}
	if !almostEqual(kpis.Revenue, 90) {
		t.Errorf("revenue = %v, want 90", kpis.Revenue)
	}
	if !almostEqual(kpis.AvgOrderValue, 45) {
		t.Errorf("AOV = %v, want 45", kpis.AvgOrderValue)
	}
	if !almostEqual(kpis.ProductionCost, 38) {
		t.Errorf("production cost = %v, want 38", kpis.ProductionCost)
	}

	// Row 1: 50 price + 5 shipping. Transaction 3.25, listing 0.20,
	// processing 55*0.03+0.25 = 1.90, regulatory FR 50*0.004 = 0.20. Total 5.55.
	// Row 2: transaction 2.60, listing 0.20, processing 40*0.03+0.25 = 1.45.
	// Total 4.25. Shop total 9.80.
	if !almostEqual(kpis.EstimatedFees, 9.80) {
		t.Errorf("fees = %v, want 9.80", kpis.EstimatedFees)
	}
	if !almostEqual(kpis.NetProfit, 90-9.80-38) {
		t.Errorf("net profit = %v", kpis.NetProfit)
	}
	if kpis.FirstSale.Day() != 1 || kpis.LastSale.Day() != 2 {
		t.Errorf("date span = %v..%v", kpis.FirstSale, kpis.LastSale)
	}
}

// ===== Per-Product Stats =====

func TestFinanceProductsSortedByRevenue(t *testing.T) {
	rows := []dataset.SaleRow{
		{Date: day(1), Product: "Small", Price: 10, Quantity: 1},
		{Date: day(1), Product: "Big", Price: 100, Quantity: 1},
	}

	report, err := Finance(context.Background(), rows, FinanceOptions{})
	if err != nil {
		t.Fatalf("Finance: %v", err)
	}

	if len(report.Products) != 2 || report.Products[0].Product != "Big" {
		t.Errorf("products = %+v, want Big first", report.Products)
	}
	if report.Products[0].EstimatedFees <= 0 || report.Products[0].Profit >= 100 {
		t.Errorf("big product economics = %+v", report.Products[0])
	}
}

// ===== Recommendations =====

func TestFinanceRecommendationRules(t *testing.T) {
	// High cost forces net margin below 30% and product margin below 25%.
	rows := []dataset.SaleRow{
		{Date: day(1), Product: "Squeezed", Price: 20, Quantity: 1, Cost: 16},
	}

	report, err := Finance(context.Background(), rows, FinanceOptions{})
	if err != nil {
		t.Fatalf("Finance: %v", err)
	}

	var sawMargin, sawReprice bool
	for _, rec := range report.Recommendations {
		switch {
		case rec.Priority == PriorityHigh && rec.Title == "Margins under pressure":
			sawMargin = true
		case rec.Priority == PriorityMedium && rec.Title == "Reprice Squeezed":
			sawReprice = true
		}
	}
	if !sawMargin {
		t.Error("missing HIGH margin recommendation")
	}
	if !sawReprice {
		t.Error("missing per-product repricing recommendation")
	}
}

func TestFinancePremiumTeasersLocked(t *testing.T) {
	rows := []dataset.SaleRow{{Date: day(1), Product: "Mug", Price: 50, Quantity: 1}}

	free, err := Finance(context.Background(), rows, FinanceOptions{Premium: false})
	if err != nil {
		t.Fatalf("Finance: %v", err)
	}
	premium, err := Finance(context.Background(), rows, FinanceOptions{Premium: true})
	if err != nil {
		t.Fatalf("Finance: %v", err)
	}

	countLocked := func(recs []Recommendation) int {
		n := 0
		for _, r := range recs {
			if r.Locked {
				n++
			}
		}
		return n
	}

	if got := countLocked(free.Recommendations); got != 3 {
		t.Errorf("free plan locked teasers = %d, want 3", got)
	}
	if got := countLocked(premium.Recommendations); got != 0 {
		t.Errorf("premium plan locked teasers = %d, want 0", got)
	}
}

func TestFinanceEmptyUpload(t *testing.T) {
	report, err := Finance(context.Background(), nil, FinanceOptions{})
	if err != nil {
		t.Fatalf("Finance: %v", err)
	}
	if report.KPIs.Orders != 0 || report.KPIs.NetMargin != 0 {
		t.Errorf("empty KPIs = %+v", report.KPIs)
	}
	for _, rec := range report.Recommendations {
		if rec.Priority == PriorityHigh {
			t.Errorf("empty upload produced %q", rec.Title)
		}
	}
}
