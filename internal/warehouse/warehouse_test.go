// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package warehouse

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func loadFixture(t *testing.T) *Warehouse {
	t.Helper()

	ctx := context.Background()
	w, err := Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	rows := []dataset.SaleRow{
		{Date: day(1), Product: "Mug", Price: 20, Quantity: 2, Shipping: 5, Cost: 4, Country: "FR", City: "Paris", Buyer: "alice"},
		{Date: day(1), Product: "Mug", Price: 20, Quantity: 1, Shipping: 5, Cost: 4, Country: "FR", City: "Lyon", Buyer: "bob"},
		{Date: day(2), Product: "Bag", Price: 30, Quantity: 1, Shipping: 0, Cost: 10, Country: "US", City: "Austin", Buyer: "carol"},
		{Date: day(3), Product: "Mug", Price: 22, Quantity: 1, Shipping: 5, Cost: 4, Country: "FR", City: "Paris", Buyer: "alice"},
	}
	if err := w.Load(ctx, rows); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return w
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ===== Product Rollups =====

func TestProductRollups(t *testing.T) {
	w := loadFixture(t)

	rollups, err := w.ProductRollups(context.Background())
	if err != nil {
		t.Fatalf("ProductRollups: %v", err)
	}

	if len(rollups) != 2 {
		t.Fatalf("got %d products, want 2", len(rollups))
	}

	// Ordered by revenue: Mug (20*2 + 20 + 22 = 82) before Bag (30).
	mug := rollups[0]
	if mug.Product != "Mug" {
		t.Fatalf("top product = %q, want Mug", mug.Product)
	}
	if mug.Orders != 3 || mug.Units != 4 {
		t.Errorf("mug orders/units = %d/%d, want 3/4", mug.Orders, mug.Units)
	}
	if !almostEqual(mug.Revenue, 82) {
		t.Errorf("mug revenue = %v, want 82", mug.Revenue)
	}
	if !almostEqual(mug.CostTotal, 16) {
		t.Errorf("mug cost total = %v, want 16", mug.CostTotal)
	}
}

// ===== Daily Revenue =====

func TestDailyRevenueSeries(t *testing.T) {
	w := loadFixture(t)

	series, err := w.DailyRevenueSeries(context.Background())
	if err != nil {
		t.Fatalf("DailyRevenueSeries: %v", err)
	}

	if len(series) != 3 {
		t.Fatalf("got %d days, want 3", len(series))
	}
	if !series[0].Day.Before(series[2].Day) {
		t.Error("series not in chronological order")
	}
	if series[0].Orders != 2 || !almostEqual(series[0].Revenue, 60) {
		t.Errorf("day 1 = %+v, want 2 orders / 60 revenue", series[0])
	}
}

// ===== Country Breakdown =====

func TestCountryBreakdown(t *testing.T) {
	w := loadFixture(t)

	countries, err := w.CountryBreakdown(context.Background(), 3)
	if err != nil {
		t.Fatalf("CountryBreakdown: %v", err)
	}

	if len(countries) != 2 {
		t.Fatalf("got %d countries, want 2", len(countries))
	}

	fr := countries[0]
	if fr.Country != "FR" || fr.Orders != 3 {
		t.Fatalf("top country = %+v, want FR with 3 orders", fr)
	}
	if !almostEqual(fr.Revenue, 82) || !almostEqual(fr.AvgBasket, 82.0/3) {
		t.Errorf("FR revenue/basket = %v/%v", fr.Revenue, fr.AvgBasket)
	}
	if len(fr.TopCities) != 2 || fr.TopCities[0].City != "Paris" || fr.TopCities[0].Orders != 2 {
		t.Errorf("FR top cities = %+v", fr.TopCities)
	}
}

// ===== Totals =====

func TestTotals(t *testing.T) {
	w := loadFixture(t)

	totals, err := w.Totals(context.Background())
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}

	if totals.Orders != 4 || totals.Units != 5 {
		t.Errorf("orders/units = %d/%d, want 4/5", totals.Orders, totals.Units)
	}
	if !almostEqual(totals.Revenue, 112) {
		t.Errorf("revenue = %v, want 112", totals.Revenue)
	}
	if !almostEqual(totals.ShippingSum, 15) || !almostEqual(totals.CostSum, 26) {
		t.Errorf("shipping/cost = %v/%v, want 15/26", totals.ShippingSum, totals.CostSum)
	}
	if !totals.FirstSale.Equal(day(1)) || !totals.LastSale.Equal(day(3)) {
		t.Errorf("sale range = %v..%v", totals.FirstSale, totals.LastSale)
	}
}

func TestTotalsEmpty(t *testing.T) {
	ctx := context.Background()
	w, err := Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer w.Close()

	totals, err := w.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals.Orders != 0 || !totals.FirstSale.IsZero() {
		t.Errorf("empty totals = %+v", totals)
	}
}
