// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/calc"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
	"github.com/Brice601/etsydashboard-frontend/internal/format"
	"github.com/Brice601/etsydashboard-frontend/internal/warehouse"
)

// Recommendation priorities, ordered for display.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
)

// Recommendation is one rule-based suggestion on a dashboard. Locked entries
// are premium teasers rendered greyed-out on the free plan.
type Recommendation struct {
	Priority string `json:"priority"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Locked   bool   `json:"locked,omitempty"`
}

// FinanceOptions tune the finance engine per account.
type FinanceOptions struct {
	Premium bool // Unlocks forecast/benchmark/pricing recommendations
}

// FinanceKPIs are the headline numbers on the finance dashboard.
type FinanceKPIs struct {
	Revenue        float64   `json:"revenue"`
	Orders         int       `json:"orders"`
	Units          int       `json:"units"`
	AvgOrderValue  float64   `json:"avg_order_value"`
	EstimatedFees  float64   `json:"estimated_fees"`
	FeeRatePercent float64   `json:"fee_rate_percent"`
	ProductionCost float64   `json:"production_cost"`
	NetProfit      float64   `json:"net_profit"`
	NetMargin      float64   `json:"net_margin"`
	FirstSale      time.Time `json:"first_sale"`
	LastSale       time.Time `json:"last_sale"`
}

// ProductStat is one product's economics after fees.
type ProductStat struct {
	warehouse.ProductRollup

	EstimatedFees float64 `json:"estimated_fees"`
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`
}

// FinanceReport is the full finance dashboard payload.
type FinanceReport struct {
	KPIs            FinanceKPIs              `json:"kpis"`
	Products        []ProductStat            `json:"products"`
	Daily           []warehouse.DailyRevenue `json:"daily"`
	Recommendations []Recommendation         `json:"recommendations"`
}

// Recommendation thresholds.
const (
	netMarginFloorPercent     = 30.0
	feeRateCeilingPercent     = 12.0
	productMarginFloorPercent = 25.0
	maxFlaggedProducts        = 5
)

// Finance computes the finance dashboard from cleaned sales rows. Fees are
// estimated with the published schedule applied per row; the warehouse does
// the rollups.
func Finance(ctx context.Context, rows []dataset.SaleRow, opts FinanceOptions) (*FinanceReport, error) {
	w, err := warehouse.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	if err := w.Load(ctx, rows); err != nil {
		return nil, err
	}

	totals, err := w.Totals(ctx)
	if err != nil {
		return nil, err
	}
	rollups, err := w.ProductRollups(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := w.DailyRevenueSeries(ctx)
	if err != nil {
		return nil, err
	}

	// Fee estimation stays row-level: the schedule mixes per-order flats
	// with price-proportional rates, so rollups alone cannot reproduce it.
	feesByProduct := make(map[string]float64, len(rollups))
	var totalFees float64
	for _, r := range rows {
		b := calc.Fees(calc.FeeInput{
			Price:         r.Price * float64(r.Quantity),
			ShippingPrice: r.Shipping,
			Country:       r.Country,
		})
		feesByProduct[r.Product] += b.TotalFees
		totalFees += b.TotalFees
	}

	report := &FinanceReport{Daily: daily}
	report.KPIs = FinanceKPIs{
		Revenue:        totals.Revenue,
		Orders:         totals.Orders,
		Units:          totals.Units,
		EstimatedFees:  totalFees,
		ProductionCost: totals.CostSum,
		NetProfit:      totals.Revenue - totalFees - totals.CostSum,
		FirstSale:      totals.FirstSale,
		LastSale:       totals.LastSale,
	}
	if totals.Orders > 0 {
		report.KPIs.AvgOrderValue = totals.Revenue / float64(totals.Orders)
	}
	report.KPIs.FeeRatePercent = format.PercentageOf(totalFees, totals.Revenue)
	report.KPIs.NetMargin = format.PercentageOf(report.KPIs.NetProfit, totals.Revenue)

	report.Products = make([]ProductStat, 0, len(rollups))
	for _, rollup := range rollups {
		stat := ProductStat{ProductRollup: rollup, EstimatedFees: feesByProduct[rollup.Product]}
		stat.Profit = rollup.Revenue - stat.EstimatedFees - rollup.CostTotal
		stat.MarginPercent = format.PercentageOf(stat.Profit, rollup.Revenue)
		report.Products = append(report.Products, stat)
	}

	report.Recommendations = financeRecommendations(report, opts)
	return report, nil
}

func financeRecommendations(report *FinanceReport, opts FinanceOptions) []Recommendation {
	var recs []Recommendation

	if report.KPIs.Orders > 0 && report.KPIs.NetMargin < netMarginFloorPercent {
		recs = append(recs, Recommendation{
			Priority: PriorityHigh,
			Title:    "Margins under pressure",
			Detail: fmt.Sprintf("Net margin is %s after fees and production costs. Review pricing or cut production costs to get above %.0f%%.",
				format.Percentage(report.KPIs.NetMargin/100, 1, false), netMarginFloorPercent),
		})
	}

	if report.KPIs.Orders > 0 && report.KPIs.FeeRatePercent > feeRateCeilingPercent {
		recs = append(recs, Recommendation{
			Priority: PriorityMedium,
			Title:    "Fees above healthy range",
			Detail: fmt.Sprintf("Etsy fees eat %s of revenue (healthy range is under %.0f%%). Raising prices or bundling shipping brings the rate down.",
				format.Percentage(report.KPIs.FeeRatePercent/100, 1, false), feeRateCeilingPercent),
		})
	}

	flagged := 0
	for _, p := range report.Products {
		if flagged >= maxFlaggedProducts {
			break
		}
		if p.CostTotal > 0 && p.MarginPercent < productMarginFloorPercent {
			recs = append(recs, Recommendation{
				Priority: PriorityMedium,
				Title:    fmt.Sprintf("Reprice %s", format.TruncateText(p.Product, 40)),
				Detail: fmt.Sprintf("%s runs a %s margin. A price around %s restores %.0f%%.",
					format.TruncateText(p.Product, 40),
					format.Percentage(p.MarginPercent/100, 1, false),
					format.Currency(repriceTarget(p), "USD"),
					productMarginFloorPercent),
			})
			flagged++
		}
	}

	recs = append(recs,
		Recommendation{Priority: PriorityMedium, Title: "Revenue forecast", Detail: "Project the next 90 days from your sales trend.", Locked: !opts.Premium},
		Recommendation{Priority: PriorityMedium, Title: "Category benchmark", Detail: "Compare your margins against sellers in your category.", Locked: !opts.Premium},
		Recommendation{Priority: PriorityMedium, Title: "Pricing optimization", Detail: "Per-product price points that maximize profit.", Locked: !opts.Premium},
	)

	return recs
}

// repriceTarget estimates the average unit price that would bring a product
// back to the margin floor, holding unit costs constant.
func repriceTarget(p ProductStat) float64 {
	if p.Units == 0 {
		return 0
	}
	unitCost := (p.EstimatedFees + p.CostTotal) / float64(p.Units)
	return unitCost / (1 - productMarginFloorPercent/100)
}
