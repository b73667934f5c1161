// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ProductRollup aggregates one product's sales.
type ProductRollup struct {
	Product   string  `json:"product"`
	Orders    int     `json:"orders"`
	Units     int     `json:"units"`
	Revenue   float64 `json:"revenue"`
	AvgPrice  float64 `json:"avg_price"`
	CostTotal float64 `json:"cost_total"`
}

// ProductRollups returns per-product totals ordered by revenue.
func (w *Warehouse) ProductRollups(ctx context.Context) ([]ProductRollup, error) {
	query := `
	SELECT
		product,
		COUNT(*) AS orders,
		CAST(SUM(quantity) AS INTEGER) AS units,
		SUM(price * quantity) AS revenue,
		AVG(price) AS avg_price,
		SUM(cost * quantity) AS cost_total
	FROM sales
	GROUP BY product
	ORDER BY revenue DESC`

	scanProduct := func(rows *sql.Rows) (ProductRollup, error) {
		var p ProductRollup
		err := rows.Scan(&p.Product, &p.Orders, &p.Units, &p.Revenue, &p.AvgPrice, &p.CostTotal)
		return p, err
	}

	rollups, err := queryAndScan(ctx, w.conn, query, nil, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("query product rollups: %w", err)
	}
	return rollups, nil
}

// DailyRevenue is one day's totals in the revenue series.
type DailyRevenue struct {
	Day     time.Time `json:"day"`
	Orders  int       `json:"orders"`
	Revenue float64   `json:"revenue"`
}

// DailyRevenueSeries returns per-day orders and revenue across the sold
// range, oldest first. Days without sales are absent; the chart fills gaps.
func (w *Warehouse) DailyRevenueSeries(ctx context.Context) ([]DailyRevenue, error) {
	query := `
	SELECT
		sale_date,
		COUNT(*) AS orders,
		SUM(price * quantity) AS revenue
	FROM sales
	GROUP BY sale_date
	ORDER BY sale_date`

	scanDay := func(rows *sql.Rows) (DailyRevenue, error) {
		var d DailyRevenue
		err := rows.Scan(&d.Day, &d.Orders, &d.Revenue)
		return d, err
	}

	series, err := queryAndScan(ctx, w.conn, query, nil, scanDay)
	if err != nil {
		return nil, fmt.Errorf("query daily revenue: %w", err)
	}
	return series, nil
}

// CityCount is one city's order count within a country.
type CityCount struct {
	City   string `json:"city"`
	Orders int    `json:"orders"`
}

// CountryStats aggregates orders by shipping destination.
type CountryStats struct {
	Country   string      `json:"country"`
	Orders    int         `json:"orders"`
	Revenue   float64     `json:"revenue"`
	AvgBasket float64     `json:"avg_basket"`
	TopCities []CityCount `json:"top_cities,omitempty"`
}

// CountryBreakdown returns per-country orders, revenue, and average basket
// ordered by revenue, each with its top cities by order count. Rows without
// a country are excluded.
func (w *Warehouse) CountryBreakdown(ctx context.Context, topCities int) ([]CountryStats, error) {
	countryQuery := `
	SELECT
		country,
		COUNT(*) AS orders,
		SUM(price * quantity) AS revenue,
		AVG(price * quantity) AS avg_basket
	FROM sales
	WHERE country IS NOT NULL
	GROUP BY country
	ORDER BY revenue DESC`

	scanCountry := func(rows *sql.Rows) (CountryStats, error) {
		var c CountryStats
		err := rows.Scan(&c.Country, &c.Orders, &c.Revenue, &c.AvgBasket)
		return c, err
	}

	countries, err := queryAndScan(ctx, w.conn, countryQuery, nil, scanCountry)
	if err != nil {
		return nil, fmt.Errorf("query country breakdown: %w", err)
	}
	if topCities <= 0 || len(countries) == 0 {
		return countries, nil
	}

	cityQuery := `
	SELECT country, city, orders FROM (
		SELECT
			country,
			city,
			COUNT(*) AS orders,
			ROW_NUMBER() OVER (PARTITION BY country ORDER BY COUNT(*) DESC, city) AS rank
		FROM sales
		WHERE country IS NOT NULL AND city IS NOT NULL
		GROUP BY country, city
	)
	WHERE rank <= ?
	ORDER BY country, orders DESC`

	type cityRow struct {
		country string
		city    string
		orders  int
	}
	scanCity := func(rows *sql.Rows) (cityRow, error) {
		var c cityRow
		err := rows.Scan(&c.country, &c.city, &c.orders)
		return c, err
	}

	cities, err := queryAndScan(ctx, w.conn, cityQuery, []any{topCities}, scanCity)
	if err != nil {
		return nil, fmt.Errorf("query top cities: %w", err)
	}

	byCountry := make(map[string][]CityCount, len(countries))
	for _, c := range cities {
		byCountry[c.country] = append(byCountry[c.country], CityCount{City: c.city, Orders: c.orders})
	}
	for i := range countries {
		countries[i].TopCities = byCountry[countries[i].Country]
	}

	return countries, nil
}

// Totals are the whole-upload aggregates the finance dashboard leads with.
type Totals struct {
	Orders      int       `json:"orders"`
	Units       int       `json:"units"`
	Revenue     float64   `json:"revenue"`
	ShippingSum float64   `json:"shipping_sum"`
	CostSum     float64   `json:"cost_sum"`
	FirstSale   time.Time `json:"first_sale"`
	LastSale    time.Time `json:"last_sale"`
}

// Totals returns the upload-wide aggregates. Orders is zero for an empty
// warehouse, with zero-value dates.
func (w *Warehouse) Totals(ctx context.Context) (Totals, error) {
	query := `
	SELECT
		COUNT(*),
		CAST(COALESCE(SUM(quantity), 0) AS INTEGER),
		COALESCE(SUM(price * quantity), 0),
		COALESCE(SUM(shipping), 0),
		COALESCE(SUM(cost * quantity), 0),
		MIN(sale_date),
		MAX(sale_date)
	FROM sales`

	var t Totals
	var first, last sql.NullTime
	err := w.conn.QueryRowContext(ctx, query).Scan(
		&t.Orders, &t.Units, &t.Revenue, &t.ShippingSum, &t.CostSum, &first, &last)
	if err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}

	if first.Valid {
		t.FirstSale = first.Time
	}
	if last.Valid {
		t.LastSale = last.Time
	}
	return t, nil
}
