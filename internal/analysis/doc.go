// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

/*
Package analysis computes the three seller dashboards from cleaned datasets.

Finance runs the fee schedule over every sale and reports shop-level KPIs,
per-product economics, and rule-based recommendations. Customers covers
geography, retention segments, review sentiment, and shipping delays. SEO
scores listing titles and joins them back to sales.

Aggregation over sales rows goes through the in-memory DuckDB warehouse;
review and listing analysis stays in Go. Engines are pure given their inputs
plus a reference time; callers pass the upload's last sale date so results
are reproducible.
*/
package analysis
