// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

/*
Package cache provides the in-memory data structures shared across the
frontend: a named TTL cache, an Aho-Corasick keyword matcher, and a Bloom
filter.

The TTL cache holds cached backend responses (category and elasticity
benchmarks, 1h) and static fee-schedule copy. Dashboard analyses are never
cached: page renders are per-request by design, so a seller always sees the
data they just uploaded.

The keyword matcher backs review sentiment classification and SEO title
scanning. The Bloom filter fronts the collector's content-hash registry.

All types are safe for concurrent use.
*/
package cache
