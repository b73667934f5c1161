// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package middleware provides the HTTP middleware shared by every route
// group: request-ID propagation with structured request logs, security
// headers, Prometheus instrumentation keyed by route pattern, and gzip
// compression. All middleware uses the func(http.Handler) http.Handler
// shape chi expects.
package middleware
