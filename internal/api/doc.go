// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package api wires the HTTP surface: server-rendered pages for landings,
// auth, upload, and the three dashboards, plus the JSON calculator and
// benchmark endpoints under /api/v1. Routing uses chi with per-group rate
// limits; JSON responses use the standard envelope.
package api
