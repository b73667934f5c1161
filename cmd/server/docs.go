// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package main provides the Etsy Dashboard HTTP server
//
// Etsy Dashboard is a seller analytics frontend: fee calculator,
// upload-driven dashboards, and market benchmarks for Etsy shops.
//
// @title Etsy Dashboard API
// @version 1.0
// @description Public JSON API backing the Etsy Dashboard calculators and benchmark widgets.
// @description
// @description ## Endpoints
// @description
// @description - **Calculator**: Etsy fee breakdowns, pricing scenarios, breakeven analysis, and fee-saving opportunities
// @description - **Benchmarks**: per-category market averages and price elasticity estimates
// @description
// @description The calculator endpoints are stateless and require no authentication.
// @description The dashboard pages are served as HTML and are not part of this API.
// @description
// @description ## Rate Limiting
// @description
// @description API requests are limited to 60 per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-06-30T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/Brice601/etsydashboard-frontend/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name calculator
// @tag.description Etsy fee and pricing calculators. Stateless, no authentication required.
//
// @tag.name benchmarks
// @tag.description Market benchmark data fetched from the analytics backend and cached for an hour.
package main
