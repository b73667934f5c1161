// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package models defines shared data types for Etsy Dashboard.
//
// Three groups live here:
//
//   - API envelope types (APIResponse, Metadata, APIError) shared by every
//     JSON endpoint.
//   - The Account view model and plan-tier constants carried through the
//     request context for authenticated pages.
//   - Wire types for the analytics backend API (fee calculations, auth,
//     analyses, benchmarks), matching the backend's JSON contract.
//
// Feature-specific types (calculator inputs, dataset rows, analysis reports)
// live in their feature packages; models only holds types crossing package
// boundaries.
package models
