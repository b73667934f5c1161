// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package calc implements the seller-economics calculators: the fee
// breakdown, pricing scenarios, breakeven, and opportunity finder.
//
// All calculators are deterministic pure functions over their inputs. The
// fee schedule constants are the published 2026 Etsy rates:
//
//	Transaction fee      6.5% of item price
//	Listing fee          $0.20 per sale
//	Payment processing   3% of price + buyer shipping, plus $0.25
//	Offsite Ads          15% (12% above $10k trailing revenue)
//	Regulatory fee       per-country fraction of price (FR, IT, ES, TR, GB)
//
// Input validation (positive price, non-negative costs) happens at the form
// and API boundaries; the math itself never rejects input.
package calc
