// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

/*
Package backend implements the authenticated HTTP client for the analytics
backend API.

The backend owns accounts, subscriptions, benchmarks, and heavy analysis;
this frontend is one of its clients. Every real computation the product
advertises beyond the local calculators and dashboard analytics happens
behind these calls.

# Resilience

Outbound calls run through a token-bucket rate limiter (golang.org/x/time)
and a circuit breaker (sony/gobreaker). The breaker opens at a 60% failure
rate over at least 10 requests and recovers through 3 half-open probes after
2 minutes. Transport failures and 5xx responses count as failures; 4xx
responses never do. Nothing is retried automatically.

# Error mapping

Non-2xx responses map to sentinels the UI layer branches on:

	401/403                    -> ErrUnauthorized
	402, "subscription_required" -> ErrPremiumRequired
	429                        -> ErrRateLimited
	5xx, transport, open breaker -> ErrBackendUnavailable
	other 4xx                  -> *APIError with the backend's message

Raw backend response text is never rendered into pages.
*/
package backend
