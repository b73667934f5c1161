// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

/*
Package metrics provides Prometheus metrics collection for observability.

The package instruments:
  - HTTP request latency, throughput, and in-flight counts per route
  - Backend API client calls by operation and outcome
  - Circuit breaker state and transitions
  - Calculator runs, dataset uploads, and analysis durations
  - Free-plan quota rejections and collector throughput
  - Cache hit/miss rates and live session counts

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

All metrics are registered through promauto at package load; recording
functions are safe for concurrent use. Labels stay low-cardinality: routes
are chi route patterns, never raw URLs, and user identifiers are never used
as label values.

Example PromQL queries:

	# Page request rate
	rate(http_requests_total[5m])

	# Backend p95 latency by operation
	histogram_quantile(0.95, rate(backend_request_duration_seconds_bucket[5m]))

	# Cache hit rate
	sum(rate(cache_hits_total[5m])) / (sum(rate(cache_hits_total[5m])) + sum(rate(cache_misses_total[5m])))
*/
package metrics
