// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

func serveFakeBenchmarks(env *testEnv, calls *int) {
	payload := models.Benchmarks{
		Kind:      "category",
		UpdatedAt: time.Now(),
		Entries: []models.BenchmarkEntry{
			{Category: "Jewelry", AvgPrice: 30, AvgMarginPct: 40, AvgFeeRatePct: 12},
		},
	}
	env.mux.HandleFunc("/api/benchmarks/category", func(w http.ResponseWriter, r *http.Request) {
		*calls++
		_ = json.NewEncoder(w).Encode(payload)
	})
	env.mux.HandleFunc("/api/benchmarks/elasticity", func(w http.ResponseWriter, r *http.Request) {
		elastic := payload
		elastic.Kind = "elasticity"
		_ = json.NewEncoder(w).Encode(elastic)
	})
}

// ===== Caching =====

func TestBenchmarksCachedAfterFirstFetch(t *testing.T) {
	env := newTestEnv(t)
	calls := 0
	serveFakeBenchmarks(env, &calls)

	first := env.get("/api/v1/benchmarks/category", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first fetch = %d, want 200", first.Code)
	}
	firstResp, _ := decodeEnvelope(t, body(t, first))
	if firstResp.Metadata.Cached {
		t.Error("first fetch reported cached")
	}

	second := env.get("/api/v1/benchmarks/category", nil)
	secondResp, _ := decodeEnvelope(t, body(t, second))
	if !secondResp.Metadata.Cached {
		t.Error("second fetch not served from cache")
	}
	if calls != 1 {
		t.Errorf("backend called %d times, want 1", calls)
	}
}

func TestBenchmarkCacheMetricsCountOncePerRequest(t *testing.T) {
	env := newTestEnv(t)
	calls := 0
	serveFakeBenchmarks(env, &calls)

	misses := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("benchmarks"))
	hits := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("benchmarks"))

	env.get("/api/v1/benchmarks/category", nil) // miss, fills the cache
	env.get("/api/v1/benchmarks/category", nil) // hit

	gotMisses := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("benchmarks")) - misses
	gotHits := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("benchmarks")) - hits
	if gotMisses != 1 {
		t.Errorf("cache misses recorded = %v, want 1", gotMisses)
	}
	if gotHits != 1 {
		t.Errorf("cache hits recorded = %v, want 1", gotHits)
	}
}

// ===== Degraded Mode =====

func TestBenchmarksFallBackToDefaults(t *testing.T) {
	env := newTestEnv(t)
	// No benchmark routes registered: the backend answers 404.

	rec := env.get("/api/v1/benchmarks/elasticity", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("degraded fetch = %d, want 200", rec.Code)
	}

	var resp struct {
		Status string            `json:"status"`
		Data   models.Benchmarks `json:"data"`
	}
	if err := json.Unmarshal([]byte(body(t, rec)), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("status = %q, want success", resp.Status)
	}
	if len(resp.Data.Entries) == 0 {
		t.Fatal("no fallback entries")
	}
	if resp.Data.Entries[0].Elasticity >= 0 {
		t.Error("elasticity defaults should be negative")
	}
}

// ===== Cron Refresh =====

func TestRefreshBenchmarksWarmsCache(t *testing.T) {
	env := newTestEnv(t)
	calls := 0
	serveFakeBenchmarks(env, &calls)

	if err := env.srv.RefreshBenchmarks(context.Background()); err != nil {
		t.Fatalf("RefreshBenchmarks: %v", err)
	}

	rec := env.get("/api/v1/benchmarks/category", nil)
	resp, _ := decodeEnvelope(t, body(t, rec))
	if !resp.Metadata.Cached {
		t.Error("request after refresh not served from cache")
	}
	if calls != 1 {
		t.Errorf("backend called %d times, want 1 (the refresh)", calls)
	}
}

func TestRefreshBenchmarksReportsBackendError(t *testing.T) {
	env := newTestEnv(t)

	if err := env.srv.RefreshBenchmarks(context.Background()); err == nil {
		t.Error("refresh against a dead backend should error")
	}
}
