// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/cache"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

// Benchmark kinds served by the JSON API.
const (
	benchmarkCategory   = "category"
	benchmarkElasticity = "elasticity"
)

// apiBenchmarksCategory godoc
// @Summary Category benchmarks
// @Description Average price, margin, and fee rate by Etsy category. Served from cache; falls back to built-in figures when the backend is down.
// @Tags benchmarks
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Benchmarks}
// @Router /benchmarks/category [get]
func (s *Server) apiBenchmarksCategory(w http.ResponseWriter, r *http.Request) {
	s.serveBenchmarks(w, r, benchmarkCategory)
}

// apiBenchmarksElasticity godoc
// @Summary Demand elasticity benchmarks
// @Description Price elasticity of demand by Etsy category, as used by the pricing scenario simulator.
// @Tags benchmarks
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Benchmarks}
// @Router /benchmarks/elasticity [get]
func (s *Server) apiBenchmarksElasticity(w http.ResponseWriter, r *http.Request) {
	s.serveBenchmarks(w, r, benchmarkElasticity)
}

func (s *Server) serveBenchmarks(w http.ResponseWriter, r *http.Request, kind string) {
	// Cache.Get/Set record the hit/miss metrics themselves.
	key := cache.GenerateKey("benchmarks", kind)
	if cached, ok := s.benchmarks.Get(key); ok {
		respondCached(w, cached)
		return
	}

	data, err := s.fetchBenchmarks(r.Context(), kind)
	if err != nil {
		// Benchmarks change slowly; stale built-in figures beat a 503.
		logging.Warn().Err(err).Str("kind", kind).Msg("Benchmark fetch failed, serving built-in defaults")
		data = defaultBenchmarks(kind)
	} else {
		s.benchmarks.Set(key, data)
	}
	respondData(w, http.StatusOK, data)
}

func (s *Server) fetchBenchmarks(ctx context.Context, kind string) (*models.Benchmarks, error) {
	if kind == benchmarkElasticity {
		return s.backend.ElasticityBenchmarks(ctx)
	}
	return s.backend.CategoryBenchmarks(ctx)
}

// RefreshBenchmarks re-fetches both benchmark kinds into the cache. The
// hourly cron calls this so request paths rarely see a cold cache.
func (s *Server) RefreshBenchmarks(ctx context.Context) error {
	var firstErr error
	for _, kind := range []string{benchmarkCategory, benchmarkElasticity} {
		data, err := s.fetchBenchmarks(ctx, kind)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.benchmarks.Set(cache.GenerateKey("benchmarks", kind), data)
	}
	return firstErr
}

// respondCached is respondData with the cache marker set.
func respondCached(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now(), Cached: true},
	})
}

// defaultBenchmarks are the shipped fallback figures. Coarse, but they keep
// the calculator's comparison features alive through backend outages.
func defaultBenchmarks(kind string) *models.Benchmarks {
	if kind == benchmarkElasticity {
		return &models.Benchmarks{
			Kind:      benchmarkElasticity,
			UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Entries: []models.BenchmarkEntry{
				{Category: "Jewelry", Elasticity: -1.8},
				{Category: "Home & Living", Elasticity: -1.3},
				{Category: "Craft Supplies", Elasticity: -2.1},
				{Category: "Clothing", Elasticity: -1.6},
				{Category: "Art & Collectibles", Elasticity: -0.9},
			},
		}
	}
	return &models.Benchmarks{
		Kind:      benchmarkCategory,
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Entries: []models.BenchmarkEntry{
			{Category: "Jewelry", AvgPrice: 32.50, AvgMarginPct: 38.0, AvgFeeRatePct: 12.4},
			{Category: "Home & Living", AvgPrice: 41.20, AvgMarginPct: 31.0, AvgFeeRatePct: 11.8},
			{Category: "Craft Supplies", AvgPrice: 12.80, AvgMarginPct: 26.0, AvgFeeRatePct: 13.6},
			{Category: "Clothing", AvgPrice: 48.90, AvgMarginPct: 29.0, AvgFeeRatePct: 12.1},
			{Category: "Art & Collectibles", AvgPrice: 55.00, AvgMarginPct: 45.0, AvgFeeRatePct: 11.2},
		},
	}
}
