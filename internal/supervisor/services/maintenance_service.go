// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Brice601/etsydashboard-frontend/internal/logging"
)

// Sweeper removes stale records and reports how many went.
type Sweeper interface {
	SweepExpired() (int, error)
}

// StaleSweeper is the usage tracker's variant of the same job.
type StaleSweeper interface {
	SweepStale() (int, error)
}

// Pruner removes expired archive files.
type Pruner interface {
	PruneExpired() (int, error)
}

// MaintenanceDeps are the components the cron jobs operate on. Nil fields
// skip their job, so tests can exercise one job at a time.
type MaintenanceDeps struct {
	Sessions  Sweeper
	Usage     StaleSweeper
	Collector Pruner

	// RefreshBenchmarks re-warms the benchmark cache from the backend.
	RefreshBenchmarks func(ctx context.Context) error
}

// Cron schedules. Sweeps run in the quiet early morning; the benchmark
// refresh keeps the cache warm around the clock.
const (
	dailySweepSchedule       = "17 4 * * *"
	benchmarkRefreshSchedule = "@hourly"
)

// MaintenanceService runs the recurring housekeeping jobs under the
// supervision tree: daily session/usage/archive sweeps and an hourly
// benchmark cache refresh.
type MaintenanceService struct {
	deps MaintenanceDeps
	cron *cron.Cron
	name string
}

// NewMaintenanceService builds the cron schedule. Jobs are registered once;
// Serve only starts and stops the scheduler.
func NewMaintenanceService(deps MaintenanceDeps) (*MaintenanceService, error) {
	s := &MaintenanceService{
		deps: deps,
		cron: cron.New(),
		name: "maintenance-cron",
	}

	if _, err := s.cron.AddFunc(dailySweepSchedule, s.dailySweep); err != nil {
		return nil, err
	}
	if deps.RefreshBenchmarks != nil {
		if _, err := s.cron.AddFunc(benchmarkRefreshSchedule, s.refreshBenchmarks); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Serve implements suture.Service. The scheduler runs until the context is
// canceled, then drains in-flight jobs.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.cron.Start()
	logging.Info().Msg("Maintenance cron started")

	<-ctx.Done()

	// Stop returns a context that is done when running jobs finish.
	<-s.cron.Stop().Done()
	return ctx.Err()
}

// String identifies the service in suture's event log.
func (s *MaintenanceService) String() string {
	return s.name
}

// dailySweep clears expired sessions, spent usage windows, and aged archive
// files. Each sweep logs its count; failures never abort the others.
func (s *MaintenanceService) dailySweep() {
	if s.deps.Sessions != nil {
		if n, err := s.deps.Sessions.SweepExpired(); err != nil {
			logging.Err(err).Msg("Session sweep failed")
		} else {
			logging.Info().Int("removed", n).Msg("Session sweep completed")
		}
	}

	if s.deps.Usage != nil {
		if n, err := s.deps.Usage.SweepStale(); err != nil {
			logging.Err(err).Msg("Usage window sweep failed")
		} else {
			logging.Info().Int("removed", n).Msg("Usage window sweep completed")
		}
	}

	if s.deps.Collector != nil {
		if n, err := s.deps.Collector.PruneExpired(); err != nil {
			logging.Err(err).Msg("Archive prune failed")
		} else {
			logging.Info().Int("removed", n).Msg("Archive prune completed")
		}
	}
}

func (s *MaintenanceService) refreshBenchmarks() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.deps.RefreshBenchmarks(ctx); err != nil {
		logging.Warn().Err(err).Msg("Benchmark refresh failed")
		return
	}
	logging.Debug().Msg("Benchmark cache refreshed")
}
