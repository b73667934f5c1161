// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package usage tracks analysis credits. Free accounts get a fixed number
// of analyses per rolling 7-day window; premium accounts are unlimited but
// still counted for metrics. Re-analyzing the same dataset within the
// duplicate window never costs a credit, so refreshing a dashboard is free.
package usage

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
	"github.com/Brice601/etsydashboard-frontend/internal/storage"
)

// windowLength is the rolling quota window on the free plan.
const windowLength = 7 * 24 * time.Hour

// Key prefixes in the shared state store.
const (
	windowKeyPrefix = "usage:window:"
	dupKeyPrefix    = "usage:dup:"
)

// Allowance is the answer to "may this user run an analysis now".
type Allowance struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"` // -1 means unlimited
	ResetsAt  time.Time `json:"resets_at"` // Zero when no window is open
	Duplicate bool      `json:"duplicate"` // Same dataset within the window; free
}

// window is the per-user quota record.
type window struct {
	StartedAt time.Time `json:"started_at"`
	Used      int       `json:"used"`
}

// Tracker enforces the quota against the shared state store.
type Tracker struct {
	store *storage.Store
	cfg   *config.UsageConfig
}

// NewTracker wires the tracker to the shared state store.
func NewTracker(store *storage.Store, cfg *config.UsageConfig) *Tracker {
	return &Tracker{store: store, cfg: cfg}
}

// ContentHash fingerprints a dataset upload for duplicate suppression.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Check reports whether userID may run an analysis over contentHash without
// consuming anything. Call Consume after the analysis succeeds.
func (t *Tracker) Check(userID, plan, contentHash string) (Allowance, error) {
	dup, err := t.isDuplicate(userID, contentHash)
	if err != nil {
		return Allowance{}, err
	}
	if dup {
		return Allowance{Allowed: true, Remaining: t.remainingLocked(userID, plan), Duplicate: true}, nil
	}

	if models.NormalizePlan(plan) == models.PlanPremium {
		return Allowance{Allowed: true, Remaining: -1}, nil
	}

	win, err := t.currentWindow(userID)
	if err != nil {
		return Allowance{}, err
	}

	allowance := Allowance{
		Allowed:   win.Used < t.cfg.WeeklyLimit,
		Remaining: t.cfg.WeeklyLimit - win.Used,
	}
	if allowance.Remaining < 0 {
		allowance.Remaining = 0
	}
	if !win.StartedAt.IsZero() {
		allowance.ResetsAt = win.StartedAt.Add(windowLength)
	}

	if !allowance.Allowed {
		metrics.QuotaRejections.Inc()
	}
	return allowance, nil
}

// Consume records one analysis. Duplicates within the window cost nothing;
// everything else increments the user's window (premium included, for the
// metrics view).
func (t *Tracker) Consume(userID, plan, contentHash string) error {
	dup, err := t.isDuplicate(userID, contentHash)
	if err != nil {
		return err
	}

	if err := t.markSeen(userID, contentHash); err != nil {
		return err
	}
	if dup {
		return nil
	}

	win, err := t.currentWindow(userID)
	if err != nil {
		return err
	}
	if win.StartedAt.IsZero() {
		win.StartedAt = time.Now()
	}
	win.Used++

	// Window records expire on their own a window-length after start.
	ttl := time.Until(win.StartedAt.Add(windowLength))
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := t.store.PutJSON(windowKeyPrefix+userID, win, ttl); err != nil {
		return fmt.Errorf("store usage window: %w", err)
	}
	return nil
}

// SweepStale removes quota windows whose 7 days have passed. Badger TTLs
// already expire them; the sweep exists for the daily cron to log a count.
func (t *Tracker) SweepStale() (int, error) {
	var stale []string
	now := time.Now()

	err := t.store.IteratePrefix(windowKeyPrefix, func(key string, value []byte) error {
		var win window
		if err := unmarshalWindow(value, &win); err != nil {
			stale = append(stale, key)
			return nil
		}
		if now.Sub(win.StartedAt) > windowLength {
			stale = append(stale, key)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep usage windows: %w", err)
	}

	for _, key := range stale {
		if err := t.store.Delete(key); err != nil {
			return 0, fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return len(stale), nil
}

// currentWindow loads the user's window, resetting it when 7 days have
// passed since it started.
func (t *Tracker) currentWindow(userID string) (window, error) {
	var win window
	err := t.store.GetJSON(windowKeyPrefix+userID, &win)
	if errors.Is(err, storage.ErrNotFound) {
		return window{}, nil
	}
	if err != nil {
		return window{}, fmt.Errorf("load usage window: %w", err)
	}

	if time.Since(win.StartedAt) > windowLength {
		return window{}, nil
	}
	return win, nil
}

func (t *Tracker) isDuplicate(userID, contentHash string) (bool, error) {
	if contentHash == "" {
		return false, nil
	}
	ok, err := t.store.Exists(dupKey(userID, contentHash))
	if err != nil {
		return false, fmt.Errorf("check duplicate: %w", err)
	}
	return ok, nil
}

func (t *Tracker) markSeen(userID, contentHash string) error {
	if contentHash == "" {
		return nil
	}
	if err := t.store.PutBytes(dupKey(userID, contentHash), []byte{1}, t.cfg.DuplicateWindow); err != nil {
		return fmt.Errorf("mark duplicate: %w", err)
	}
	return nil
}

// remainingLocked computes the remaining display value for the duplicate
// path without opening a new window.
func (t *Tracker) remainingLocked(userID, plan string) int {
	if models.NormalizePlan(plan) == models.PlanPremium {
		return -1
	}
	win, err := t.currentWindow(userID)
	if err != nil {
		return 0
	}
	remaining := t.cfg.WeeklyLimit - win.Used
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func dupKey(userID, contentHash string) string {
	return dupKeyPrefix + userID + ":" + contentHash
}

func unmarshalWindow(data []byte, win *window) error {
	return json.Unmarshal(data, win)
}
