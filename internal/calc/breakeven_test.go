// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package calc

import (
	"errors"
	"testing"
)

func TestBreakeven(t *testing.T) {
	t.Parallel()

	// $20 item: fees 2.35, net 17.65, CM after $5 production = 12.65.
	result, err := Breakeven(BreakevenInput{
		FeeInput:   FeeInput{Price: 20, ProductionCost: 5},
		FixedCosts: 100,
	})
	if err != nil {
		t.Fatalf("Breakeven() error = %v", err)
	}

	if !almostEqual(result.ContributionMargin, 12.65) {
		t.Errorf("ContributionMargin = %v, want 12.65", result.ContributionMargin)
	}
	// ceil(100 / 12.65) = 8
	if result.BreakevenUnits != 8 {
		t.Errorf("BreakevenUnits = %d, want 8", result.BreakevenUnits)
	}
	if !almostEqual(result.BreakevenRevenue, 160) {
		t.Errorf("BreakevenRevenue = %v, want 160", result.BreakevenRevenue)
	}
}

func TestBreakevenRoundsUp(t *testing.T) {
	t.Parallel()

	result, err := Breakeven(BreakevenInput{
		FeeInput:   FeeInput{Price: 20, ProductionCost: 5},
		FixedCosts: 50, // 50 / 12.65 = 3.95 units
	})
	if err != nil {
		t.Fatalf("Breakeven() error = %v", err)
	}
	if result.BreakevenUnits != 4 {
		t.Errorf("BreakevenUnits = %d, want 4 (partial units round up)", result.BreakevenUnits)
	}
}

func TestBreakevenNonPositiveMargin(t *testing.T) {
	t.Parallel()

	_, err := Breakeven(BreakevenInput{
		FeeInput:   FeeInput{Price: 5, ProductionCost: 10},
		FixedCosts: 100,
	})
	if !errors.Is(err, ErrNonPositiveMargin) {
		t.Errorf("Breakeven() error = %v, want ErrNonPositiveMargin", err)
	}
}

func TestBreakevenZeroFixedCosts(t *testing.T) {
	t.Parallel()

	result, err := Breakeven(BreakevenInput{
		FeeInput: FeeInput{Price: 20, ProductionCost: 5},
	})
	if err != nil {
		t.Fatalf("Breakeven() error = %v", err)
	}
	if result.BreakevenUnits != 0 {
		t.Errorf("BreakevenUnits = %d, want 0 with no fixed costs", result.BreakevenUnits)
	}
	if result.BreakevenRevenue != 0 {
		t.Errorf("BreakevenRevenue = %v, want 0", result.BreakevenRevenue)
	}
}
