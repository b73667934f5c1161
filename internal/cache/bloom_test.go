// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package cache

import (
	"crypto/sha256"
	"fmt"
	"testing"
)

// ===== Membership =====

func TestBloomFilterAddTest(t *testing.T) {
	bf := NewBloomFilter(1000, 0.01)

	hashes := make([]string, 100)
	for i := range hashes {
		sum := sha256.Sum256([]byte(fmt.Sprintf("dataset-%d", i)))
		hashes[i] = fmt.Sprintf("%x", sum)
		bf.Add(hashes[i])
	}

	for _, h := range hashes {
		if !bf.Test(h) {
			t.Errorf("added hash %s reported absent", h[:12])
		}
	}
	if bf.Count() != 100 {
		t.Errorf("Count = %d, want 100", bf.Count())
	}
}

func TestBloomFilterFalsePositiveRate(t *testing.T) {
	bf := NewBloomFilter(1000, 0.01)

	for i := 0; i < 1000; i++ {
		bf.Add(fmt.Sprintf("present-%d", i))
	}

	falsePositives := 0
	const probes = 10_000
	for i := 0; i < probes; i++ {
		if bf.Test(fmt.Sprintf("absent-%d", i)) {
			falsePositives++
		}
	}

	// Allow generous headroom over the 1% target.
	rate := float64(falsePositives) / probes
	if rate > 0.03 {
		t.Errorf("false positive rate = %.4f, want <= 0.03", rate)
	}
}

// ===== Clear =====

func TestBloomFilterClear(t *testing.T) {
	bf := NewBloomFilter(100, 0.01)

	bf.Add("a")
	bf.Clear()

	if bf.Test("a") {
		t.Error("cleared filter still reports membership")
	}
	if bf.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", bf.Count())
	}
}

// ===== Defaults =====

func TestBloomFilterBadArgumentsFallBack(t *testing.T) {
	tests := []struct {
		name  string
		items int
		rate  float64
	}{
		{"zero items", 0, 0.01},
		{"negative items", -5, 0.01},
		{"zero rate", 100, 0},
		{"rate of one", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bf := NewBloomFilter(tt.items, tt.rate)
			bf.Add("key")
			if !bf.Test("key") {
				t.Error("filter with fallback sizing lost a key")
			}
		})
	}
}
