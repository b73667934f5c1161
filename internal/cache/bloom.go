// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package cache

import (
	"hash/fnv"
	"math"
	"sync"
)

// BloomFilter is a space-efficient probabilistic set. A negative answer is
// definitive; a positive answer may be a false positive at the configured
// rate.
//
// The collector keeps one in front of its Badger registry: most uploads are
// new content, and the filter answers "definitely not archived yet" without
// touching the store.
type BloomFilter struct {
	mu        sync.RWMutex
	bits      []uint64
	numBits   uint64
	numHashes int
	count     int
	capacity  int
}

// NewBloomFilter sizes a filter for expectedItems at the given false
// positive rate. Out-of-range arguments fall back to 10_000 items at 1%.
func NewBloomFilter(expectedItems int, falsePositiveRate float64) *BloomFilter {
	if expectedItems <= 0 {
		expectedItems = 10_000
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = 0.01
	}

	// Optimal parameters: m = -n*ln(p)/(ln 2)^2 bits, k = (m/n)*ln 2 hashes.
	ln2 := math.Ln2
	numBits := uint64(math.Ceil(-float64(expectedItems) * math.Log(falsePositiveRate) / (ln2 * ln2)))
	if numBits < 64 {
		numBits = 64
	}
	numHashes := int(math.Round(float64(numBits) / float64(expectedItems) * ln2))
	if numHashes < 1 {
		numHashes = 1
	}

	return &BloomFilter{
		bits:      make([]uint64, (numBits+63)/64),
		numBits:   numBits,
		numHashes: numHashes,
		capacity:  expectedItems,
	}
}

// Add inserts key into the filter.
func (bf *BloomFilter) Add(key string) {
	h1, h2 := bf.hashPair(key)

	bf.mu.Lock()
	defer bf.mu.Unlock()

	for i := 0; i < bf.numHashes; i++ {
		pos := (h1 + uint64(i)*h2) % bf.numBits
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
	bf.count++
}

// Test reports whether key may be in the set. False means definitely not.
func (bf *BloomFilter) Test(key string) bool {
	h1, h2 := bf.hashPair(key)

	bf.mu.RLock()
	defer bf.mu.RUnlock()

	for i := 0; i < bf.numHashes; i++ {
		pos := (h1 + uint64(i)*h2) % bf.numBits
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// Clear resets the filter to empty.
func (bf *BloomFilter) Clear() {
	bf.mu.Lock()
	defer bf.mu.Unlock()

	for i := range bf.bits {
		bf.bits[i] = 0
	}
	bf.count = 0
}

// Count returns the number of Add calls since creation or Clear.
func (bf *BloomFilter) Count() int {
	bf.mu.RLock()
	defer bf.mu.RUnlock()
	return bf.count
}

// Capacity returns the expected-item count the filter was sized for.
// Past capacity the false positive rate degrades; callers should Clear and
// re-seed from their authoritative store.
func (bf *BloomFilter) Capacity() int {
	return bf.capacity
}

// hashPair derives two independent 64-bit hashes for double hashing
// (Kirsch-Mitzenmacher: k hashes from two).
func (bf *BloomFilter) hashPair(key string) (uint64, uint64) {
	h := fnv.New64a()
	h.Write([]byte(key)) //nolint:errcheck // fnv never errors
	h1 := h.Sum64()

	h.Write([]byte{0xff}) //nolint:errcheck // fnv never errors
	h2 := h.Sum64()
	if h2 == 0 {
		h2 = 0x9e3779b97f4a7c15
	}

	return h1, h2
}
