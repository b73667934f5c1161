// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// ===== Access Keys =====

func TestKeyCheckerMatch(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("early-bird-2026"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	k := NewKeyChecker([]string{string(hash)})
	if !k.Enabled() {
		t.Fatal("checker with hashes reports disabled")
	}

	if !k.Check("1.2.3.4", "early-bird-2026") {
		t.Error("valid key rejected")
	}
	if k.Check("1.2.3.4", "wrong-key") {
		t.Error("invalid key accepted")
	}
	if k.Check("1.2.3.4", "") {
		t.Error("empty key accepted")
	}
}

func TestKeyCheckerDisabledWithoutHashes(t *testing.T) {
	k := NewKeyChecker(nil)
	if k.Enabled() {
		t.Error("empty checker reports enabled")
	}
	if k.Check("1.2.3.4", "anything") {
		t.Error("check passed with no hashes configured")
	}
}

func TestKeyCheckerRateLimitsClient(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	k := NewKeyChecker([]string{string(hash)})

	// Burn the burst with bad keys.
	for i := 0; i < accessKeyBurst; i++ {
		k.Check("10.0.0.1", "bad")
	}

	// Even the right key fails while the client is limited.
	if k.Check("10.0.0.1", "secret") {
		t.Error("rate-limited client still accepted")
	}

	// Other clients are unaffected.
	if !k.Check("10.0.0.2", "secret") {
		t.Error("fresh client rejected")
	}
}
