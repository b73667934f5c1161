// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/Brice601/etsydashboard-frontend/internal/logging"
)

// Early-access key attempts are rate limited per client so the hashes
// cannot be brute forced through the form.
const (
	accessKeyAttemptsPerMinute = 5
	accessKeyBurst             = 5
)

// KeyChecker validates early-access keys against configured bcrypt hashes.
type KeyChecker struct {
	hashes []string

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewKeyChecker builds a checker over the configured hashes. With no hashes
// configured every check fails, which keeps early access closed by default.
func NewKeyChecker(hashes []string) *KeyChecker {
	return &KeyChecker{
		hashes:   hashes,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Enabled reports whether any access keys are configured.
func (k *KeyChecker) Enabled() bool {
	return len(k.hashes) > 0
}

// Check compares key against every configured hash. clientID (normally the
// remote IP) scopes the attempt limit; a rate-limited client fails without
// touching bcrypt.
func (k *KeyChecker) Check(clientID, key string) bool {
	if key == "" || len(k.hashes) == 0 {
		return false
	}

	if !k.limiter(clientID).Allow() {
		logging.Warn().Str("client", clientID).Msg("Access key attempts rate limited")
		return false
	}

	for _, hash := range k.hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil {
			return true
		}
	}
	return false
}

func (k *KeyChecker) limiter(clientID string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.limiters[clientID]
	if !ok {
		l = rate.NewLimiter(rate.Limit(accessKeyAttemptsPerMinute)/60, accessKeyBurst)
		k.limiters[clientID] = l
	}
	return l
}
