// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors pages branch on. Raw backend messages never reach
// rendered HTML; handlers translate these into inline or generic copy.
var (
	// ErrUnauthorized means the backend rejected the credentials or the
	// session's access token expired. Handlers clear the session and
	// redirect to /auth.
	ErrUnauthorized = errors.New("backend: unauthorized")

	// ErrPremiumRequired means the operation needs a premium subscription.
	// Handlers render the upgrade prompt instead of an error page.
	ErrPremiumRequired = errors.New("backend: premium subscription required")

	// ErrRateLimited means the backend throttled this client.
	ErrRateLimited = errors.New("backend: rate limited")

	// ErrBackendUnavailable covers transport failures, 5xx responses, and
	// an open circuit breaker. Handlers show the generic try-again message.
	ErrBackendUnavailable = errors.New("backend: unavailable")
)

// APIError carries the backend's own error message for a 4xx response that
// maps to none of the sentinels (e.g. "email already registered"). The
// message is safe to show inline on forms: it comes from our backend, not
// from user input.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// UserMessage returns the backend's message, or a generic fallback when the
// backend sent none.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "The request could not be processed. Please check your input and try again."
}
