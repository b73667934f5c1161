// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package backend

import (
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
)

// errCircuitOpen marks calls rejected by the breaker without reaching the
// backend. It unwraps to ErrBackendUnavailable for page handlers; the
// client's metrics path distinguishes it to label rejections.
var errCircuitOpen = fmt.Errorf("%w: circuit open", ErrBackendUnavailable)

// breaker wraps backend calls with a circuit breaker so a failing backend
// degrades into fast, cheap errors instead of piled-up timeouts.
//
// The breaker uses real time for its interval and timeout; tests exercise
// the wrapped client with httptest servers rather than mocking the breaker.
type breaker struct {
	cb   *gobreaker.CircuitBreaker[[]byte]
	name string
}

// newBreaker creates the house-standard breaker:
//   - opens at a 60% failure rate over at least 10 requests
//   - counts reset every minute while closed
//   - half-open after 2 minutes, allowing 3 probe requests
//
// Only transport failures and 5xx responses count as failures; a 4xx is the
// backend answering correctly and must never open the circuit.
func newBreaker(name string) *breaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Str("breaker", name).
					Msg("Opening circuit")
			}

			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Mapped client errors are successful exchanges.
			var apiErr *APIError
			return errors.Is(err, ErrUnauthorized) ||
				errors.Is(err, ErrPremiumRequired) ||
				errors.Is(err, ErrRateLimited) ||
				errors.As(err, &apiErr)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().
				Str("breaker", name).
				Str("from", fromStr).
				Str("to", toStr).
				Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &breaker{cb: cb, name: name}
}

// execute runs fn through the breaker. fn returns the response body, the
// HTTP status (for logging), and any error.
func (b *breaker) execute(fn func() ([]byte, int, error)) ([]byte, error) {
	data, err := b.cb.Execute(func() ([]byte, error) {
		body, _, callErr := fn()
		return body, callErr
	})

	if err != nil && (errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)) {
		logging.Warn().Str("breaker", b.name).Msg("Request rejected by open circuit")
		return nil, errCircuitOpen
	}

	return data, err
}

// isOpenError reports whether err is the breaker rejecting the call rather
// than the call itself failing.
func (b *breaker) isOpenError(err error) bool {
	return errors.Is(err, errCircuitOpen)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
