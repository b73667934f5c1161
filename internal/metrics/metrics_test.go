// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// ===== HTTP Request Recording =====

func TestRecordHTTPRequest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		route    string
		status   int
		duration time.Duration
	}{
		{"landing page hit", "GET", "/", 200, 12 * time.Millisecond},
		{"calculator post", "POST", "/calculate-fees", 200, 40 * time.Millisecond},
		{"auth redirect", "GET", "/dashboard", 302, 2 * time.Millisecond},
		{"not found", "GET", "/nope", 404, time.Millisecond},
		{"server error", "POST", "/upload", 500, 80 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, itoa(tt.status)))
			RecordHTTPRequest(tt.method, tt.route, tt.status, tt.duration)
			after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, itoa(tt.status)))
			if after != before+1 {
				t.Errorf("counter = %v, want %v", after, before+1)
			}
		})
	}
}

func itoa(status int) string {
	switch status {
	case 200:
		return "200"
	case 302:
		return "302"
	case 404:
		return "404"
	case 500:
		return "500"
	}
	return "0"
}

// ===== Backend Request Recording =====

func TestRecordBackendRequest(t *testing.T) {
	before := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("login", "success"))

	RecordBackendRequest("login", "success", 30*time.Millisecond)
	RecordBackendRequest("login", "success", 10*time.Millisecond)

	after := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("login", "success"))
	if after != before+2 {
		t.Errorf("counter = %v, want %v", after, before+2)
	}
}

// ===== In-Flight Gauge =====

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(HTTPActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(HTTPActiveRequests); got != base+2 {
		t.Errorf("gauge after two increments = %v, want %v", got, base+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(HTTPActiveRequests); got != base {
		t.Errorf("gauge after balanced decrements = %v, want %v", got, base)
	}
}

// ===== Domain Counters =====

func TestDomainCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(CalculatorRuns.WithLabelValues("fees"))
	CalculatorRuns.WithLabelValues("fees").Inc()
	if got := testutil.ToFloat64(CalculatorRuns.WithLabelValues("fees")); got != before+1 {
		t.Errorf("CalculatorRuns = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(UploadsTotal.WithLabelValues("sold_items", "accepted"))
	UploadsTotal.WithLabelValues("sold_items", "accepted").Inc()
	if got := testutil.ToFloat64(UploadsTotal.WithLabelValues("sold_items", "accepted")); got != before+1 {
		t.Errorf("UploadsTotal = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(CollectorSkipped.WithLabelValues("duplicate"))
	CollectorSkipped.WithLabelValues("duplicate").Inc()
	if got := testutil.ToFloat64(CollectorSkipped.WithLabelValues("duplicate")); got != before+1 {
		t.Errorf("CollectorSkipped = %v, want %v", got, before+1)
	}
}
