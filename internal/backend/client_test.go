// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(&config.BackendConfig{
		URL:       srv.URL,
		APIKey:    "test-service-key",
		Timeout:   5 * time.Second,
		RateLimit: 100,
		RateBurst: 100,
	})
	return client, srv
}

// ===== Request Contract =====

func TestClientSendsServiceCredentials(t *testing.T) {
	var gotAuth, gotAPIKey, gotContentType string

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{AccessToken: "tok"})
	}))

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.co", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if gotAuth != "Bearer test-service-key" {
		t.Errorf("Authorization = %q, want service key bearer", gotAuth)
	}
	if gotAPIKey != "test-service-key" {
		t.Errorf("X-API-Key = %q, want test-service-key", gotAPIKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestClientPrefersSessionToken(t *testing.T) {
	var gotAuth string

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.UserPayload{ID: "u1"})
	}))

	ctx := WithAccessToken(context.Background(), "seller-token")
	if _, err := client.GetUser(ctx, "u1"); err != nil {
		t.Fatalf("GetUser: %v", err)
	}

	if gotAuth != "Bearer seller-token" {
		t.Errorf("Authorization = %q, want session token bearer", gotAuth)
	}
}

func TestClientRequestPaths(t *testing.T) {
	var gotMethod, gotPath, gotQuery string

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("{}")) //nolint:errcheck
	}))

	ctx := context.Background()

	if _, err := client.Dashboard(ctx, "user 1", "finance"); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/dashboard/user%201" {
		t.Errorf("Dashboard request = %s %s", gotMethod, gotPath)
	}
	if gotQuery != "dashboard_type=finance" {
		t.Errorf("Dashboard query = %q", gotQuery)
	}

	if _, err := client.UpgradeSubscription(ctx, "pm_123"); err != nil {
		t.Fatalf("UpgradeSubscription: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/subscription/upgrade" {
		t.Errorf("UpgradeSubscription request = %s %s", gotMethod, gotPath)
	}
}

// ===== Response Decoding =====

func TestCalculateFeesDecodesResponse(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.FeeResponse{
			TransactionFee: 1.94935,
			TotalFees:      3.29905,
			NetRevenue:     26.69095,
			Profit:         10.69095,
			MarginPercent:  35.64838,
		})
	}))

	out, err := client.CalculateFees(context.Background(), models.FeeRequest{Price: 29.99})
	if err != nil {
		t.Fatalf("CalculateFees: %v", err)
	}
	if out.TotalFees != 3.29905 {
		t.Errorf("TotalFees = %v, want 3.29905", out.TotalFees)
	}
}

func TestClientDecodesLargeSuccessBody(t *testing.T) {
	// Analysis results for big shops run well past the error-body cap;
	// the full payload must come through intact.
	want := models.AnalysisResult{
		AnalysisType: "finance",
		Summary:      map[string]float64{"revenue": 125000.50},
	}
	for i := 0; i < 1200; i++ {
		want.Insights = append(want.Insights,
			fmt.Sprintf("Listing %04d keeps a healthy margin; hold price through the season.", i))
	}

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(want)
	}))

	got, err := client.AnalyzeSales(context.Background(), "date,product,price\n", "finance")
	if err != nil {
		t.Fatalf("AnalyzeSales: %v", err)
	}
	if len(got.Insights) != len(want.Insights) {
		t.Errorf("Insights = %d, want %d", len(got.Insights), len(want.Insights))
	}
	if got.Insights[len(got.Insights)-1] != want.Insights[len(want.Insights)-1] {
		t.Error("last insight truncated or corrupted")
	}
}

// ===== Error Mapping =====

func TestClientErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"bad credentials"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{}`, ErrUnauthorized},
		{"payment required", http.StatusPaymentRequired, `{}`, ErrPremiumRequired},
		{"subscription flag", http.StatusConflict, `{"error":"subscription_required"}`, ErrPremiumRequired},
		{"rate limited", http.StatusTooManyRequests, `{}`, ErrRateLimited},
		{"server error", http.StatusInternalServerError, `boom`, ErrBackendUnavailable},
		{"bad gateway", http.StatusBadGateway, ``, ErrBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))

			err := client.Health(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Health error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientSurfacesBackendMessage(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"email already registered"}`)) //nolint:errcheck
	}))

	_, err := client.Register(context.Background(), models.RegisterRequest{Email: "a@b.co"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.UserMessage() != "email already registered" {
		t.Errorf("UserMessage = %q", apiErr.UserMessage())
	}
}

func TestClientTransportFailure(t *testing.T) {
	client := New(&config.BackendConfig{
		URL:       "http://127.0.0.1:1", // Nothing listens here
		APIKey:    "k",
		Timeout:   500 * time.Millisecond,
		RateLimit: 100,
		RateBurst: 100,
	})

	err := client.Health(context.Background())
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("Health error = %v, want ErrBackendUnavailable", err)
	}
}

// ===== Circuit Breaker =====

func TestClientBreakerOpensOnSustainedFailure(t *testing.T) {
	var served int

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ctx := context.Background()

	// Drive enough failures to trip the 60%/10-request threshold.
	for i := 0; i < 15; i++ {
		_ = client.Health(ctx)
	}

	servedBefore := served
	err := client.Health(ctx)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("Health after failures = %v, want ErrBackendUnavailable", err)
	}
	if served != servedBefore {
		t.Error("open breaker still let the request through")
	}
}

func TestClientBreakerIgnoresClientErrors(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	ctx := context.Background()

	// Well past the trip threshold; 401s must not open the circuit.
	for i := 0; i < 20; i++ {
		_ = client.Health(ctx)
	}

	err := client.Health(ctx)
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Health = %v, want ErrUnauthorized (closed breaker)", err)
	}
}
