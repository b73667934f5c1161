// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

// maxResponseBodySize bounds success payloads. Large analysis results run
// to a few hundred KB; anything near this limit is a backend bug.
const maxResponseBodySize = 16 * 1024 * 1024 // 16MB

// maxErrorBodySize bounds how much of an error response body is read for
// diagnostics.
const maxErrorBodySize = 64 * 1024 // 64KB

// tokenKey carries a session's backend access token through the context.
type tokenKey struct{}

// WithAccessToken returns a context whose backend calls authenticate as the
// signed-in seller instead of the frontend service account.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func accessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client issues authenticated HTTP requests to the analytics backend.
//
// Authentication: every request carries the frontend's service API key; a
// session access token in the context replaces it as the Bearer credential
// for per-user operations.
//
// Resilience: a token-bucket limiter paces outbound calls and a circuit
// breaker (see breaker.go) fails fast while the backend is unhealthy.
// Requests are never retried automatically; callers surface a generic
// message instead.
//
// Thread safety: safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	breaker *breaker
}

// New creates a backend client from configuration. The HTTP timeout,
// outbound rate, and burst all come from cfg; the circuit breaker uses the
// house settings (60% failures over >=10 requests, 2 minute recovery).
func New(cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		breaker: newBreaker("backend-api"),
	}
}

// CalculateFees asks the backend for its authoritative fee breakdown.
// The landing-page calculator computes locally; this call backs the
// signed-in calculator, which also records the analysis server-side.
func (c *Client) CalculateFees(ctx context.Context, req models.FeeRequest) (*models.FeeResponse, error) {
	var out models.FeeResponse
	if err := c.call(ctx, "calculate_fees", http.MethodPost, "/api/calculate-fees", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a backend account and returns its first session token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.call(ctx, "register", http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates a seller and returns a session token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.call(ctx, "login", http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginSSO establishes a session from an already-verified OIDC identity.
func (c *Client) LoginSSO(ctx context.Context, req models.SSORequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.call(ctx, "login_sso", http.MethodPost, "/api/auth/sso", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches the account record for id.
func (c *Client) GetUser(ctx context.Context, id string) (*models.Account, error) {
	var out models.UserPayload
	path := "/api/users/" + url.PathEscape(id)
	if err := c.call(ctx, "get_user", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	account := out.Account()
	return &account, nil
}

// AnalyzeSales submits raw CSV data for server-side analysis.
// analysisType is one of finance, customer, or seo.
func (c *Client) AnalyzeSales(ctx context.Context, csvData, analysisType string) (*models.AnalysisResult, error) {
	req := struct {
		CSVData      string `json:"csv_data"`
		AnalysisType string `json:"analysis_type"`
	}{csvData, analysisType}

	var out models.AnalysisResult
	if err := c.call(ctx, "analyze_sales", http.MethodPost, "/api/analyze/sales", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductInsights fetches per-product insights.
func (c *Client) ProductInsights(ctx context.Context, productID string) (*models.ProductInsights, error) {
	var out models.ProductInsights
	path := "/api/insights/product/" + url.PathEscape(productID)
	if err := c.call(ctx, "product_insights", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard fetches the backend-computed payload for one dashboard type.
func (c *Client) Dashboard(ctx context.Context, userID, dashboardType string) (*models.DashboardPayload, error) {
	var out models.DashboardPayload
	path := fmt.Sprintf("/api/dashboard/%s?dashboard_type=%s",
		url.PathEscape(userID), url.QueryEscape(dashboardType))
	if err := c.call(ctx, "dashboard", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PremiumRecommendations fetches premium-tier recommendations.
func (c *Client) PremiumRecommendations(ctx context.Context, userID string) (*models.Recommendations, error) {
	var out models.Recommendations
	path := "/api/premium/recommendations/" + url.PathEscape(userID)
	if err := c.call(ctx, "premium_recommendations", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpgradeSubscription upgrades the signed-in seller using a payment-provider
// payment method ID. The payment provider itself is only ever touched by the
// backend.
func (c *Client) UpgradeSubscription(ctx context.Context, paymentMethodID string) (*models.SubscriptionStatus, error) {
	req := struct {
		PaymentMethodID string `json:"payment_method_id"`
	}{paymentMethodID}

	var out models.SubscriptionStatus
	if err := c.call(ctx, "upgrade_subscription", http.MethodPost, "/api/subscription/upgrade", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CategoryBenchmarks fetches per-category marketplace benchmarks.
// Callers cache the result; see internal/api.
func (c *Client) CategoryBenchmarks(ctx context.Context) (*models.Benchmarks, error) {
	var out models.Benchmarks
	if err := c.call(ctx, "category_benchmarks", http.MethodGet, "/api/benchmarks/category", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ElasticityBenchmarks fetches per-category price elasticity estimates.
func (c *Client) ElasticityBenchmarks(ctx context.Context) (*models.Benchmarks, error) {
	var out models.Benchmarks
	if err := c.call(ctx, "elasticity_benchmarks", http.MethodGet, "/api/benchmarks/elasticity", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health verifies the backend is reachable and serving. Used by /readyz.
func (c *Client) Health(ctx context.Context) error {
	return c.call(ctx, "health", http.MethodGet, "/api/health", nil, nil)
}

// call runs one backend request through the rate limiter and circuit
// breaker, decoding a 2xx JSON body into result when result is non-nil.
func (c *Client) call(ctx context.Context, operation, method, path string, body, result interface{}) error {
	start := time.Now()

	err := c.doCall(ctx, method, path, body, result)

	outcome := "success"
	switch {
	case err == nil:
	case c.breaker.isOpenError(err):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	metrics.RecordBackendRequest(operation, outcome, time.Since(start))

	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}

func (c *Client) doCall(ctx context.Context, method, path string, body, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Session token when present, service key otherwise.
	if token := accessTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	data, err := c.breaker.execute(func() ([]byte, int, error) {
		return c.roundTrip(req)
	})
	if err != nil {
		return err
	}

	if result == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// roundTrip performs the HTTP exchange and maps status codes to sentinel
// errors. Only transport failures and 5xx count as circuit breaker
// failures; client errors (4xx) are the backend answering correctly.
func (c *Client) roundTrip(req *http.Request) ([]byte, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		if err != nil {
			return nil, resp.StatusCode, fmt.Errorf("%w: read body: %v", ErrBackendUnavailable, err)
		}
		return data, resp.StatusCode, nil
	}

	// Error bodies only feed diagnostics; cap them tightly.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read body: %v", ErrBackendUnavailable, err)
	}

	if resp.StatusCode >= 500 {
		return nil, resp.StatusCode, fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	}

	return nil, resp.StatusCode, mapClientError(resp.StatusCode, data)
}

// mapClientError converts a backend 4xx into the sentinel the UI layer
// branches on.
func mapClientError(status int, body []byte) error {
	var errBody models.BackendErrorBody
	_ = json.Unmarshal(body, &errBody) // Tolerate non-JSON error bodies

	message := errBody.Message()

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusPaymentRequired:
		return ErrPremiumRequired
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}

	if message == "subscription_required" {
		return ErrPremiumRequired
	}

	return &APIError{StatusCode: status, Message: message}
}
