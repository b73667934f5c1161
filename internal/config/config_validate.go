// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validLogLevels defines the accepted LOG_LEVEL values
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the accepted LOG_FORMAT values
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validEnvironments defines the accepted environment modes
var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

// placeholderPatterns defines common placeholder patterns that indicate the
// operator forgot to set a real secret. This prevents accidental deployment
// with insecure default credentials.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"PLACEHOLDER",
	"EXAMPLE",
}

// Validate checks the configuration for correctness and returns an error
// describing the first problem found. The server refuses to start on a
// validation failure.
func (c *Config) Validate() error {
	if err := c.validateApp(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateBackend(); err != nil {
		return err
	}

	if err := c.validateAuth(); err != nil {
		return err
	}

	if err := c.validateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateApp validates product-level settings
func (c *Config) validateApp() error {
	if !validEnvironments[c.App.Environment] {
		return fmt.Errorf("ETSYDASH_ENVIRONMENT must be one of: development, production")
	}
	if c.App.BaseURL != "" {
		if err := validateHTTPURL(c.App.BaseURL, "ETSYDASH_BASE_URL"); err != nil {
			return err
		}
	}
	if c.App.PremiumPriceUSD < 0 {
		return fmt.Errorf("ETSYDASH_PREMIUM_PRICE must not be negative")
	}
	return nil
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("ETSYDASH_HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("ETSYDASH_HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("ETSYDASH_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateBackend validates the analytics backend connection settings.
// The frontend cannot serve accounts, analyses, or benchmarks without it.
func (c *Config) validateBackend() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("ETSYDASH_BACKEND_URL is required")
	}
	if err := validateHTTPURL(c.Backend.URL, "ETSYDASH_BACKEND_URL"); err != nil {
		return err
	}
	if c.Backend.APIKey == "" {
		return fmt.Errorf("ETSYDASH_BACKEND_API_KEY is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("ETSYDASH_BACKEND_TIMEOUT must be positive")
	}
	if c.Backend.RateLimit <= 0 {
		return fmt.Errorf("ETSYDASH_BACKEND_RATE_LIMIT must be positive")
	}
	if c.Backend.RateBurst < 1 {
		return fmt.Errorf("ETSYDASH_BACKEND_RATE_BURST must be at least 1")
	}
	return nil
}

// validateAuth validates session and SSO settings
func (c *Config) validateAuth() error {
	if err := c.validateSessionSecret(); err != nil {
		return err
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("ETSYDASH_SESSION_TTL must be positive")
	}
	if c.Auth.RememberTTL < c.Auth.SessionTTL {
		return fmt.Errorf("ETSYDASH_REMEMBER_TTL must not be shorter than ETSYDASH_SESSION_TTL")
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("ETSYDASH_COOKIE_NAME must not be empty")
	}
	return c.validateOIDC()
}

// validateSessionSecret enforces a minimum-entropy HMAC key for session JWTs
func (c *Config) validateSessionSecret() error {
	secret := c.Auth.SessionSecret
	if secret == "" {
		return fmt.Errorf("ETSYDASH_SESSION_SECRET is required")
	}
	if len(secret) < 32 {
		return fmt.Errorf("ETSYDASH_SESSION_SECRET must be at least 32 bytes, got %d", len(secret))
	}
	upper := strings.ToUpper(secret)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return fmt.Errorf("ETSYDASH_SESSION_SECRET looks like a placeholder value, set a real secret")
		}
	}
	return nil
}

// validateOIDC validates SSO settings. OIDC is all-or-nothing: either the
// issuer, client ID, and redirect URL are all present, or none are.
func (c *Config) validateOIDC() error {
	oidc := c.Auth.OIDC
	if !oidc.Enabled() {
		return nil
	}
	if !oidc.Complete() {
		return fmt.Errorf("OIDC SSO is partially configured: ETSYDASH_OIDC_ISSUER_URL, ETSYDASH_OIDC_CLIENT_ID, and ETSYDASH_OIDC_REDIRECT_URL must all be set")
	}
	if err := validateIssuerURL(oidc.IssuerURL); err != nil {
		return err
	}
	if !oidc.PKCEEnabled && oidc.ClientSecret == "" {
		return fmt.Errorf("ETSYDASH_OIDC_CLIENT_SECRET is required when PKCE is disabled")
	}
	if len(oidc.Scopes) == 0 {
		return fmt.Errorf("ETSYDASH_OIDC_SCOPES must not be empty")
	}
	return nil
}

// validateLimits validates numeric limits across upload, usage, collector,
// cache, and storage settings
func (c *Config) validateLimits() error {
	if c.Upload.MaxSizeBytes <= 0 {
		return fmt.Errorf("ETSYDASH_UPLOAD_MAX_BYTES must be positive")
	}
	if c.Usage.WeeklyLimit < 0 {
		return fmt.Errorf("ETSYDASH_USAGE_WEEKLY_LIMIT must not be negative")
	}
	if c.Usage.DuplicateWindow < 0 {
		return fmt.Errorf("ETSYDASH_USAGE_DUP_WINDOW must not be negative")
	}
	if c.Collector.Enabled && c.Collector.DataDir == "" {
		return fmt.Errorf("ETSYDASH_COLLECTOR_DATA_DIR is required when the collector is enabled")
	}
	if c.Collector.RetentionDays < 0 {
		return fmt.Errorf("ETSYDASH_COLLECTOR_RETENTION_DAYS must not be negative")
	}
	if c.Cache.BenchmarkTTL <= 0 {
		return fmt.Errorf("ETSYDASH_CACHE_BENCHMARK_TTL must be positive")
	}
	if c.Storage.GCInterval <= 0 {
		return fmt.Errorf("ETSYDASH_STORAGE_GC_INTERVAL must be positive")
	}
	return nil
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("ETSYDASH_LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("ETSYDASH_LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS services.
// Validates: scheme (http/https), host present, no paths or query params.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	// Allow trailing slash but no other paths
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// validateIssuerURL validates the OIDC issuer URL. Issuers may carry a path
// (e.g. https://auth.example.com/realms/sellers). HTTP is only allowed for
// localhost during development.
func validateIssuerURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("ETSYDASH_OIDC_ISSUER_URL failed to parse: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("ETSYDASH_OIDC_ISSUER_URL scheme must be http or https, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("ETSYDASH_OIDC_ISSUER_URL host is required")
	}

	if parsedURL.Scheme == "http" {
		host := parsedURL.Hostname()
		if host != "localhost" && host != "127.0.0.1" && host != "::1" {
			return fmt.Errorf("ETSYDASH_OIDC_ISSUER_URL must use https for non-localhost issuers")
		}
	}

	return nil
}
