// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package config

import (
	"time"
)

// Config holds all application configuration loaded from environment variables
// and an optional YAML config file.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via ETSYDASH_* variables
//
// Configuration Categories:
//
//  1. Product:
//     - App: Branding, canonical base URL, environment mode, premium pricing
//
//  2. Infrastructure:
//     - Server: HTTP listener settings (host, port, timeouts)
//     - Storage: Badger state store (sessions, usage counters, datasets, registry)
//     - Backend: Analytics backend API (URL, key, rate limit)
//
//  3. Accounts & Limits:
//     - Auth: Session cookies, access keys, optional OIDC SSO
//     - Usage: Free-plan analysis quota and duplicate suppression
//     - Upload: Dataset size cap
//
//  4. Product Improvement:
//     - Collector: Consent-gated dataset archival
//
//  5. Observability:
//     - Logging: Log levels and output formats
//     - Analytics: Optional third-party snippet IDs
//
// Validation:
// Load() validates all required fields and returns an error if:
//   - The backend URL or API key is missing or malformed
//   - The session secret is shorter than 32 bytes or looks like a placeholder
//   - OIDC SSO is only partially configured
//   - Numeric limits are negative or out of range
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Backend   BackendConfig   `koanf:"backend"`
	Auth      AuthConfig      `koanf:"auth"`
	Upload    UploadConfig    `koanf:"upload"`
	Usage     UsageConfig     `koanf:"usage"`
	Collector CollectorConfig `koanf:"collector"`
	Cache     CacheConfig     `koanf:"cache"`
	Storage   StorageConfig   `koanf:"storage"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// AppConfig holds product-level settings used across pages and SEO metadata.
type AppConfig struct {
	Name            string  `koanf:"name"`              // Product name used in titles and templates
	BaseURL         string  `koanf:"base_url"`          // Canonical base URL for SEO and redirects
	Environment     string  `koanf:"environment"`       // development or production
	SupportEmail    string  `koanf:"support_email"`     // Shown on error and contact surfaces
	PremiumPriceUSD float64 `koanf:"premium_price_usd"` // Monthly premium price rendered on /pricing
}

// IsProduction reports whether the app runs in production mode.
// Production tightens cookie and secret validation.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`          // Read/write timeout for the listener
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Graceful shutdown bound, also caps supervisor drain
}

// BackendConfig holds connection settings for the analytics backend API.
// The backend owns accounts, premium subscriptions, benchmarks, and heavy
// analysis endpoints; this frontend is one of its clients.
type BackendConfig struct {
	URL       string        `koanf:"url"`        // Base URL, e.g. https://api.etsydashboard.com
	APIKey    string        `koanf:"api_key"`    // Service key sent as Bearer token when no session token exists
	Timeout   time.Duration `koanf:"timeout"`    // Per-request timeout
	RateLimit float64       `koanf:"rate_limit"` // Outbound requests per second
	RateBurst int           `koanf:"rate_burst"` // Token bucket burst size
}

// AuthConfig holds session and sign-in settings.
//
// Sessions are HTTP-only cookies carrying a signed JWT whose sid claim points
// at a server-side record in the Badger store. AccessKeyHashes are bcrypt
// hashes of early-access keys; an empty list disables the access-key gate.
type AuthConfig struct {
	SessionSecret   string        `koanf:"session_secret"`    // HMAC key for session JWTs, at least 32 bytes
	SessionTTL      time.Duration `koanf:"session_ttl"`       // Default session lifetime
	RememberTTL     time.Duration `koanf:"remember_ttl"`      // Lifetime with "remember me" checked
	CookieName      string        `koanf:"cookie_name"`       // Session cookie name
	CookieSecure    bool          `koanf:"cookie_secure"`     // Secure flag on cookies
	AccessKeyHashes []string      `koanf:"access_key_hashes"` // bcrypt hashes of accepted early-access keys
	OIDC            OIDCConfig    `koanf:"oidc"`
}

// OIDCConfig holds optional single sign-on settings. SSO routes are only
// mounted when IssuerURL, ClientID, and RedirectURL are all configured.
type OIDCConfig struct {
	IssuerURL    string   `koanf:"issuer_url"`
	ClientID     string   `koanf:"client_id"`
	ClientSecret string   `koanf:"client_secret"` // Optional with PKCE (public client)
	RedirectURL  string   `koanf:"redirect_url"`
	Scopes       []string `koanf:"scopes"`
	PKCEEnabled  bool     `koanf:"pkce_enabled"`
}

// Enabled reports whether SSO is configured. Partial configuration is a
// validation error, not a silently disabled feature.
func (o OIDCConfig) Enabled() bool {
	return o.IssuerURL != "" || o.ClientID != "" || o.RedirectURL != ""
}

// Complete reports whether all required SSO fields are present.
func (o OIDCConfig) Complete() bool {
	return o.IssuerURL != "" && o.ClientID != "" && o.RedirectURL != ""
}

// UploadConfig holds dataset upload limits.
type UploadConfig struct {
	MaxSizeBytes int64 `koanf:"max_size_bytes"` // Per-file cap for dataset uploads
}

// UsageConfig holds the free-plan analysis quota settings.
type UsageConfig struct {
	WeeklyLimit     int           `koanf:"weekly_limit"`     // Analyses per rolling 7-day window on the free plan
	DuplicateWindow time.Duration `koanf:"duplicate_window"` // Same dataset hash within this window costs no credit
}

// CollectorConfig holds settings for consent-gated dataset archival.
type CollectorConfig struct {
	Enabled       bool   `koanf:"enabled"`
	DataDir       string `koanf:"data_dir"`       // Archive root; datasets land under raw_data/
	RetentionDays int    `koanf:"retention_days"` // Archived files older than this are pruned daily
}

// CacheConfig holds TTLs for cached backend responses.
type CacheConfig struct {
	BenchmarkTTL time.Duration `koanf:"benchmark_ttl"` // Category/elasticity benchmark cache lifetime
}

// StorageConfig holds the Badger state store settings. One store backs
// sessions, usage counters, per-session datasets, and the collector registry.
type StorageConfig struct {
	Path       string        `koanf:"path"`        // Badger directory; empty means in-memory (tests)
	GCInterval time.Duration `koanf:"gc_interval"` // Value-log GC loop interval
}

// AnalyticsConfig holds optional third-party analytics snippet IDs.
// Snippets are only injected into pages when the corresponding ID is set.
type AnalyticsConfig struct {
	GoogleMeasurementID string `koanf:"google_measurement_id"`
	MetaPixelID         string `koanf:"meta_pixel_id"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"` // Include caller file:line
}

// Load reads configuration from built-in defaults, an optional YAML config
// file, and ETSYDASH_* environment variables, in that order of precedence
// (later sources override earlier ones). The result is validated; a
// configuration the app cannot safely run with returns an error instead of
// a half-working instance.
func Load() (*Config, error) {
	return loadWithKoanf()
}
